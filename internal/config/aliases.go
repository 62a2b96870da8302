package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/riskibarqy/match-predictor/internal/domain/teamname"
	"gopkg.in/yaml.v3"
)

// AliasFile is the on-disk alias table. Version lets the file format change
// without breaking older deployments.
type AliasFile struct {
	Version int                 `yaml:"version"`
	Aliases map[string][]string `yaml:"aliases"`
}

const supportedAliasFileVersion = 1

// LoadAliasTable returns the default alias table extended with the entries
// from path. A blank path or a missing file yields the defaults.
func LoadAliasTable(path string) (*teamname.AliasTable, error) {
	table := teamname.DefaultAliasTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return table, nil
		}
		return nil, fmt.Errorf("read alias table: %w", err)
	}

	var file AliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse alias table: %w", err)
	}
	if file.Version != 0 && file.Version != supportedAliasFileVersion {
		return nil, fmt.Errorf("unsupported alias table version %d", file.Version)
	}

	for key, variants := range file.Aliases {
		if err := table.Add(key, variants...); err != nil {
			return nil, fmt.Errorf("alias %q: %w", key, err)
		}
	}
	return table, nil
}
