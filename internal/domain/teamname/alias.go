package teamname

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// AliasTable maps a canonical club key to the set of tokens known to refer
// to the same club. Keys and variants are stored normalized.
type AliasTable struct {
	mu      sync.RWMutex
	classes map[string]map[string]struct{}
	members map[string]map[string]struct{}
}

// DefaultAliases is the built-in table used when no alias file is configured.
func DefaultAliases() map[string][]string {
	return map[string][]string{
		"psg":            {"parissaintgermain", "psg", "paris"},
		"bayernmunich":   {"bayern", "fcbayern", "fcbayernmunich", "bayernmunchen"},
		"realmadrid":     {"realmadrid", "madrid"},
		"barcelona":      {"barcelona", "fcb", "fcbarcelona"},
		"manchestercity": {"manchestercity", "city", "mancity"},
		"arsenal":        {"arsenal", "arsenalfc"},
		"acmilan":        {"acmilan", "milan"},
		"intermilan":     {"intermilan", "inter", "internazionale"},
	}
}

func NewAliasTable() *AliasTable {
	return &AliasTable{
		classes: make(map[string]map[string]struct{}),
		members: make(map[string]map[string]struct{}),
	}
}

// NewAliasTableFrom builds a table from canonical key to variant lists.
func NewAliasTableFrom(aliases map[string][]string) (*AliasTable, error) {
	table := NewAliasTable()
	for key, variants := range aliases {
		if err := table.Add(key, variants...); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func DefaultAliasTable() *AliasTable {
	table, err := NewAliasTableFrom(DefaultAliases())
	if err != nil {
		panic(err)
	}
	return table
}

// Add registers variants under key. The key itself is a member of its class.
func (t *AliasTable) Add(key string, variants ...string) error {
	canonical := strings.TrimSpace(key)
	if canonical == "" {
		return fmt.Errorf("alias key is required")
	}

	tokens := make([]string, 0, len(variants)+1)
	for _, raw := range append([]string{canonical}, variants...) {
		token := Normalize(raw)
		if token == "" {
			return fmt.Errorf("alias %q for %q normalizes to an empty token", raw, canonical)
		}
		tokens = append(tokens, token)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	class, ok := t.classes[canonical]
	if !ok {
		class = make(map[string]struct{}, len(tokens))
		t.classes[canonical] = class
	}
	for _, token := range tokens {
		class[token] = struct{}{}
		keys, ok := t.members[token]
		if !ok {
			keys = make(map[string]struct{}, 1)
			t.members[token] = keys
		}
		keys[canonical] = struct{}{}
	}
	return nil
}

// SameClass reports whether both normalized tokens sit in one alias set.
func (t *AliasTable) SameClass(a, b string) bool {
	if t == nil || a == "" || b == "" {
		return false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	left := t.members[a]
	right := t.members[b]
	if len(left) > len(right) {
		left, right = right, left
	}
	for key := range left {
		if _, ok := right[key]; ok {
			return true
		}
	}
	return false
}

// Canonical returns the alias keys a normalized token belongs to, sorted.
func (t *AliasTable) Canonical(token string) []string {
	if t == nil {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]string, 0, len(t.members[token]))
	for key := range t.members[token] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.classes)
}
