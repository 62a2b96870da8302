package prediction

import (
	"strings"

	"github.com/riskibarqy/match-predictor/internal/domain/teamname"
)

const (
	MinPossession = 40.0
	MaxPossession = 70.0

	eliteBase    = 60.0
	standardBase = 50.0
	noiseSpread  = 7.0
)

var eliteFragments = []string{"bayern", "barcelona", "city", "psg", "real", "arsenal"}

// IsElite reports whether the normalized team name carries an elite fragment.
func IsElite(team string) bool {
	token := teamname.Normalize(team)
	for _, fragment := range eliteFragments {
		if strings.Contains(token, fragment) {
			return true
		}
	}
	return false
}

// EstimatePossession returns the home share of possession in
// [MinPossession, MaxPossession].
func EstimatePossession(team string, recentPoints float64, rnd RandomSource) float64 {
	base := standardBase
	if IsElite(team) {
		base = eliteBase
	}
	adjustment := clamp(recentPoints/45*10, -5, 10)
	value := base + adjustment + rnd.Uniform(-noiseSpread, noiseSpread)
	return clamp(value, MinPossession, MaxPossession)
}

// SplitPossession returns both shares; they always sum to 100.
func SplitPossession(home float64) (float64, float64) {
	return home, 100 - home
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
