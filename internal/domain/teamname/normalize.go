package teamname

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// StopWords are the club-name fragments removed as whole words before comparison.
var StopWords = []string{
	"fc", "cf", "club", "sc", "sk", "real", "sporting", "ss", "as", "ac",
	"paris", "saint", "germain", "munchen", "muenchen",
}

var (
	stopWordPattern = regexp.MustCompile(`\b(` + strings.Join(StopWords, "|") + `)\b`)
	nonTokenPattern = regexp.MustCompile(`[^a-z0-9]`)
	substitutions   = strings.NewReplacer(
		"bayernmunchen", "bayernmunich",
		"psg", "parissaintgermain",
	)
)

// normalizePasses bounds the fixpoint loop. A second pass is always stable.
const normalizePasses = 3

// Normalize reduces a display name to a lowercase ASCII token used for
// equality checks. The result is idempotent.
//
// When stop-word removal would leave nothing (e.g. "Paris Saint-Germain"),
// the words are kept so the club still has an identity.
func Normalize(raw string) string {
	token := normalizeOnce(raw)
	for i := 0; i < normalizePasses; i++ {
		next := normalizeOnce(token)
		if next == token {
			break
		}
		token = next
	}
	return token
}

func normalizeOnce(raw string) string {
	if raw == "" {
		return ""
	}

	folded := foldASCII(strings.ToLower(raw))
	stripped := stopWordPattern.ReplaceAllString(folded, "")
	if nonTokenPattern.ReplaceAllString(stripped, "") == "" {
		stripped = folded
	}
	stripped = substitutions.Replace(stripped)
	return nonTokenPattern.ReplaceAllString(stripped, "")
}

// foldASCII decomposes accented letters and drops every non-ASCII rune,
// so "münchen" becomes "munchen" and symbols without an ASCII form vanish.
func foldASCII(value string) string {
	decomposed := norm.NFKD.String(value)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}
