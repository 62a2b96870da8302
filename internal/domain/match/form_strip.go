package match

// DefaultFormLength is how many recent matches the form strip shows.
const DefaultFormLength = 5

var glyphs = map[Outcome]string{
	OutcomeWin:  "🟩",
	OutcomeDraw: "🟨",
	OutcomeLoss: "🟥",
}

const neutralGlyph = "⬜"

func Glyph(o Outcome) string {
	if g, ok := glyphs[o]; ok {
		return g
	}
	return neutralGlyph
}

// FormSymbols renders the first n outcomes, most recent first.
func FormSymbols(outcomes []Outcome, n int) []string {
	if n <= 0 {
		n = DefaultFormLength
	}
	if n > len(outcomes) {
		n = len(outcomes)
	}

	out := make([]string, 0, n)
	for _, o := range outcomes[:n] {
		out = append(out, Glyph(o))
	}
	return out
}
