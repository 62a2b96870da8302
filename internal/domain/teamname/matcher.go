package teamname

// Matcher decides whether two display names refer to the same club.
type Matcher struct {
	aliases *AliasTable
}

// NewMatcher returns a matcher backed by aliases. A nil table falls back to
// the built-in aliases.
func NewMatcher(aliases *AliasTable) *Matcher {
	if aliases == nil {
		aliases = DefaultAliasTable()
	}
	return &Matcher{aliases: aliases}
}

// Equal is symmetric. Names whose tokens are empty never match anything.
func (m *Matcher) Equal(a, b string) bool {
	left := Normalize(a)
	right := Normalize(b)
	if left == "" || right == "" {
		return false
	}
	if left == right {
		return true
	}
	return m.aliases.SameClass(left, right)
}
