package teamname

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "suffix stop word", raw: "Arsenal FC", want: "arsenal"},
		{name: "prefix stop word", raw: "Real Madrid", want: "madrid"},
		{name: "accents folded", raw: "Bayern München", want: "bayern"},
		{name: "joined munchen substituted", raw: "BayernMünchen", want: "bayernmunich"},
		{name: "psg expanded", raw: "PSG", want: "parissaintgermain"},
		{name: "all stop words keep identity", raw: "Paris Saint-Germain", want: "parissaintgermain"},
		{name: "punctuation stripped", raw: "Brighton & Hove Albion", want: "brightonhovealbion"},
		{name: "stop word inside a word kept", raw: "Ascoli", want: "ascoli"},
		{name: "non latin dropped", raw: "Ζenit", want: "enit"},
		{name: "whitespace only", raw: "   ", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.raw); got != tc.want {
				t.Fatalf("Normalize(%q)=%q want=%q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Arsenal FC", "Real Madrid", "PSG", "p-sg", "Paris Saint-Germain", "re-al",
		"Bayern München", "bayern.m unchen", "FC Internazionale Milano", "Sporting CP",
		"Manchester City", "", "Club Brugge KV", "AS Roma", "ss lazio", "1. FC Köln",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Fatalf("normalize(%q) is not idempotent: %q -> %q", raw, once, twice)
		}
	}
}

func TestNormalize_OutputAlphabet(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Atlético de Madrid", "Saint-Étienne", "Borussia M'gladbach", "İstanbul Başakşehir"} {
		for _, r := range Normalize(raw) {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				t.Fatalf("unexpected rune %q in normalized %q", r, raw)
			}
		}
	}
}
