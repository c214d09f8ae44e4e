package typing

// substitutions maps an expected target character to the keystroke sequences
// that produce it on a plain keyboard. Adding a symbol is a data change; the
// matching algorithm in Input is generic over this table.
var substitutions = map[rune][]string{
	'…': {"..."},
	'—': {"---"},
	'–': {"--"},

	'á': {"'a"},
	'é': {"'e"},
	'í': {"'i"},
	'ó': {"'o"},
	'ú': {"'u"},
	'à': {"`a"},
	'è': {"`e"},
	'ì': {"`i"},
	'ò': {"`o"},
	'ù': {"`u"},
	'â': {"^a"},
	'ê': {"^e"},
	'î': {"^i"},
	'ô': {"^o"},
	'û': {"^u"},
	'ç': {",c"},

	'≤': {"<="},
	'≥': {">="},
	'≠': {"!="},
	'→': {"->"},
	'←': {"<-"},
}

// quoteFold lets plain ASCII quotes stand in for the typographic quotes the
// corpus uses.
var quoteFold = map[rune][]rune{
	'\'': {'‘', '’'},
	'"':  {'“', '”'},
}

// matchesExact reports whether a single typed character satisfies the
// expected target character, after quote folding.
func matchesExact(typed, expected rune) bool {
	if typed == expected {
		return true
	}
	for _, r := range quoteFold[typed] {
		if r == expected {
			return true
		}
	}
	return false
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

// isPartialSequence reports whether s is a non-empty proper prefix of seq.
func isPartialSequence(s, seq []rune) bool {
	if len(s) == 0 || len(s) >= len(seq) {
		return false
	}
	for i, r := range s {
		if seq[i] != r {
			return false
		}
	}
	return true
}
