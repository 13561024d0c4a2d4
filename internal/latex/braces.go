// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

// MatchBrace scans text from start, the index just past an opening '{', and
// returns the index just past the matching '}'. Nested pairs are counted.
// When text ends before the depth returns to zero it returns len(text) and
// false; callers then treat text[start:] as the argument.
func MatchBrace(text string, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	depth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return len(text), false
}

// braceGroup reads the {...} group at pos, skipping leading blanks. It
// returns the group's contents and the index just past it. When no group
// starts at pos, ok is false and end equals pos after the blanks.
func braceGroup(text string, pos int) (inner string, end int, ok bool) {
	for pos < len(text) && isBlank(text[pos]) {
		pos++
	}
	if pos >= len(text) || text[pos] != '{' {
		return "", pos, false
	}
	end, ok = MatchBrace(text, pos+1)
	if !ok {
		return text[pos+1:], end, false
	}
	return text[pos+1 : end-1], end, true
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
