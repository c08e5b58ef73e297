package govterm

import "github.com/unilibs/uniwidth"

// isWideRune returns true if the rune occupies 2 columns (CJK ideographs, fullwidth forms, emoji).
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width a string would occupy once
// printed, the sum of each rune's column width.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
