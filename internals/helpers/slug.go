package helper

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify reduces s to lowercase ASCII letters, digits and single hyphens,
// dropping diacritics. The result is cut to maxLen runes (100 when <= 0)
// and is never empty.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}

	var b strings.Builder
	pendingHyphen := false
	n := 0
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && n > 0 {
				if n+1 >= maxLen {
					break
				}
				b.WriteByte('-')
				n++
			}
			pendingHyphen = false
			b.WriteRune(r)
			n++
			if n >= maxLen {
				break
			}
			continue
		}
		pendingHyphen = true
	}

	if n == 0 {
		return "item"
	}
	return b.String()
}
