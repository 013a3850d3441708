package helper

import "strings"

// NormalizePhone keeps digits and a leading '+', so "(010) 1234-5678" and
// "01012345678" compare equal.
func NormalizePhone(p string) string {
	p = strings.TrimSpace(p)
	var b strings.Builder
	for i, r := range p {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
