package helper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LowerLike prepares a user keyword for a LOWER(col) LIKE '%kw%' match.
// Hangul input is NFC-composed so it matches stored text; LIKE wildcards are dropped.
func LowerLike(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = strings.NewReplacer("%", "", "_", "").Replace(s)
	return strings.ToLower(s)
}
