package constants

import "strings"

// PublicRoute is a method + path pattern reachable without a token.
// Method "" matches any method. A pattern ending in "/**" matches the
// prefix and everything below it.
type PublicRoute struct {
	Method  string
	Pattern string
}

var PublicRoutes = []PublicRoute{
	{"", "/error"},
	{"GET", "/health"},
	{"GET", "/metrics"},
	{"", "/users/verify-code"},
	{"", "/users/send-sms"},
	{"POST", "/users/**"},
	{"OPTIONS", "/users/**"},
	{"GET", "/users/email/check"},
	{"GET", "/users/oauth2"},
	{"PATCH", "/users/mypage/edit/password"},
	{"GET", "/voc/list"},
	{"GET", "/voc/count-by-category"},
	{"POST", "/voc/filter"},
	{"POST", "/payment/notification"},
}

// IsPublicRoute reports whether method+path is on the allow-list.
func IsPublicRoute(method, path string) bool {
	path = strings.TrimRight(path, "/")
	if path == "" {
		path = "/"
	}
	for _, r := range PublicRoutes {
		if r.Method != "" && !strings.EqualFold(r.Method, method) {
			continue
		}
		if matchPattern(r.Pattern, path) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return pattern == path
}
