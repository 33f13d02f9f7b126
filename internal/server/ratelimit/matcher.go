package ratelimit

import "strings"

// Match returns the route governing a request. An exact path wins over a prefix route,
// and the longest prefix wins among prefix routes.
func Match(routes []Route, method, path string) (Route, bool) {
	var best Route
	bestLen := -1
	for _, route := range routes {
		m, p, ok := strings.Cut(route.Pattern, " ")
		if !ok || m != method {
			continue
		}
		if p == path {
			return route, true
		}
		if strings.HasSuffix(p, "/") && strings.HasPrefix(path, p) && len(p) > bestLen {
			best, bestLen = route, len(p)
		}
	}
	return best, bestLen >= 0
}
