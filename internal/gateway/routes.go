package gateway

import (
	"strings"

	"github.com/raidhealth/patient-platform/config"
)

// Route forwards requests whose path matches Prefix to Target, removing
// StripPrefix from the path first. Protected routes require a valid bearer
// token before anything is forwarded.
type Route struct {
	Name        string
	Prefix      string
	Target      string
	StripPrefix string
	Protected   bool
}

// RoutesFromConfig builds the gateway route table. The public surface at
// /api/patients maps to the patient service's /patients; token issuance
// endpoints pass through to the auth service unprotected.
func RoutesFromConfig(cfg *config.Config) []Route {
	return []Route{
		{
			Name:        "patients",
			Prefix:      cfg.APIPrefix + "/patients",
			Target:      cfg.PatientServiceURL,
			StripPrefix: cfg.APIPrefix,
			Protected:   true,
		},
		{
			Name:      "auth",
			Prefix:    "/auth",
			Target:    cfg.AuthServiceURL,
			Protected: false,
		},
	}
}

// Match returns the route with the longest matching prefix. When two routes
// share a prefix length the earlier configured one wins.
func Match(routes []Route, path string) (Route, bool) {
	best := -1
	for i, r := range routes {
		if !matchPrefix(path, r.Prefix) {
			continue
		}
		if best == -1 || len(r.Prefix) > len(routes[best].Prefix) {
			best = i
		}
	}
	if best == -1 {
		return Route{}, false
	}
	return routes[best], true
}

// matchPrefix is a segment-aware prefix match: /api/patients matches
// /api/patients and /api/patients/123 but not /api/patientsx.
func matchPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/' || strings.HasSuffix(prefix, "/")
}

func stripPath(path, strip string) string {
	if strip == "" || !strings.HasPrefix(path, strip) {
		return path
	}
	out := strings.TrimPrefix(path, strip)
	if out == "" || out[0] != '/' {
		out = "/" + out
	}
	return out
}
