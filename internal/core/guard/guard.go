// Package guard decides, per navigation, whether a path renders, redirects
// to the login view, or redirects to the default authenticated view.
//
// Roles are not consulted: any authenticated identity reaches every
// protected path. Pages decide which actions a role sees.
package guard

import (
	"fmt"
	"strings"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

// Outcome is the kind of navigation decision.
type Outcome string

const (
	Render   Outcome = "render"
	Redirect Outcome = "redirect"
	NotFound Outcome = "not_found"
)

// Decision is the guard's answer for one navigation.
type Decision struct {
	Outcome Outcome
	// View is set for Render and NotFound.
	View domain.ViewID
	// Location is set for Redirect.
	Location string
	// Path is the normalised requested path.
	Path string
}

// Guard resolves navigation requests against a routing table.
type Guard struct {
	routes      []Route
	byPath      map[string]Route
	loginPath   string
	defaultPath string
}

// New validates routes and builds a Guard. The table must contain exactly one
// entry per path, an anonymous-only login route and a protected default
// route.
func New(routes []Route) (*Guard, error) {
	g := &Guard{
		routes:      make([]Route, 0, len(routes)),
		byPath:      make(map[string]Route, len(routes)),
		loginPath:   LoginPath,
		defaultPath: DefaultPath,
	}
	for _, r := range routes {
		key := normalize(r.Path)
		if _, dup := g.byPath[key]; dup {
			return nil, fmt.Errorf("guard: duplicate route %q", r.Path)
		}
		if r.Access != Entry && r.View == "" {
			return nil, fmt.Errorf("guard: route %q has no view", r.Path)
		}
		r.Path = key
		g.byPath[key] = r
		g.routes = append(g.routes, r)
	}

	if r, ok := g.byPath[g.loginPath]; !ok || r.Access != AnonymousOnly {
		return nil, fmt.Errorf("guard: login route %q missing or not anonymous-only", g.loginPath)
	}
	if r, ok := g.byPath[g.defaultPath]; !ok || r.Access != Protected {
		return nil, fmt.Errorf("guard: default route %q missing or not protected", g.defaultPath)
	}
	return g, nil
}

// MustNew is New for static tables; it panics on an invalid table.
func MustNew(routes []Route) *Guard {
	g, err := New(routes)
	if err != nil {
		panic(err)
	}
	return g
}

// Resolve decides what a navigation to path yields for the given session
// state.
func (g *Guard) Resolve(path string, authenticated bool) Decision {
	key := normalize(path)
	r, ok := g.byPath[key]
	if !ok {
		return Decision{Outcome: NotFound, View: domain.ViewNotFound, Path: key}
	}

	switch r.Access {
	case Entry:
		if authenticated {
			return Decision{Outcome: Redirect, Location: g.defaultPath, Path: key}
		}
		return Decision{Outcome: Redirect, Location: g.loginPath, Path: key}
	case AnonymousOnly:
		if authenticated {
			return Decision{Outcome: Redirect, Location: g.defaultPath, Path: key}
		}
		return Decision{Outcome: Render, View: r.View, Path: key}
	default:
		if !authenticated {
			return Decision{Outcome: Redirect, Location: g.loginPath, Path: key}
		}
		return Decision{Outcome: Render, View: r.View, Path: key}
	}
}

// Routes returns the routing table in declaration order.
func (g *Guard) Routes() []Route {
	out := make([]Route, len(g.routes))
	copy(out, g.routes)
	return out
}

// Aliases lists every path that renders view.
func (g *Guard) Aliases(view domain.ViewID) []string {
	var paths []string
	for _, r := range g.routes {
		if r.View == view {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

func normalize(path string) string {
	p := strings.ToLower(strings.TrimSpace(path))
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}
