// Package page decides which content a page shows and drives the fetch,
// build and render steps for it.
package page

import (
	"net/url"
	"path"
	"strings"

	"github.com/offgrid/almanac/core"
)

// Router maps page identities to content kinds. The zero Router maps nothing.
type Router struct {
	routes map[string]core.Kind
}

// DefaultRoutes is the stock mapping of page names to content.
func DefaultRoutes() map[string]core.Kind {
	return map[string]core.Kind{
		"":               core.KindReflections,
		"index.html":     core.KindReflections,
		"news.html":      core.KindReflections,
		"motivacao.html": core.KindMotivation,
	}
}

// NewRouter returns a Router over a copy of routes. Keys are page identities
// as returned by Identity.
func NewRouter(routes map[string]core.Kind) Router {
	r := Router{routes: make(map[string]core.Kind, len(routes))}
	for k, v := range routes {
		r.routes[Identity(k)] = v
	}
	return r
}

// Resolve returns the kind routed for location, or core.KindNone.
func (r Router) Resolve(location string) core.Kind {
	return r.routes[Identity(location)]
}

// Routes returns the mapping keyed by page identity.
func (r Router) Routes() map[string]core.Kind {
	out := make(map[string]core.Kind, len(r.routes))
	for k, v := range r.routes {
		out[k] = v
	}
	return out
}

// Identity reduces a location (URL, path or file name) to its last path
// segment without query or fragment. The site root has identity "".
func Identity(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil {
		p = u.Path
	} else if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" || strings.HasSuffix(p, "/") {
		return ""
	}
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
