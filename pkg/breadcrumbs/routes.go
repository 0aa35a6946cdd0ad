package breadcrumbs

import (
	"strings"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// JoinRoutePath returns the full path of a child route declared under
// parent. Absolute child paths are kept; an empty child path resolves to
// the parent path.
func JoinRoutePath(parent, child string) string {
	if strings.HasPrefix(child, "/") || parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	if strings.HasSuffix(parent, "/") {
		return parent + child
	}
	return parent + "/" + child
}

// FlattenRoutes lists every route of the tree depth-first, parents before
// children, with Path replaced by the full path. Children are left on each
// returned route so leaf detection still works.
func FlattenRoutes(routes []types.Route) []types.Route {
	var out []types.Route
	var walk func(parent string, rs []types.Route)
	walk = func(parent string, rs []types.Route) {
		for _, r := range rs {
			full := JoinRoutePath(parent, r.Path)
			flat := r
			flat.Path = full
			out = append(out, flat)
			walk(full, r.Children)
		}
	}
	walk("", routes)
	return out
}

// RouteIndex maps a normalized static path to its leaf route.
type RouteIndex map[string]types.Route

// IndexRoutes builds the lookup for a flat route list such as the one
// FlattenRoutes returns. Only leaf routes are indexed: layout routes with
// children cannot stand alone as trail targets. Later duplicates win.
func IndexRoutes(routes []types.Route) RouteIndex {
	index := make(RouteIndex, len(routes))
	for _, r := range routes {
		if !r.IsLeaf() {
			continue
		}
		index[withoutTrailingSlash(r.Path)] = r
	}
	return index
}

// Lookup returns the leaf route registered at path. Trailing slashes are
// ignored.
func (idx RouteIndex) Lookup(path string) (types.Route, bool) {
	r, ok := idx[withoutTrailingSlash(path)]
	return r, ok
}
