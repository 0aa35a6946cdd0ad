package breadcrumbs

import (
	"strings"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// NavNode is one ancestor of the current path paired with the route that
// serves it.
type NavNode struct {
	// Path is the ancestor path the node stands for.
	Path string
	// BasePath is the route path without its dynamic suffix; relative
	// targets are joined onto it.
	BasePath string
	// Meta is the route's metadata, or the live metadata for the current
	// route.
	Meta types.RouteMeta
}

// NavChain resolves each path of chain to a NavNode. The path of the current
// route uses the live route metadata, which may carry data the static table
// lacks; other paths use the leaf route at that path in index. Paths with no
// route are skipped.
func NavChain(chain []string, index RouteIndex, current types.CurrentRoute) []NavNode {
	currentPath := withoutTrailingSlash(current.Path)
	nodes := make([]NavNode, 0, len(chain))
	for _, path := range chain {
		if path == currentPath {
			nodes = append(nodes, NavNode{
				Path:     current.Path,
				BasePath: currentBasePath(current),
				Meta:     current.Meta,
			})
			continue
		}
		if r, ok := index[path]; ok {
			nodes = append(nodes, NavNode{
				Path:     r.Path,
				BasePath: path,
				Meta:     r.Meta,
			})
		}
	}
	return nodes
}

// currentBasePath strips everything from the first ':' of the deepest
// matched route path.
func currentBasePath(current types.CurrentRoute) string {
	path := current.Path
	if n := len(current.Matched); n > 0 {
		path = current.Matched[n-1].Path
	}
	if i := strings.IndexByte(path, ':'); i >= 0 {
		path = path[:i]
	}
	return withoutTrailingSlash(path)
}
