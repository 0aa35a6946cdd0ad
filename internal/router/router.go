// Package router matches a concrete URL path against a route tree and
// builds the current route descriptor the breadcrumbs pipeline reads. It
// never navigates; it only reports which registered routes serve a path.
package router

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// Match finds the route that serves path and returns the current route:
// the path without query or fragment, the matched stack from the outermost
// route to the leaf with full paths, and the live metadata.
//
// When several routes match, the one with the highest pattern score wins
// (static segments beat parameters, parameters beat catch-alls), then the
// deeper route, then the one declared first.
func Match(path string, routes []types.Route) (types.CurrentRoute, error) {
	if path == "" {
		return types.CurrentRoute{}, types.ErrEmptyPath
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		return types.CurrentRoute{}, fmt.Errorf("%w: %q", types.ErrInvalidPath, path)
	}

	segments := splitPath(path)
	var best *candidate
	var stack []types.Route
	var walk func(parent string, rs []types.Route)
	walk = func(parent string, rs []types.Route) {
		for _, r := range rs {
			full := breadcrumbs.JoinRoutePath(parent, r.Path)
			rec := r
			rec.Path = full
			stack = append(stack, rec)

			pattern, err := compile(full)
			if err == nil && pattern.match(segments) {
				c := &candidate{score: pattern.score, depth: len(stack), stack: append([]types.Route(nil), stack...)}
				if best == nil || c.beats(best) {
					best = c
				}
			}
			walk(full, r.Children)
			stack = stack[:len(stack)-1]
		}
	}
	walk("", routes)

	if best == nil {
		return types.CurrentRoute{}, fmt.Errorf("%w: %s", types.ErrNoMatch, path)
	}
	return types.CurrentRoute{
		Path:    path,
		Meta:    liveMeta(best.stack),
		Matched: best.stack,
	}, nil
}

type candidate struct {
	score int
	depth int
	stack []types.Route
}

// beats reports whether c ranks above other. Candidates are visited in
// declaration order, so ties keep the earlier one.
func (c *candidate) beats(other *candidate) bool {
	if c.score != other.score {
		return c.score > other.score
	}
	return c.depth > other.depth
}

// liveMeta merges the metadata of the matched stack; inner routes override
// the fields they set.
func liveMeta(stack []types.Route) types.RouteMeta {
	var m types.RouteMeta
	for _, r := range stack {
		rm := r.Meta
		if rm.Title != "" {
			m.Title = rm.Title
		}
		if rm.BreadcrumbsBefore != nil {
			m.BreadcrumbsBefore = rm.BreadcrumbsBefore
		}
		if rm.BreadcrumbsItem != nil {
			m.BreadcrumbsItem = rm.BreadcrumbsItem
		}
		if rm.BreadcrumbsAfter != nil {
			m.BreadcrumbsAfter = rm.BreadcrumbsAfter
		}
		if rm.Breadcrumbs != nil {
			m.Breadcrumbs = rm.Breadcrumbs
		}
	}
	return m
}

func splitPath(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
