package types

import "time"

// Display option keys of RouteMeta.Breadcrumbs.
const (
	OptionVisible = "visible"
)

// RouteMeta is the per-route metadata that shapes the trail.
//
// BreadcrumbsBefore and BreadcrumbsAfter inject entries around the route's
// own entry; BreadcrumbsItem overrides the route's own entry and defaults to
// an empty record (include the route with a derived label and target).
// Breadcrumbs carries display options such as visible, merged across the
// matched route stack.
type RouteMeta struct {
	Title             string         `json:"title,omitempty" yaml:"title,omitempty"`
	BreadcrumbsBefore ParamsList     `json:"breadcrumbsBefore,omitempty" yaml:"breadcrumbsBefore,omitempty"`
	BreadcrumbsItem   *Params        `json:"breadcrumbsItem,omitempty" yaml:"breadcrumbsItem,omitempty"`
	BreadcrumbsAfter  ParamsList     `json:"breadcrumbsAfter,omitempty" yaml:"breadcrumbsAfter,omitempty"`
	Breadcrumbs       map[string]any `json:"breadcrumbs,omitempty" yaml:"breadcrumbs,omitempty"`
}

// Route is a registered route record. Path may hold dynamic segments such
// as ":id" and, for children, may be relative to the parent path.
type Route struct {
	Path     string    `json:"path" yaml:"path"`
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Meta     RouteMeta `json:"meta" yaml:"meta,omitempty"`
	Children []Route   `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsLeaf reports whether the route has no children.
func (r Route) IsLeaf() bool {
	return len(r.Children) == 0
}

// CurrentRoute describes the active page: its concrete path, its live
// metadata and the matched route stack from the outermost layout down to
// the active leaf.
type CurrentRoute struct {
	Path    string    `json:"path"`
	Meta    RouteMeta `json:"meta"`
	Matched []Route   `json:"matched,omitempty"`
}

// RouteTable is one revision of a named route tree. Version changes on
// every load or store write and identifies the revision for caching.
type RouteTable struct {
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version string  `json:"version,omitempty" yaml:"version,omitempty"`
	Routes  []Route `json:"routes" yaml:"routes"`
}

// TableInfo summarizes a stored route table.
type TableInfo struct {
	Name       string    `json:"name"`
	Version    string    `json:"version"`
	RouteCount int       `json:"route_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}
