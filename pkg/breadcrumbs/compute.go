package breadcrumbs

import "github.com/mesh-intelligence/breadcrumbs/pkg/types"

// Compute derives the breadcrumb result for current from the route tree.
// routes is the tree as registered; child paths may be relative. The
// result is a fresh value: nothing reachable from the inputs is modified
// or aliased.
func Compute(current types.CurrentRoute, routes []types.Route, cfg types.Config) types.Result {
	index := IndexRoutes(FlattenRoutes(routes))
	nodes := NavChain(PathChain(current.Path), index, current)
	items := BuildTrail(Flatten(nodes), cfg)

	layers := make([]map[string]any, 0, len(current.Matched))
	for _, r := range current.Matched {
		layers = append(layers, r.Meta.Breadcrumbs)
	}
	return newResult(items, MergeMeta(current.Meta.Breadcrumbs, layers...))
}

// newResult splits the merged options into Visible and the pass-through
// Meta. visible defaults to true.
func newResult(items []types.Item, meta map[string]any) types.Result {
	visible := true
	if v, ok := meta[types.OptionVisible]; ok {
		visible = types.Truthy(v)
		delete(meta, types.OptionVisible)
	}
	delete(meta, "items")
	if len(meta) == 0 {
		meta = nil
	}
	return types.Result{Items: items, Visible: visible, Meta: meta}
}
