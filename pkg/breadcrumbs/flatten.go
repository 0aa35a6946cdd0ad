package breadcrumbs

import "github.com/mesh-intelligence/breadcrumbs/pkg/types"

// FlatEntry is a candidate breadcrumb: a NavNode plus one raw entry drawn
// from its before, self or after metadata.
type FlatEntry struct {
	NavNode
	Params types.Params
}

// Flatten expands every node into its before entries, exactly one self
// entry and its after entries, keeping node order. A node without
// BreadcrumbsItem still yields a self entry with empty params. Params are
// cloned so later stages never alias route metadata.
func Flatten(nodes []NavNode) []FlatEntry {
	var entries []FlatEntry
	for _, node := range nodes {
		for _, p := range node.Meta.BreadcrumbsBefore {
			entries = append(entries, FlatEntry{NavNode: node, Params: p.Clone()})
		}
		var self types.Params
		if node.Meta.BreadcrumbsItem != nil {
			self = node.Meta.BreadcrumbsItem.Clone()
		}
		entries = append(entries, FlatEntry{NavNode: node, Params: self})
		for _, p := range node.Meta.BreadcrumbsAfter {
			entries = append(entries, FlatEntry{NavNode: node, Params: p.Clone()})
		}
	}
	return entries
}
