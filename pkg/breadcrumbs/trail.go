package breadcrumbs

import "github.com/mesh-intelligence/breadcrumbs/pkg/types"

// homeLabel labels a target with no final path segment.
const homeLabel = "Home"

// BuildTrail turns flattened entries into the final items. The steps run in
// this order:
//
//  1. entries marked excluded are dropped;
//  2. each remaining entry gets its target and label resolved;
//  3. everything before the last entry marked previousExcluded is dropped;
//  4. the last item is marked current.
//
// The reserved excluded and previousExcluded keys never reach the items,
// and extra keys named label, to or current never shadow the computed
// fields; all other extra keys are deep-copied through. The result is empty, with no
// current item, when nothing survives.
func BuildTrail(entries []FlatEntry, cfg types.Config) []types.Item {
	items := make([]types.Item, 0, len(entries))
	cut := 0
	for _, e := range entries {
		if e.Params.Excluded {
			continue
		}
		if e.Params.PreviousExcluded {
			cut = len(items)
		}
		to := resolveTo(e, cfg)
		items = append(items, types.Item{
			Label: resolveLabel(e, to),
			To:    to,
			Extra: itemExtra(e.Params.Extra),
		})
	}
	items = items[cut:]
	if n := len(items); n > 0 {
		items[n-1].Current = true
	}
	return items
}

// itemExtra deep-copies the pass-through keys of an entry. label, to and
// current are computed, so extra keys of those names are dropped.
func itemExtra(extra map[string]any) map[string]any {
	out := types.CloneExtra(extra)
	for _, k := range []string{types.KeyLabel, types.KeyTo, types.KeyCurrent} {
		delete(out, k)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// resolveTo picks the explicit target or the node path, joins relative
// targets onto the base path and applies the trailing slash policy. The
// policy applies to external URLs too.
func resolveTo(e FlatEntry, cfg types.Config) string {
	to := e.Path
	if e.Params.To != nil {
		to = *e.Params.To
	}
	if !isAbsoluteTarget(to) {
		to = joinURL(e.BasePath, to)
	}
	if cfg.TrailingSlash != nil {
		if *cfg.TrailingSlash {
			to = withTrailingSlash(to)
		} else {
			to = withoutTrailingSlash(to)
		}
	}
	return to
}

// resolveLabel picks the explicit label, then the route title, then the
// title-cased last segment of to. An explicit empty label skips the title.
func resolveLabel(e FlatEntry, to string) string {
	label := e.Meta.Title
	if e.Params.Label != nil {
		label = *e.Params.Label
	}
	if label != "" {
		return label
	}
	if name := parseFilename(withoutTrailingSlash(to)); name != "" {
		return titleCase(name)
	}
	return homeLabel
}
