// Package breadcrumbs derives the breadcrumb trail of the active page from
// its path, the registered route tree and per-route metadata.
//
// The derivation is a pull-based pipeline of pure stages:
//
//	PathChain   /a/b          -> [/ /a /a/b]
//	NavChain    path chain    -> routes found for each ancestor
//	Flatten     nav nodes     -> before, self and after entries
//	BuildTrail  flat entries  -> filtered, resolved, truncated, current-marked items
//	MergeMeta   matched stack -> display options (visible, ...)
//
// Compute runs the whole pipeline. Memo caches Compute results keyed by the
// current path, the route table version and the config; a cached result is
// identical to a fresh one.
//
// No stage returns an error: absent metadata defaults to empty values and
// malformed overrides produce a best-effort joined path.
package breadcrumbs

// Version is the library and CLI version.
const Version = "v0.1.0"
