// Package types defines the route table model, breadcrumb metadata records,
// the computed trail types and the standard errors shared by the
// breadcrumbs library, its store and its CLI.
//
// Metadata records are open: the reserved keys (label, to, excluded,
// previousExcluded) are typed fields and everything else is kept in an
// Extra map that is passed through to the computed items verbatim.
package types
