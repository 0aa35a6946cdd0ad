package breadcrumbs

import "strings"

// PathChain returns the root followed by every non-empty prefix of path,
// most specific last: "/a/b/c" gives ["/", "/a", "/a/b", "/a/b/c"] and "/"
// gives ["/"]. Empty segments are ignored. The route table is not consulted.
func PathChain(path string) []string {
	chain := []string{"/"}
	var b strings.Builder
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(seg)
		chain = append(chain, b.String())
	}
	return chain
}
