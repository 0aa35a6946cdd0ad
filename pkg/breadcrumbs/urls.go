package breadcrumbs

import (
	"net/url"
	"regexp"
	"strings"
)

// absoluteTarget matches scheme URLs, protocol-relative URLs and
// root-relative paths; everything else is joined onto a base path.
var absoluteTarget = regexp.MustCompile(`^(?:\w+:)?//|^/`)

func isAbsoluteTarget(to string) bool {
	return absoluteTarget.MatchString(to)
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// withoutTrailingSlash drops one trailing slash; the root stays "/".
func withoutTrailingSlash(s string) string {
	s = strings.TrimSuffix(s, "/")
	if s == "" {
		return "/"
	}
	return s
}

// joinURL appends segments to base with exactly one slash between them.
// Empty and "/" segments are skipped, a leading "/" or "./" of a segment is
// dropped. No dot-segment resolution is done.
func joinURL(base string, segments ...string) string {
	out := base
	for _, seg := range segments {
		if seg == "" || seg == "/" {
			continue
		}
		if out == "" {
			out = seg
			continue
		}
		if strings.HasPrefix(seg, "./") {
			seg = seg[2:]
		} else {
			seg = strings.TrimPrefix(seg, "/")
		}
		out = withTrailingSlash(out) + seg
	}
	return out
}

// parseFilename returns the last segment of the pathname of input, ignoring
// query, fragment, scheme and host. It does not require an extension.
// Percent-encoding is kept as written.
func parseFilename(input string) string {
	pathname := input
	if u, err := url.Parse(input); err == nil {
		pathname = u.EscapedPath()
		if pathname == "" {
			pathname = u.Opaque
		}
	} else if i := strings.IndexAny(pathname, "?#"); i >= 0 {
		pathname = pathname[:i]
	}
	return pathname[strings.LastIndexByte(pathname, '/')+1:]
}
