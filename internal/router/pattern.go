package router

import (
	"fmt"
	"regexp"
	"strings"
)

type segmentKind int

const (
	segStatic segmentKind = iota
	segParam
	segRest
)

// Segment scores; a pattern's score is the sum over its segments.
const (
	scoreStatic      = 4
	scoreParamRegexp = 3
	scoreParam       = 2
	scoreOptional    = 1
	scoreRest        = 0
)

// segment is one compiled path pattern segment:
//
//	users        static
//	:id          one segment
//	:id(\d+)     one segment matching the expression
//	:id?         zero or one segment
//	:rest*       zero or more segments
//	:rest+       one or more segments
//	:rest(.*)*   zero or more segments
type segment struct {
	kind      segmentKind
	text      string
	re        *regexp.Regexp
	optional  bool
	oneOrMore bool
}

type pattern struct {
	segments []segment
	score    int
}

var paramName = regexp.MustCompile(`^:([A-Za-z0-9_]+)`)

// compile parses a full route path into a pattern.
func compile(path string) (pattern, error) {
	var p pattern
	for _, raw := range splitPath(path) {
		seg, err := compileSegment(raw)
		if err != nil {
			return pattern{}, fmt.Errorf("route %q: %w", path, err)
		}
		p.segments = append(p.segments, seg)
		p.score += seg.score()
	}
	return p, nil
}

func compileSegment(raw string) (segment, error) {
	m := paramName.FindStringSubmatch(raw)
	if m == nil {
		return segment{kind: segStatic, text: raw}, nil
	}
	seg := segment{kind: segParam}
	rest := raw[len(m[0]):]

	expr := ""
	if strings.HasPrefix(rest, "(") {
		end := strings.LastIndexByte(rest, ')')
		if end < 0 {
			return segment{}, fmt.Errorf("unterminated expression in %q", raw)
		}
		expr = rest[1:end]
		rest = rest[end+1:]
	}

	switch rest {
	case "":
	case "?":
		seg.optional = true
	case "*":
		seg.kind = segRest
	case "+":
		seg.kind = segRest
		seg.oneOrMore = true
	default:
		return segment{}, fmt.Errorf("unsupported modifier %q in %q", rest, raw)
	}

	if expr == ".*" {
		if seg.kind == segParam && !seg.optional {
			seg.oneOrMore = true
		}
		seg.kind = segRest
		return seg, nil
	}
	if expr != "" {
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return segment{}, err
		}
		seg.re = re
	}
	return seg, nil
}

func (s segment) score() int {
	switch {
	case s.kind == segStatic:
		return scoreStatic
	case s.kind == segRest:
		return scoreRest
	case s.optional:
		return scoreOptional
	case s.re != nil:
		return scoreParamRegexp
	default:
		return scoreParam
	}
}

func (s segment) accepts(value string) bool {
	return s.re == nil || s.re.MatchString(value)
}

func (p pattern) match(segments []string) bool {
	return matchFrom(p.segments, segments)
}

func matchFrom(ps []segment, ss []string) bool {
	if len(ps) == 0 {
		return len(ss) == 0
	}
	s := ps[0]
	switch s.kind {
	case segStatic:
		return len(ss) > 0 && ss[0] == s.text && matchFrom(ps[1:], ss[1:])
	case segParam:
		if len(ss) > 0 && s.accepts(ss[0]) && matchFrom(ps[1:], ss[1:]) {
			return true
		}
		return s.optional && matchFrom(ps[1:], ss)
	default:
		minimum := 0
		if s.oneOrMore {
			minimum = 1
		}
		for n := len(ss); n >= minimum; n-- {
			if allAccepted(s, ss[:n]) && matchFrom(ps[1:], ss[n:]) {
				return true
			}
		}
		return false
	}
}

func allAccepted(s segment, values []string) bool {
	for _, v := range values {
		if !s.accepts(v) {
			return false
		}
	}
	return true
}
