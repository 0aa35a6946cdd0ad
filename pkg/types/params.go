package types

import (
	"encoding/json"
	"maps"
	"math"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Reserved Params keys.
const (
	KeyLabel            = "label"
	KeyTo               = "to"
	KeyExcluded         = "excluded"
	KeyPreviousExcluded = "previousExcluded"

	// KeyCurrent is computed on items and never read from params.
	KeyCurrent = "current"
)

// Params is one raw breadcrumb entry as declared in route metadata, before
// labels and targets are resolved.
//
// Label and To are pointers because an explicit empty value differs from an
// absent one: an empty To is joined onto the base path, an absent To falls
// back to the route path. Excluded drops the entry; PreviousExcluded drops
// the entry's predecessors in the flattened trail. Extra holds every other
// key and is copied verbatim into the computed item.
type Params struct {
	Label            *string
	To               *string
	Excluded         bool
	PreviousExcluded bool
	Extra            map[string]any
}

// ParamsFromMap builds Params from an open record. Reserved keys are
// decoded leniently: label and to accept any scalar and are converted to
// strings, excluded and previousExcluded use truthiness. A nil value counts
// as absent.
func ParamsFromMap(m map[string]any) Params {
	var p Params
	for k, v := range m {
		switch k {
		case KeyLabel:
			if v != nil {
				s := cast.ToString(v)
				p.Label = &s
			}
		case KeyTo:
			if v != nil {
				s := cast.ToString(v)
				p.To = &s
			}
		case KeyExcluded:
			p.Excluded = Truthy(v)
		case KeyPreviousExcluded:
			p.PreviousExcluded = Truthy(v)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[k] = v
		}
	}
	return p
}

// Map returns the open-record form of p. Unset reserved keys are omitted.
func (p Params) Map() map[string]any {
	m := make(map[string]any, len(p.Extra)+4)
	maps.Copy(m, p.Extra)
	if p.Label != nil {
		m[KeyLabel] = *p.Label
	}
	if p.To != nil {
		m[KeyTo] = *p.To
	}
	if p.Excluded {
		m[KeyExcluded] = true
	}
	if p.PreviousExcluded {
		m[KeyPreviousExcluded] = true
	}
	return m
}

// Clone returns a deep copy of p: neither the pointers nor anything
// reachable from Extra is shared with the original.
func (p Params) Clone() Params {
	c := Params{Excluded: p.Excluded, PreviousExcluded: p.PreviousExcluded}
	if p.Label != nil {
		s := *p.Label
		c.Label = &s
	}
	if p.To != nil {
		s := *p.To
		c.To = &s
	}
	c.Extra = CloneExtra(p.Extra)
	return c
}

// CloneExtra deep-copies an extra-key bag. A nil bag stays nil.
func CloneExtra(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return CloneValue(m).(map[string]any)
}

// CloneValue copies nested records and lists so the copy never aliases v.
// Scalars are returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		c := make(map[string]any, len(t))
		for k, e := range t {
			c[k] = CloneValue(e)
		}
		return c
	case []any:
		c := make([]any, len(t))
		for i, e := range t {
			c[i] = CloneValue(e)
		}
		return c
	default:
		return v
	}
}

// MarshalJSON renders p as a flat object.
func (p Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

// UnmarshalJSON decodes a flat object into p.
func (p *Params) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = ParamsFromMap(m)
	return nil
}

// MarshalYAML renders p as a flat mapping.
func (p Params) MarshalYAML() (any, error) {
	return p.Map(), nil
}

// UnmarshalYAML decodes a flat mapping into p.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	*p = ParamsFromMap(m)
	return nil
}

// ParamsList is a sequence of Params that also decodes from a single
// object, so metadata may declare one entry without wrapping it in a list.
type ParamsList []Params

// UnmarshalJSON accepts an array, a single object or null.
func (l *ParamsList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = paramsListFrom(raw)
	return nil
}

// UnmarshalYAML accepts a sequence, a single mapping or null.
func (l *ParamsList) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*l = paramsListFrom(raw)
	return nil
}

func paramsListFrom(raw any) ParamsList {
	switch v := raw.(type) {
	case []any:
		out := make(ParamsList, 0, len(v))
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				out = append(out, ParamsFromMap(m))
			}
		}
		return out
	case map[string]any:
		return ParamsList{ParamsFromMap(v)}
	default:
		return nil
	}
}

// Truthy reports whether v would count as true in a loosely typed record:
// true, non-zero numbers, non-empty strings, and any non-nil composite.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		f, err := cast.ToFloat64E(t)
		return err == nil && f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}
