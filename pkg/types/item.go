package types

import (
	"encoding/json"
	"maps"
)

// Item is one computed breadcrumb. Extra carries the pass-through keys of
// the raw entry and is rendered inline next to label, to and current.
type Item struct {
	Label   string
	To      string
	Current bool
	Extra   map[string]any
}

// MarshalJSON renders the item as a flat object. Extra keys never shadow
// label, to or current.
func (i Item) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(i.Extra)+3)
	maps.Copy(m, i.Extra)
	m["label"] = i.Label
	m["to"] = i.To
	m["current"] = i.Current
	return json.Marshal(m)
}

// UnmarshalJSON decodes a flat object into the item.
func (i *Item) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*i = Item{}
	for k, v := range m {
		switch k {
		case "label":
			i.Label, _ = v.(string)
		case "to":
			i.To, _ = v.(string)
		case "current":
			i.Current, _ = v.(bool)
		default:
			if i.Extra == nil {
				i.Extra = make(map[string]any)
			}
			i.Extra[k] = v
		}
	}
	return nil
}

// Result is the computed trail plus the merged display options. Meta holds
// every merged option except visible and is rendered inline.
type Result struct {
	Items   []Item
	Visible bool
	Meta    map[string]any
}

// MarshalJSON renders the result as {items, visible, ...meta}.
func (r Result) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Meta)+2)
	maps.Copy(m, r.Meta)
	items := r.Items
	if items == nil {
		items = []Item{}
	}
	m["items"] = items
	m["visible"] = r.Visible
	return json.Marshal(m)
}

// UnmarshalJSON decodes {items, visible, ...meta}.
func (r *Result) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*r = Result{}
	for k, raw := range m {
		switch k {
		case "items":
			if err := json.Unmarshal(raw, &r.Items); err != nil {
				return err
			}
		case "visible":
			if err := json.Unmarshal(raw, &r.Visible); err != nil {
				return err
			}
		default:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			if r.Meta == nil {
				r.Meta = make(map[string]any)
			}
			r.Meta[k] = v
		}
	}
	return nil
}
