package breadcrumbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeMeta(t *testing.T) {
	tests := []struct {
		name    string
		current map[string]any
		matched []map[string]any
		want    map[string]any
	}{
		{
			name:    "route wins on conflict",
			current: map[string]any{"visible": true},
			matched: []map[string]any{{"visible": false}},
			want:    map[string]any{"visible": true},
		},
		{
			name:    "ancestor fills the gap",
			current: map[string]any{},
			matched: []map[string]any{{"visible": false}},
			want:    map[string]any{"visible": false},
		},
		{
			name:    "nil sources are skipped",
			current: nil,
			matched: []map[string]any{nil, {"visible": false}},
			want:    map[string]any{"visible": false},
		},
		{
			name:    "outer layout beats inner layout",
			current: nil,
			matched: []map[string]any{{"separator": ">"}, {"separator": "/", "size": "sm"}},
			want:    map[string]any{"separator": ">", "size": "sm"},
		},
		{
			name:    "nil value does not claim a key",
			current: map[string]any{"visible": nil},
			matched: []map[string]any{{"visible": false}},
			want:    map[string]any{"visible": false},
		},
		{
			name:    "nested records merge recursively",
			current: map[string]any{"style": map[string]any{"color": "red"}},
			matched: []map[string]any{{"style": map[string]any{"color": "blue", "weight": "bold"}}},
			want:    map[string]any{"style": map[string]any{"color": "red", "weight": "bold"}},
		},
		{
			name:    "lists concatenate with higher priority first",
			current: map[string]any{"classes": []any{"a"}},
			matched: []map[string]any{{"classes": []any{"b", "c"}}},
			want:    map[string]any{"classes": []any{"a", "b", "c"}},
		},
		{
			name:    "scalar beats record",
			current: map[string]any{"style": "plain"},
			matched: []map[string]any{{"style": map[string]any{"color": "blue"}}},
			want:    map[string]any{"style": "plain"},
		},
		{
			name: "no sources",
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeMeta(tt.current, tt.matched...))
		})
	}
}

func TestMergeMetaDoesNotAliasSources(t *testing.T) {
	inner := map[string]any{"color": "blue"}
	list := []any{"x"}
	src := map[string]any{"style": inner, "classes": list}

	got := MergeMeta(src, map[string]any{"classes": []any{"y"}})
	got["style"].(map[string]any)["color"] = "green"

	assert.Equal(t, "blue", inner["color"])
	assert.Equal(t, []any{"x"}, list)
}
