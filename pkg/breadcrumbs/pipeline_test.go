package breadcrumbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

func TestPathChain(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"/"}},
		{"", []string{"/"}},
		{"/a", []string{"/", "/a"}},
		{"/a/b/c", []string{"/", "/a", "/a/b", "/a/b/c"}},
		{"/a/b/", []string{"/", "/a", "/a/b"}},
		{"//a//b", []string{"/", "/a", "/a/b"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PathChain(tt.path))
		})
	}
}

func TestJoinRoutePath(t *testing.T) {
	assert.Equal(t, "/users/:id", JoinRoutePath("/users", ":id"))
	assert.Equal(t, "/users/:id", JoinRoutePath("/users/", ":id"))
	assert.Equal(t, "/about", JoinRoutePath("/users", "/about"))
	assert.Equal(t, "/users", JoinRoutePath("/users", ""))
	assert.Equal(t, "/", JoinRoutePath("", "/"))
	assert.Equal(t, "/settings", JoinRoutePath("/", "settings"))
}

func TestFlattenRoutesAndIndex(t *testing.T) {
	tree := []types.Route{
		{Path: "/", Meta: types.RouteMeta{Title: "Start"}},
		{
			Path: "/users",
			Children: []types.Route{
				{Path: "", Meta: types.RouteMeta{Title: "All users"}},
				{Path: ":id", Meta: types.RouteMeta{Title: "User"}},
			},
		},
		{Path: "/docs/", Meta: types.RouteMeta{Title: "Docs"}},
	}

	flat := FlattenRoutes(tree)
	paths := make([]string, 0, len(flat))
	for _, r := range flat {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/", "/users", "/users", "/users/:id", "/docs/"}, paths)

	index := IndexRoutes(flat)
	assert.Len(t, index, 4)

	r, ok := index.Lookup("/users")
	require.True(t, ok, "leaf child with empty path indexes under the parent path")
	assert.Equal(t, "All users", r.Meta.Title)

	r, ok = index.Lookup("/docs")
	require.True(t, ok)
	assert.Equal(t, "Docs", r.Meta.Title)

	_, ok = index.Lookup("/docs/")
	assert.True(t, ok, "lookups ignore trailing slashes")

	_, ok = index.Lookup("/users/:id")
	assert.True(t, ok)
}

func TestIndexRoutesSkipsLayouts(t *testing.T) {
	flat := []types.Route{
		{Path: "/admin", Children: []types.Route{{Path: "users"}}},
		{Path: "/admin/users"},
	}
	index := IndexRoutes(flat)
	_, ok := index.Lookup("/admin")
	assert.False(t, ok)
	_, ok = index.Lookup("/admin/users")
	assert.True(t, ok)
}

func TestNavChain(t *testing.T) {
	index := RouteIndex{
		"/":        {Path: "/", Meta: types.RouteMeta{Title: "Start"}},
		"/a":       {Path: "/a", Meta: types.RouteMeta{Title: "Section A"}},
		"/a/b/:id": {Path: "/a/b/:id", Meta: types.RouteMeta{Title: "Static"}},
	}

	t.Run("current route uses live meta and stripped base path", func(t *testing.T) {
		current := types.CurrentRoute{
			Path:    "/a/b/42",
			Meta:    types.RouteMeta{Title: "Item 42"},
			Matched: []types.Route{{Path: "/a"}, {Path: "/a/b/:id"}},
		}
		nodes := NavChain(PathChain(current.Path), index, current)
		require.Len(t, nodes, 3, "/a/b has no route and is skipped")

		assert.Equal(t, NavNode{Path: "/", BasePath: "/", Meta: types.RouteMeta{Title: "Start"}}, nodes[0])
		assert.Equal(t, NavNode{Path: "/a", BasePath: "/a", Meta: types.RouteMeta{Title: "Section A"}}, nodes[1])
		assert.Equal(t, "/a/b/42", nodes[2].Path)
		assert.Equal(t, "/a/b", nodes[2].BasePath)
		assert.Equal(t, "Item 42", nodes[2].Meta.Title)
	})

	t.Run("current path with trailing slash", func(t *testing.T) {
		current := types.CurrentRoute{Path: "/a/", Matched: []types.Route{{Path: "/a"}}}
		nodes := NavChain(PathChain(current.Path), index, current)
		require.Len(t, nodes, 2)
		assert.Equal(t, "/a/", nodes[1].Path)
		assert.Equal(t, "/a", nodes[1].BasePath)
		assert.Empty(t, nodes[1].Meta.Title, "live meta wins over the index entry")
	})

	t.Run("no matched stack falls back to the current path", func(t *testing.T) {
		current := types.CurrentRoute{Path: "/x/y"}
		nodes := NavChain(PathChain(current.Path), index, current)
		require.Len(t, nodes, 2)
		assert.Equal(t, "/x/y", nodes[1].BasePath)
	})

	t.Run("dynamic root route", func(t *testing.T) {
		current := types.CurrentRoute{Path: "/hello", Matched: []types.Route{{Path: "/:slug"}}}
		nodes := NavChain(PathChain(current.Path), RouteIndex{}, current)
		require.Len(t, nodes, 1)
		assert.Equal(t, "/", nodes[0].BasePath)
	})
}

func TestFlatten(t *testing.T) {
	nodes := []NavNode{
		{Path: "/", BasePath: "/"},
		{
			Path:     "/a",
			BasePath: "/a",
			Meta: types.RouteMeta{
				BreadcrumbsBefore: types.ParamsList{{Label: strPtr("Before 1")}, {Label: strPtr("Before 2")}},
				BreadcrumbsItem:   &types.Params{Label: strPtr("Self")},
				BreadcrumbsAfter:  types.ParamsList{{Label: strPtr("After")}},
			},
		},
	}

	entries := Flatten(nodes)
	require.Len(t, entries, 5)

	assert.Nil(t, entries[0].Params.Label, "node without item meta yields one empty entry")
	assert.Equal(t, "/", entries[0].Path)

	labels := []string{}
	for _, e := range entries[1:] {
		labels = append(labels, *e.Params.Label)
		assert.Equal(t, "/a", e.BasePath)
	}
	assert.Equal(t, []string{"Before 1", "Before 2", "Self", "After"}, labels)

	*entries[3].Params.Label = "changed"
	assert.Equal(t, "Self", *nodes[1].Meta.BreadcrumbsItem.Label, "entries do not alias route meta")
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}

func strPtr(s string) *string {
	return &s
}
