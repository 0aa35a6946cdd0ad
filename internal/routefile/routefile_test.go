package routefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

const siteYAML = `
name: site
routes:
  - path: /
    meta:
      title: Start
  - path: /docs
    meta:
      breadcrumbs:
        visible: true
    children:
      - path: ""
        meta:
          title: Documentation
      - path: getting-started
        meta:
          breadcrumbsBefore:
            label: Guides
            to: /guides
          breadcrumbsItem:
            icon: rocket
`

const siteJSON = `{
  "routes": [
    {"path": "/", "meta": {"title": "Start"}},
    {"path": "/about", "meta": {"breadcrumbsAfter": [{"label": "Team", "to": "team"}]}}
  ]
}`

func TestParseYAML(t *testing.T) {
	table, err := Parse([]byte(siteYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "site", table.Name)
	assert.NotEmpty(t, table.Version)
	require.Len(t, table.Routes, 2)

	docs := table.Routes[1]
	assert.Equal(t, true, docs.Meta.Breadcrumbs[types.OptionVisible])
	require.Len(t, docs.Children, 2)
	assert.Equal(t, "Documentation", docs.Children[0].Meta.Title)

	gs := docs.Children[1].Meta
	require.Len(t, gs.BreadcrumbsBefore, 1)
	assert.Equal(t, "Guides", *gs.BreadcrumbsBefore[0].Label)
	require.NotNil(t, gs.BreadcrumbsItem)
	assert.Equal(t, "rocket", gs.BreadcrumbsItem.Extra["icon"])
}

func TestParseJSON(t *testing.T) {
	table, err := Parse([]byte(siteJSON), FormatJSON)
	require.NoError(t, err)
	require.Len(t, table.Routes, 2)
	require.Len(t, table.Routes[1].Meta.BreadcrumbsAfter, 1)
	assert.Equal(t, "team", *table.Routes[1].Meta.BreadcrumbsAfter[0].To)
}

func TestParseAssignsFreshVersions(t *testing.T) {
	a, err := Parse([]byte(siteJSON), FormatJSON)
	require.NoError(t, err)
	b, err := Parse([]byte(siteJSON), FormatJSON)
	require.NoError(t, err)
	assert.NotEqual(t, a.Version, b.Version)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(siteJSON), "toml")
	assert.ErrorIs(t, err, types.ErrUnknownFormat)

	_, err = Parse([]byte("{not json"), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("routes: [unterminated"), FormatYAML)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file keeps declared name", func(t *testing.T) {
		path := filepath.Join(dir, "routes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o644))
		table, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "site", table.Name)
	})

	t.Run("json file takes its file name", func(t *testing.T) {
		path := filepath.Join(dir, "marketing.json")
		require.NoError(t, os.WriteFile(path, []byte(siteJSON), 0o644))
		table, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "marketing", table.Name)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "routes.txt"))
		assert.ErrorIs(t, err, types.ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
