// CLI integration tests for breadcrumbs.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the breadcrumbs binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "breadcrumbs-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	breadcrumbsBin = filepath.Join(tmpDir, "breadcrumbs")

	cmd := exec.Command("go", "build", "-o", breadcrumbsBin, "./cmd/breadcrumbs")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

const siteRoutes = `name: site
routes:
  - path: /
    meta:
      title: Start
  - path: /docs
    children:
      - path: ""
        meta:
          title: Documentation
      - path: getting-started
        meta:
          breadcrumbsBefore:
            label: Guides
            to: /guides
      - path: internal
        meta:
          breadcrumbsItem:
            excluded: true
  - path: /private
    meta:
      title: Private
      breadcrumbs:
        visible: false
`

type item struct {
	Label   string `json:"label"`
	To      string `json:"to"`
	Current bool   `json:"current"`
}

type result struct {
	Items   []item `json:"items"`
	Visible bool   `json:"visible"`
}

type tableInfo struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	RouteCount int    `json:"route_count"`
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)
	res := env.MustRunBreadcrumbs("version")
	assert.True(t, strings.HasPrefix(res.Stdout, "breadcrumbs v"), res.Stdout)
}

func TestInit(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunBreadcrumbs("init")

	for _, name := range []string{"route_tables.jsonl", "routes.jsonl"} {
		_, err := os.Stat(filepath.Join(env.DataDir, name))
		assert.NoError(t, err, name)
	}
}

func TestTrailFromRouteFile(t *testing.T) {
	env := NewTestEnv(t)
	routes := env.WriteFile("routes.yaml", siteRoutes)

	res := env.MustRunBreadcrumbs("trail", "/docs/getting-started", "--routes", routes)
	assert.Equal(t, "  Start -> /\n  Documentation -> /docs\n  Guides -> /guides\n* Getting Started -> /docs/getting-started\n", res.Stdout)

	res = env.MustRunBreadcrumbs("--json", "trail", "/docs/getting-started?tab=1", "--routes", routes, "--trailing-slash", "true")
	out := ParseJSON[result](t, res.Stdout)
	require.Len(t, out.Items, 4)
	assert.True(t, out.Visible)
	for _, it := range out.Items {
		assert.True(t, strings.HasSuffix(it.To, "/"), it.To)
	}
	assert.True(t, out.Items[3].Current)
}

func TestTrailExcludedAndHidden(t *testing.T) {
	env := NewTestEnv(t)
	routes := env.WriteFile("routes.yaml", siteRoutes)

	res := env.MustRunBreadcrumbs("--json", "trail", "/docs/internal", "--routes", routes)
	out := ParseJSON[result](t, res.Stdout)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Documentation", out.Items[1].Label)
	assert.True(t, out.Items[1].Current)

	res = env.MustRunBreadcrumbs("trail", "/private", "--routes", routes)
	assert.Contains(t, res.Stdout, "(hidden)")
}

func TestRoutesLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	routes := env.WriteFile("routes.yaml", siteRoutes)

	res := env.MustRunBreadcrumbs("--json", "routes", "import", routes)
	imported := ParseJSON[tableInfo](t, res.Stdout)
	assert.Equal(t, "site", imported.Name)
	assert.Equal(t, 6, imported.RouteCount)
	assert.NotEmpty(t, imported.Version)

	env.MustRunBreadcrumbs("routes", "import", routes, "--name", "copy")

	res = env.MustRunBreadcrumbs("--json", "routes", "list")
	infos := ParseJSON[[]tableInfo](t, res.Stdout)
	require.Len(t, infos, 2)
	assert.Equal(t, "copy", infos[0].Name)
	assert.Equal(t, "site", infos[1].Name)

	res = env.MustRunBreadcrumbs("routes", "show", "site")
	assert.Contains(t, res.Stdout, "/docs/getting-started")
	assert.Contains(t, res.Stdout, "/docs (layout)")

	res = env.MustRunBreadcrumbs("--json", "trail", "/docs", "--table", "site")
	out := ParseJSON[result](t, res.Stdout)
	assert.Equal(t, []item{
		{Label: "Start", To: "/"},
		{Label: "Documentation", To: "/docs", Current: true},
	}, out.Items)

	env.MustRunBreadcrumbs("routes", "delete", "copy")
	rows := ReadJSONLFile[map[string]any](t, filepath.Join(env.DataDir, "route_tables.jsonl"))
	require.Len(t, rows, 1)
	assert.Equal(t, "site", rows[0]["name"])
}

func TestConfigTableKey(t *testing.T) {
	env := NewTestEnv(t)
	routes := env.WriteFile("routes.yaml", siteRoutes)
	env.MustRunBreadcrumbs("routes", "import", routes)

	env.Env = []string{"BREADCRUMBS_TABLE=site"}
	res := env.MustRunBreadcrumbs("trail", "/")
	assert.Equal(t, "* Start -> /\n", res.Stdout)
}

func TestConfigCommand(t *testing.T) {
	env := NewTestEnv(t)
	env.Env = []string{"BREADCRUMBS_PREFIX=Acme", "BREADCRUMBS_TRAILING_SLASH=false"}

	res := env.MustRunBreadcrumbs("--json", "config")
	cfg := ParseJSON[map[string]string](t, res.Stdout)
	assert.Equal(t, "Acme", cfg["prefix"])
	assert.Equal(t, "false", cfg["trailing_slash"])
	assert.Equal(t, "AcmeBreadcrumbs", cfg["component"])
	assert.Equal(t, "useAcmeBreadcrumbs", cfg["composable"])
	assert.Equal(t, env.DataDir, cfg["data_dir"])
}

func TestDataDirFlagWins(t *testing.T) {
	env := NewTestEnv(t)
	other := filepath.Join(env.TempDir, "other")
	env.Env = []string{"BREADCRUMBS_DATA_DIR=" + filepath.Join(env.TempDir, "from-env")}

	res := env.MustRunBreadcrumbs("--data-dir", other, "--json", "config")
	cfg := ParseJSON[map[string]string](t, res.Stdout)
	assert.Equal(t, other, cfg["data_dir"])
}

func TestExitCodes(t *testing.T) {
	env := NewTestEnv(t)
	routes := env.WriteFile("routes.yaml", siteRoutes)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no match", []string{"trail", "/nowhere", "--routes", routes}, 1},
		{"relative path", []string{"trail", "docs", "--routes", routes}, 1},
		{"missing table", []string{"trail", "/", "--table", "missing"}, 1},
		{"no table given", []string{"trail", "/"}, 1},
		{"both sources", []string{"trail", "/", "--routes", routes, "--table", "site"}, 1},
		{"bad trailing slash", []string{"trail", "/", "--routes", routes, "--trailing-slash", "maybe"}, 1},
		{"missing route file", []string{"routes", "import", filepath.Join(env.TempDir, "nope.yaml")}, 1},
		{"delete unknown", []string{"routes", "delete", "ghost"}, 1},
		{"unknown command", []string{"frobnicate"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.RunBreadcrumbs(tt.args...)
			assert.Equal(t, tt.want, res.ExitCode, "stderr: %s", res.Stderr)
			assert.Contains(t, res.Stderr, "Error:")
		})
	}
}
