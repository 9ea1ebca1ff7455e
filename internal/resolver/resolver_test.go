package resolver

// Notes:
// - stubSource counts Load calls so "no manifest access" is observable
//   without touching the filesystem; layout tests use real files.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-webpack-assets/internal/hints"
	"github.com/alnah/go-webpack-assets/internal/manifest"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

type stubSource struct {
	m     *manifest.Manifest
	err   error
	loads atomic.Int32
}

func (s *stubSource) Load() (*manifest.Manifest, error) {
	s.loads.Add(1)
	return s.m, s.err
}

func (s *stubSource) Path() string { return "/project/stats.json" }

const fixtureStats = `{
  "entrypoints": {
    "entry_one":       {"assets": ["a.css", "b.css", "x.js"]},
    "entry_two":       {"assets": ["shared.css", "only.css", "y.js", "x.js"]},
    "entry_shared":    {"assets": ["shared.css"]},
    "entry_css_only":  {"assets": ["c1.css", "c2.css"]},
    "entry_js_only":   {"assets": ["j1.js", "j2.js"]},
    "entry_no_assets": {"assets": []},
    "entry_missing":   {"assets": ["ghost.css"]},
    "entry_escape":    {"assets": ["../../secret.css"]},
    "entry_nested":    {"assets": ["css/nested.css"]}
  }
}`

var fixtureFiles = map[string]string{
	"a.css":          "a{color:red}",
	"b.css":          "b{color:blue}",
	"shared.css":     ".shared{}",
	"only.css":       ".only{}",
	"c1.css":         ".c1{}",
	"c2.css":         ".c2{}",
	"x.js":           "x()",
	"y.js":           "y()",
	"j1.js":          "j1()",
	"j2.js":          "j2()",
	"css/nested.css": ".nested{}",
}

// newFixture builds {root}/public/dist with fixture files and a stats.json.
func newFixture(t *testing.T) (*Resolver, string) {
	t.Helper()

	root := t.TempDir()
	distDir := filepath.Join(root, "public", "dist")
	for name, content := range fixtureFiles {
		p := filepath.Join(distDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "stats.json"), []byte(fixtureStats), 0644); err != nil {
		t.Fatalf("failed to write stats: %v", err)
	}

	loader := manifest.NewLoader(root, "stats.json", nil)
	r := New(loader, Layout{ProjectDir: root, PublicDir: "public", OutputDir: "dist"})
	return r, root
}

// ---------------------------------------------------------------------------
// TestResolver_URLs - Ordered, deduplicated URL resolution
// ---------------------------------------------------------------------------

func TestResolver_URLs(t *testing.T) {
	t.Parallel()

	r, _ := newFixture(t)

	tests := []struct {
		name  string
		names []string
		typ   manifest.AssetType
		want  []string
	}{
		{
			name:  "single entry css",
			names: []string{"entry_one"},
			typ:   manifest.CSS,
			want:  []string{"/dist/a.css", "/dist/b.css"},
		},
		{
			name:  "single entry js",
			names: []string{"entry_one"},
			typ:   manifest.JS,
			want:  []string{"/dist/x.js"},
		},
		{
			name:  "shared file keeps first position",
			names: []string{"entry_shared", "entry_two"},
			typ:   manifest.CSS,
			want:  []string{"/dist/shared.css", "/dist/only.css"},
		},
		{
			name:  "later duplicate is dropped not moved",
			names: []string{"entry_one", "entry_two"},
			typ:   manifest.JS,
			want:  []string{"/dist/x.js", "/dist/y.js"},
		},
		{
			name:  "reversed order changes result order",
			names: []string{"entry_two", "entry_one"},
			typ:   manifest.JS,
			want:  []string{"/dist/y.js", "/dist/x.js"},
		},
		{
			name:  "same entry twice",
			names: []string{"entry_one", "entry_one"},
			typ:   manifest.CSS,
			want:  []string{"/dist/a.css", "/dist/b.css"},
		},
		{
			name:  "entry with zero css",
			names: []string{"entry_js_only"},
			typ:   manifest.CSS,
			want:  nil,
		},
		{
			name:  "entry with no assets",
			names: []string{"entry_no_assets"},
			typ:   manifest.JS,
			want:  nil,
		},
		{
			name:  "blank names skipped",
			names: []string{"", "entry_css_only", "  "},
			typ:   manifest.CSS,
			want:  []string{"/dist/c1.css", "/dist/c2.css"},
		},
		{
			name:  "nested filename",
			names: []string{"entry_nested"},
			typ:   manifest.CSS,
			want:  []string{"/dist/css/nested.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.URLs(tt.names, tt.typ)
			if err != nil {
				t.Fatalf("URLs(%v, %s) error = %v", tt.names, tt.typ, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("URLs(%v, %s) mismatch (-want +got):\n%s", tt.names, tt.typ, diff)
			}
		})
	}
}

func TestResolver_URLs_NoDuplicates(t *testing.T) {
	t.Parallel()

	r, _ := newFixture(t)
	all := []string{"entry_one", "entry_two", "entry_shared", "entry_css_only", "entry_js_only", "entry_one"}

	for _, typ := range []manifest.AssetType{manifest.CSS, manifest.JS} {
		got, err := r.URLs(all, typ)
		if err != nil {
			t.Fatalf("URLs(%s) error = %v", typ, err)
		}
		seen := make(map[string]bool)
		for _, u := range got {
			if seen[u] {
				t.Errorf("URLs(%s) contains duplicate %q", typ, u)
			}
			seen[u] = true
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolver_EmptyInput - No manifest access for empty name lists
// ---------------------------------------------------------------------------

func TestResolver_EmptyInput(t *testing.T) {
	t.Parallel()

	inputs := map[string][]string{
		"nil":    nil,
		"empty":  {},
		"blanks": {"", " ", "\t"},
	}

	for name, names := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src := &stubSource{err: errors.New("must not load")}
			r := New(src, Layout{ProjectDir: "/nonexistent", PublicDir: "public", OutputDir: "dist"})

			for _, typ := range []manifest.AssetType{manifest.CSS, manifest.JS, "anything"} {
				urls, err := r.URLs(names, typ)
				if err != nil || urls != nil {
					t.Errorf("URLs(%s) = %v, %v; want nil, nil", typ, urls, err)
				}
			}

			content, err := r.CSSContent(names)
			if err != nil || content != "" {
				t.Errorf("CSSContent() = %q, %v; want \"\", nil", content, err)
			}

			if got := src.loads.Load(); got != 0 {
				t.Errorf("manifest loaded %d times, want 0", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolver_Errors - Fail-fast, all-or-nothing resolution
// ---------------------------------------------------------------------------

func TestResolver_Errors(t *testing.T) {
	t.Parallel()

	r, root := newFixture(t)

	t.Run("unknown entry after valid one", func(t *testing.T) {
		t.Parallel()

		urls, err := r.URLs([]string{"entry_one", "entry_unknown"}, manifest.CSS)
		if urls != nil {
			t.Errorf("URLs() returned partial result %v", urls)
		}
		if !errors.Is(err, ErrUnknownEntrypoint) {
			t.Fatalf("URLs() error = %v, want ErrUnknownEntrypoint", err)
		}

		var unknown *UnknownEntrypointError
		if !errors.As(err, &unknown) {
			t.Fatalf("error type = %T, want *UnknownEntrypointError", err)
		}
		if unknown.Name != "entry_unknown" {
			t.Errorf("Name = %q, want entry_unknown", unknown.Name)
		}
		if unknown.ManifestPath != filepath.Join(root, "stats.json") {
			t.Errorf("ManifestPath = %q", unknown.ManifestPath)
		}
		msg := err.Error()
		if !strings.Contains(msg, `"entry_unknown"`) || !strings.Contains(msg, "stats.json") {
			t.Errorf("message should name entry and manifest, got %q", msg)
		}
		if !strings.Contains(msg, "available: entry_css_only") {
			t.Errorf("message should list available entries, got %q", msg)
		}
		if !strings.Contains(msg, hints.StatsCommand) {
			t.Errorf("message should suggest re-creating the stats file, got %q", msg)
		}
	})

	t.Run("unknown entry for type with no files", func(t *testing.T) {
		t.Parallel()

		_, err := r.URLs([]string{"entry_unknown"}, manifest.JS)
		if !errors.Is(err, ErrUnknownEntrypoint) {
			t.Errorf("URLs() error = %v, want ErrUnknownEntrypoint", err)
		}
	})

	t.Run("missing asset file", func(t *testing.T) {
		t.Parallel()

		urls, err := r.URLs([]string{"entry_one", "entry_missing"}, manifest.CSS)
		if urls != nil {
			t.Errorf("URLs() returned partial result %v", urls)
		}
		if !errors.Is(err, ErrAssetFileMissing) {
			t.Fatalf("URLs() error = %v, want ErrAssetFileMissing", err)
		}

		var missing *MissingAssetError
		if !errors.As(err, &missing) {
			t.Fatalf("error type = %T, want *MissingAssetError", err)
		}
		wantPath := filepath.Join(root, "public", "dist", "ghost.css")
		if missing.Path != wantPath {
			t.Errorf("Path = %q, want %q", missing.Path, wantPath)
		}
		if missing.Entrypoint != "entry_missing" {
			t.Errorf("Entrypoint = %q, want entry_missing", missing.Entrypoint)
		}
		msg := err.Error()
		if !strings.Contains(msg, wantPath) {
			t.Errorf("message should contain path, got %q", msg)
		}
		if !strings.Contains(msg, `"entry_one", "entry_missing"`) {
			t.Errorf("message should list requested entries, got %q", msg)
		}
		if !strings.Contains(msg, "--json > stats.json") {
			t.Errorf("message should suggest re-exporting stats, got %q", msg)
		}
	})

	t.Run("directory is not an asset", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{}
		m, err := manifest.Parse([]byte(`{"entrypoints": {"dir": {"assets": ["css.css"]}}}`), "stats.json")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		src.m = m

		base := t.TempDir()
		if err := os.MkdirAll(filepath.Join(base, "public", "dist", "css.css"), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		dr := New(src, Layout{ProjectDir: base, PublicDir: "public", OutputDir: "dist"})

		if _, err := dr.URLs([]string{"dir"}, manifest.CSS); !errors.Is(err, ErrAssetFileMissing) {
			t.Errorf("URLs() error = %v, want ErrAssetFileMissing", err)
		}
	})

	t.Run("path escaping output directory", func(t *testing.T) {
		t.Parallel()

		_, err := r.URLs([]string{"entry_escape"}, manifest.CSS)
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("URLs() error = %v, want ErrPathTraversal", err)
		}
	})

	t.Run("invalid asset type", func(t *testing.T) {
		t.Parallel()

		_, err := r.URLs([]string{"entry_one"}, "svg")
		if !errors.Is(err, manifest.ErrInvalidAssetType) {
			t.Errorf("URLs() error = %v, want ErrInvalidAssetType", err)
		}
	})

	t.Run("manifest error propagates", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{err: manifest.ErrSectionMissing}
		sr := New(src, Layout{})
		if _, err := sr.URLs([]string{"main"}, manifest.CSS); !errors.Is(err, manifest.ErrSectionMissing) {
			t.Errorf("URLs() error = %v, want ErrSectionMissing", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolver_Assets - Paths alongside URLs
// ---------------------------------------------------------------------------

func TestResolver_Assets(t *testing.T) {
	t.Parallel()

	r, root := newFixture(t)

	got, err := r.Assets([]string{"entry_shared", "entry_two"}, manifest.CSS)
	if err != nil {
		t.Fatalf("Assets() error = %v", err)
	}

	dist := filepath.Join(root, "public", "dist")
	want := []ResolvedAsset{
		{Entrypoint: "entry_shared", URL: "/dist/shared.css", Path: filepath.Join(dist, "shared.css")},
		{Entrypoint: "entry_two", URL: "/dist/only.css", Path: filepath.Join(dist, "only.css")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assets() mismatch (-want +got):\n%s", diff)
	}
	if r.AssetDir() != dist {
		t.Errorf("AssetDir() = %q, want %q", r.AssetDir(), dist)
	}
}

func TestResolver_CustomLayout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildDir := filepath.Join(root, "web", "static", "build")
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(buildDir, "app.js"), []byte("app()"), 0644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}

	m, err := manifest.Parse([]byte(`{"entrypoints": {"app": {"assets": ["app.js"]}}}`), "stats.json")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	r := New(&stubSource{m: m}, Layout{ProjectDir: root, PublicDir: "web", OutputDir: "static/build"})

	got, err := r.URLs([]string{"app"}, manifest.JS)
	if err != nil {
		t.Fatalf("URLs() error = %v", err)
	}
	if diff := cmp.Diff([]string{"/static/build/app.js"}, got); diff != "" {
		t.Errorf("URLs() mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestResolver_CSSContent - Raw concatenation in resolution order
// ---------------------------------------------------------------------------

func TestResolver_CSSContent(t *testing.T) {
	t.Parallel()

	r, _ := newFixture(t)

	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"single entry", []string{"entry_one"}, "a{color:red}b{color:blue}"},
		{"dedup across entries", []string{"entry_shared", "entry_two"}, ".shared{}.only{}"},
		{"order follows resolution", []string{"entry_two", "entry_shared"}, ".shared{}.only{}"},
		{"entry without css", []string{"entry_js_only"}, ""},
		{"two entries", []string{"entry_css_only", "entry_one"}, ".c1{}.c2{}a{color:red}b{color:blue}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.CSSContent(tt.names)
			if err != nil {
				t.Fatalf("CSSContent(%v) error = %v", tt.names, err)
			}
			if got != tt.want {
				t.Errorf("CSSContent(%v) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}

	t.Run("unknown entry", func(t *testing.T) {
		t.Parallel()

		got, err := r.CSSContent([]string{"entry_one", "entry_unknown"})
		if !errors.Is(err, ErrUnknownEntrypoint) {
			t.Errorf("CSSContent() error = %v, want ErrUnknownEntrypoint", err)
		}
		if got != "" {
			t.Errorf("CSSContent() returned partial content %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := r.CSSContent([]string{"entry_missing"}); !errors.Is(err, ErrAssetFileMissing) {
			t.Errorf("CSSContent() error = %v, want ErrAssetFileMissing", err)
		}
	})
}

func TestResolver_CSSContent_ReadError(t *testing.T) {
	t.Parallel()

	r, _ := newFixture(t)
	r.readFile = func(string) ([]byte, error) { return nil, os.ErrPermission }

	_, err := r.CSSContent([]string{"entry_one"})
	if !errors.Is(err, ErrAssetRead) {
		t.Errorf("CSSContent() error = %v, want ErrAssetRead", err)
	}
}

func TestResolver_CSSContent_RemovedAfterCheck(t *testing.T) {
	t.Parallel()

	r, _ := newFixture(t)
	r.readFile = func(string) ([]byte, error) { return nil, os.ErrNotExist }

	_, err := r.CSSContent([]string{"entry_one"})
	if !errors.Is(err, ErrAssetFileMissing) {
		t.Errorf("CSSContent() error = %v, want ErrAssetFileMissing", err)
	}
}

// ---------------------------------------------------------------------------
// TestCompactNames - Blank filtering
// ---------------------------------------------------------------------------

func TestCompactNames(t *testing.T) {
	t.Parallel()

	input := []string{"", "a", " ", "b", "\n", "a"}
	got := CompactNames(input)
	if diff := cmp.Diff([]string{"a", "b", "a"}, got); diff != "" {
		t.Errorf("CompactNames() mismatch (-want +got):\n%s", diff)
	}
	if input[0] != "" || len(input) != 6 {
		t.Error("CompactNames() modified its input")
	}
	if CompactNames([]string{"", " "}) != nil {
		t.Error("CompactNames() of blanks should be nil")
	}
}
