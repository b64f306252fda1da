package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"flatcss/config"
	"flatcss/scan"
)

func testConfig() config.ScanConfig {
	return config.ScanConfig{
		Extensions:    []string{".html", ".htm"},
		ExcludeDirs:   []string{"node_modules", "vendor", ".git"},
		MaxCandidates: 100,
	}
}

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(full, []byte("<html></html>"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
}

func TestCandidates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"index.html",
		"pages/about.htm",
		"pages/contact.html",
		"style.css",
		"readme.md",
		"node_modules/pkg/demo.html",
		"vendor/lib/sample.html",
	)

	got, err := scan.NewScanner(testConfig(), nil).Candidates(root)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "index.html"),
		filepath.Join(root, "pages", "about.htm"),
		filepath.Join(root, "pages", "contact.html"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCandidates_NaturalOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "page10.html", "page2.html", "page1.html")

	got, err := scan.NewScanner(testConfig(), nil).Candidates(root)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	want := []string{"page1.html", "page2.html", "page10.html"}
	for i, w := range want {
		if filepath.Base(got[i]) != w {
			t.Errorf("candidate %d = %q, want %q", i, filepath.Base(got[i]), w)
		}
	}
}

func TestCandidates_Cap(t *testing.T) {
	root := t.TempDir()
	var files []string
	for i := range 20 {
		files = append(files, filepath.Join("p", "f"+string(rune('a'+i))+".html"))
	}
	writeFiles(t, root, files...)

	cfg := testConfig()
	cfg.MaxCandidates = 5
	got, err := scan.NewScanner(cfg, nil).Candidates(root)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("got %d candidates, want cap of 5", len(got))
	}
}

func TestCandidates_Empty(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "only.txt")

	got, err := scan.NewScanner(testConfig(), nil).Candidates(root)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestCandidates_CaseInsensitiveExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "UPPER.HTML")

	got, err := scan.NewScanner(testConfig(), nil).Candidates(root)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected .HTML to match, got %v", got)
	}
}
