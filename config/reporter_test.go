package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestReport_ArchiveContents(t *testing.T) {
	tmpDir := t.TempDir()

	reportFile, err := os.Create(filepath.Join(tmpDir, "report.zip"))
	if err != nil {
		t.Fatalf("failed to create report file: %v", err)
	}

	r := &Report{
		entries: make(map[string]entry),
		file:    reportFile,
	}

	inputPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(inputPath, []byte("<div class=\"a\"></div>"), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	r.Store("input/index.html", inputPath)
	r.StoreData("dom-outline.txt", []byte("div .a\n"))
	r.Store("missing", filepath.Join(tmpDir, "does-not-exist")) // silently skipped

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	zr, err := zip.OpenReader(reportFile.Name())
	if err != nil {
		t.Fatalf("failed to open report archive: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}

	for _, want := range []string{"MANIFEST", "input/index.html", "dom-outline.txt"} {
		if !names[want] {
			t.Errorf("archive is missing %q, has %v", want, names)
		}
	}
	if names["missing"] {
		t.Error("absent file should not end up in the archive")
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReport_NilSafeStores(t *testing.T) {
	var r *Report
	r.Store("x", "y")
	r.StoreData("z", []byte("data"))
	if r.Name() != "" {
		t.Error("nil report should have empty name")
	}
}
