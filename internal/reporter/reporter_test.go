package reporter

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/prenomnom/dux/internal/model"
)

// captureOutput captures stdout during function execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestNewReporter(t *testing.T) {
	r := NewReporter(false)
	if r == nil {
		t.Fatal("NewReporter(false) returned nil")
	}
	if r.verbose {
		t.Error("Expected verbose to be false")
	}
}

func TestNewReporter_Verbose(t *testing.T) {
	r := NewReporter(true)
	if r == nil {
		t.Fatal("NewReporter(true) returned nil")
	}
	if !r.verbose {
		t.Error("Expected verbose to be true")
	}
}

func TestPrintHeader(t *testing.T) {
	r := NewReporter(false)
	out := captureOutput(func() { r.PrintHeader() })
	if !strings.Contains(out, "dux") {
		t.Errorf("expected header to mention dux, got %q", out)
	}
}

func TestPrintScanSummary(t *testing.T) {
	r := NewReporter(false)
	snapshot := &model.ScanSnapshot{
		Root:  &model.ScanNode{Path: "/root", Kind: model.Directory, SizeBytes: 2048, DiskUsage: 2048},
		Stats: model.ScanStats{Files: 10, Directories: 3, AccessErrors: 1},
	}

	out := captureOutput(func() { r.PrintScanSummary(snapshot) })

	if !strings.Contains(out, "/root") {
		t.Errorf("expected summary to mention root path, got %q", out)
	}
	if !strings.Contains(out, "Access errors") {
		t.Errorf("expected summary to mention access errors when nonzero, got %q", out)
	}
}

func TestPrintScanSummaryOmitsAccessErrorsWhenZero(t *testing.T) {
	r := NewReporter(false)
	snapshot := &model.ScanSnapshot{
		Root:  &model.ScanNode{Path: "/root", Kind: model.Directory},
		Stats: model.ScanStats{Files: 1, Directories: 1, AccessErrors: 0},
	}

	out := captureOutput(func() { r.PrintScanSummary(snapshot) })

	if strings.Contains(out, "Access errors") {
		t.Errorf("did not expect access errors line when count is zero, got %q", out)
	}
}

func TestPrintInsightBundle(t *testing.T) {
	r := NewReporter(false)
	bundle := model.InsightBundle{
		Insights: []model.Insight{
			{Path: "/root/.cache", Category: model.Cache, DiskUsage: 4096, Summary: "pip-cache"},
		},
		ByCategory: map[model.Category]*model.CategoryTotals{
			model.Cache: {Count: 1, SizeBytes: 4096, DiskUsage: 4096},
		},
	}

	out := captureOutput(func() { r.PrintInsightBundle(bundle) })

	if !strings.Contains(out, "cache") {
		t.Errorf("expected category table to mention cache, got %q", out)
	}
	if !strings.Contains(out, "Total") {
		t.Errorf("expected a totals row, got %q", out)
	}
	if strings.Contains(out, "Top Insights") {
		t.Errorf("non-verbose reporter should not print the insight detail list, got %q", out)
	}
}

func TestPrintInsightBundleVerbosePrintsDetails(t *testing.T) {
	r := NewReporter(true)
	bundle := model.InsightBundle{
		Insights: []model.Insight{
			{Path: "/root/.cache", Category: model.Cache, DiskUsage: 4096, Summary: "pip-cache"},
		},
		ByCategory: map[model.Category]*model.CategoryTotals{
			model.Cache: {Count: 1, SizeBytes: 4096, DiskUsage: 4096},
		},
	}

	out := captureOutput(func() { r.PrintInsightBundle(bundle) })

	if !strings.Contains(out, "/root/.cache") {
		t.Errorf("expected verbose output to list the insight path, got %q", out)
	}
	if !strings.Contains(out, "pip-cache") {
		t.Errorf("expected verbose output to include the rule summary, got %q", out)
	}
}

func TestPrintTopNodes(t *testing.T) {
	r := NewReporter(false)
	nodes := []*model.ScanNode{
		{Path: "/root/big.bin", Kind: model.File, DiskUsage: 1024},
		{Path: "/root/sub", Kind: model.Directory, DiskUsage: 512},
	}

	out := captureOutput(func() { r.PrintTopNodes(nodes) })

	if !strings.Contains(out, "/root/big.bin") || !strings.Contains(out, "/root/sub") {
		t.Errorf("expected both nodes listed, got %q", out)
	}
	if !strings.Contains(out, "file") || !strings.Contains(out, "dir") {
		t.Errorf("expected kind labels in output, got %q", out)
	}
}

func TestMessageHelpers(t *testing.T) {
	r := NewReporter(false)

	tests := []struct {
		name string
		fn   func(string)
	}{
		{"warning", r.PrintWarning},
		{"error", r.PrintError},
		{"success", r.PrintSuccess},
		{"info", r.PrintInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(func() { tt.fn("hello") })
			if !strings.Contains(out, "hello") {
				t.Errorf("expected message to contain %q, got %q", "hello", out)
			}
		})
	}
}
