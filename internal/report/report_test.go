package report

import (
	"context"
	"strings"
	"testing"

	"nptest/app"
	"nptest/domain/hypothesis"
)

func analyze(t *testing.T) *app.AnalysisResult {
	t.Helper()
	pair, err := hypothesis.NewDistributionPair([]float64{.5, .25, .25}, []float64{.8, .2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := app.NewAnalysisService(0).Analyze(context.Background(), pair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestBuildMarkdown(t *testing.T) {
	result := analyze(t)
	md := BuildMarkdown(result, nil)

	for _, want := range []string{
		"| region | size | power | dominated? | LRT? |",
		"| (0,1) |",
		"## Likelihood-ratio prefix regions",
		"## Undominated frontier",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	if got := strings.Count(md, "\n| ("); got != len(result.Rows) {
		t.Errorf("expected %d table rows, found %d", len(result.Rows), got)
	}
}

func TestBuildMarkdown_WithSelection(t *testing.T) {
	result := analyze(t)
	pair := result.Pair
	selection, err := app.NewAnalysisService(0).SelectRegion(context.Background(), pair, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	md := BuildMarkdown(result, selection)
	if !strings.Contains(md, "## Selected region") {
		t.Error("markdown missing selection section")
	}
	if !strings.Contains(md, "(0,1)") {
		t.Error("markdown missing selected region tuple")
	}
}

func TestBuildFrontierSummary(t *testing.T) {
	result := analyze(t)
	summary := BuildFrontierSummary(result)

	if summary.Count == 0 {
		t.Fatal("expected undominated regions on the frontier")
	}
	// (0,1) already reaches power 1 and nothing beats it on both
	// coordinates, so the frontier peaks at 1.
	if summary.MaxPower < 1-1e-9 {
		t.Errorf("expected max power 1, got %v", summary.MaxPower)
	}
	if summary.MeanPower < 0 || summary.MeanPower > summary.MaxPower {
		t.Errorf("mean power %v outside [0, max]", summary.MeanPower)
	}
}

func TestRenderHTML(t *testing.T) {
	html := string(RenderHTML(BuildMarkdown(analyze(t), nil)))
	if !strings.Contains(html, "<h1") {
		t.Error("rendered HTML missing heading")
	}
	if !strings.Contains(html, "<table>") {
		t.Error("rendered HTML missing region table")
	}
}
