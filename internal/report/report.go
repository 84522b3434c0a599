package report

import (
	"fmt"
	"strings"

	"nptest/app"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/montanaflynn/stats"
)

// FrontierSummary aggregates the undominated regions of an analysis:
// the attainable power frontier a practitioner chooses from.
type FrontierSummary struct {
	Count     int     `json:"count"`
	MeanPower float64 `json:"mean_power"`
	MaxPower  float64 `json:"max_power"`
}

// BuildFrontierSummary computes summary statistics over the powers of the
// undominated regions.
func BuildFrontierSummary(result *app.AnalysisResult) FrontierSummary {
	powers := make([]float64, 0, len(result.Rows))
	for _, row := range result.Rows {
		if !row.Dominated {
			powers = append(powers, row.Stats.Power)
		}
	}
	summary := FrontierSummary{Count: len(powers)}
	if len(powers) == 0 {
		return summary
	}
	summary.MeanPower, _ = stats.Mean(powers)
	summary.MaxPower, _ = stats.Max(powers)
	return summary
}

// BuildMarkdown renders an analysis as a markdown report: the full region
// table in enumeration order, the likelihood-ratio prefix sequence, the
// frontier summary, and the selection when one was made.
func BuildMarkdown(result *app.AnalysisResult, selection *app.SelectionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Rejection Region Analysis %s\n\n", result.AnalysisID)
	fmt.Fprintf(&b, "Outcome space size: %d, regions: %d, runtime: %dms\n\n",
		result.Pair.N(), len(result.Rows), result.RuntimeMs)

	b.WriteString("| region | size | power | dominated? | LRT? |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, row := range result.Rows {
		fmt.Fprintf(&b, "| %s | %.6g | %.6g | %t | %t |\n",
			row.Region, row.Stats.Size, row.Stats.Power, row.Dominated, row.LRT)
	}

	b.WriteString("\n## Likelihood-ratio prefix regions\n\n")
	for _, prefix := range result.PrefixRegions {
		fmt.Fprintf(&b, "- %s\n", prefix)
	}

	frontier := BuildFrontierSummary(result)
	b.WriteString("\n## Undominated frontier\n\n")
	fmt.Fprintf(&b, "%d regions, mean power %.6g, max power %.6g\n",
		frontier.Count, frontier.MeanPower, frontier.MaxPower)

	if selection != nil {
		b.WriteString("\n## Selected region\n\n")
		fmt.Fprintf(&b, "Budget %.6g: region %s with size %.6g and power %.6g\n",
			selection.MaxSize, selection.Region, selection.Stats.Size, selection.Stats.Power)
	}

	return b.String()
}

// RenderHTML converts a markdown report to an HTML fragment for the UI.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
