package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"nptest/domain/core"
	"nptest/domain/hypothesis"
	"nptest/internal/report"
)

// analyzeRequest carries the two pmfs of an analysis request. A shorter
// alt list is zero-padded by the domain layer.
type analyzeRequest struct {
	Null []float64 `json:"null"`
	Alt  []float64 `json:"alt"`
}

type selectRequest struct {
	Null    []float64 `json:"null"`
	Alt     []float64 `json:"alt"`
	MaxSize float64   `json:"max_size"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze computes the full rejection-region table for a pair.
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pair, err := hypothesis.NewDistributionPair(req.Null, req.Alt)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	result, err := a.analyses.Analyze(r.Context(), pair)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleSelect returns the most powerful LRT region within the size budget.
func (a *App) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pair, err := hypothesis.NewDistributionPair(req.Null, req.Alt)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	selection, err := a.analyses.SelectRegion(r.Context(), pair, req.MaxSize)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, selection)
}

// handleBinomial analyzes a Binomial(trials, p0) vs Binomial(trials, p1)
// pair built from query parameters.
func (a *App) handleBinomial(w http.ResponseWriter, r *http.Request) {
	trials, err := strconv.Atoi(r.URL.Query().Get("trials"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "trials must be an integer")
		return
	}
	p0, err := strconv.ParseFloat(r.URL.Query().Get("p0"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "p0 must be a number")
		return
	}
	p1, err := strconv.ParseFloat(r.URL.Query().Get("p1"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "p1 must be a number")
		return
	}

	pair, err := hypothesis.NewBinomialPair(trials, p0, p1)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	result, err := a.analyses.Analyze(r.Context(), pair)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleReport renders the analysis as an HTML report.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pair, err := hypothesis.NewDistributionPair(req.Null, req.Alt)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	result, err := a.analyses.Analyze(r.Context(), pair)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	md := report.BuildMarkdown(result, nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.RenderHTML(md))
}

// exportRequest adds the target format to an analysis request.
type exportRequest struct {
	Null   []float64 `json:"null"`
	Alt    []float64 `json:"alt"`
	Format string    `json:"format"` // "xlsx" (default) or "csv"
}

// handleExport writes the region table to the export directory and returns
// the file path.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	ext := req.Format
	if ext == "" {
		ext = "xlsx"
	}
	if ext != "xlsx" && ext != "csv" {
		respondError(w, http.StatusBadRequest, "format must be xlsx or csv")
		return
	}

	pair, err := hypothesis.NewDistributionPair(req.Null, req.Alt)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	result, err := a.analyses.Analyze(r.Context(), pair)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	path := filepath.Join(a.exportDir, fmt.Sprintf("regions-%s.%s", result.AnalysisID, ext))
	if err := a.writer.WriteTable(path, result.Rows); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"analysis_id": result.AnalysisID.String(),
		"path":        path,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[UI] Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps the engine's error taxonomy to HTTP statuses:
// every input or budget contract violation is the caller's fault.
func respondDomainError(w http.ResponseWriter, err error) {
	if core.IsInvalidInputError(err) || core.IsInvalidBudgetError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
