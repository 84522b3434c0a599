package app

import (
	"context"
	"runtime"
	"time"

	"nptest/domain/core"
	"nptest/domain/hypothesis"

	"golang.org/x/sync/errgroup"
)

// AnalysisService runs the full rejection-region analysis for a pair of
// hypotheses: enumerate every region, evaluate size and power, flag
// dominated regions and likelihood-ratio tests.
type AnalysisService struct {
	shards int
}

// AnalysisResult contains the complete output of one analysis run.
type AnalysisResult struct {
	AnalysisID    core.AnalysisID             `json:"analysis_id"`
	Pair          hypothesis.DistributionPair `json:"pair"`
	Rows          []hypothesis.AnalysisRow    `json:"rows"`
	PrefixRegions []hypothesis.Region         `json:"prefix_regions"`
	RuntimeMs     int64                       `json:"runtime_ms"`
}

// SelectionResult is the outcome of budget-constrained region selection.
type SelectionResult struct {
	AnalysisID core.AnalysisID        `json:"analysis_id"`
	Region     hypothesis.Region      `json:"region"`
	Stats      hypothesis.RegionStats `json:"stats"`
	MaxSize    float64                `json:"max_size"`
}

// NewAnalysisService creates an analysis service. shards controls how many
// goroutines evaluate regions; <= 0 means one per available CPU.
func NewAnalysisService(shards int) *AnalysisService {
	if shards <= 0 {
		shards = runtime.GOMAXPROCS(0)
	}
	return &AnalysisService{shards: shards}
}

// Analyze computes the full region table for the pair. Region evaluations
// are independent reads over the immutable pair, so they run data-parallel
// across shards; dominance and LRT classification run after the evaluation
// barrier since they read the completed stats table.
func (s *AnalysisService) Analyze(ctx context.Context, pair hypothesis.DistributionPair) (*AnalysisResult, error) {
	startTime := time.Now()

	regions, err := hypothesis.EnumerateRegions(pair.N())
	if err != nil {
		return nil, err
	}

	evaluated := make([]hypothesis.EvaluatedRegion, len(regions))
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(regions) + s.shards - 1) / s.shards
	for lo := 0; lo < len(regions); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(regions))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				stats, err := hypothesis.Evaluate(regions[i], pair)
				if err != nil {
					return err
				}
				evaluated[i] = hypothesis.EvaluatedRegion{Region: regions[i], Stats: stats}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	domFlags := hypothesis.AnalyzeDominance(evaluated)
	lrtFlags, err := hypothesis.ClassifyLRT(pair)
	if err != nil {
		return nil, err
	}

	rows := make([]hypothesis.AnalysisRow, len(evaluated))
	for i, e := range evaluated {
		rows[i] = hypothesis.AnalysisRow{
			Region:    e.Region,
			Stats:     e.Stats,
			Dominated: domFlags[e.Region.Key()],
			LRT:       lrtFlags[e.Region.Key()],
		}
	}

	return &AnalysisResult{
		AnalysisID:    core.AnalysisID(core.NewID()),
		Pair:          pair,
		Rows:          rows,
		PrefixRegions: hypothesis.PrefixRegions(pair),
		RuntimeMs:     time.Since(startTime).Milliseconds(),
	}, nil
}

// SelectRegion picks the most powerful likelihood-ratio test region whose
// size fits the budget.
func (s *AnalysisService) SelectRegion(ctx context.Context, pair hypothesis.DistributionPair, maxSize float64) (*SelectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	region, err := hypothesis.Select(pair, maxSize)
	if err != nil {
		return nil, err
	}
	stats, err := hypothesis.Evaluate(region, pair)
	if err != nil {
		return nil, err
	}

	return &SelectionResult{
		AnalysisID: core.AnalysisID(core.NewID()),
		Region:     region,
		Stats:      stats,
		MaxSize:    maxSize,
	}, nil
}
