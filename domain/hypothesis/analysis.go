package hypothesis

// AnalysisRow is one line of the full rejection-region table: a region,
// its operating characteristics, and its classification flags. Rows are
// produced in enumeration order so renderings are reproducible.
type AnalysisRow struct {
	Region    Region      `json:"region"`
	Stats     RegionStats `json:"stats"`
	Dominated bool        `json:"dominated"`
	LRT       bool        `json:"lrt"`
}
