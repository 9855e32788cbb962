package db

import "time"

// Run is one saved benchmark run summary. Raw per-trial samples are not
// persisted; the summary is enough to track a comparison over time.
type Run struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	CandidateA string    `json:"candidate_a"`
	CandidateB string    `json:"candidate_b"`
	Trials     int       `json:"trials"`
	MeanA      float64   `json:"mean_a"` // ms per pass
	MeanB      float64   `json:"mean_b"`
	MedianA    float64   `json:"median_a"`
	MedianB    float64   `json:"median_b"`
	OpsA       float64   `json:"ops_a"` // ops/sec
	OpsB       float64   `json:"ops_b"`
}
