// ABOUTME: Ranker re-scores vector search candidates with heuristic adjustments
// ABOUTME: Combines semantic similarity with source-type, recency and length boosts
package core

import (
	"sort"
	"time"

	"flipflops/internal/models"
)

const (
	// defaultBaseScore is assumed when a candidate carries no similarity score.
	defaultBaseScore = 0.5

	// DefaultMinScoreThreshold filters out weakly relevant candidates.
	DefaultMinScoreThreshold = 0.6

	pdfBoost        = 1.05
	longTextBoost   = 1.05
	shortTextFactor = 0.95
	minRecencyFloor = 0.9
)

// Ranker orders retrieved candidates by adjusted relevance.
type Ranker struct {
	minScore float64
	now      func() time.Time
}

// NewRanker creates a Ranker with the given score threshold. A non-positive
// threshold falls back to the default.
func NewRanker(minScore float64) *Ranker {
	if minScore <= 0 {
		minScore = DefaultMinScoreThreshold
	}
	return &Ranker{
		minScore: minScore,
		now:      time.Now,
	}
}

// RankResults scores each candidate and returns those at or above the
// threshold, ordered descending by final score. Ties keep input order.
// An empty candidate list returns an empty result, never an error.
func (r *Ranker) RankResults(query *models.Query, candidates []*models.Embedding) []models.RankedResult {
	results := make([]models.RankedResult, 0, len(candidates))

	for _, candidate := range candidates {
		score := r.scoreCandidate(candidate)
		if score < r.minScore {
			continue
		}
		results = append(results, models.RankedResult{
			Embedding:  candidate,
			FinalScore: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	return results
}

// scoreCandidate applies the multiplicative adjustments in a fixed order:
// source type, recency, then text length.
func (r *Ranker) scoreCandidate(candidate *models.Embedding) float64 {
	score := candidate.GetMetadataFloat("score", defaultBaseScore)

	if candidate.GetMetadataString("file_type", "") == "pdf" {
		score *= pdfBoost
	}

	score *= r.recencyFactor(candidate)

	length := len(candidate.Text)
	switch {
	case length > 500:
		score *= longTextBoost
	case length < 100:
		score *= shortTextFactor
	}

	return score
}

// recencyFactor favors recently created chunks. The factor decays linearly
// over one year and clamps to [0.9, 1.0]. Missing or unparseable dates
// contribute no adjustment.
func (r *Ranker) recencyFactor(candidate *models.Embedding) float64 {
	raw := candidate.GetMetadataString("created_at", "")
	if raw == "" {
		return 1.0
	}

	created, err := parseDate(raw)
	if err != nil {
		return 1.0
	}

	daysOld := r.now().Sub(created).Hours() / 24
	if daysOld < 0 {
		daysOld = 0
	}

	factor := 1.0 - daysOld/365
	if factor < minRecencyFloor {
		factor = minRecencyFloor
	}
	return factor
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
