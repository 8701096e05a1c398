package domain

import "github.com/shopspring/decimal"

// ScoreResult is the per-card output of one scoring pass.
type ScoreResult struct {
	Score             float64
	CashbackValue     decimal.Decimal
	MatchedFeatures   []Feature
	AvailableFeatures []Feature
}

// ScoreSummary describes the score distribution over the eligible
// candidate set for one request.
type ScoreSummary struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Candidates int     `json:"candidates"`
}
