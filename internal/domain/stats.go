package domain

import "context"

// FrequencyCount is one entry of a ranked frequency rollup.
type FrequencyCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// MonthCount is one bucket of the request-volume time series, keyed
// "YYYY-MM".
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// RequestStatusCounts breaks the ledger down by workflow status.
type RequestStatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// StatsSnapshot is the read-only dashboard rollup over the candidate
// catalog and the request ledger.
type StatsSnapshot struct {
	TotalCandidates      int64               `json:"total_candidates"`
	NewCandidates30Days  int64               `json:"new_candidates_30_days"`
	TotalEmployers       int64               `json:"total_employers"`
	TotalRequests        int64               `json:"total_requests"`
	NewRequests30Days    int64               `json:"new_requests_30_days"`
	RequestsByStatus     RequestStatusCounts `json:"requests_by_status"`
	TopCities            []FrequencyCount    `json:"top_cities"`
	TopNationalities     []FrequencyCount    `json:"top_nationalities"`
	SkillFrequency       []FrequencyCount    `json:"skill_frequency"`
	MonthlyRequestVolume []MonthCount        `json:"monthly_request_volume"`
}

type StatsRepository interface {
	CountCandidates(ctx context.Context) (total, last30Days int64, err error)
	CountEmployers(ctx context.Context) (int64, error)
	CountRequests(ctx context.Context) (total, last30Days int64, err error)
	CountRequestsByStatus(ctx context.Context) (RequestStatusCounts, error)
	TopCities(ctx context.Context, n int) ([]FrequencyCount, error)
	TopNationalities(ctx context.Context, n int) ([]FrequencyCount, error)
	// SkillColumnsBySubmission returns every candidate's raw skills string
	// ordered by submission time ascending, so the aggregator can break
	// frequency ties by first-seen order.
	SkillColumnsBySubmission(ctx context.Context) ([]string, error)
	MonthlyRequestVolume(ctx context.Context, months int) ([]MonthCount, error)
}

type StatsUsecase interface {
	ComputeStatistics(ctx context.Context) (*StatsSnapshot, error)
}
