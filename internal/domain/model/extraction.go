package model

import (
	"time"

	"census-etl/internal/domain/entity"
)

// FailureReason classifies why a jurisdiction contributed no rows.
type FailureReason string

const (
	FailureNoContent     FailureReason = "NO_CONTENT"
	FailureClientError   FailureReason = "CLIENT_ERROR"
	FailureServerError   FailureReason = "SERVER_ERROR"
	FailureRequestFailed FailureReason = "REQUEST_FAILED"
)

// JurisdictionFailure records a jurisdiction that was skipped during an extraction run.
type JurisdictionFailure struct {
	Code       string        `json:"code"`
	StatusCode int           `json:"statusCode,omitempty"`
	Reason     FailureReason `json:"reason"`
	Message    string        `json:"message,omitempty"`
}

// ExtractionResult is the outcome of one pass over all jurisdictions.
type ExtractionResult struct {
	Cities      []entity.CityPopulation `json:"cities"`
	Failures    []JurisdictionFailure   `json:"failures"`
	SkippedRows int                     `json:"skippedRows"`
}

// RunSummary describes one pipeline run.
type RunSummary struct {
	RequestID           string                `json:"requestId"`
	StartedAt           time.Time             `json:"startedAt"`
	FinishedAt          time.Time             `json:"finishedAt"`
	Jurisdictions       int                   `json:"jurisdictions"`
	FailedJurisdictions []JurisdictionFailure `json:"failedJurisdictions"`
	SkippedRows         int                   `json:"skippedRows"`
	RecordsExtracted    int                   `json:"recordsExtracted"`
	RecordsLoaded       int64                 `json:"recordsLoaded"`
	DryRun              bool                  `json:"dryRun"`
}
