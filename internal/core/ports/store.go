package ports

import "go.trai.ch/tabu/internal/core/domain"

// ReportStore defines the interface for storing and retrieving run reports.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the best report recorded for a problem fingerprint.
	// Returns nil, nil if not found.
	Get(fingerprint string) (*domain.RunReport, error)

	// Put stores the report under its fingerprint.
	Put(report domain.RunReport) error
}
