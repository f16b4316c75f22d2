package datasource

import (
	"context"

	"weather-report/models"
)

// ReportSource defines the interface for any provider that can build a full weather report
type ReportSource interface {
	Name() string
	FetchReport(ctx context.Context, location string) (models.Report, error)
}
