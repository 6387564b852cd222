package dashboard

import (
	"context"
	"log"

	"github.com/Kariqs/carta-vendor-portal/models"
)

type AnalyticsAPI interface {
	GetAnalytics(ctx context.Context) (*models.Analytics, error)
}

type AnalyticsReader struct {
	api AnalyticsAPI
}

func NewAnalyticsReader(api AnalyticsAPI) *AnalyticsReader {
	return &AnalyticsReader{api: api}
}

// Snapshot returns the vendor's sales figures, defaulting to zero revenue and
// zero orders on any failure.
func (r *AnalyticsReader) Snapshot(ctx context.Context) models.Analytics {
	stats, err := r.api.GetAnalytics(ctx)
	if err != nil || stats == nil {
		log.Println("Failed to fetch analytics:", err)
		return models.Analytics{}
	}
	return *stats
}
