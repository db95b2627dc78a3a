package sales

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Service interface {
	Report(ctx context.Context, granularity Granularity) ([]Row, error)
	Export(ctx context.Context, granularity Granularity, renderer Renderer) ([]byte, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Report fetches the period buckets and formats their labels for display.
func (s *service) Report(ctx context.Context, granularity Granularity) ([]Row, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Report"),
		zap.String("granularity", string(granularity)),
	)

	if !granularity.Valid() {
		log.Warn("unknown granularity")
		return nil, ErrInvalidGranularity
	}

	buckets, err := s.repo.GetBuckets(ctx, granularity)
	if err != nil {
		log.Error("failed to load buckets", zap.Error(err))
		return nil, err
	}

	rows := make([]Row, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, Row{
			Period:      periodLabel(granularity, b.Start),
			TotalOrders: b.TotalOrders,
			TotalSales:  b.TotalSales,
		})
	}

	return rows, nil
}

// Export prepares the formatted rows and hands them to the renderer. This
// layer never touches document bytes itself.
func (s *service) Export(ctx context.Context, granularity Granularity, renderer Renderer) ([]byte, error) {
	rows, err := s.Report(ctx, granularity)
	if err != nil {
		return nil, err
	}
	return renderer.Render(rows)
}

// periodLabel formats a bucket start for display. Weekly labels span the
// Monday-start week through its Sunday.
func periodLabel(granularity Granularity, start time.Time) string {
	switch granularity {
	case GranularityWeekly:
		sunday := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s – %s", start.Format("Jan 02"), sunday.Format("Jan 02, 2006"))
	case GranularityMonthly:
		return start.Format("January 2006")
	default:
		return start.Format("Jan 02, 2006")
	}
}
