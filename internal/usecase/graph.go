package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
	"go.uber.org/zap"
)

const maxYear = 9999

// MonthlyGraph количество ссылок по месяцам создания за все годы
func (u *URLUsecase) MonthlyGraph(ctx context.Context) ([]model.GraphPoint, error) {
	points, err := u.repo.CountLinksByMonth(ctx)
	if err != nil {
		u.logger.Error("failed to count links by month", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nonNilPoints(points), nil
}

// DailyGraph количество ссылок по дням месяца month ("01".."12") года year.
// При year == 0 берётся текущий год (UTC).
func (u *URLUsecase) DailyGraph(ctx context.Context, month string, year int) ([]model.GraphPoint, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	if year == 0 {
		year = u.now().UTC().Year()
	}
	if year < 1 || year > maxYear {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	from := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	points, err := u.repo.CountLinksByDay(ctx, from, to)
	if err != nil {
		u.logger.Error("failed to count links by day",
			zap.String("month", month),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nonNilPoints(points), nil
}

// parseMonth принимает ровно две цифры от 01 до 12
func parseMonth(month string) (time.Month, error) {
	t, err := time.Parse("01", month)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	return t.Month(), nil
}

func nonNilPoints(points []model.GraphPoint) []model.GraphPoint {
	if points == nil {
		return []model.GraphPoint{}
	}
	return points
}
