package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"karigar-api/internal/model"
)

func emptyAnalytics() model.Analytics {
	return model.Analytics{WeeklyStats: []model.WeeklyStat{}}
}

func (s *Store) loadAnalytics(ctx context.Context) (model.Analytics, error) {
	raw, err := s.read(ctx, keyAnalytics)
	if err != nil {
		return model.Analytics{}, err
	}
	if raw == nil {
		return emptyAnalytics(), nil
	}

	var analytics model.Analytics
	if err := json.Unmarshal(raw, &analytics); err != nil {
		if resetErr := s.resetCorrupted(ctx, keyAnalytics, err); resetErr != nil {
			return model.Analytics{}, resetErr
		}
		return emptyAnalytics(), nil
	}
	if analytics.WeeklyStats == nil {
		analytics.WeeklyStats = []model.WeeklyStat{}
	}
	return analytics, nil
}

// GetAnalytics returns the running totals and weekly breakdown, all zero and
// empty when nothing has been recorded yet.
func (s *Store) GetAnalytics(ctx context.Context) (model.Analytics, error) {
	return s.loadAnalytics(ctx)
}

// applyEvent increments the matching running total and the matching field of
// the current week's bucket, creating the bucket when absent, then truncates
// the weekly list to the most recent entries. Truncation always drops from
// the front after the update, so a backdated bucket can be created and
// immediately evicted.
//
// Callers hold s.mu.
func (s *Store) applyEvent(ctx context.Context, event model.AnalyticsEvent) error {
	analytics, err := s.loadAnalytics(ctx)
	if err != nil {
		return err
	}

	switch event {
	case model.EventProductCreated:
		analytics.TotalProducts++
	case model.EventProductViewed:
		analytics.TotalViews++
	case model.EventChatSent:
		analytics.TotalChats++
	}

	week := weekLabel(s.now())
	index := -1
	for i := range analytics.WeeklyStats {
		if analytics.WeeklyStats[i].Week == week {
			index = i
			break
		}
	}
	if index == -1 {
		analytics.WeeklyStats = append(analytics.WeeklyStats, model.WeeklyStat{Week: week})
		index = len(analytics.WeeklyStats) - 1
	}

	switch event {
	case model.EventProductCreated:
		analytics.WeeklyStats[index].Products++
	case model.EventProductViewed:
		analytics.WeeklyStats[index].Views++
	case model.EventChatSent:
		analytics.WeeklyStats[index].Chats++
	}

	if len(analytics.WeeklyStats) > model.MaxWeeklyStats {
		analytics.WeeklyStats = analytics.WeeklyStats[len(analytics.WeeklyStats)-model.MaxWeeklyStats:]
	}

	return s.write(ctx, keyAnalytics, analytics)
}

// weekLabel formats t as "YYYY-W##" where the week number is
// ceil((daysSinceJan1 + weekdayOfJan1 + 1) / 7), Sunday counting as 0.
func weekLabel(t time.Time) string {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.Sub(start).Hours() / 24
	week := int(math.Ceil((days + float64(start.Weekday()) + 1) / 7))
	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}
