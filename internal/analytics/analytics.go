package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"codeberg.org/askayo/server/askayo/daily"
	"codeberg.org/askayo/server/internal/errors"
)

const (
	topLimit    = 10
	recentLimit = 10

	DefaultDays = 30
	MaxDays     = 365

	activeWindow    = 7 * 24 * time.Hour
	retentionWindow = 30 * 24 * time.Hour
)

// lookup-count buckets, in display order
var bucketLabels = []string{"1-5", "6-10", "11-20", "21-50", "50+"}

func NewService(u UserStore, l LookupStore, f FeedbackStore, m MissingTermStore, d DailyStore) *Service {
	return &Service{
		users:    u,
		lookups:  l,
		feedback: f,
		missing:  m,
		daily:    d,
		now:      time.Now,
	}
}

// headline totals plus the top popular, confusing and missing terms
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var (
		out Overview
		err error
	)

	if out.Overview.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, errors.Persistence("count users", err)
	}

	if out.Overview.ActiveUsers, err = s.users.CountActiveSince(ctx, s.now().Add(-activeWindow)); err != nil {
		return nil, errors.Persistence("count active users", err)
	}

	if out.Overview.TotalLookups, err = s.lookups.Count(ctx); err != nil {
		return nil, errors.Persistence("count lookups", err)
	}

	if out.Overview.TotalFeedback, err = s.feedback.Count(ctx); err != nil {
		return nil, errors.Persistence("count feedback", err)
	}

	if out.PopularTerms, err = s.lookups.PopularTerms(ctx, topLimit); err != nil {
		return nil, errors.Persistence("popular terms", err)
	}

	if out.ConfusingTerms, err = s.feedback.ConfusingTerms(ctx, topLimit); err != nil {
		return nil, errors.Persistence("confusing terms", err)
	}

	missing, err := s.missing.Top(ctx, topLimit)
	if err != nil {
		return nil, errors.Persistence("missing terms", err)
	}

	out.MissingTerms = make([]MissingTermSummary, 0, len(missing))
	for _, m := range missing {
		out.MissingTerms = append(out.MissingTerms, MissingTermSummary{
			MissingText: m.MissingText,
			LookupCount: m.LookupCount,
			LastSeenAt:  m.LastSeenAt,
		})
	}

	return &out, nil
}

// parses the days query parameter; empty means DefaultDays
// only plain digit strings in [1, MaxDays] are accepted
func ParseDays(raw string) (int, error) {
	if raw == "" {
		return DefaultDays, nil
	}

	invalid := errors.Validation(fmt.Sprintf("days must be a whole number between 1 and %d", MaxDays), "days")

	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, invalid
		}
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > MaxDays {
		return 0, invalid
	}

	return days, nil
}

// rollups from the last days days, newest first
func (s *Service) Daily(ctx context.Context, days int) ([]daily.Rollup, error) {
	if days < 1 || days > MaxDays {
		return nil, errors.Validation(fmt.Sprintf("days must be a whole number between 1 and %d", MaxDays), "days")
	}

	since := s.now().UTC().AddDate(0, 0, -days).Format(time.DateOnly)

	rollups, err := s.daily.ListSince(ctx, since)
	if err != nil {
		return nil, errors.Persistence("list daily analytics", err)
	}

	return rollups, nil
}

// found-lookup and feedback breakdowns for one term
func (s *Service) TermDetail(ctx context.Context, termKey string) (*TermDetail, error) {
	if err := errors.Require(errors.Field{Name: "term_key", Value: termKey}); err != nil {
		return nil, err
	}

	totals, err := s.lookups.TermTotals(ctx, termKey)
	if err != nil {
		return nil, errors.Persistence("term totals", err)
	}

	complexity, err := s.lookups.ComplexityBreakdown(ctx, termKey)
	if err != nil {
		return nil, errors.Persistence("complexity breakdown", err)
	}

	fb, err := s.feedback.BreakdownForTerm(ctx, termKey)
	if err != nil {
		return nil, errors.Persistence("feedback breakdown", err)
	}

	recent, err := s.lookups.RecentForTerm(ctx, termKey, recentLimit)
	if err != nil {
		return nil, errors.Persistence("recent lookups", err)
	}

	return &TermDetail{
		TermKey:             termKey,
		TotalLookups:        totals.TotalLookups,
		UniqueUsers:         totals.UniqueUsers,
		ComplexityBreakdown: complexity,
		FeedbackBreakdown:   fb,
		RecentLookups:       recent,
	}, nil
}

// average usage, bucketed distribution and week-over-month retention
func (s *Service) UserEngagement(ctx context.Context) (*Engagement, error) {
	avg, err := s.users.AverageLookups(ctx)
	if err != nil {
		return nil, errors.Persistence("average lookups", err)
	}

	histogram, err := s.users.LookupHistogram(ctx)
	if err != nil {
		return nil, errors.Persistence("lookup histogram", err)
	}

	now := s.now()

	week, err := s.users.CountActiveSince(ctx, now.Add(-activeWindow))
	if err != nil {
		return nil, errors.Persistence("count weekly active users", err)
	}

	month, err := s.users.CountActiveSince(ctx, now.Add(-retentionWindow))
	if err != nil {
		return nil, errors.Persistence("count monthly active users", err)
	}

	counts := make(map[string]int, len(bucketLabels))
	for _, h := range histogram {
		counts[bucketFor(h.TotalLookups)] += h.Users
	}

	distribution := make([]Bucket, 0, len(bucketLabels))
	for _, label := range bucketLabels {
		distribution = append(distribution, Bucket{Bucket: label, UserCount: counts[label]})
	}

	return &Engagement{
		AvgLookupsPerUser: strconv.FormatFloat(avg, 'f', 2, 64),
		UserDistribution:  distribution,
		Retention: Retention{
			ActiveLastWeek:  week,
			ActiveLastMonth: month,
			RetentionRate:   retentionRate(week, month),
		},
	}, nil
}

// totals at or below 5 (including 0) land in "1-5"
func bucketFor(totalLookups int) string {
	switch {
	case totalLookups <= 5:
		return "1-5"
	case totalLookups <= 10:
		return "6-10"
	case totalLookups <= 20:
		return "11-20"
	case totalLookups <= 50:
		return "21-50"
	default:
		return "50+"
	}
}

func retentionRate(week, month int) string {
	if month == 0 {
		return "0%"
	}

	return fmt.Sprintf("%.2f%%", float64(week)/float64(month)*100)
}
