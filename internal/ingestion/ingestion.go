package ingestion

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"time"

	"codeberg.org/askayo/server/askayo/feedback"
	"codeberg.org/askayo/server/askayo/lookups"
	"codeberg.org/askayo/server/askayo/missingterms"
	"codeberg.org/askayo/server/askayo/users"
	"codeberg.org/askayo/server/internal/errors"
	"codeberg.org/askayo/server/internal/events"
)

func NewService(u UserStore, l LookupStore, f FeedbackStore, tx Transactor, ev events.Emitter) *Service {
	return &Service{
		users:    u,
		lookups:  l,
		feedback: f,
		tx:       tx,
		events:   ev,
		now:      time.Now,
	}
}

// records one lookup: bumps the user's counter, stores the lookup row and,
// for explicit misses, counts the missing term; all three commit together
func (s *Service) RecordLookup(ctx context.Context, in LookupInput) (*LookupResult, error) {
	if err := errors.Require(
		errors.Field{Name: "client_id", Value: in.ClientID},
		errors.Field{Name: "term_key", Value: in.TermKey},
	); err != nil {
		return nil, err
	}

	found := in.Found == nil || *in.Found

	lookup := &lookups.Lookup{
		ClientID:        in.ClientID,
		TermKey:         in.TermKey,
		TermDisplay:     in.TermDisplay,
		ComplexityLevel: in.ComplexityLevel,
		PageURL:         in.PageURL,
		PageContext:     in.PageContext,
		Found:           found,
	}

	if strings.TrimSpace(lookup.TermDisplay) == "" {
		lookup.TermDisplay = in.TermKey
	}

	if strings.TrimSpace(lookup.ComplexityLevel) == "" {
		lookup.ComplexityLevel = lookups.DefaultComplexity
	}

	var user *users.User

	err := s.tx.InTx(ctx, func(w LookupWriters) error {
		var err error

		user, err = w.Users.RecordLookup(ctx, in.ClientID)
		if err != nil {
			return errors.Persistence("record user lookup", err)
		}

		if err := w.Lookups.Create(ctx, lookup); err != nil {
			return errors.Persistence("create term lookup", err)
		}

		if found {
			return nil
		}

		_, err = w.Missing.Record(ctx, missingterms.Occurrence{
			ClientID:    in.ClientID,
			Text:        in.TermKey,
			PageURL:     in.PageURL,
			PageContext: in.PageContext,
		})

		return errors.Persistence("record missing term", err)
	})

	if err != nil {
		var pe *errors.PersistenceError
		if !stderrors.As(err, &pe) {
			err = errors.Persistence("record lookup", err)
		}

		return nil, err
	}

	s.events.Track(events.TermLookup, events.Properties{
		"term_key":         in.TermKey,
		"complexity_level": lookup.ComplexityLevel,
		"found":            found,
	})

	return &LookupResult{
		LookupID:     lookup.ID,
		TotalLookups: user.TotalLookups,
	}, nil
}

// validates and stores one feedback submission
func (s *Service) SubmitFeedback(ctx context.Context, in FeedbackInput) (int64, error) {
	if err := errors.Require(
		errors.Field{Name: "client_id", Value: in.ClientID},
		errors.Field{Name: "term_key", Value: in.TermKey},
		errors.Field{Name: "feedback_type", Value: in.FeedbackType},
	); err != nil {
		return 0, err
	}

	if !feedback.IsValidType(in.FeedbackType) {
		return 0, errors.Validation(
			fmt.Sprintf("feedback_type must be one of: %s", feedback.ValidTypesList()),
			"feedback_type",
		)
	}

	fb := &feedback.Feedback{
		ClientID:        in.ClientID,
		TermKey:         in.TermKey,
		FeedbackType:    feedback.Type(in.FeedbackType),
		ComplexityLevel: in.ComplexityLevel,
		Comment:         in.Comment,
	}

	if err := s.feedback.Create(ctx, fb); err != nil {
		return 0, errors.Persistence("create feedback", err)
	}

	props := events.Properties{
		"term_key":      in.TermKey,
		"feedback_type": in.FeedbackType,
	}

	if in.ComplexityLevel != nil {
		props["complexity_level"] = *in.ComplexityLevel
	}

	s.events.Track(events.FeedbackSubmitted, props)

	return fb.ID, nil
}

// usage summary for one client, recomputed on every call
func (s *Service) UserStats(ctx context.Context, clientID string) (*UserStats, error) {
	user, err := s.users.FindByClientID(ctx, clientID)
	if stderrors.Is(err, users.ErrNotFound) {
		return &UserStats{}, nil
	}

	if err != nil {
		return nil, errors.Persistence("find user", err)
	}

	uniqueTerms, err := s.lookups.CountDistinctTermsForClient(ctx, clientID)
	if err != nil {
		return nil, errors.Persistence("count unique terms", err)
	}

	first, err := s.lookups.FirstLookupForClient(ctx, clientID)
	if err != nil {
		return nil, errors.Persistence("find first lookup", err)
	}

	return &UserStats{
		TotalLookups: user.TotalLookups,
		UniqueTerms:  uniqueTerms,
		DaysActive:   daysActive(first, s.now()),
		FirstSeen:    &user.FirstSeenAt,
		LastSeen:     &user.LastSeenAt,
	}, nil
}

// whole days since first, rounded up; 0 when there is no first lookup
func daysActive(first *time.Time, now time.Time) int {
	if first == nil {
		return 0
	}

	elapsed := now.Sub(*first)
	if elapsed <= 0 {
		return 0
	}

	return int(math.Ceil(elapsed.Hours() / 24))
}
