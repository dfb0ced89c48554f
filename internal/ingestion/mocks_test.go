package ingestion

import (
	"context"
	"maps"
	"sync"
	"time"

	"codeberg.org/askayo/server/askayo/feedback"
	"codeberg.org/askayo/server/askayo/lookups"
	"codeberg.org/askayo/server/askayo/missingterms"
	"codeberg.org/askayo/server/askayo/users"
	"codeberg.org/askayo/server/internal/events"
)

// in-memory UserStore mirroring the upsert-with-increment semantics
type mockUsers struct {
	mu               sync.Mutex
	byClient         map[string]*users.User
	recordLookupFunc func(ctx context.Context, clientID string) (*users.User, error)
	findFunc         func(ctx context.Context, clientID string) (*users.User, error)
	now              time.Time
}

func newMockUsers(now time.Time) *mockUsers {
	return &mockUsers{byClient: map[string]*users.User{}, now: now}
}

func (m *mockUsers) RecordLookup(ctx context.Context, clientID string) (*users.User, error) {
	if m.recordLookupFunc != nil {
		return m.recordLookupFunc(ctx, clientID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byClient[clientID]
	if !ok {
		u = &users.User{ID: int64(len(m.byClient) + 1), ClientID: clientID, FirstSeenAt: m.now}
		m.byClient[clientID] = u
	}

	u.TotalLookups++
	u.LastSeenAt = m.now

	cp := *u

	return &cp, nil
}

func (m *mockUsers) FindByClientID(ctx context.Context, clientID string) (*users.User, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, clientID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byClient[clientID]
	if !ok {
		return nil, users.ErrNotFound
	}

	cp := *u

	return &cp, nil
}

func (m *mockUsers) snapshot() map[string]users.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]users.User, len(m.byClient))
	for k, u := range m.byClient {
		out[k] = *u
	}

	return out
}

func (m *mockUsers) restore(snap map[string]users.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byClient = make(map[string]*users.User, len(snap))
	for k, u := range snap {
		m.byClient[k] = &u
	}
}

type mockLookups struct {
	created       []*lookups.Lookup
	createFunc    func(ctx context.Context, l *lookups.Lookup) error
	distinctTerms int
	firstLookup   *time.Time
	distinctErr   error
}

func (m *mockLookups) Create(ctx context.Context, l *lookups.Lookup) error {
	if m.createFunc != nil {
		if err := m.createFunc(ctx, l); err != nil {
			return err
		}
	}

	m.created = append(m.created, l)
	l.ID = int64(len(m.created))

	return nil
}

func (m *mockLookups) CountDistinctTermsForClient(_ context.Context, _ string) (int, error) {
	return m.distinctTerms, m.distinctErr
}

func (m *mockLookups) FirstLookupForClient(_ context.Context, _ string) (*time.Time, error) {
	return m.firstLookup, nil
}

type mockFeedback struct {
	created []*feedback.Feedback
}

func (m *mockFeedback) Create(_ context.Context, f *feedback.Feedback) error {
	m.created = append(m.created, f)
	f.ID = int64(len(m.created))

	return nil
}

// counts occurrences by normalized text
type mockMissing struct {
	counts     map[string]int
	recordFunc func(ctx context.Context, occ missingterms.Occurrence) error
}

func (m *mockMissing) Record(ctx context.Context, occ missingterms.Occurrence) (*missingterms.MissingTerm, error) {
	if m.recordFunc != nil {
		if err := m.recordFunc(ctx, occ); err != nil {
			return nil, err
		}
	}

	if m.counts == nil {
		m.counts = map[string]int{}
	}

	key := missingterms.Normalize(occ.Text)
	m.counts[key]++

	return &missingterms.MissingTerm{MissingText: key, LookupCount: m.counts[key]}, nil
}

// runs fn against the in-memory stores and puts their state back when fn fails
type mockTx struct {
	users    *mockUsers
	lookups  *mockLookups
	missing  *mockMissing
	beginErr error
}

func (m *mockTx) InTx(_ context.Context, fn func(w LookupWriters) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}

	userSnap := m.users.snapshot()
	created := len(m.lookups.created)
	missingSnap := maps.Clone(m.missing.counts)

	err := fn(LookupWriters{Users: m.users, Lookups: m.lookups, Missing: m.missing})
	if err != nil {
		m.users.restore(userSnap)
		m.lookups.created = m.lookups.created[:created]
		m.missing.counts = missingSnap
	}

	return err
}

type trackedEvent struct {
	name  string
	props events.Properties
}

type mockEmitter struct {
	tracked []trackedEvent
	errs    []error
}

func (m *mockEmitter) Track(event string, props events.Properties) {
	m.tracked = append(m.tracked, trackedEvent{name: event, props: props})
}

func (m *mockEmitter) TrackError(err error, _ events.Properties) {
	m.errs = append(m.errs, err)
}
