package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/careledger/clinic-api/internal/core/domain"
)

// memStore is an in-memory stand-in for the relational store. RunInTx
// snapshots state and restores it when fn fails, so atomicity is observable.
type memStore struct {
	users       map[string]domain.User
	clients     []domain.Client
	programs    []domain.Program
	enrollments []domain.Enrollment
	outcomes    []domain.ProgramOutcome
	activity    []domain.ActivityLog

	nextID int64
	clock  time.Time

	appendErr error
}

type memSnapshot struct {
	users       map[string]domain.User
	clients     []domain.Client
	programs    []domain.Program
	enrollments []domain.Enrollment
	outcomes    []domain.ProgramOutcome
	activity    []domain.ActivityLog
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[string]domain.User),
		clock: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) snapshot() memSnapshot {
	users := make(map[string]domain.User, len(m.users))
	for k, v := range m.users {
		users[k] = v
	}
	return memSnapshot{
		users:       users,
		clients:     append([]domain.Client(nil), m.clients...),
		programs:    append([]domain.Program(nil), m.programs...),
		enrollments: append([]domain.Enrollment(nil), m.enrollments...),
		outcomes:    append([]domain.ProgramOutcome(nil), m.outcomes...),
		activity:    append([]domain.ActivityLog(nil), m.activity...),
		nextID:      m.nextID,
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.users = s.users
	m.clients = s.clients
	m.programs = s.programs
	m.enrollments = s.enrollments
	m.outcomes = s.outcomes
	m.activity = s.activity
	m.nextID = s.nextID
}

// --- ports.TxManager ---

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := m.snapshot()
	if err := fn(ctx); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- ports.UserRepository ---

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.Username]; ok {
		return nil, domain.ErrUsernameTaken
	}
	clone := *u
	clone.ID = r.id()
	r.users[clone.Username] = clone
	return &clone, nil
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// --- ports.ClientRepository ---

type memClients struct{ *memStore }

func (r memClients) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	clone := *c
	clone.ID = r.id()
	clone.CreatedAt = r.tick()
	r.clients = append(r.clients, clone)
	return &clone, nil
}

func (r memClients) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r memClients) List(_ context.Context) ([]domain.Client, error) {
	return append([]domain.Client(nil), r.clients...), nil
}

// --- ports.ProgramRepository ---

type memPrograms struct{ *memStore }

func (r memPrograms) Create(_ context.Context, p *domain.Program) (*domain.Program, error) {
	for _, existing := range r.programs {
		if existing.Name == p.Name {
			return nil, domain.ErrProgramExists
		}
	}
	clone := *p
	clone.ID = r.id()
	clone.CreatedAt = r.tick()
	r.programs = append(r.programs, clone)
	return &clone, nil
}

func (r memPrograms) FindByID(_ context.Context, id int64) (*domain.Program, error) {
	for _, p := range r.programs {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProgramNotFound
}

func (r memPrograms) List(_ context.Context) ([]domain.Program, error) {
	return append([]domain.Program(nil), r.programs...), nil
}

func (r memPrograms) name(id int64) string {
	for _, p := range r.programs {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// --- ports.EnrollmentRepository ---

type memEnrollments struct{ *memStore }

func (r memEnrollments) Enroll(_ context.Context, clientID, programID int64) (bool, error) {
	for _, e := range r.enrollments {
		if e.ClientID == clientID && e.ProgramID == programID {
			return false, nil
		}
	}
	r.enrollments = append(r.enrollments, domain.Enrollment{
		ID:         r.id(),
		ClientID:   clientID,
		ProgramID:  programID,
		EnrolledAt: r.tick(),
	})
	return true, nil
}

func (r memEnrollments) ProgramNames(_ context.Context, clientID int64) ([]string, error) {
	var names []string
	for _, e := range r.enrollments {
		if e.ClientID == clientID {
			names = append(names, memPrograms(r).name(e.ProgramID))
		}
	}
	return names, nil
}

func (r memEnrollments) count(clientID, programID int64) int {
	n := 0
	for _, e := range r.enrollments {
		if e.ClientID == clientID && e.ProgramID == programID {
			n++
		}
	}
	return n
}

// --- ports.OutcomeRepository ---

type memOutcomes struct{ *memStore }

func (r memOutcomes) Create(_ context.Context, o *domain.ProgramOutcome) (*domain.ProgramOutcome, error) {
	clone := *o
	clone.ID = r.id()
	clone.RecordedAt = r.tick()
	r.outcomes = append(r.outcomes, clone)
	return &clone, nil
}

func (r memOutcomes) ListByClient(_ context.Context, clientID int64) ([]domain.OutcomeRecord, error) {
	var out []domain.OutcomeRecord
	for _, o := range r.outcomes {
		if o.ClientID != clientID {
			continue
		}
		out = append(out, domain.OutcomeRecord{
			ID:         o.ID,
			ProgramID:  o.ProgramID,
			Program:    memPrograms(r).name(o.ProgramID),
			Outcome:    o.Outcome,
			Notes:      o.Notes,
			RecordedAt: o.RecordedAt,
		})
	}
	return out, nil
}

// --- ports.ActivityRepository ---

type memActivity struct{ *memStore }

func (r memActivity) Append(_ context.Context, e *domain.ActivityLog) (*domain.ActivityLog, error) {
	if r.appendErr != nil {
		return nil, r.appendErr
	}
	clone := *e
	clone.ID = r.id()
	clone.Timestamp = r.tick()
	r.activity = append(r.activity, clone)
	return &clone, nil
}

func (r memActivity) List(_ context.Context) ([]domain.ActivityLog, error) {
	out := append([]domain.ActivityLog(nil), r.activity...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

var errStoreDown = errors.New("store unavailable")
