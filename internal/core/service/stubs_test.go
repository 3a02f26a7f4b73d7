package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository preserving insertion order.
type stubUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	order  []int64
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = created
	r.order = append(r.order, created.ID)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if r.users[id].Email == email {
			return cloneUser(r.users[id]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, id := range r.order {
		out = append(out, *r.users[id])
	}
	return out, nil
}

func (r *stubUserRepo) ListPending(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, id := range r.order {
		if !r.users[id].Approved {
			out = append(out, *r.users[id])
		}
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id int64, name, lastName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name, u.LastName, u.Email = name, lastName, email
	return nil
}

func (r *stubUserRepo) SetApproved(_ context.Context, id int64, approved bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Approved = approved
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// stubCaseRepo is an in-memory CaseRepository preserving insertion order.
type stubCaseRepo struct {
	mu     sync.Mutex
	cases  map[int64]*domain.Case
	order  []int64
	nextID int64
}

func newStubCaseRepo() *stubCaseRepo {
	return &stubCaseRepo{cases: make(map[int64]*domain.Case)}
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.Case) (*domain.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *c
	created.ID = r.nextID
	r.cases[created.ID] = &created
	r.order = append(r.order, created.ID)
	out := created
	return &out, nil
}

func (r *stubCaseRepo) FindByID(_ context.Context, id int64) (*domain.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	out := *c
	return &out, nil
}

func (r *stubCaseRepo) List(_ context.Context) ([]domain.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Case
	for _, id := range r.order {
		out = append(out, *r.cases[id])
	}
	return out, nil
}

func (r *stubCaseRepo) Update(_ context.Context, id int64, title, description, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok {
		return domain.ErrCaseNotFound
	}
	c.Title, c.Description, c.Content = title, description, content
	return nil
}

func (r *stubCaseRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cases[id]; !ok {
		return domain.ErrCaseNotFound
	}
	delete(r.cases, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// stubMailer counts sends and optionally fails them.
type stubMailer struct {
	mu    sync.Mutex
	sends int
	fail  bool
}

func (m *stubMailer) SendApproval(_ context.Context, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends++
	if m.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func (m *stubMailer) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sends
}

// stubSessionStore is an in-memory SessionStore; TTLs are recorded and
// otherwise ignored.
type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]int64
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]int64)}
}

func (s *stubSessionStore) Save(_ context.Context, sid string, userID int64, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = userID
	return nil
}

func (s *stubSessionStore) Lookup(_ context.Context, sid string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid, ok := s.sessions[sid]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return uid, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
