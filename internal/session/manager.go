package session

import (
	"context"
	"sync"

	"handup/internal/domain"
)

// State is the session lifecycle position.
type State int

const (
	// Anonymous means no user is signed in.
	Anonymous State = iota
	// Authenticating means a login or register call is in flight.
	Authenticating
	// Authenticated means a user and token are held.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return "anonymous"
}

// Manager holds the single mutable session snapshot {user, token, loading}
// and orchestrates the authentication lifecycle against the marketplace API.
//
// Mutations are ordered by a generation counter: Logout and every applied
// mutation advance it, and an in-flight operation whose generation is stale
// by the time its response arrives is discarded.
type Manager struct {
	api domain.Marketplace

	mu       sync.Mutex
	user     *domain.UserProfile
	token    string
	inflight int
	gen      uint64
}

// New returns an anonymous session backed by api.
func New(api domain.Marketplace) *Manager {
	return &Manager{api: api}
}

// Login authenticates and, on success, stores the user and token. The error
// from the API is returned untouched; only loading bookkeeping is recovered.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	gen := m.begin()
	defer m.end()

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	m.commit(gen, resp.User, resp.Token)
	return nil
}

// Register creates the account and then logs in with the same credentials.
// Registration alone does not establish a session: if the login step fails
// the session stays anonymous and that failure is returned, even though the
// account now exists server-side.
func (m *Manager) Register(ctx context.Context, req domain.RegisterRequest) error {
	gen := m.begin()
	defer m.end()

	if _, err := m.api.Register(ctx, req); err != nil {
		return err
	}
	resp, err := m.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	m.commit(gen, resp.User, resp.Token)
	return nil
}

// Logout clears the session synchronously and unconditionally. No network
// call is made; calling it on an anonymous session is a no-op. Any operation
// still in flight when Logout runs will have its result discarded.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.user = nil
	m.token = ""
	m.api.SetToken("")
}

// RefreshProfile refetches the signed-in user's profile and replaces the
// stored snapshot. It is a no-op when the session is anonymous.
func (m *Manager) RefreshProfile(ctx context.Context) error {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return nil
	}
	id := m.user.ID
	gen := m.gen
	m.mu.Unlock()

	profile, err := m.api.GetProfile(ctx, id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		// Session changed while the fetch was in flight; drop the result.
		return nil
	}
	m.gen++
	m.user = &profile
	return nil
}

// State reports the lifecycle position.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.user != nil:
		return Authenticated
	case m.inflight > 0:
		return Authenticating
	}
	return Anonymous
}

// Loading reports whether a login or register call is in flight. Consumers
// use it to drive progress UI.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight > 0
}

// User returns the current profile snapshot, if authenticated.
func (m *Manager) User() (domain.UserProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return domain.UserProfile{}, false
	}
	return *m.user, true
}

// Token returns the bearer token, empty when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Role returns the signed-in user's role, or the empty role when anonymous.
func (m *Manager) Role() domain.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return ""
	}
	return m.user.Role
}

// begin marks a mutating operation in flight and snapshots the generation it
// must still match to commit.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight++
	return m.gen
}

func (m *Manager) end() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight--
}

// commit installs {user, token} unless a newer mutation began after gen was
// snapshotted, in which case the result is discarded.
func (m *Manager) commit(gen uint64, user domain.UserProfile, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	m.gen++
	m.user = &user
	m.token = token
	m.api.SetToken(token)
}
