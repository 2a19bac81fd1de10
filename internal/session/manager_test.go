package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"handup/internal/domain"
	"handup/internal/session"
)

// fakeMarketplace is a hand-rolled stub of the API contract. Counters prove
// which operations were (not) invoked; the optional channels make a Login
// call block until released, to exercise in-flight orderings.
type fakeMarketplace struct {
	loginResp    domain.LoginResponse
	loginErr     error
	registerErr  error
	profileResp  domain.UserProfile
	profileErr   error
	loginStarted chan struct{}
	loginRelease chan struct{}

	loginCalls    int
	registerCalls int
	profileCalls  int
	totalCalls    int
	tokensSet     []string
}

func (f *fakeMarketplace) Login(context.Context, string, string) (domain.LoginResponse, error) {
	f.loginCalls++
	f.totalCalls++
	if f.loginStarted != nil {
		close(f.loginStarted)
		f.loginStarted = nil
	}
	if f.loginRelease != nil {
		<-f.loginRelease
	}
	return f.loginResp, f.loginErr
}

func (f *fakeMarketplace) Register(context.Context, domain.RegisterRequest) (domain.UserProfile, error) {
	f.registerCalls++
	f.totalCalls++
	return domain.UserProfile{}, f.registerErr
}

func (f *fakeMarketplace) GetProfile(context.Context, string) (domain.UserProfile, error) {
	f.profileCalls++
	f.totalCalls++
	return f.profileResp, f.profileErr
}

func (f *fakeMarketplace) ListJobs(context.Context) ([]domain.JobSummary, error) {
	f.totalCalls++
	return nil, nil
}

func (f *fakeMarketplace) GetJob(context.Context, string) (domain.JobDetail, error) {
	f.totalCalls++
	return domain.JobDetail{}, nil
}

func (f *fakeMarketplace) CreateJob(context.Context, domain.CreateJobRequest) (domain.JobDetail, error) {
	f.totalCalls++
	return domain.JobDetail{}, nil
}

func (f *fakeMarketplace) ApplyToJob(context.Context, string, domain.ApplyRequest) (domain.Application, error) {
	f.totalCalls++
	return domain.Application{}, nil
}

func (f *fakeMarketplace) CompleteJob(context.Context, string, domain.FeedbackRequest) error {
	f.totalCalls++
	return nil
}

func (f *fakeMarketplace) ListVolunteerApplications(context.Context, string) ([]domain.VolunteerApplication, error) {
	f.totalCalls++
	return nil, nil
}

func (f *fakeMarketplace) ListRequesterJobs(context.Context, string) ([]domain.JobSummary, error) {
	f.totalCalls++
	return nil, nil
}

func (f *fakeMarketplace) SetToken(token string) { f.tokensSet = append(f.tokensSet, token) }

var _ domain.Marketplace = (*fakeMarketplace)(nil)

func TestLogin_StoresUserAndToken(t *testing.T) {
	api := &fakeMarketplace{
		loginResp: domain.LoginResponse{
			Token: "t1",
			User:  domain.UserProfile{ID: "u1", Role: domain.RoleVolunteer},
		},
	}
	m := session.New(api)

	if err := m.Login(context.Background(), "anya.volunteer@example.com", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}

	user, ok := m.User()
	if !ok || user.ID != "u1" {
		t.Fatalf("user = %+v, ok = %v", user, ok)
	}
	if m.Token() != "t1" {
		t.Fatalf("token = %q, want t1", m.Token())
	}
	if m.State() != session.Authenticated {
		t.Fatalf("state = %v, want authenticated", m.State())
	}
	if len(api.tokensSet) != 1 || api.tokensSet[0] != "t1" {
		t.Fatalf("client token pushes = %v", api.tokensSet)
	}
}

func TestLogin_FailureLeavesAnonymousAndPropagates(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	api := &fakeMarketplace{loginErr: wantErr}
	m := session.New(api)

	err := m.Login(context.Background(), "anya.volunteer@example.com", "wrong")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if m.State() != session.Anonymous {
		t.Fatalf("state = %v, want anonymous", m.State())
	}
	if m.Loading() {
		t.Fatal("loading flag not cleared after failure")
	}
	if m.Token() != "" {
		t.Fatalf("token = %q, want empty", m.Token())
	}
}

func TestRegister_ComposesRegisterThenLogin(t *testing.T) {
	api := &fakeMarketplace{
		loginResp: domain.LoginResponse{
			Token: "t2",
			User:  domain.UserProfile{ID: "u2", Role: domain.RoleRequester},
		},
	}
	m := session.New(api)

	err := m.Register(context.Background(), domain.RegisterRequest{
		Role:     domain.RoleRequester,
		FullName: "Mali Nimman",
		Email:    "mali.nimman@example.com",
		Password: "password",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if api.registerCalls != 1 || api.loginCalls != 1 {
		t.Fatalf("calls: register=%d login=%d", api.registerCalls, api.loginCalls)
	}
	if m.State() != session.Authenticated {
		t.Fatalf("state = %v, want authenticated", m.State())
	}
}

func TestRegister_LoginFailurePropagatesAndStaysAnonymous(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	api := &fakeMarketplace{loginErr: wantErr}
	m := session.New(api)

	err := m.Register(context.Background(), domain.RegisterRequest{
		Role:     domain.RoleVolunteer,
		FullName: "Anya Volunteer",
		Email:    "anya.volunteer@example.com",
		Password: "password",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want the login failure", err)
	}
	// The account exists server-side; the session must not.
	if api.registerCalls != 1 {
		t.Fatalf("register calls = %d", api.registerCalls)
	}
	if m.State() != session.Anonymous {
		t.Fatalf("state = %v, want anonymous", m.State())
	}
}

func TestRegister_RegisterFailureSkipsLogin(t *testing.T) {
	wantErr := errors.New("role must be volunteer or requester")
	api := &fakeMarketplace{registerErr: wantErr}
	m := session.New(api)

	err := m.Register(context.Background(), domain.RegisterRequest{Email: "x@example.com"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if api.loginCalls != 0 {
		t.Fatalf("login calls = %d, want 0", api.loginCalls)
	}
}

func TestLogout_SynchronousAndIdempotent(t *testing.T) {
	api := &fakeMarketplace{
		loginResp: domain.LoginResponse{Token: "t1", User: domain.UserProfile{ID: "u1"}},
	}
	m := session.New(api)
	if err := m.Login(context.Background(), "anya.volunteer@example.com", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}

	before := api.totalCalls
	m.Logout()
	m.Logout()

	if m.State() != session.Anonymous {
		t.Fatalf("state = %v, want anonymous", m.State())
	}
	if m.Token() != "" {
		t.Fatalf("token = %q, want empty", m.Token())
	}
	if api.totalCalls != before {
		t.Fatalf("logout issued %d network calls", api.totalCalls-before)
	}
	if last := api.tokensSet[len(api.tokensSet)-1]; last != "" {
		t.Fatalf("client token not cleared, last push %q", last)
	}
}

func TestRefreshProfile_NoOpWhenAnonymous(t *testing.T) {
	api := &fakeMarketplace{}
	m := session.New(api)

	if err := m.RefreshProfile(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if api.totalCalls != 0 {
		t.Fatalf("anonymous refresh issued %d calls", api.totalCalls)
	}
}

func TestRefreshProfile_ReplacesSnapshot(t *testing.T) {
	api := &fakeMarketplace{
		loginResp: domain.LoginResponse{
			Token: "t1",
			User:  domain.UserProfile{ID: "u1", CompletedJobs: 42},
		},
		profileResp: domain.UserProfile{ID: "u1", CompletedJobs: 43},
	}
	m := session.New(api)
	if err := m.Login(context.Background(), "anya.volunteer@example.com", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := m.RefreshProfile(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	user, _ := m.User()
	if user.CompletedJobs != 43 {
		t.Fatalf("completedJobs = %d, want 43", user.CompletedJobs)
	}
	if m.Token() != "t1" {
		t.Fatalf("refresh changed token to %q", m.Token())
	}
}

func TestLogin_CompletingAfterLogoutIsDiscarded(t *testing.T) {
	api := &fakeMarketplace{
		loginResp:    domain.LoginResponse{Token: "t1", User: domain.UserProfile{ID: "u1"}},
		loginStarted: make(chan struct{}),
		loginRelease: make(chan struct{}),
	}
	started := api.loginStarted
	m := session.New(api)

	done := make(chan error, 1)
	go func() {
		done <- m.Login(context.Background(), "anya.volunteer@example.com", "password")
	}()

	<-started
	if m.State() != session.Authenticating {
		t.Fatalf("state = %v, want authenticating", m.State())
	}

	// Logout while the login response is still in flight.
	m.Logout()
	close(api.loginRelease)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("login: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("login did not return")
	}

	// The stale login result must not be applied.
	if m.State() != session.Anonymous {
		t.Fatalf("state = %v, want anonymous", m.State())
	}
	if m.Token() != "" {
		t.Fatalf("token = %q, want empty", m.Token())
	}
}
