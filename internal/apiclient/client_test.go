package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"handup/internal/apiclient"
	"handup/internal/domain"
)

// countingTransport fails every request and counts attempts, to prove an
// operation never reached the network.
type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("unexpected network call")
}

func TestGetJob_NotFoundUsesServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer ts.Close()

	c := apiclient.New(ts.URL, nil)
	_, err := c.GetJob(context.Background(), "missing-id")
	if err == nil {
		t.Fatal("expected error for missing job")
	}
	if !apiclient.IsNotFound(err) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if err.Error() != "not found" {
		t.Fatalf("message = %q, want %q", err.Error(), "not found")
	}
}

func TestErrorBody_UnparsableFallsBackToGenericMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer ts.Close()

	c := apiclient.New(ts.URL, nil)
	_, err := c.ListJobs(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Request failed (500)" {
		t.Fatalf("message = %q, want %q", err.Error(), "Request failed (500)")
	}
}

func TestLogin_AuthKindOn401(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer ts.Close()

	c := apiclient.New(ts.URL, nil)
	_, err := c.Login(context.Background(), "anya.volunteer@example.com", "wrong")
	if !apiclient.IsAuth(err) {
		t.Fatalf("expected auth kind, got %v", err)
	}
}

func TestCompleteJob_RejectsOutOfRangeRatingWithoutNetworkCall(t *testing.T) {
	transport := &countingTransport{}
	c := apiclient.New("http://example.invalid", &http.Client{Transport: transport})

	for _, rating := range []float64{-0.1, 5.1, 42} {
		err := c.CompleteJob(context.Background(), "job-1001", domain.FeedbackRequest{
			VolunteerID: "volunteer-1",
			Rating:      rating,
		})
		if !apiclient.IsValidation(err) {
			t.Fatalf("rating %g: expected validation error, got %v", rating, err)
		}
	}
	if transport.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls)
	}
}

func TestCreateJob_RejectsEmptyPayloadWithoutNetworkCall(t *testing.T) {
	transport := &countingTransport{}
	c := apiclient.New("http://example.invalid", &http.Client{Transport: transport})

	_, err := c.CreateJob(context.Background(), domain.CreateJobRequest{RequesterID: "requester-1"})
	if !apiclient.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if transport.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls)
	}
}

func TestCompleteJob_Accepts204(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := apiclient.New(ts.URL, nil)
	err := c.CompleteJob(context.Background(), "job-1001", domain.FeedbackRequest{
		VolunteerID: "volunteer-1",
		Rating:      4.5,
		Comment:     "great help",
	})
	if err != nil {
		t.Fatalf("204 should decode to empty result, got %v", err)
	}
}

func TestTransportFailure_HasTransportKind(t *testing.T) {
	transport := &countingTransport{}
	c := apiclient.New("http://example.invalid", &http.Client{Transport: transport})

	_, err := c.ListJobs(context.Background())
	if !apiclient.IsTransport(err) {
		t.Fatalf("expected transport kind, got %v", err)
	}
}

func TestSetToken_AttachesBearerHeader(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	}))
	defer ts.Close()

	c := apiclient.New(ts.URL, nil)
	c.SetToken("t1")
	if _, err := c.ListJobs(context.Background()); err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if got != "Bearer t1" {
		t.Fatalf("Authorization = %q, want %q", got, "Bearer t1")
	}

	c.SetToken("")
	if _, err := c.ListJobs(context.Background()); err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if got != "" {
		t.Fatalf("Authorization = %q after clearing token", got)
	}
}
