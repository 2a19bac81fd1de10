package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"handup/internal/domain"
)

// Client talks to the marketplace API rooted at Base, e.g.
// http://localhost:8080/api. The zero value is not usable; construct with New.
type Client struct {
	base  string
	http  *http.Client
	token string
}

// New returns a client for the API at base. httpClient may be nil, in which
// case http.DefaultClient is used.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

// SetToken installs the bearer token sent with subsequent requests. The empty
// string clears it.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	var out domain.LoginResponse
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	if err := c.post(ctx, "/auth/login", in, &out); err != nil {
		return domain.LoginResponse{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.post(ctx, "/auth/register", req, &out); err != nil {
		return domain.UserProfile{}, err
	}
	return out, nil
}

func (c *Client) ListJobs(ctx context.Context) ([]domain.JobSummary, error) {
	var out struct {
		Jobs []domain.JobSummary `json:"jobs"`
	}
	if err := c.getJSON(ctx, "/jobs", &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id string) (domain.JobDetail, error) {
	var out domain.JobDetail
	if err := c.getJSON(ctx, "/jobs/"+url.PathEscape(id), &out); err != nil {
		return domain.JobDetail{}, err
	}
	return out, nil
}

func (c *Client) CreateJob(ctx context.Context, req domain.CreateJobRequest) (domain.JobDetail, error) {
	// The server is authoritative, but an empty payload is rejected here
	// before any request is issued.
	if req.RequesterID == "" || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return domain.JobDetail{}, &Error{
			Kind:    KindValidation,
			Message: "requesterId, title and description are required",
		}
	}
	var out domain.JobDetail
	if err := c.post(ctx, "/jobs", req, &out); err != nil {
		return domain.JobDetail{}, err
	}
	return out, nil
}

func (c *Client) ApplyToJob(ctx context.Context, jobID string, req domain.ApplyRequest) (domain.Application, error) {
	var out domain.Application
	if err := c.post(ctx, "/jobs/"+url.PathEscape(jobID)+"/apply", req, &out); err != nil {
		return domain.Application{}, err
	}
	return out, nil
}

func (c *Client) CompleteJob(ctx context.Context, jobID string, req domain.FeedbackRequest) error {
	if !domain.ValidRating(req.Rating) {
		return &Error{
			Kind:    KindValidation,
			Message: fmt.Sprintf("rating %g is outside [0, 5]", req.Rating),
		}
	}
	return c.post(ctx, "/jobs/"+url.PathEscape(jobID)+"/feedback", req, nil)
}

func (c *Client) GetProfile(ctx context.Context, id string) (domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.getJSON(ctx, "/profiles/"+url.PathEscape(id), &out); err != nil {
		return domain.UserProfile{}, err
	}
	return out, nil
}

func (c *Client) ListVolunteerApplications(ctx context.Context, id string) ([]domain.VolunteerApplication, error) {
	var out struct {
		Items []domain.VolunteerApplication `json:"items"`
	}
	if err := c.getJSON(ctx, "/volunteers/"+url.PathEscape(id)+"/applications", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) ListRequesterJobs(ctx context.Context, id string) ([]domain.JobSummary, error) {
	var out struct {
		Jobs []domain.JobSummary `json:"jobs"`
	}
	if err := c.getJSON(ctx, "/requesters/"+url.PathEscape(id)+"/jobs", &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return &Error{Kind: KindValidation, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &Error{
			Kind:    kindFor(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(resp),
		}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindTransport, Err: fmt.Errorf("decode %s: %w", req.URL.Path, err)}
	}
	return nil
}

// errorMessage extracts the server's error field, falling back to a generic
// status-coded message when the body is absent or unparsable.
func errorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("Request failed (%d)", resp.StatusCode)
}

// Compile-time assertion that Client implements domain.Marketplace.
var _ domain.Marketplace = (*Client)(nil)
