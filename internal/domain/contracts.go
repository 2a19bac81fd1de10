package domain

import "context"

// Marketplace is how we talk to the remote job-marketplace API, all with
// context. Every call is a single request/response; implementations never
// return a value and an error together.
type Marketplace interface {
	// Login exchanges credentials for a bearer token and the account profile.
	Login(ctx context.Context, email, password string) (LoginResponse, error)

	// Register creates an account. It does not establish a session; callers
	// follow up with Login.
	Register(ctx context.Context, req RegisterRequest) (UserProfile, error)

	// ListJobs returns the open marketplace feed in server order.
	ListJobs(ctx context.Context) ([]JobSummary, error)

	// GetJob fetches the full detail for one job.
	GetJob(ctx context.Context, id string) (JobDetail, error)

	// CreateJob publishes a new job and returns it as stored.
	CreateJob(ctx context.Context, req CreateJobRequest) (JobDetail, error)

	// ApplyToJob submits a volunteer's application to a job.
	ApplyToJob(ctx context.Context, jobID string, req ApplyRequest) (Application, error)

	// CompleteJob records requester feedback and closes the job.
	CompleteJob(ctx context.Context, jobID string, req FeedbackRequest) error

	// GetProfile fetches any account's public profile.
	GetProfile(ctx context.Context, id string) (UserProfile, error)

	// ListVolunteerApplications returns a volunteer's applications with their jobs.
	ListVolunteerApplications(ctx context.Context, id string) ([]VolunteerApplication, error)

	// ListRequesterJobs returns the jobs a requester has posted.
	ListRequesterJobs(ctx context.Context, id string) ([]JobSummary, error)

	// SetToken installs (or, with the empty string, clears) the bearer token
	// attached to subsequent requests.
	SetToken(token string)
}
