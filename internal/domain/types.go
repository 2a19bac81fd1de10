package domain

import "time"

// Role discriminates the two account types. Accounts never change role.
type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleRequester Role = "requester"
)

// Known reports whether r is one of the roles this client understands.
// Anything else (including the empty role of an anonymous session) is
// treated as "no role" rather than an error.
func (r Role) Known() bool {
	return r == RoleVolunteer || r == RoleRequester
}

// Job lifecycle statuses as served by the marketplace.
const (
	JobOpen      = "open"
	JobInReview  = "in_review"
	JobCompleted = "completed"
)

// ApplicationPending is the status of a freshly submitted application.
const ApplicationPending = "pending"

// UserProfile represents a volunteer or requester account.
//
// Skills, Rating and CompletedJobs are meaningful for volunteers;
// Interests for requesters. The server owns Rating and CompletedJobs.
type UserProfile struct {
	ID            string    `json:"id"`
	Role          Role      `json:"role"`
	FullName      string    `json:"fullName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Skills        []string  `json:"skills"`
	Interests     []string  `json:"interests"`
	Biography     string    `json:"biography"`
	Rating        float64   `json:"rating"`
	CompletedJobs int       `json:"completedJobs"`
	CreatedAt     time.Time `json:"createdAt"`
}

// JobSummary is the list-view projection of a job.
type JobSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	RequesterID string   `json:"requesterId"`
	ScheduledOn string   `json:"scheduledOn"`
	Location    string   `json:"location"`
	DistanceKm  float64  `json:"distanceKm"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
}

// JobDetail expands the summary with everything the detail view needs.
type JobDetail struct {
	JobSummary
	Description   string   `json:"description"`
	MeetingPoint  string   `json:"meetingPoint"`
	Requirements  []string `json:"requirements"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	ContactName   string   `json:"contactName"`
	ContactNumber string   `json:"contactNumber"`
}

// Application is a volunteer's expression of interest in a job. The server
// enforces at most one application per (job, volunteer) pair.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	VolunteerID string    `json:"volunteerId"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VolunteerApplication pairs an application with the job it targets, as
// listed on a volunteer's "My Applications" screen.
type VolunteerApplication struct {
	Application Application `json:"application"`
	Job         JobSummary  `json:"job"`
}

// LoginResponse is returned after successful authentication.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// RegisterRequest captures a new account. Every field is stated explicitly;
// there are no partial-update shapes in this contract.
type RegisterRequest struct {
	Role      Role     `json:"role"`
	FullName  string   `json:"fullName"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	Password  string   `json:"password"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Biography string   `json:"biography"`
}

// CreateJobRequest publishes a new job on behalf of a requester.
type CreateJobRequest struct {
	RequesterID  string   `json:"requesterId"`
	Title        string   `json:"title"`
	ScheduledOn  string   `json:"scheduledOn"`
	Location     string   `json:"location"`
	MeetingPoint string   `json:"meetingPoint"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
}

// ApplyRequest carries a volunteer's message to the requester.
type ApplyRequest struct {
	VolunteerID string `json:"volunteerId"`
	Message     string `json:"message"`
}

// FeedbackRequest closes out a job with a rating for the volunteer.
type FeedbackRequest struct {
	VolunteerID string  `json:"volunteerId"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
}

// ValidRating reports whether r lies in the accepted range [0, 5].
func ValidRating(r float64) bool { return r >= 0 && r <= 5 }
