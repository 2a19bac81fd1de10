package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"handup/internal/domain"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrJobNotFound          = errors.New("job not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

type account struct {
	profile      domain.UserProfile
	passwordHash string
}

// Store keeps all marketplace state in memory behind one RWMutex.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*account
	jobs         map[string]*domain.JobDetail
	applications map[string]*domain.Application
	now          func() time.Time
}

// NewStore returns a store seeded with the demo accounts and jobs the mobile
// wireframes reference. Both seed accounts use the password "password".
func NewStore() (*Store, error) {
	s := &Store{
		users:        make(map[string]*account),
		jobs:         make(map[string]*domain.JobDetail),
		applications: make(map[string]*domain.Application),
		now:          time.Now,
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) seed() error {
	hash, err := hashPassword("password", defaultArgonParams())
	if err != nil {
		return err
	}

	s.users["volunteer-1"] = &account{
		passwordHash: hash,
		profile: domain.UserProfile{
			ID:            "volunteer-1",
			Role:          domain.RoleVolunteer,
			FullName:      "Anya Volunteer",
			Phone:         "081-111-1111",
			Email:         "anya.volunteer@example.com",
			Address:       "Bangkok, Thailand",
			Skills:        []string{"Wheelchair assistance", "Thai/English"},
			Interests:     []string{"Hospital visits", "Transportation"},
			Biography:     "Former physical therapist now volunteering weekends.",
			Rating:        4.9,
			CompletedJobs: 42,
			CreatedAt:     s.now().AddDate(0, -3, 0),
		},
	}
	s.users["requester-1"] = &account{
		passwordHash: hash,
		profile: domain.UserProfile{
			ID:            "requester-1",
			Role:          domain.RoleRequester,
			FullName:      "Mali Nimman",
			Phone:         "082-222-2222",
			Email:         "mali.nimman@example.com",
			Address:       "Chiang Mai, Thailand",
			Biography:     "Coordinating support for my father while he recovers.",
			Rating:        4.7,
			CompletedJobs: 13,
			CreatedAt:     s.now().AddDate(0, -1, -10),
		},
	}

	s.jobs["job-1001"] = &domain.JobDetail{
		JobSummary: domain.JobSummary{
			ID:          "job-1001",
			Title:       "Wheelchair assistance at hospital",
			RequesterID: "requester-1",
			ScheduledOn: "2025-02-11",
			Location:    "Siriraj Hospital, Bangkok",
			DistanceKm:  3.2,
			Tags:        []string{"Hospital", "Wheelchair"},
			Status:      domain.JobOpen,
		},
		Description:   "Meet at the lobby and assist with navigating to the cardiology department.",
		MeetingPoint:  "Entrance B, Siriraj Hospital",
		Requirements:  []string{"Comfortable pushing a wheelchair", "Able to communicate with nurses"},
		Latitude:      13.7563,
		Longitude:     100.5018,
		ContactName:   "Mali Nimman",
		ContactNumber: "082-222-2222",
	}
	s.jobs["job-1002"] = &domain.JobDetail{
		JobSummary: domain.JobSummary{
			ID:          "job-1002",
			Title:       "Home wheelchair ramp inspection",
			RequesterID: "requester-1",
			ScheduledOn: "2025-02-13",
			Location:    "Ratchathewi, Bangkok",
			DistanceKm:  6.0,
			Tags:        []string{"Home visit", "Accessibility"},
			Status:      domain.JobOpen,
		},
		Description:   "Check the ramp installed last month and provide recommendations.",
		MeetingPoint:  "House 72/4, Ratchathewi",
		Requirements:  []string{"Experience with accessibility equipment"},
		Latitude:      13.7650,
		Longitude:     100.5370,
		ContactName:   "Mali Nimman",
		ContactNumber: "082-222-2222",
	}
	return nil
}

// CreateUser registers a new account and returns its stored profile.
func (s *Store) CreateUser(req domain.RegisterRequest) (domain.UserProfile, error) {
	hash, err := hashPassword(req.Password, defaultArgonParams())
	if err != nil {
		return domain.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile := domain.UserProfile{
		ID:        string(req.Role) + "-" + uuid.NewString(),
		Role:      req.Role,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Skills:    req.Skills,
		Interests: req.Interests,
		Biography: req.Biography,
		CreatedAt: s.now(),
	}
	s.users[profile.ID] = &account{profile: profile, passwordHash: hash}
	return profile, nil
}

// Authenticate matches email case-insensitively and verifies the password.
func (s *Store) Authenticate(email, password string) (domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acct := range s.users {
		if strings.EqualFold(acct.profile.Email, email) {
			if !verifyPassword(password, acct.passwordHash) {
				return domain.UserProfile{}, ErrUserNotFound
			}
			return acct.profile, nil
		}
	}
	return domain.UserProfile{}, ErrUserNotFound
}

// UserByID returns a profile by id.
func (s *Store) UserByID(id string) (domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.users[id]
	if !ok {
		return domain.UserProfile{}, ErrUserNotFound
	}
	return acct.profile, nil
}

// Jobs returns every job's summary.
func (s *Store) Jobs() []domain.JobSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.JobSummary, 0, len(s.jobs))
	for _, job := range s.jobs {
		items = append(items, job.JobSummary)
	}
	return items
}

// JobByID returns the full detail for one job.
func (s *Store) JobByID(id string) (domain.JobDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.JobDetail{}, ErrJobNotFound
	}
	return *job, nil
}

// CreateJob publishes a job for a known requester.
func (s *Store) CreateJob(req domain.CreateJobRequest) (domain.JobDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requester, ok := s.users[req.RequesterID]
	if !ok {
		return domain.JobDetail{}, ErrUserNotFound
	}

	job := &domain.JobDetail{
		JobSummary: domain.JobSummary{
			ID:          fmt.Sprintf("job-%d", len(s.jobs)+1001),
			Title:       req.Title,
			RequesterID: req.RequesterID,
			ScheduledOn: req.ScheduledOn,
			Location:    req.Location,
			Tags:        req.Requirements,
			Status:      domain.JobOpen,
		},
		Description:   req.Description,
		MeetingPoint:  req.MeetingPoint,
		Requirements:  req.Requirements,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ContactName:   requester.profile.FullName,
		ContactNumber: requester.profile.Phone,
	}
	s.jobs[job.ID] = job
	return *job, nil
}

// Apply records a volunteer's application and moves the job into review.
// A second application from the same volunteer is rejected.
func (s *Store) Apply(jobID string, req domain.ApplyRequest) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return domain.Application{}, ErrJobNotFound
	}
	if _, ok := s.users[req.VolunteerID]; !ok {
		return domain.Application{}, ErrUserNotFound
	}
	for _, app := range s.applications {
		if app.JobID == jobID && app.VolunteerID == req.VolunteerID {
			return domain.Application{}, ErrDuplicateApplication
		}
	}

	now := s.now()
	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		VolunteerID: req.VolunteerID,
		Message:     req.Message,
		Status:      domain.ApplicationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.applications[app.ID] = app
	job.Status = domain.JobInReview
	return *app, nil
}

// RecordFeedback completes the job and folds the rating into the volunteer's
// running average.
func (s *Store) RecordFeedback(jobID string, req domain.FeedbackRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return ErrJobNotFound
	}
	acct, ok := s.users[req.VolunteerID]
	if !ok {
		return ErrUserNotFound
	}

	job.Status = domain.JobCompleted
	acct.profile.CompletedJobs++
	if req.Rating > 0 {
		n := float64(acct.profile.CompletedJobs)
		acct.profile.Rating = (acct.profile.Rating*(n-1) + req.Rating) / n
	}
	return nil
}

// ApplicationsByVolunteer pairs each of the volunteer's applications with
// the job it targets.
func (s *Store) ApplicationsByVolunteer(id string) ([]domain.VolunteerApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[id]; !ok {
		return nil, ErrUserNotFound
	}
	items := make([]domain.VolunteerApplication, 0)
	for _, app := range s.applications {
		if app.VolunteerID != id {
			continue
		}
		if job, ok := s.jobs[app.JobID]; ok {
			items = append(items, domain.VolunteerApplication{Application: *app, Job: job.JobSummary})
		}
	}
	return items, nil
}

// JobsByRequester returns summaries of the requester's posted jobs.
func (s *Store) JobsByRequester(id string) ([]domain.JobSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[id]; !ok {
		return nil, ErrUserNotFound
	}
	items := make([]domain.JobSummary, 0)
	for _, job := range s.jobs {
		if job.RequesterID == id {
			items = append(items, job.JobSummary)
		}
	}
	return items, nil
}
