package viewstate

import "handup/internal/domain"

// JobActions lists the affordances a job-detail view exposes.
type JobActions struct {
	// CanApply: the viewer may send an application with a message.
	CanApply bool
	// CanComplete: the viewer may record feedback and close the job out.
	CanComplete bool
}

// ActionsFor returns the job-detail affordances for role. Volunteers apply,
// requesters close out; an anonymous or unknown role gets neither.
func ActionsFor(role domain.Role) JobActions {
	switch role {
	case domain.RoleVolunteer:
		return JobActions{CanApply: true}
	case domain.RoleRequester:
		return JobActions{CanComplete: true}
	}
	return JobActions{}
}

// CanPostJobs reports whether role may publish new jobs.
func CanPostJobs(role domain.Role) bool {
	return role == domain.RoleRequester
}

// JourneyTitle labels the shared "my activity" surface: a volunteer sees
// their applications, a requester their posted requests.
func JourneyTitle(role domain.Role) string {
	switch role {
	case domain.RoleVolunteer:
		return "My Applications"
	case domain.RoleRequester:
		return "Requests"
	}
	return ""
}

// JourneyIcon names the tab icon paired with JourneyTitle.
func JourneyIcon(role domain.Role) string {
	switch role {
	case domain.RoleVolunteer:
		return "briefcase"
	case domain.RoleRequester:
		return "create"
	}
	return ""
}
