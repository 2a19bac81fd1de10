package viewstate_test

import (
	"testing"

	"handup/internal/domain"
	"handup/internal/viewstate"
)

func TestActionsFor_ByRole(t *testing.T) {
	volunteer := viewstate.ActionsFor(domain.RoleVolunteer)
	if !volunteer.CanApply || volunteer.CanComplete {
		t.Fatalf("volunteer actions wrong: %+v", volunteer)
	}

	requester := viewstate.ActionsFor(domain.RoleRequester)
	if requester.CanApply || !requester.CanComplete {
		t.Fatalf("requester actions wrong: %+v", requester)
	}
}

func TestActionsFor_TotalOverUnknownRoles(t *testing.T) {
	for _, role := range []domain.Role{"", "admin", "VOLUNTEER", "moderator"} {
		got := viewstate.ActionsFor(role)
		if got.CanApply || got.CanComplete {
			t.Fatalf("role %q: expected no actions, got %+v", role, got)
		}
		if viewstate.CanPostJobs(role) {
			t.Fatalf("role %q: expected no posting", role)
		}
		if viewstate.JourneyTitle(role) != "" || viewstate.JourneyIcon(role) != "" {
			t.Fatalf("role %q: expected empty labels", role)
		}
	}
}

func TestActionsFor_Deterministic(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleVolunteer, domain.RoleRequester, ""} {
		first := viewstate.ActionsFor(role)
		for i := 0; i < 3; i++ {
			if viewstate.ActionsFor(role) != first {
				t.Fatalf("role %q: actions not deterministic", role)
			}
		}
	}
}

func TestJourneyLabels(t *testing.T) {
	if got := viewstate.JourneyTitle(domain.RoleVolunteer); got != "My Applications" {
		t.Fatalf("volunteer title = %q", got)
	}
	if got := viewstate.JourneyTitle(domain.RoleRequester); got != "Requests" {
		t.Fatalf("requester title = %q", got)
	}
	if got := viewstate.JourneyIcon(domain.RoleVolunteer); got != "briefcase" {
		t.Fatalf("volunteer icon = %q", got)
	}
	if got := viewstate.JourneyIcon(domain.RoleRequester); got != "create" {
		t.Fatalf("requester icon = %q", got)
	}
}
