package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"handup/internal/domain"
)

// Handler serves the marketplace API from a Store.
type Handler struct {
	store  *Store
	tokens *TokenIssuer
}

// NewHandler wires the handler set for router registration.
func NewHandler(store *Store, tokens *TokenIssuer) *Handler {
	return &Handler{store: store, tokens: tokens}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token error")
		return
	}
	writeJSON(w, http.StatusOK, domain.LoginResponse{Token: token, User: user})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !req.Role.Known() {
		writeError(w, http.StatusBadRequest, "role must be volunteer or requester")
		return
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "full name and email are required")
		return
	}

	profile, err := h.store.CreateUser(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create account")
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.store.UserByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) listJobs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"jobs": h.store.Jobs()})
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.store.JobByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.RequesterID == "" || strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "requesterId and title are required")
		return
	}

	job, err := h.store.CreateJob(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "requester profile missing")
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *Handler) applyToJob(w http.ResponseWriter, r *http.Request) {
	var req domain.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	app, err := h.store.Apply(chi.URLParam(r, "id"), req)
	switch {
	case errors.Is(err, ErrJobNotFound):
		writeError(w, http.StatusNotFound, "job not found")
	case errors.Is(err, ErrUserNotFound):
		writeError(w, http.StatusBadRequest, "volunteer profile missing")
	case errors.Is(err, ErrDuplicateApplication):
		writeError(w, http.StatusConflict, "application already exists")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "could not apply")
	default:
		writeJSON(w, http.StatusCreated, app)
	}
}

func (h *Handler) completeJob(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !domain.ValidRating(req.Rating) {
		writeError(w, http.StatusBadRequest, "rating must be between 0 and 5")
		return
	}

	err := h.store.RecordFeedback(chi.URLParam(r, "id"), req)
	switch {
	case errors.Is(err, ErrJobNotFound):
		writeError(w, http.StatusNotFound, "job not found")
	case errors.Is(err, ErrUserNotFound):
		writeError(w, http.StatusBadRequest, "volunteer profile missing")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "could not record feedback")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) listVolunteerApplications(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ApplicationsByVolunteer(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "volunteer not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) listRequesterJobs(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.JobsByRequester(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "requester not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": items})
}
