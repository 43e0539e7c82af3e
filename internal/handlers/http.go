package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler is the HTTP presentation layer. It translates JSON requests into
// service calls and domain errors into statuses; no business rule lives here.
type Handler struct {
	users       contract.UserService
	assignments contract.AssignmentService
	log         *zap.Logger
}

func New(users contract.UserService, assignments contract.AssignmentService, log *zap.Logger) *Handler {
	return &Handler{
		users:       users,
		assignments: assignments,
		log:         log,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/", h.listUsers)
		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", h.getUser)
			r.Put("/", h.updateUser)
			r.Delete("/", h.deleteUser)
			r.Get("/records", h.listRecords)
			r.Get("/records/latest", h.latestRecord)
		})
	})

	r.Get("/status", h.weekStatus)
	r.Post("/assignments", h.assignDay)
	r.Put("/assignments", h.changeAssignment)

	return r
}

// requestLogger tags each request with an id and logs it after serving.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r)
		h.log.Debug("request served",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
	})
}

type userRequest struct {
	Name   string `json:"name"`
	Docket string `json:"docket"`
}

type assignmentRequest struct {
	UserID              int64  `json:"user_id"`
	Date                string `json:"date"`
	AllowRepeatPrevWeek bool   `json:"allow_repeat_prev_week"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Docket = strings.TrimSpace(req.Docket)
	if req.Name == "" || req.Docket == "" {
		writeError(w, http.StatusUnprocessableEntity, "name and docket are required")
		return
	}

	user, err := h.users.CreateUser(req.Name, req.Docket)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetUser(id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Docket = strings.TrimSpace(req.Docket)
	if req.Name == "" || req.Docket == "" {
		writeError(w, http.StatusUnprocessableEntity, "name and docket are required")
		return
	}

	if err := h.users.UpdateUser(id, req.Name, req.Docket); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	records, err := h.assignments.ListByUser(id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) latestRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	record, err := h.assignments.LatestForUser(id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "no records for user")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) weekStatus(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	status, err := h.assignments.UsersWeekStatus(users, time.Time{})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) assignDay(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.assignments.AssignDay(r.Context(), req.UserID, req.Date, req.AllowRepeatPrevWeek)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) changeAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.assignments.ChangeWeekAssignment(r.Context(), req.UserID, req.Date, req.AllowRepeatPrevWeek)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

// writeDomainError maps domain errors to statuses: missing things are 404,
// conflicts with existing state 409, rule violations 422, the rest 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateUser),
		errors.Is(err, domain.ErrDuplicateRecord),
		errors.Is(err, domain.ErrAlreadyRegisteredThisWeek):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDayNotAllowed),
		errors.Is(err, domain.ErrDateOutsideCurrentWeek),
		errors.Is(err, domain.ErrRepeatsPreviousWeekday),
		errors.Is(err, domain.ErrNoRecordThisWeek):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
