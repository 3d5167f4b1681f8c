// Package tracker exposes the exercise-tracking HTTP API.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/exercise-tracker/internal/models"
	"github.com/ayush/exercise-tracker/internal/store"
)

// Store defines the persistence surface the handlers need.
type Store interface {
	InsertUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	InsertExercise(ctx context.Context, ex *models.Exercise) error
	ListExercises(ctx context.Context, userID primitive.ObjectID, f models.LogFilter) ([]models.Exercise, error)
}

// Handler holds the exercise-tracker HTTP handlers.
type Handler struct {
	store Store
}

func NewHandler(s Store) *Handler {
	return &Handler{store: s}
}

// RegisterRoutes wires the API endpoints onto the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.ListUsers)
		r.Post("/{id}/exercises", h.AddExercise)
		r.Get("/{id}/logs", h.GetLogs)
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// userResponse is the JSON shape for created and listed users.
type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// exerciseResponse echoes the owning user plus the stored exercise.
type exerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []logEntry `json:"log"`
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	form, err := parseBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username := strings.TrimSpace(form.Get("username"))
	if username == "" {
		writeError(w, http.StatusBadRequest, "Username required")
		return
	}

	user, err := h.store.InsertUser(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Username: user.Username, ID: user.ID.Hex()})
}

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{Username: u.Username, ID: u.ID.Hex()})
	}
	writeJSON(w, http.StatusOK, out)
}

// AddExercise handles POST /api/users/{id}/exercises.
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	user, ok := h.lookupUser(w, r)
	if !ok {
		return
	}

	form, err := parseBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	description := strings.TrimSpace(form.Get("description"))
	if description == "" {
		writeError(w, http.StatusBadRequest, "Description required")
		return
	}

	duration, err := parseDuration(form.Get("duration"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid duration")
		return
	}

	date, err := parseDateOrNow(form.Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	ex := &models.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := h.store.InsertExercise(r.Context(), ex); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, exerciseResponse{
		ID:          user.ID.Hex(),
		Username:    user.Username,
		Date:        formatDate(ex.Date),
		Duration:    ex.Duration,
		Description: ex.Description,
	})
}

// GetLogs handles GET /api/users/{id}/logs.
func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	user, ok := h.lookupUser(w, r)
	if !ok {
		return
	}

	filter, err := logFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exercises, err := h.store.ListExercises(r.Context(), user.ID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log := make([]logEntry, 0, len(exercises))
	for _, ex := range exercises {
		log = append(log, logEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        formatDate(ex.Date),
		})
	}

	writeJSON(w, http.StatusOK, logResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	})
}

// lookupUser resolves the {id} path param. Unknown users are a client error
// (400, not 404 -- the freeCodeCamp contract); malformed ids surface as
// storage errors.
func (h *Handler) lookupUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id := chi.URLParam(r, "id")
	user, err := h.store.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusBadRequest, "User not found")
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return user, true
}

// logFilterFromQuery parses the from/to/limit query params.
func logFilterFromQuery(r *http.Request) (models.LogFilter, error) {
	var f models.LogFilter
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, errors.New("Invalid date")
		}
		f.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, errors.New("Invalid date")
		}
		f.To = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			return f, errors.New("Invalid limit")
		}
		f.Limit = n
	}
	return f, nil
}
