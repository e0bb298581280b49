package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"schedule-bot/internal/models"
	"schedule-bot/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	scheduleService service.ScheduleService
	log             *zap.Logger
	now             func() time.Time
}

func NewHandler(scheduleService service.ScheduleService, log *zap.Logger) *Handler {
	return &Handler{
		scheduleService: scheduleService,
		log:             log,
		now:             time.Now,
	}
}

// Routes - только чтение, поэтому CORS открыт для GET
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)
	r.Get("/api/subjects", h.SubjectsAPI)
	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type subjectJSON struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Optional bool   `json:"optional"`
}

type subjectsResponse struct {
	Weekday  string        `json:"weekday"`
	Slot     string        `json:"slot"`
	Parity   string        `json:"parity"`
	Group    string        `json:"group"`
	Subjects []subjectJSON `json:"subjects"`
}

// SubjectsAPI - GET /api/subjects?group=K-25&slot=II&date=14.10.2026
func (h *Handler) SubjectsAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	token := query.Get("group")
	group, err := models.ParseGroup(token)
	if err != nil {
		h.writeError(w, &service.InputError{Field: "group", Value: token, Err: err})
		return
	}

	answer, err := h.scheduleService.SubjectsForGroup(r.Context(), group, service.Query{
		Now:  h.now(),
		Slot: query.Get("slot"),
		Date: query.Get("date"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := subjectsResponse{
		Weekday:  answer.Key.Weekday.String(),
		Slot:     answer.Key.Slot.String(),
		Parity:   answer.Key.Parity.String(),
		Group:    answer.Key.Group.String(),
		Subjects: make([]subjectJSON, 0, len(answer.Subjects)),
	}
	for _, s := range answer.Subjects {
		resp.Subjects = append(resp.Subjects, subjectJSON{ID: s.ID, Title: s.Title, Optional: s.Optional})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var inputErr *service.InputError
	if errors.As(err, &inputErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": inputErr.Message()})
		return
	}

	h.log.Error("subjects api", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
