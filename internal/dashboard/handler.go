package dashboard

import (
	"errors"
	"net/http"

	"github.com/freddykhant/northstar/internal/config"
	"github.com/freddykhant/northstar/internal/dates"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r, "date")
	if !ok {
		return
	}

	items, err := h.service.GetDailyChecklist(r.Context(), date)
	if err != nil {
		h.writeError(w, r, err, "Failed to build daily checklist")
		return
	}

	config.JSON(w, http.StatusOK, items)
}

func (h *Handler) GetDayStats(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r, "date")
	if !ok {
		return
	}

	stats, err := h.service.GetDayStats(r.Context(), date)
	if err != nil {
		h.writeError(w, r, err, "Failed to build day stats")
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) GetActivityMap(w http.ResponseWriter, r *http.Request) {
	start, ok := h.dateParam(w, r, "start")
	if !ok {
		return
	}
	end, ok := h.dateParam(w, r, "end")
	if !ok {
		return
	}

	activity, err := h.service.GetActivityMap(r.Context(), start, end)
	if err != nil {
		h.writeError(w, r, err, "Failed to build activity map")
		return
	}

	config.JSON(w, http.StatusOK, activity)
}

// dateParam reads a query parameter as a calendar date. Malformed input
// is rejected here, before anything reaches the store.
func (h *Handler) dateParam(w http.ResponseWriter, r *http.Request, name string) (dates.Date, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		http.Error(w, name+" parameter required", http.StatusBadRequest)
		return "", false
	}
	date, err := dates.Parse(raw)
	if err != nil {
		http.Error(w, "invalid "+name+", expected YYYY-MM-DD", http.StatusBadRequest)
		return "", false
	}
	return date, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		config.WithContext(r.Context()).WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
