package completion

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/auth"
	"github.com/freddykhant/northstar/internal/config"
	"github.com/freddykhant/northstar/internal/dates"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto ToggleCompletionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	habitID, err := uuid.Parse(dto.HabitID)
	if err != nil {
		http.Error(w, "invalid habit_id", http.StatusBadRequest)
		return
	}

	date, err := dates.Parse(dto.Date)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	response, err := h.service.Toggle(r.Context(), userID, habitID, date)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to toggle completion")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
