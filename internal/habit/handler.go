package habit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/auth"
	"github.com/freddykhant/northstar/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	response, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) || errors.Is(err, ErrNameRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create habit")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	responses, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list habits")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondOne(w, r, func(id, userID uuid.UUID) (*HabitResponse, error) {
		return h.service.Get(r.Context(), id, userID)
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.respondOne(w, r, func(id, userID uuid.UUID) (*HabitResponse, error) {
		return h.service.Update(r.Context(), id, userID, dto)
	})
}

func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.IsActive == nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.respondOne(w, r, func(id, userID uuid.UUID) (*HabitResponse, error) {
		return h.service.SetActive(r.Context(), id, userID, *dto.IsActive)
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, userID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete habit")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondOne(w http.ResponseWriter, r *http.Request, fn func(id, userID uuid.UUID) (*HabitResponse, error)) {
	log := config.WithContext(r.Context())

	id, userID, ok := h.requestIDs(w, r)
	if !ok {
		return
	}

	response, err := fn(id, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrHabitNotFound):
			http.Error(w, "habit not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrNameRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Habit request failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) requestIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return id, uuid.MustParse(claims.UserID), true
}
