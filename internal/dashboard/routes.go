package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/checklist", h.GetChecklist)
	r.Get("/day-stats", h.GetDayStats)
	r.Get("/activity", h.GetActivityMap)

	return r
}
