package handler

import "net/http"

// Stats reloads every task and card and returns the aggregated statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request, s ServiceI) {
	stats, err := s.RefreshStats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
