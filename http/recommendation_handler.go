package http

import (
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"

	"solareco/domain"
	"solareco/service"
)

type RecommendationHandler struct {
	service *service.RecommendationService
}

func NewRecommendationHandler(service *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Recommend handles POST /recommendation.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.RecommendationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, eris.Wrap(domain.ErrInvalidInput, "invalid request body"))
		return
	}

	result, err := h.service.Recommend(input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}
