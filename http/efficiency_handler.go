package http

import (
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"

	"solareco/domain"
	"solareco/service"
)

type EfficiencyHandler struct {
	service *service.EfficiencyService
}

func NewEfficiencyHandler(service *service.EfficiencyService) *EfficiencyHandler {
	return &EfficiencyHandler{service: service}
}

// Estimate handles POST /efficiency.
func (h *EfficiencyHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.EfficiencyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, eris.Wrap(domain.ErrInvalidInput, "invalid request body"))
		return
	}

	prediction, err := h.service.Estimate(input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"prediction": prediction})
}
