package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/donation-service/internal/ports"
)

// DonationHandler handles HTTP requests for the donation form.
type DonationHandler struct {
	service ports.DonationService
}

// NewDonationHandler creates a new DonationHandler with the given service port.
func NewDonationHandler(service ports.DonationService) *DonationHandler {
	return &DonationHandler{service: service}
}

// Presets handles GET /api/v1/donations/presets.
func (h *DonationHandler) Presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToPresetsResponse(h.service.Presets(r.Context())))
}

// Check handles POST /api/v1/donations/check. The answer is always 200;
// ineligible input is reported in the body.
func (h *DonationHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCheckResponse(h.service.Check(r.Context(), req.Amount, req.Email)))
}

// Donate handles POST /api/v1/donations. A remote rejection answers 422 and
// a transport failure 502, each with the display-ready message as detail.
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req dto.DonationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	selection, err := req.Selection()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	outcome, err := h.service.Donate(r.Context(), req.OrganizationID, selection.Raw(), req.Email)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := outcome.Err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToDonationResponse(outcome))
}
