package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/donation-service/internal/ports"
)

// OrganizationHandler handles HTTP requests for browsing organizations.
type OrganizationHandler struct {
	service ports.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler with the given service port.
func NewOrganizationHandler(service ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// ListOrganizations handles GET /api/v1/organizations.
func (h *OrganizationHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.ListOrganizations(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrganizationListResponse(orgs))
}

// GetOrganization handles GET /api/v1/organizations/{id}.
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	org, err := h.service.GetOrganization(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrganizationResponse(&org))
}
