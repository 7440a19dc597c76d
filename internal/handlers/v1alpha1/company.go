package v1alpha1

import (
	"net/http"

	api "github.com/interviewsim/interview-server/api/v1alpha1"
	"github.com/interviewsim/interview-server/internal/handlers/v1alpha1/mappers"
	"github.com/interviewsim/interview-server/internal/handlers/validator"
)

// (GET /api/v1alpha1/companies)
func (h *ServiceHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companySrv.ListCompanies(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.CompanyListToApi(companies))
}

// (POST /api/v1alpha1/companies)
func (h *ServiceHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var resource api.CompanyCreate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateCompanyData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	company, err := h.companySrv.CreateCompany(r.Context(), mappers.CompanyCreateFormFromApi(resource))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.CompanyToApi(*company))
}

// (GET /api/v1alpha1/companies/{id})
func (h *ServiceHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed company id")
		return
	}

	company, err := h.companySrv.GetCompany(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.CompanyToApi(*company))
}

// (PUT /api/v1alpha1/companies/{id})
func (h *ServiceHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed company id")
		return
	}

	var resource api.CompanyUpdate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateCompanyData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	company, err := h.companySrv.UpdateCompany(r.Context(), mappers.CompanyUpdateFormFromApi(id, resource))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.CompanyToApi(*company))
}

// (DELETE /api/v1alpha1/companies/{id})
func (h *ServiceHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed company id")
		return
	}

	if err := h.companySrv.DeleteCompany(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, map[string]bool{"success": true})
}

func validateCompanyData(data any) error {
	v := validator.NewValidator()
	return v.Struct(data)
}
