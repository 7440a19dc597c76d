package v1alpha1

import (
	"net/http"

	api "github.com/interviewsim/interview-server/api/v1alpha1"
	"github.com/interviewsim/interview-server/internal/handlers/v1alpha1/mappers"
	"github.com/interviewsim/interview-server/internal/handlers/validator"
)

// (POST /api/v1alpha1/interviews/{id}/evaluation)
func (h *ServiceHandler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	interviewID, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	var resource api.EvaluationCreate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateEvaluationData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	evaluation, err := h.evaluationSrv.CreateEvaluation(r.Context(),
		mappers.EvaluationCreateFormFromApi(interviewID, resource))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.EvaluationToApi(*evaluation))
}

// (POST /api/v1alpha1/interviews/{id}/evaluation/generate)
func (h *ServiceHandler) GenerateEvaluation(w http.ResponseWriter, r *http.Request) {
	interviewID, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	var resource api.EvaluationGenerate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateEvaluationData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	evaluation, err := h.evaluationSrv.GenerateEvaluation(r.Context(), interviewID, resource.UserId)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.EvaluationToApi(*evaluation))
}

// (GET /api/v1alpha1/evaluations)
func (h *ServiceHandler) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, r, http.StatusBadRequest, "userId is required")
		return
	}

	evaluations, err := h.evaluationSrv.ListEvaluationsByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.EvaluationListToApi(evaluations))
}

// (GET /api/v1alpha1/evaluations/{id})
func (h *ServiceHandler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed evaluation id")
		return
	}

	evaluation, err := h.evaluationSrv.GetEvaluation(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.EvaluationToApi(*evaluation))
}

func validateEvaluationData(data any) error {
	v := validator.NewValidator()
	return v.Struct(data)
}
