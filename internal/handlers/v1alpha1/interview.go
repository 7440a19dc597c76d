package v1alpha1

import (
	"net/http"
	"strconv"

	api "github.com/interviewsim/interview-server/api/v1alpha1"
	"github.com/interviewsim/interview-server/internal/handlers/v1alpha1/mappers"
	"github.com/interviewsim/interview-server/internal/handlers/validator"
	"github.com/interviewsim/interview-server/internal/service"
)

// (GET /api/v1alpha1/interviews)
func (h *ServiceHandler) ListInterviews(w http.ResponseWriter, r *http.Request) {
	filter := service.NewInterviewFilter()

	if userID := r.URL.Query().Get("userId"); userID != "" {
		filter = filter.WithUserID(userID)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		if err := validateInterviewData(struct {
			Status api.InterviewStatus `validate:"interview_status"`
		}{api.InterviewStatus(status)}); err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid status filter")
			return
		}
		filter = filter.WithStatus(status)
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 1 {
			respondError(w, r, http.StatusBadRequest, "malformed limit")
			return
		}
		filter = filter.WithLimit(limit)
	}
	cursor, err := cursorParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	filter = filter.WithCursor(cursor)

	interviews, nextCursor, err := h.interviewSrv.ListInterviews(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, api.InterviewList{
		Items:      mappers.InterviewListToApi(interviews),
		NextCursor: nextCursor,
	})
}

// (POST /api/v1alpha1/interviews)
func (h *ServiceHandler) CreateInterview(w http.ResponseWriter, r *http.Request) {
	var resource api.InterviewCreate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateInterviewData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	interview, err := h.interviewSrv.CreateInterview(r.Context(), mappers.InterviewCreateFormFromApi(resource))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.InterviewToApi(*interview))
}

// (GET /api/v1alpha1/interviews/{id})
func (h *ServiceHandler) GetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	interview, err := h.interviewSrv.GetInterview(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.InterviewToApi(*interview))
}

// (PUT /api/v1alpha1/interviews/{id})
func (h *ServiceHandler) UpdateInterview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	var resource api.InterviewUpdate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateInterviewData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	interview, err := h.interviewSrv.UpdateInterview(r.Context(), mappers.InterviewUpdateFormFromApi(id, resource))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.InterviewToApi(*interview))
}

// (DELETE /api/v1alpha1/interviews/{id})
func (h *ServiceHandler) DeleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	if err := h.interviewSrv.DeleteInterview(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, map[string]bool{"success": true})
}

func validateInterviewData(data any) error {
	v := validator.NewValidator()
	v.Register(validator.NewInterviewValidationRules()...)
	return v.Struct(data)
}
