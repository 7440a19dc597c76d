// Package v1alpha1 contains the HTTP handlers of the interview API.
package v1alpha1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	api "github.com/interviewsim/interview-server/api/v1alpha1"
	"github.com/interviewsim/interview-server/internal/service"
	"github.com/interviewsim/interview-server/pkg/requestid"
	"go.uber.org/zap"
)

type ServiceHandler struct {
	interviewSrv    *service.InterviewService
	conversationSrv *service.ConversationService
	evaluationSrv   *service.EvaluationService
	companySrv      *service.CompanyService
}

func NewServiceHandler(
	interviewSrv *service.InterviewService,
	conversationSrv *service.ConversationService,
	evaluationSrv *service.EvaluationService,
	companySrv *service.CompanyService,
) *ServiceHandler {
	return &ServiceHandler{
		interviewSrv:    interviewSrv,
		conversationSrv: conversationSrv,
		evaluationSrv:   evaluationSrv,
		companySrv:      companySrv,
	}
}

// Routes mounts every API route on a fresh chi router.
func (h *ServiceHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Route("/interviews", func(r chi.Router) {
		r.Get("/", h.ListInterviews)
		r.Post("/", h.CreateInterview)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetInterview)
			r.Put("/", h.UpdateInterview)
			r.Delete("/", h.DeleteInterview)
			r.Get("/conversations", h.ListConversations)
			r.Post("/conversations", h.CreateConversation)
			r.Post("/conversations/generate", h.GenerateConversation)
			r.Post("/evaluation", h.CreateEvaluation)
			r.Post("/evaluation/generate", h.GenerateEvaluation)
		})
	})

	router.Route("/evaluations", func(r chi.Router) {
		r.Get("/", h.ListEvaluations)
		r.Get("/{id}", h.GetEvaluation)
	})

	router.Route("/companies", func(r chi.Router) {
		r.Get("/", h.ListCompanies)
		r.Post("/", h.CreateCompany)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetCompany)
			r.Put("/", h.UpdateCompany)
			r.Delete("/", h.DeleteCompany)
		})
	})

	return router
}

// decodeBody unmarshals the request body; a missing or malformed body is
// reported against the given resource name.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("malformed request body")
	}
	return nil
}

func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func cursorParam(r *http.Request) (*uuid.UUID, error) {
	raw := r.URL.Query().Get("cursor")
	if raw == "" {
		return nil, nil
	}
	cursor, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("malformed cursor")
	}
	return &cursor, nil
}

func respond(w http.ResponseWriter, r *http.Request, status int, payload any) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{Message: message, RequestId: requestid.FromContextPtr(r.Context())})
}

// respondServiceError maps a service failure to an HTTP status. Specific
// kinds keep their semantics; anything else surfaces as a generic 500
// without internal detail.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch err.(type) {
	case *service.ErrResourceNotFound:
		respondError(w, r, http.StatusNotFound, err.Error())
	case *service.ErrEvaluationExists, *service.ErrInterviewClosed, *service.ErrUnexpectedTurn:
		respondError(w, r, http.StatusConflict, err.Error())
	case *service.ErrInvalidStatusTransition, *service.ErrEmptyTranscript:
		respondError(w, r, http.StatusBadRequest, err.Error())
	default:
		zap.L().Named("api").Error("request failed",
			zap.String("request_id", requestid.FromRequest(r)),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
