package v1alpha1

import (
	"net/http"
	"strconv"

	api "github.com/interviewsim/interview-server/api/v1alpha1"
	"github.com/interviewsim/interview-server/internal/handlers/v1alpha1/mappers"
	"github.com/interviewsim/interview-server/internal/handlers/validator"
	"github.com/interviewsim/interview-server/internal/service"
)

// (GET /api/v1alpha1/interviews/{id}/conversations)
func (h *ServiceHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	interviewID, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	filter := service.NewConversationFilter(interviewID)
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

	conversations, nextCursor, err := h.conversationSrv.ListConversations(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, api.ConversationList{
		Items:      mappers.ConversationListToApi(conversations),
		NextCursor: nextCursor,
	})
}

// (POST /api/v1alpha1/interviews/{id}/conversations)
func (h *ServiceHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	interviewID, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	var resource api.ConversationCreate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateConversationData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	conversation, err := h.conversationSrv.AppendConversation(r.Context(),
		mappers.ConversationCreateFormFromApi(interviewID, resource))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.ConversationToApi(*conversation))
}

// (POST /api/v1alpha1/interviews/{id}/conversations/generate)
func (h *ServiceHandler) GenerateConversation(w http.ResponseWriter, r *http.Request) {
	interviewID, err := idParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "malformed interview id")
		return
	}

	var resource api.ConversationGenerate
	if err := decodeBody(r, &resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateConversationData(resource); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	conversation, err := h.conversationSrv.GenerateConversation(r.Context(),
		mappers.GenerateFormFromApi(interviewID, resource))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.ConversationToApi(*conversation))
}

func validateConversationData(data any) error {
	v := validator.NewValidator()
	v.Register(validator.NewConversationValidationRules()...)
	return v.Struct(data)
}
