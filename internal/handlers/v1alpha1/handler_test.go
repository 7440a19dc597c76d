package v1alpha1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	api "github.com/interviewsim/interview-server/api/v1alpha1"
	"github.com/interviewsim/interview-server/internal/config"
	handlers "github.com/interviewsim/interview-server/internal/handlers/v1alpha1"
	"github.com/interviewsim/interview-server/internal/service"
	"github.com/interviewsim/interview-server/internal/store"
	"github.com/interviewsim/interview-server/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("interview handler", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		router http.Handler
	)

	newRouter := func(completer *testCompleter) http.Handler {
		h := handlers.NewServiceHandler(
			service.NewInterviewService(s),
			service.NewConversationService(s, completer),
			service.NewEvaluationService(s, completer),
			service.NewCompanyService(s),
		)
		return h.Routes()
	}

	do := func(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	createInterview := func() *model.Interview {
		interview, err := s.Interview().Create(context.TODO(), model.Interview{
			ID:     uuid.New(),
			Title:  "behavioral interview",
			UserID: "user-1",
			Status: model.InterviewStatusInProgress,
		})
		Expect(err).To(BeNil())
		return interview
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())

		router = newRouter(&testCompleter{response: "Tell me about a challenge you faced."})
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE from conversations;")
		gormdb.Exec("DELETE from evaluations;")
		gormdb.Exec("DELETE from interviews;")
	})

	Context("interviews", func() {
		It("creates an interview", func() {
			rec := do(router, http.MethodPost, "/interviews", api.InterviewCreate{
				Title:  "backend behavioral",
				UserId: "user-1",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var resp api.Interview
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Title).To(Equal("backend behavioral"))
			Expect(resp.Status).To(Equal(api.InterviewStatusInProgress))
		})

		It("rejects a body without a title", func() {
			rec := do(router, http.MethodPost, "/interviews", api.InterviewCreate{UserId: "user-1"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an invalid status filter", func() {
			rec := do(router, http.MethodGet, "/interviews?status=RUNNING", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("lists interviews with a next cursor", func() {
			for i := 0; i < 3; i++ {
				createInterview()
			}

			rec := do(router, http.MethodGet, "/interviews?limit=2", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.InterviewList
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Items).To(HaveLen(2))
			Expect(resp.NextCursor).ToNot(BeNil())
		})

		It("returns 404 for a missing interview", func() {
			rec := do(router, http.MethodGet, fmt.Sprintf("/interviews/%s", uuid.New()), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			var resp api.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Message).ToNot(BeEmpty())
		})

		It("returns 400 for a malformed interview id", func() {
			rec := do(router, http.MethodGet, "/interviews/not-a-uuid", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("deletes an interview", func() {
			interview := createInterview()

			rec := do(router, http.MethodDelete, fmt.Sprintf("/interviews/%s", interview.ID), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do(router, http.MethodGet, fmt.Sprintf("/interviews/%s", interview.ID), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("conversations", func() {
		It("appends a turn", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/conversations", interview.ID), api.ConversationCreate{
				UserId:  "user-1",
				Type:    api.MessageTypeAnswer,
				Content: "I led the migration to the new queue.",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var resp api.Conversation
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Type).To(Equal(api.MessageTypeAnswer))
			Expect(resp.InterviewId).To(Equal(interview.ID))
		})

		It("rejects an unknown message type", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/conversations", interview.ID), api.ConversationCreate{
				UserId:  "user-1",
				Type:    api.MessageType("SHOUT"),
				Content: "hello",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 409 for a turn from the wrong side", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/conversations", interview.ID), api.ConversationCreate{
				UserId:  "user-1",
				Type:    api.MessageTypeAnswer,
				Content: "first",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			rec = do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/conversations", interview.ID), api.ConversationCreate{
				UserId:  "user-1",
				Type:    api.MessageTypeAnswer,
				Content: "second",
			})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("generates the next question", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/conversations/generate", interview.ID), api.ConversationGenerate{
				UserId: "user-1",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var resp api.Conversation
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Type).To(Equal(api.MessageTypeQuestion))
			Expect(resp.Content).To(Equal("Tell me about a challenge you faced."))
		})

		It("lists the transcript", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/conversations", interview.ID), api.ConversationCreate{
				UserId:  "user-1",
				Type:    api.MessageTypeQuestion,
				Content: "opening question",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			rec = do(router, http.MethodGet, fmt.Sprintf("/interviews/%s/conversations", interview.ID), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.ConversationList
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Items).To(HaveLen(1))
			Expect(resp.Items[0].Content).To(Equal("opening question"))
		})
	})

	Context("evaluations", func() {
		evalRouter := func(response string) http.Handler {
			return newRouter(&testCompleter{response: response})
		}

		It("records a manual evaluation and completes the interview", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/evaluation", interview.ID), api.EvaluationCreate{
				UserId:   "user-1",
				Score:    9,
				Feedback: "excellent",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var resp api.Evaluation
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Score).To(Equal(9))

			refreshed, err := s.Interview().Get(context.TODO(), interview.ID)
			Expect(err).To(BeNil())
			Expect(refreshed.Status).To(Equal(model.InterviewStatusCompleted))
		})

		It("rejects an out of range score", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/evaluation", interview.ID), api.EvaluationCreate{
				UserId:   "user-1",
				Score:    11,
				Feedback: "too good",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("generates an evaluation from the transcript", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/conversations", interview.ID), api.ConversationCreate{
				UserId:  "user-1",
				Type:    api.MessageTypeAnswer,
				Content: "my answer",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			router := evalRouter("[SCORE: 7] Decent structure.")
			rec = do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/evaluation/generate", interview.ID), api.EvaluationGenerate{
				UserId: "user-1",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var resp api.Evaluation
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Score).To(Equal(7))
			Expect(resp.Feedback).To(Equal("Decent structure."))
		})

		It("returns 400 when the transcript is empty", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/evaluation/generate", interview.ID), api.EvaluationGenerate{
				UserId: "user-1",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 409 for a second evaluation", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/evaluation", interview.ID), api.EvaluationCreate{
				UserId:   "user-1",
				Score:    5,
				Feedback: "first",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			rec = do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/evaluation", interview.ID), api.EvaluationCreate{
				UserId:   "user-1",
				Score:    5,
				Feedback: "second",
			})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("gets an evaluation by id", func() {
			interview := createInterview()

			rec := do(router, http.MethodPost, fmt.Sprintf("/interviews/%s/evaluation", interview.ID), api.EvaluationCreate{
				UserId:   "user-1",
				Score:    6,
				Feedback: "ok",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var created api.Evaluation
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())

			rec = do(router, http.MethodGet, fmt.Sprintf("/evaluations/%s", created.Id), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp api.Evaluation
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Interview).ToNot(BeNil())
			Expect(resp.Interview.Id).To(Equal(interview.ID))
		})
	})

	Context("companies", func() {
		It("creates, updates and deletes a company", func() {
			rec := do(router, http.MethodPost, "/companies", api.CompanyCreate{Name: "Globex"})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var created api.Company
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
			Expect(created.Name).To(Equal("Globex"))

			name := "Globex International"
			rec = do(router, http.MethodPut, fmt.Sprintf("/companies/%s", created.Id), api.CompanyUpdate{Name: &name})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var updated api.Company
			Expect(json.Unmarshal(rec.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.Name).To(Equal("Globex International"))

			rec = do(router, http.MethodDelete, fmt.Sprintf("/companies/%s", created.Id), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do(router, http.MethodGet, fmt.Sprintf("/companies/%s", created.Id), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE from companies;")
		})
	})
})
