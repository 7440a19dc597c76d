package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/ai"
	"github.com/interviewsim/interview-server/internal/config"
	"github.com/interviewsim/interview-server/internal/service"
	"github.com/interviewsim/interview-server/internal/service/mappers"
	"github.com/interviewsim/interview-server/internal/store"
	"github.com/interviewsim/interview-server/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("evaluation service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	createInterview := func(status string) *model.Interview {
		interview, err := s.Interview().Create(context.TODO(), model.Interview{
			ID:     uuid.New(),
			Title:  "behavioral interview",
			UserID: "user-1",
			Status: status,
		})
		Expect(err).To(BeNil())
		return interview
	}

	addTurn := func(interviewID uuid.UUID, turnType, content string) {
		_, err := s.Conversation().Create(context.TODO(), model.Conversation{
			ID:          uuid.New(),
			InterviewID: interviewID,
			UserID:      "user-1",
			Type:        turnType,
			Content:     content,
		})
		Expect(err).To(BeNil())
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE from conversations;")
		gormdb.Exec("DELETE from evaluations;")
		gormdb.Exec("DELETE from interviews;")
	})

	Context("create", func() {
		It("records the evaluation and completes the interview", func() {
			srv := service.NewEvaluationService(s, newTestCompleter("unused"))
			interview := createInterview(model.InterviewStatusInProgress)

			evaluation, err := srv.CreateEvaluation(context.TODO(), mappers.EvaluationCreateForm{
				InterviewID: interview.ID,
				UserID:      "user-1",
				Score:       9,
				Feedback:    "excellent storytelling",
			})
			Expect(err).To(BeNil())
			Expect(evaluation.Score).To(Equal(9))

			refreshed, err := s.Interview().Get(context.TODO(), interview.ID)
			Expect(err).To(BeNil())
			Expect(refreshed.Status).To(Equal(model.InterviewStatusCompleted))
		})

		It("rejects a second evaluation", func() {
			srv := service.NewEvaluationService(s, newTestCompleter("unused"))
			interview := createInterview(model.InterviewStatusInProgress)

			_, err := srv.CreateEvaluation(context.TODO(), mappers.EvaluationCreateForm{
				InterviewID: interview.ID,
				UserID:      "user-1",
				Score:       9,
				Feedback:    "first",
			})
			Expect(err).To(BeNil())

			_, err = srv.CreateEvaluation(context.TODO(), mappers.EvaluationCreateForm{
				InterviewID: interview.ID,
				UserID:      "user-1",
				Score:       2,
				Feedback:    "second",
			})
			evaluationExists := &service.ErrEvaluationExists{}
			Expect(errors.As(err, &evaluationExists)).To(BeTrue())
		})

		It("returns a not found error for a missing interview", func() {
			srv := service.NewEvaluationService(s, newTestCompleter("unused"))

			_, err := srv.CreateEvaluation(context.TODO(), mappers.EvaluationCreateForm{
				InterviewID: uuid.New(),
				UserID:      "user-1",
				Score:       5,
				Feedback:    "ok",
			})
			resourceNotFound := &service.ErrResourceNotFound{}
			Expect(errors.As(err, &resourceNotFound)).To(BeTrue())
		})
	})

	Context("generate", func() {
		It("parses the score and persists the evaluation", func() {
			completer := newTestCompleter("[SCORE: 8] Strong examples, confident delivery.")
			srv := service.NewEvaluationService(s, completer)
			interview := createInterview(model.InterviewStatusInProgress)
			addTurn(interview.ID, model.MessageTypeQuestion, "Tell me about a conflict.")
			addTurn(interview.ID, model.MessageTypeAnswer, "A teammate and I disagreed on design.")

			evaluation, err := srv.GenerateEvaluation(context.TODO(), interview.ID, "user-1")
			Expect(err).To(BeNil())
			Expect(evaluation.Score).To(Equal(8))
			Expect(evaluation.Feedback).To(Equal("Strong examples, confident delivery."))
			Expect(completer.kinds).To(Equal([]string{ai.CompletionKindEvaluation}))

			refreshed, err := s.Interview().Get(context.TODO(), interview.ID)
			Expect(err).To(BeNil())
			Expect(refreshed.Status).To(Equal(model.InterviewStatusCompleted))
		})

		It("frames the transcript between the evaluator prompts", func() {
			completer := newTestCompleter("[SCORE: 6] Fine.")
			srv := service.NewEvaluationService(s, completer)
			interview := createInterview(model.InterviewStatusInProgress)
			addTurn(interview.ID, model.MessageTypeQuestion, "Q1")
			addTurn(interview.ID, model.MessageTypeAnswer, "A1")

			_, err := srv.GenerateEvaluation(context.TODO(), interview.ID, "user-1")
			Expect(err).To(BeNil())

			prompt := completer.prompts[0]
			Expect(prompt).To(HaveLen(4))
			Expect(prompt[0].Role).To(Equal(ai.RoleSystem))
			Expect(prompt[0].Content).To(Equal(ai.EvaluatorPrompt))
			Expect(prompt[1].Role).To(Equal(ai.RoleAssistant))
			Expect(prompt[2].Role).To(Equal(ai.RoleUser))
			Expect(prompt[3].Content).To(Equal(ai.EvaluationInstruction))
		})

		It("falls back to the default score when the token is missing", func() {
			completer := newTestCompleter("Good interview overall.")
			srv := service.NewEvaluationService(s, completer)
			interview := createInterview(model.InterviewStatusInProgress)
			addTurn(interview.ID, model.MessageTypeAnswer, "answer")

			evaluation, err := srv.GenerateEvaluation(context.TODO(), interview.ID, "user-1")
			Expect(err).To(BeNil())
			Expect(evaluation.Score).To(Equal(ai.DefaultScore))
			Expect(evaluation.Feedback).To(Equal("Good interview overall."))
		})

		It("rejects an empty transcript", func() {
			srv := service.NewEvaluationService(s, newTestCompleter("[SCORE: 5] nothing to judge"))
			interview := createInterview(model.InterviewStatusInProgress)

			_, err := srv.GenerateEvaluation(context.TODO(), interview.ID, "user-1")
			emptyTranscript := &service.ErrEmptyTranscript{}
			Expect(errors.As(err, &emptyTranscript)).To(BeTrue())

			count := 0
			Expect(gormdb.Raw("SELECT COUNT(*) FROM evaluations;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("rejects an already evaluated interview", func() {
			completer := newTestCompleter("[SCORE: 7] ok")
			srv := service.NewEvaluationService(s, completer)
			interview := createInterview(model.InterviewStatusInProgress)
			addTurn(interview.ID, model.MessageTypeAnswer, "answer")

			_, err := srv.GenerateEvaluation(context.TODO(), interview.ID, "user-1")
			Expect(err).To(BeNil())

			_, err = srv.GenerateEvaluation(context.TODO(), interview.ID, "user-1")
			evaluationExists := &service.ErrEvaluationExists{}
			Expect(errors.As(err, &evaluationExists)).To(BeTrue())
			Expect(completer.kinds).To(HaveLen(1))
		})

		It("persists nothing when the provider fails", func() {
			completer := newTestCompleter("")
			completer.err = errors.New("provider down")
			srv := service.NewEvaluationService(s, completer)
			interview := createInterview(model.InterviewStatusInProgress)
			addTurn(interview.ID, model.MessageTypeAnswer, "answer")

			_, err := srv.GenerateEvaluation(context.TODO(), interview.ID, "user-1")
			Expect(err).ToNot(BeNil())

			refreshed, err := s.Interview().Get(context.TODO(), interview.ID)
			Expect(err).To(BeNil())
			Expect(refreshed.Status).To(Equal(model.InterviewStatusInProgress))
		})
	})

	Context("list", func() {
		It("lists the evaluations of one user", func() {
			srv := service.NewEvaluationService(s, newTestCompleter("unused"))

			mine := createInterview(model.InterviewStatusInProgress)
			_, err := srv.CreateEvaluation(context.TODO(), mappers.EvaluationCreateForm{
				InterviewID: mine.ID,
				UserID:      "user-1",
				Score:       7,
				Feedback:    "mine",
			})
			Expect(err).To(BeNil())

			theirs, err := s.Interview().Create(context.TODO(), model.Interview{
				ID:     uuid.New(),
				Title:  "other interview",
				UserID: "user-2",
				Status: model.InterviewStatusInProgress,
			})
			Expect(err).To(BeNil())
			_, err = srv.CreateEvaluation(context.TODO(), mappers.EvaluationCreateForm{
				InterviewID: theirs.ID,
				UserID:      "user-2",
				Score:       4,
				Feedback:    "theirs",
			})
			Expect(err).To(BeNil())

			evaluations, err := srv.ListEvaluationsByUser(context.TODO(), "user-1")
			Expect(err).To(BeNil())
			Expect(evaluations).To(HaveLen(1))
			Expect(evaluations[0].Feedback).To(Equal("mine"))
		})
	})
})
