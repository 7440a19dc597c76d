package store_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/config"
	"github.com/interviewsim/interview-server/internal/store"
	"github.com/interviewsim/interview-server/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("conversation store", Ordered, func() {
	var (
		s           store.Store
		gormdb      *gorm.DB
		interviewID uuid.UUID
	)

	newTurn := func(interviewID uuid.UUID, turnType, content string, timestamp time.Time) model.Conversation {
		return model.Conversation{
			ID:          uuid.New(),
			InterviewID: interviewID,
			UserID:      "user-1",
			Type:        turnType,
			Content:     content,
			Timestamp:   timestamp,
		}
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

	BeforeEach(func() {
		interview, err := s.Interview().Create(context.TODO(), model.Interview{
			ID:     uuid.New(),
			Title:  "behavioral interview",
			UserID: "user-1",
			Status: model.InterviewStatusInProgress,
		})
		Expect(err).To(BeNil())
		interviewID = interview.ID
	})

	AfterEach(func() {
		gormdb.Exec("DELETE from conversations;")
		gormdb.Exec("DELETE from interviews;")
	})

	Context("create", func() {
		It("successfully creates a turn", func() {
			turn, err := s.Conversation().Create(context.TODO(),
				newTurn(interviewID, model.MessageTypeQuestion, "tell me about a time you failed", time.Time{}))
			Expect(err).To(BeNil())
			Expect(turn.Timestamp.IsZero()).To(BeFalse())

			count := 0
			tx := gormdb.Raw("SELECT COUNT(*) FROM conversations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(1))
		})
	})

	Context("get", func() {
		It("successfully gets a turn", func() {
			turn, err := s.Conversation().Create(context.TODO(),
				newTurn(interviewID, model.MessageTypeAnswer, "I shipped a broken migration once", time.Time{}))
			Expect(err).To(BeNil())

			found, err := s.Conversation().Get(context.TODO(), turn.ID)
			Expect(err).To(BeNil())
			Expect(found.Content).To(Equal("I shipped a broken migration once"))
		})

		It("returns ErrRecordNotFound for a missing turn", func() {
			_, err := s.Conversation().Get(context.TODO(), uuid.New())
			Expect(errors.Is(err, store.ErrRecordNotFound)).To(BeTrue())
		})
	})

	Context("list", func() {
		It("orders the transcript oldest first", func() {
			base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			for i, content := range []string{"first", "second", "third"} {
				_, err := s.Conversation().Create(context.TODO(),
					newTurn(interviewID, model.MessageTypeQuestion, content, base.Add(time.Duration(i)*time.Minute)))
				Expect(err).To(BeNil())
			}

			turns, _, err := s.Conversation().List(context.TODO(),
				store.NewConversationQueryFilter().ByInterviewID(interviewID), nil)
			Expect(err).To(BeNil())
			Expect(turns).To(HaveLen(3))
			Expect(turns[0].Content).To(Equal("first"))
			Expect(turns[1].Content).To(Equal("second"))
			Expect(turns[2].Content).To(Equal("third"))
		})

		It("scopes the transcript to one interview", func() {
			other, err := s.Interview().Create(context.TODO(), model.Interview{
				ID:     uuid.New(),
				Title:  "other interview",
				UserID: "user-2",
				Status: model.InterviewStatusInProgress,
			})
			Expect(err).To(BeNil())

			_, err = s.Conversation().Create(context.TODO(),
				newTurn(interviewID, model.MessageTypeQuestion, "mine", time.Time{}))
			Expect(err).To(BeNil())
			_, err = s.Conversation().Create(context.TODO(),
				newTurn(other.ID, model.MessageTypeQuestion, "theirs", time.Time{}))
			Expect(err).To(BeNil())

			turns, _, err := s.Conversation().List(context.TODO(),
				store.NewConversationQueryFilter().ByInterviewID(interviewID), nil)
			Expect(err).To(BeNil())
			Expect(turns).To(HaveLen(1))
			Expect(turns[0].Content).To(Equal("mine"))
		})

		It("paginates with an inclusive cursor", func() {
			base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			total := 5
			for i := 0; i < total; i++ {
				_, err := s.Conversation().Create(context.TODO(),
					newTurn(interviewID, model.MessageTypeQuestion, "turn", base.Add(time.Duration(i)*time.Minute)))
				Expect(err).To(BeNil())
			}

			seen := map[uuid.UUID]bool{}
			var cursor *uuid.UUID
			var previous time.Time
			for {
				turns, next, err := s.Conversation().List(context.TODO(),
					store.NewConversationQueryFilter().ByInterviewID(interviewID),
					store.NewPageOptions().WithLimit(2).WithCursor(cursor))
				Expect(err).To(BeNil())

				for _, turn := range turns {
					Expect(seen[turn.ID]).To(BeFalse())
					seen[turn.ID] = true
					Expect(turn.Timestamp.Before(previous)).To(BeFalse())
					previous = turn.Timestamp
				}

				if next == nil {
					break
				}
				cursor = next
			}

			Expect(seen).To(HaveLen(total))
		})
	})
})
