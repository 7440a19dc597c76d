package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	InterviewStatusInProgress = "IN_PROGRESS"
	InterviewStatusCompleted  = "COMPLETED"
	InterviewStatusCancelled  = "CANCELLED"
)

type Interview struct {
	ID          uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
	Title       string  `gorm:"not null"`
	Description *string `gorm:"type:TEXT"`
	Status      string  `gorm:"not null;type:VARCHAR(100);default:IN_PROGRESS;index:interviews_status_idx"`
	// NextTurn records which side speaks next. Empty until the first turn
	// is appended; either side may open the conversation.
	NextTurn      string         `gorm:"type:VARCHAR(100)"`
	UserID        string         `gorm:"not null;type:VARCHAR(255);index:interviews_user_id_idx"`
	Conversations []Conversation `gorm:"foreignKey:InterviewID;references:ID;constraint:OnDelete:CASCADE;"`
	Evaluation    *Evaluation    `gorm:"foreignKey:InterviewID;references:ID;constraint:OnDelete:CASCADE;"`

	// ConversationCount is filled by the store, not mapped to a column.
	ConversationCount int64 `gorm:"-"`
}

type InterviewList []Interview

func (i Interview) String() string {
	val, _ := json.Marshal(i)
	return string(val)
}

// Closed reports whether the interview reached a terminal status.
func (i Interview) Closed() bool {
	return i.Status == InterviewStatusCompleted || i.Status == InterviewStatusCancelled
}
