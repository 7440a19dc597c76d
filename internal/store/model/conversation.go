package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeQuestion = "QUESTION"
	MessageTypeAnswer   = "ANSWER"
)

// Conversation is one transcript turn. Rows are append-only; nothing in the
// store updates them after creation.
type Conversation struct {
	ID          uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	InterviewID uuid.UUID `gorm:"not null;type:VARCHAR(255);index:conversations_interview_id_idx"`
	UserID      string    `gorm:"not null;type:VARCHAR(255)"`
	Type        string    `gorm:"not null;type:VARCHAR(100)"`
	Content     string    `gorm:"not null;type:TEXT"`
	Timestamp   time.Time `gorm:"not null;autoCreateTime;index:conversations_timestamp_idx"`
}

type ConversationList []Conversation

func (c Conversation) String() string {
	val, _ := json.Marshal(c)
	return string(val)
}

// OppositeTurn returns the turn type expected after a turn of the given type.
func OppositeTurn(turnType string) string {
	if turnType == MessageTypeQuestion {
		return MessageTypeAnswer
	}
	return MessageTypeQuestion
}
