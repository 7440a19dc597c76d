package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Evaluation is the single scored assessment of an interview. The unique
// index on interview_id backs the at-most-one invariant.
type Evaluation struct {
	ID          uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	InterviewID uuid.UUID `gorm:"not null;type:VARCHAR(255);uniqueIndex:evaluations_interview_id_key"`
	UserID      string    `gorm:"not null;type:VARCHAR(255);index:evaluations_user_id_idx"`
	Score       int       `gorm:"not null"`
	Feedback    string    `gorm:"not null;type:TEXT"`
	CreatedAt   time.Time `gorm:"not null"`

	Interview *Interview `gorm:"foreignKey:InterviewID;references:ID"`
}

type EvaluationList []Evaluation

func (e Evaluation) String() string {
	val, _ := json.Marshal(e)
	return string(val)
}
