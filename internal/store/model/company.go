package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	Name      string    `gorm:"not null;uniqueIndex:companies_name_key"`
	Logo      *string   `gorm:"type:TEXT"`
	CreatedAt time.Time `gorm:"not null"`
	Users     []User    `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:SET NULL;"`
}

type CompanyList []Company

func (c Company) String() string {
	val, _ := json.Marshal(c)
	return string(val)
}
