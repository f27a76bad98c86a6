package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LeadLog is the audit record of one aggregate lead fan-out. Best-effort:
// the funnel never blocks on it.
type LeadLog struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      string         `gorm:"type:varchar(64);index;not null"`
	RubriqueId     string         `gorm:"type:varchar(32)"`
	Email          string         `gorm:"type:varchar(255);index"`
	ProfileType    string         `gorm:"type:varchar(32)"`
	TotalRequested int            `gorm:"not null"`
	TotalSent      int            `gorm:"not null"`
	LeadId         string         `gorm:"type:varchar(64)"`
	RedirectURL    string         `gorm:"type:text"`
	Criteria       datatypes.JSON `gorm:"type:jsonb"`
	TimeSpentSec   int
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (LeadLog) TableName() string {
	return "lead_logs"
}
