package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	Actor        string         `gorm:"size:255" json:"actor" firestore:"actor"`
	Action       string         `gorm:"size:50;index" json:"action" firestore:"action"`
	ResourceType string         `gorm:"size:50;index" json:"resource_type" firestore:"resource_type"`
	ResourceID   string         `gorm:"size:64" json:"resource_id" firestore:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty" firestore:"old_data"`
	NewData      datatypes.JSON `json:"new_data,omitempty" firestore:"new_data"`
	IPAddress    string         `gorm:"size:64" json:"ip_address" firestore:"ip_address"`
	UserAgent    string         `gorm:"size:512" json:"user_agent" firestore:"user_agent"`
	Description  string         `gorm:"type:text" json:"description,omitempty" firestore:"description"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at" firestore:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
