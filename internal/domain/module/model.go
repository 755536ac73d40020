package module

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Module is a feature area grouping tickets.
type Module struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	Name        string    `gorm:"size:255;not null" json:"name" firestore:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty" firestore:"description"`
	ProjectID   *string   `gorm:"size:36;index" json:"project_id,omitempty" firestore:"project_id"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
