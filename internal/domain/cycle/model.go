package cycle

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cycle is a time-boxed sprint.
type Cycle struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	Name        string    `gorm:"size:255;not null" json:"name" firestore:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty" firestore:"description"`
	StartDate   *string   `gorm:"size:10" json:"start_date,omitempty" firestore:"start_date"`
	EndDate     *string   `gorm:"size:10" json:"end_date,omitempty" firestore:"end_date"`
	ProjectID   *string   `gorm:"size:36;index" json:"project_id,omitempty" firestore:"project_id"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}

func (c *Cycle) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
