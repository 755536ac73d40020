package label

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Label struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	Name      string    `gorm:"size:255;not null" json:"name" firestore:"name"`
	Color     *string   `gorm:"size:20" json:"color,omitempty" firestore:"color"`
	ProjectID *string   `gorm:"size:36;index" json:"project_id,omitempty" firestore:"project_id"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

func (l *Label) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
