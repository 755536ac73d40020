package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a team member tickets can be assigned to. Users do not log in.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	Name      string    `gorm:"size:255;not null" json:"name" firestore:"name"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty" firestore:"email"`
	AvatarURL *string   `gorm:"size:512" json:"avatar_url,omitempty" firestore:"avatar_url"`
	Color     string    `gorm:"size:20" json:"color" firestore:"color"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
