package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project groups tickets, labels, cycles and modules.
type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name" firestore:"name"`
	Identifier  string    `gorm:"size:50;not null;uniqueIndex" json:"identifier" firestore:"identifier"`
	Description *string   `gorm:"type:text" json:"description,omitempty" firestore:"description"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

const identifierLen = 10

// DeriveIdentifier builds the short project key from a name: the first ten
// characters, upper-cased, with spaces removed.
func DeriveIdentifier(name string) string {
	r := []rune(name)
	if len(r) > identifierLen {
		r = r[:identifierLen]
	}
	return strings.ReplaceAll(strings.ToUpper(string(r)), " ", "")
}
