package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is a stored reference to an uploaded resume. URL is the locator the
// rendering service derives page images from.
type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	URL              string    `gorm:"type:text;not null" json:"url"`
	Filename         string    `gorm:"type:text" json:"filename,omitempty"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename,omitempty"`
	PageCount        int       `gorm:"default:0" json:"page_count"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now();index" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
