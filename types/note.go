package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id" yaml:"_id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `gorm:"type:text" json:"content" yaml:"content"`
	Author    string    `json:"author" yaml:"author"`
	Date      time.Time `json:"date" yaml:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt" yaml:"updatedAt"`
}

// BeforeCreate assigns the identifier and defaults the note date to now.
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Date.IsZero() {
		n.Date = time.Now()
	}
	return nil
}

// NoteRequest is the body accepted when creating or replacing a note.
type NoteRequest struct {
	Title   string     `json:"title" validate:"required"`
	Content string     `json:"content"`
	Author  string     `json:"author"`
	Date    *time.Time `json:"date"`
}

// Normalize trims the title so blank titles fail validation.
func (r *NoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r NoteRequest) Note() Note {
	n := Note{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
	}
	if r.Date != nil {
		n.Date = *r.Date
	}
	return n
}
