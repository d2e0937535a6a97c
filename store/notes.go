package store

import (
	"context"

	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (s *Store) ListNotes(ctx context.Context) ([]types.Note, error) {
	ret := []types.Note{}
	if err := s.db.WithContext(ctx).Order("created_at").Find(&ret).Error; err != nil {
		return nil, errors.Wrap(err, "listing notes")
	}
	return ret, nil
}

func (s *Store) FindNote(ctx context.Context, id string) (types.Note, error) {
	var note types.Note
	if err := s.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return types.Note{}, errors.Wrapf(notFound(err), "finding note %q", id)
	}
	return note, nil
}

func (s *Store) CreateNote(ctx context.Context, note types.Note) (types.Note, error) {
	note.ID = ""
	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return types.Note{}, errors.Wrap(err, "saving note to db")
	}
	return note, nil
}

func (s *Store) UpdateNote(ctx context.Context, id string, note types.Note) (types.Note, error) {
	var existing types.Note
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return types.Note{}, errors.Wrapf(notFound(err), "finding note %q", id)
	}
	existing.Title = note.Title
	existing.Content = note.Content
	existing.Author = note.Author
	if !note.Date.IsZero() {
		existing.Date = note.Date
	}
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return types.Note{}, errors.Wrapf(err, "updating note %q", id)
	}
	return existing, nil
}

// DeleteNote removes the note and returns it as it was before deletion.
func (s *Store) DeleteNote(ctx context.Context, id string) (types.Note, error) {
	var note types.Note
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&note, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		return tx.Delete(&note).Error
	})
	if err != nil {
		return types.Note{}, errors.Wrapf(err, "deleting note %q", id)
	}
	return note, nil
}
