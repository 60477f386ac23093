package store

import (
	"errors"

	"github.com/Shubhamsh1838/Highway-delite/internals/models"
	"gorm.io/gorm"
)

// NoteStore handles persistence for notes.
type NoteStore struct {
	DB *gorm.DB
}

func NewNoteStore(db *gorm.DB) *NoteStore {
	return &NoteStore{DB: db}
}

// ListByOwner returns the owner's live notes, newest first. Soft-deleted
// notes are excluded.
func (s *NoteStore) ListByOwner(userID uint) ([]models.Note, error) {
	var notes []models.Note
	err := s.DB.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByID returns a note regardless of its deleted flag; callers decide
// how to treat deleted rows.
func (s *NoteStore) FindByID(id uint) (*models.Note, error) {
	var note models.Note
	if err := s.DB.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (s *NoteStore) Create(note *models.Note) error {
	return s.DB.Create(note).Error
}

func (s *NoteStore) Save(note *models.Note) error {
	return s.DB.Save(note).Error
}
