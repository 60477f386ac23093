package store

import (
	"errors"

	"github.com/Shubhamsh1838/Highway-delite/internals/models"
	"gorm.io/gorm"
)

// UserStore is the credential store: every read and write of user records
// goes through here.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// FindByEmail looks a user up by exact email match. No case folding or
// trimming is applied; the address is compared as stored.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. A taken email fails with ErrDuplicateEmail,
// whether caught by the pre-check or by the unique index when two creates
// race.
func (s *UserStore) Create(user *models.User) error {
	var existing models.User
	if err := s.DB.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrDuplicateEmail
	}

	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Save persists in-place mutations of a previously loaded user.
func (s *UserStore) Save(user *models.User) error {
	return s.DB.Save(user).Error
}
