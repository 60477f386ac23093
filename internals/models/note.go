package models

import "gorm.io/gorm"

// Note belongs to exactly one user. Deletes are soft: IsDeleted flips to
// true and the row stays so a repeat delete can be answered with 410 Gone.
type Note struct {
	gorm.Model
	Title     string `gorm:"column:title"`
	Content   string `gorm:"column:content"`
	UserID    uint   `gorm:"column:user_id;index"`
	IsDeleted bool   `gorm:"column:is_deleted;default:false"`
}
