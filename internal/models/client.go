package models

import (
	"time"

	"gorm.io/gorm"
)

// Client é soft-deleted: o gorm.DeletedAt marca o tombstone e todas as
// queries padrão excluem registros deletados automaticamente.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Company  string `gorm:"size:100" json:"company"`
	Document string `gorm:"size:30" json:"document"`
	Address  string `gorm:"size:200" json:"address"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:2" json:"state"`
	ZipCode  string `gorm:"size:10" json:"zip_code"`
	Notes    string `gorm:"type:text" json:"notes"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
