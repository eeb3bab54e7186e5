package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"type:varchar(255);not null" json:"role"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Image     string    `gorm:"type:varchar(500)" json:"image"`
	Avatar    string    `gorm:"type:varchar(500)" json:"avatar"`
	Rating    int       `gorm:"default:5" json:"rating"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

func (t *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
