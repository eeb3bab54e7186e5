package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProjectModel struct {
	ID              string         `gorm:"type:uuid;primary_key" json:"id"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	Image           string         `gorm:"type:varchar(500)" json:"image"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	Category        string         `gorm:"type:varchar(20);not null;index" json:"category"`
	LiveURL         string         `gorm:"type:varchar(500)" json:"live_url"`
	GithubURL       string         `gorm:"type:varchar(500)" json:"github_url"`
	DetailedContent string         `gorm:"type:text" json:"detailed_content"`
	Carousels       pq.StringArray `gorm:"type:text[]" json:"carousels"`
	VideoURL        string         `gorm:"type:varchar(500)" json:"video_url"`
	IsDetailedPage  bool           `gorm:"default:false" json:"is_detailed_page"`
	IsPrivate       bool           `gorm:"default:false" json:"is_private"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	DisplayOrder    int            `gorm:"column:display_order;not null;index" json:"display_order"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

func (p *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
