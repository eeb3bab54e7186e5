package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BlogModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Excerpt     string         `gorm:"type:text;not null" json:"excerpt"`
	CoverImage  string         `gorm:"type:varchar(500);not null" json:"cover_image"`
	AuthorName  string         `gorm:"type:varchar(255);not null" json:"author_name"`
	AuthorImage string         `gorm:"type:varchar(500)" json:"author_image"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	ReadingTime int            `gorm:"default:1" json:"reading_time"`
	Views       int            `gorm:"default:0" json:"views"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (BlogModel) TableName() string {
	return "blogs"
}

func (b *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
