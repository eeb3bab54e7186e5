package entity

import "time"

type ProjectCategory string

const (
	CategoryFrontend  ProjectCategory = "frontend"
	CategoryBackend   ProjectCategory = "backend"
	CategoryFullstack ProjectCategory = "fullstack"
	CategoryMobile    ProjectCategory = "mobile"
	CategoryAI        ProjectCategory = "ai"
)

func (c ProjectCategory) IsValid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryFullstack, CategoryMobile, CategoryAI:
		return true
	}
	return false
}

// Project is a portfolio entry. Order is a rank controlling display position:
// values define a strict total order, adjusted pairwise by reorder operations.
type Project struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	Tags            []string        `json:"tags"`
	Category        ProjectCategory `json:"category"`
	LiveURL         string          `json:"liveUrl"`
	GithubURL       string          `json:"githubUrl"`
	DetailedContent string          `json:"detailedContent"`
	Carousels       []string        `json:"carousels"`
	VideoURL        string          `json:"videoUrl"`
	IsDetailedPage  bool            `json:"isDetailedPage"`
	IsPrivate       bool            `json:"isPrivate"`
	IsActive        bool            `json:"isActive"`
	Order           int             `json:"order"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type ReorderDirection string

const (
	DirectionUp   ReorderDirection = "up"
	DirectionDown ReorderDirection = "down"
)

func (d ReorderDirection) IsValid() bool {
	return d == DirectionUp || d == DirectionDown
}
