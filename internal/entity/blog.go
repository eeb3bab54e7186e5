package entity

import "time"

type BlogAuthor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Blog is a post addressed publicly by its slug. Slug and ReadingTime are
// derived fields: they are computed at write time and never taken verbatim
// from unauthenticated input.
type Blog struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"coverImage"`
	Author      BlogAuthor `json:"author"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	Featured    bool       `json:"featured"`
	ReadingTime int        `json:"readingTime"`
	Views       int        `json:"views"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type BlogStatus string

const (
	BlogStatusAll       BlogStatus = "all"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusDraft     BlogStatus = "draft"
)

// Pagination describes one page of a blog listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}
