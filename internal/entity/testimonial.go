package entity

import "time"

type Testimonial struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Image     string    `json:"image"`
	Avatar    string    `json:"avatar"`
	Rating    int       `json:"rating"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
