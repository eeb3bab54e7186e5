package persistent

import (
	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/model"
)

func ToProjectEntity(m *model.ProjectModel) *entity.Project {
	if m == nil {
		return nil
	}

	return &entity.Project{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Image:           m.Image,
		Tags:            []string(m.Tags),
		Category:        entity.ProjectCategory(m.Category),
		LiveURL:         m.LiveURL,
		GithubURL:       m.GithubURL,
		DetailedContent: m.DetailedContent,
		Carousels:       []string(m.Carousels),
		VideoURL:        m.VideoURL,
		IsDetailedPage:  m.IsDetailedPage,
		IsPrivate:       m.IsPrivate,
		IsActive:        m.IsActive,
		Order:           m.DisplayOrder,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToProjectModel(e *entity.Project) *model.ProjectModel {
	if e == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Image:           e.Image,
		Tags:            e.Tags,
		Category:        string(e.Category),
		LiveURL:         e.LiveURL,
		GithubURL:       e.GithubURL,
		DetailedContent: e.DetailedContent,
		Carousels:       e.Carousels,
		VideoURL:        e.VideoURL,
		IsDetailedPage:  e.IsDetailedPage,
		IsPrivate:       e.IsPrivate,
		IsActive:        e.IsActive,
		DisplayOrder:    e.Order,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToBlogEntity(m *model.BlogModel) *entity.Blog {
	if m == nil {
		return nil
	}

	return &entity.Blog{
		ID:         m.ID,
		Title:      m.Title,
		Slug:       m.Slug,
		Content:    m.Content,
		Excerpt:    m.Excerpt,
		CoverImage: m.CoverImage,
		Author: entity.BlogAuthor{
			Name:  m.AuthorName,
			Image: m.AuthorImage,
		},
		Tags:        []string(m.Tags),
		IsPublished: m.IsPublished,
		Featured:    m.Featured,
		ReadingTime: m.ReadingTime,
		Views:       m.Views,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToBlogModel(e *entity.Blog) *model.BlogModel {
	if e == nil {
		return nil
	}

	return &model.BlogModel{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Content:     e.Content,
		Excerpt:     e.Excerpt,
		CoverImage:  e.CoverImage,
		AuthorName:  e.Author.Name,
		AuthorImage: e.Author.Image,
		Tags:        e.Tags,
		IsPublished: e.IsPublished,
		Featured:    e.Featured,
		ReadingTime: e.ReadingTime,
		Views:       e.Views,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTestimonialEntity(m *model.TestimonialModel) *entity.Testimonial {
	if m == nil {
		return nil
	}

	return &entity.Testimonial{
		ID:        m.ID,
		Content:   m.Content,
		Name:      m.Name,
		Role:      m.Role,
		Company:   m.Company,
		Image:     m.Image,
		Avatar:    m.Avatar,
		Rating:    m.Rating,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTestimonialModel(e *entity.Testimonial) *model.TestimonialModel {
	if e == nil {
		return nil
	}

	return &model.TestimonialModel{
		ID:        e.ID,
		Content:   e.Content,
		Name:      e.Name,
		Role:      e.Role,
		Company:   e.Company,
		Image:     e.Image,
		Avatar:    e.Avatar,
		Rating:    e.Rating,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
