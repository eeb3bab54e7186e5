package usecase

import (
	"errors"
	"fmt"

	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/repo/persistent"
	"portfolio-backend/pkg/logger"

	"gorm.io/gorm"
)

type TestimonialInput struct {
	Content  string
	Name     string
	Role     string
	Company  string
	Image    string
	Avatar   string
	Rating   int
	IsActive *bool
}

type TestimonialPatch struct {
	Content  *string
	Name     *string
	Role     *string
	Company  *string
	Image    *string
	Avatar   *string
	Rating   *int
	IsActive *bool
}

type TestimonialUseCase interface {
	CreateTestimonial(input TestimonialInput) (*entity.Testimonial, error)
	ListTestimonials(activeOnly bool) ([]*entity.Testimonial, error)
	UpdateTestimonial(id string, patch TestimonialPatch) (*entity.Testimonial, error)
	DeleteTestimonial(id string) error
}

type testimonialUseCase struct {
	testimonialRepo persistent.TestimonialRepository
	logger          *logger.Logger
}

func NewTestimonialUseCase(testimonialRepo persistent.TestimonialRepository, logger *logger.Logger) TestimonialUseCase {
	return &testimonialUseCase{
		testimonialRepo: testimonialRepo,
		logger:          logger,
	}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (uc *testimonialUseCase) CreateTestimonial(input TestimonialInput) (*entity.Testimonial, error) {
	if !validRating(input.Rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	testimonial := &entity.Testimonial{
		Content:  input.Content,
		Name:     input.Name,
		Role:     input.Role,
		Company:  input.Company,
		Image:    input.Image,
		Avatar:   input.Avatar,
		Rating:   input.Rating,
		IsActive: isActive,
	}

	if err := uc.testimonialRepo.Create(testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	return testimonial, nil
}

func (uc *testimonialUseCase) ListTestimonials(activeOnly bool) ([]*entity.Testimonial, error) {
	return uc.testimonialRepo.List(activeOnly)
}

func (uc *testimonialUseCase) UpdateTestimonial(id string, patch TestimonialPatch) (*entity.Testimonial, error) {
	testimonial, err := uc.testimonialRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.Rating != nil && !validRating(*patch.Rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if patch.Content != nil {
		testimonial.Content = *patch.Content
	}
	if patch.Name != nil {
		testimonial.Name = *patch.Name
	}
	if patch.Role != nil {
		testimonial.Role = *patch.Role
	}
	if patch.Company != nil {
		testimonial.Company = *patch.Company
	}
	if patch.Image != nil {
		testimonial.Image = *patch.Image
	}
	if patch.Avatar != nil {
		testimonial.Avatar = *patch.Avatar
	}
	if patch.Rating != nil {
		testimonial.Rating = *patch.Rating
	}
	if patch.IsActive != nil {
		testimonial.IsActive = *patch.IsActive
	}

	if err := uc.testimonialRepo.Update(testimonial); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	return testimonial, nil
}

func (uc *testimonialUseCase) DeleteTestimonial(id string) error {
	if err := uc.testimonialRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}
