package persistent

import (
	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialRepository interface {
	Create(testimonial *entity.Testimonial) error
	GetByID(id string) (*entity.Testimonial, error)
	List(activeOnly bool) ([]*entity.Testimonial, error)
	Update(testimonial *entity.Testimonial) error
	Delete(id string) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(testimonial *entity.Testimonial) error {
	testimonialModel := ToTestimonialModel(testimonial)
	if testimonialModel.ID == "" {
		testimonialModel.ID = uuid.New().String()
	}

	if err := r.db.Create(testimonialModel).Error; err != nil {
		return err
	}

	*testimonial = *ToTestimonialEntity(testimonialModel)
	return nil
}

func (r *testimonialRepository) GetByID(id string) (*entity.Testimonial, error) {
	var testimonialModel model.TestimonialModel
	if err := r.db.Where("id = ?", id).First(&testimonialModel).Error; err != nil {
		return nil, err
	}
	return ToTestimonialEntity(&testimonialModel), nil
}

func (r *testimonialRepository) List(activeOnly bool) ([]*entity.Testimonial, error) {
	var testimonialModels []model.TestimonialModel
	query := r.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&testimonialModels).Error; err != nil {
		return nil, err
	}

	testimonials := make([]*entity.Testimonial, len(testimonialModels))
	for i := range testimonialModels {
		testimonials[i] = ToTestimonialEntity(&testimonialModels[i])
	}
	return testimonials, nil
}

func (r *testimonialRepository) Update(testimonial *entity.Testimonial) error {
	testimonialModel := ToTestimonialModel(testimonial)
	return r.db.Save(testimonialModel).Error
}

func (r *testimonialRepository) Delete(id string) error {
	result := r.db.Delete(&model.TestimonialModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
