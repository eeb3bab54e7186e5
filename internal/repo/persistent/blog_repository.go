package persistent

import (
	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepository interface {
	Create(blog *entity.Blog) error
	GetByID(id string) (*entity.Blog, error)
	GetBySlug(slug string) (*entity.Blog, error)
	List(status entity.BlogStatus, tag string, featuredOnly bool, limit, offset int) ([]*entity.Blog, int64, error)
	Update(blog *entity.Blog) error
	Delete(id string) error
	IncrementViews(slug string) error
	DistinctTags(publishedOnly bool) ([]string, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *entity.Blog) error {
	blogModel := ToBlogModel(blog)
	if blogModel.ID == "" {
		blogModel.ID = uuid.New().String()
	}

	// A slug collision surfaces here as gorm.ErrDuplicatedKey via the unique
	// index; the caller decides how to present it.
	if err := r.db.Create(blogModel).Error; err != nil {
		return err
	}

	*blog = *ToBlogEntity(blogModel)
	return nil
}

func (r *blogRepository) GetByID(id string) (*entity.Blog, error) {
	var blogModel model.BlogModel
	if err := r.db.Where("id = ?", id).First(&blogModel).Error; err != nil {
		return nil, err
	}
	return ToBlogEntity(&blogModel), nil
}

func (r *blogRepository) GetBySlug(slug string) (*entity.Blog, error) {
	var blogModel model.BlogModel
	if err := r.db.Where("slug = ?", slug).First(&blogModel).Error; err != nil {
		return nil, err
	}
	return ToBlogEntity(&blogModel), nil
}

func (r *blogRepository) List(status entity.BlogStatus, tag string, featuredOnly bool, limit, offset int) ([]*entity.Blog, int64, error) {
	query := r.db.Model(&model.BlogModel{})

	switch status {
	case entity.BlogStatusPublished:
		query = query.Where("is_published = ?", true)
	case entity.BlogStatusDraft:
		query = query.Where("is_published = ?", false)
	}

	if tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogModels []model.BlogModel
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&blogModels).Error; err != nil {
		return nil, 0, err
	}

	blogs := make([]*entity.Blog, len(blogModels))
	for i := range blogModels {
		blogs[i] = ToBlogEntity(&blogModels[i])
	}
	return blogs, total, nil
}

func (r *blogRepository) Update(blog *entity.Blog) error {
	blogModel := ToBlogModel(blog)
	return r.db.Save(blogModel).Error
}

func (r *blogRepository) Delete(id string) error {
	result := r.db.Delete(&model.BlogModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews bumps the counter with an atomic in-database add. Concurrent
// increments never lose updates; a load-then-save here would.
func (r *blogRepository) IncrementViews(slug string) error {
	result := r.db.Model(&model.BlogModel{}).
		Where("slug = ?", slug).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) DistinctTags(publishedOnly bool) ([]string, error) {
	var tags []string
	query := "SELECT DISTINCT unnest(tags) AS tag FROM blogs"
	if publishedOnly {
		query += " WHERE is_published = true"
	}
	query += " ORDER BY tag ASC"

	if err := r.db.Raw(query).Scan(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
