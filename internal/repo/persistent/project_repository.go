package persistent

import (
	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(activeOnly bool, category string) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
	SwapOrder(a, b *entity.Project) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create inserts the project with display_order = max(existing)+1, or 0 when
// the table is empty. The read and the insert share one transaction to keep
// the "assign next order" window as small as the storage layer allows.
func (r *projectRepository) Create(project *entity.Project) error {
	projectModel := ToProjectModel(project)
	if projectModel.ID == "" {
		projectModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&model.ProjectModel{}).
			Select("COALESCE(MAX(display_order), -1)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		projectModel.DisplayOrder = maxOrder + 1

		if err := tx.Create(projectModel).Error; err != nil {
			return err
		}

		*project = *ToProjectEntity(projectModel)
		return nil
	})
}

func (r *projectRepository) GetByID(id string) (*entity.Project, error) {
	var projectModel model.ProjectModel
	if err := r.db.Where("id = ?", id).First(&projectModel).Error; err != nil {
		return nil, err
	}
	return ToProjectEntity(&projectModel), nil
}

func (r *projectRepository) List(activeOnly bool, category string) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	query := r.db.Order("display_order ASC")

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]*entity.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = ToProjectEntity(&projectModels[i])
	}
	return projects, nil
}

func (r *projectRepository) Update(project *entity.Project) error {
	projectModel := ToProjectModel(project)
	// Save instead of Updates: a partial patch may legitimately set a bool
	// field to its zero value.
	return r.db.Save(projectModel).Error
}

func (r *projectRepository) Delete(id string) error {
	result := r.db.Delete(&model.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SwapOrder exchanges the display_order values of two projects. Both writes
// run inside one transaction: either both land or neither does, so no partial
// swap is ever visible to readers.
func (r *projectRepository) SwapOrder(a, b *entity.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ProjectModel{}).
			Where("id = ?", a.ID).
			UpdateColumn("display_order", b.Order).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.ProjectModel{}).
			Where("id = ?", b.ID).
			UpdateColumn("display_order", a.Order).Error; err != nil {
			return err
		}
		return nil
	})
}
