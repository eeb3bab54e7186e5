package usecase

import (
	"errors"
	"fmt"

	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/repo/persistent"
	"portfolio-backend/pkg/logger"

	"gorm.io/gorm"
)

// ProjectInput carries the fields an admin submits when creating a project.
// Order is never part of it: ranks are assigned by the backend.
type ProjectInput struct {
	Title           string
	Description     string
	Image           string
	Tags            []string
	Category        entity.ProjectCategory
	LiveURL         string
	GithubURL       string
	DetailedContent string
	Carousels       []string
	VideoURL        string
	IsDetailedPage  bool
	IsPrivate       bool
	IsActive        *bool
}

// ProjectPatch is a partial update: nil fields keep their prior values.
type ProjectPatch struct {
	Title           *string
	Description     *string
	Image           *string
	Tags            *[]string
	Category        *entity.ProjectCategory
	LiveURL         *string
	GithubURL       *string
	DetailedContent *string
	Carousels       *[]string
	VideoURL        *string
	IsDetailedPage  *bool
	IsPrivate       *bool
	IsActive        *bool
}

type ProjectUseCase interface {
	CreateProject(input ProjectInput) (*entity.Project, error)
	GetProject(id string) (*entity.Project, error)
	ListProjects(activeOnly bool, category string) ([]*entity.Project, error)
	UpdateProject(id string, patch ProjectPatch) (*entity.Project, error)
	DeleteProject(id string) error
	ReorderProject(id string, direction entity.ReorderDirection) ([]*entity.Project, string, error)
	ToggleActive(id string) (*entity.Project, error)
}

type projectUseCase struct {
	projectRepo persistent.ProjectRepository
	logger      *logger.Logger
}

func NewProjectUseCase(projectRepo persistent.ProjectRepository, logger *logger.Logger) ProjectUseCase {
	return &projectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *projectUseCase) CreateProject(input ProjectInput) (*entity.Project, error) {
	if !input.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	project := &entity.Project{
		Title:           input.Title,
		Description:     input.Description,
		Image:           input.Image,
		Tags:            input.Tags,
		Category:        input.Category,
		LiveURL:         input.LiveURL,
		GithubURL:       input.GithubURL,
		DetailedContent: input.DetailedContent,
		Carousels:       input.Carousels,
		VideoURL:        input.VideoURL,
		IsDetailedPage:  input.IsDetailedPage,
		IsPrivate:       input.IsPrivate,
		IsActive:        isActive,
	}

	if err := uc.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

func (uc *projectUseCase) GetProject(id string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (uc *projectUseCase) ListProjects(activeOnly bool, category string) ([]*entity.Project, error) {
	return uc.projectRepo.List(activeOnly, category)
}

func (uc *projectUseCase) UpdateProject(id string, patch ProjectPatch) (*entity.Project, error) {
	project, err := uc.GetProject(id)
	if err != nil {
		return nil, err
	}

	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *patch.Category)
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Image != nil {
		project.Image = *patch.Image
	}
	if patch.Tags != nil {
		project.Tags = *patch.Tags
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.LiveURL != nil {
		project.LiveURL = *patch.LiveURL
	}
	if patch.GithubURL != nil {
		project.GithubURL = *patch.GithubURL
	}
	if patch.DetailedContent != nil {
		project.DetailedContent = *patch.DetailedContent
	}
	if patch.Carousels != nil {
		project.Carousels = *patch.Carousels
	}
	if patch.VideoURL != nil {
		project.VideoURL = *patch.VideoURL
	}
	if patch.IsDetailedPage != nil {
		project.IsDetailedPage = *patch.IsDetailedPage
	}
	if patch.IsPrivate != nil {
		project.IsPrivate = *patch.IsPrivate
	}
	if patch.IsActive != nil {
		project.IsActive = *patch.IsActive
	}

	if err := uc.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

func (uc *projectUseCase) DeleteProject(id string) error {
	if err := uc.projectRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ReorderProject moves a project one position up or down by swapping order
// values with its neighbor in the current sorted sequence. At a list edge it
// is a no-op: the unchanged list comes back with a reason so the caller can
// tell "nothing to do" from a failure.
func (uc *projectUseCase) ReorderProject(id string, direction entity.ReorderDirection) ([]*entity.Project, string, error) {
	if !direction.IsValid() {
		return nil, "", fmt.Errorf("%w: direction must be up or down", ErrValidation)
	}

	projects, err := uc.projectRepo.List(false, "")
	if err != nil {
		return nil, "", fmt.Errorf("failed to load projects: %w", err)
	}

	pos := -1
	for i, p := range projects {
		if p.ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil, "", ErrNotFound
	}

	target := pos - 1
	if direction == entity.DirectionDown {
		target = pos + 1
	}

	if target < 0 {
		return projects, "already at the top", nil
	}
	if target >= len(projects) {
		return projects, "already at the bottom", nil
	}

	if err := uc.projectRepo.SwapOrder(projects[pos], projects[target]); err != nil {
		return nil, "", fmt.Errorf("failed to swap project order: %w", err)
	}

	// Reload so the response reflects exactly what readers will now see.
	reordered, err := uc.projectRepo.List(false, "")
	if err != nil {
		return nil, "", fmt.Errorf("failed to reload projects: %w", err)
	}

	return reordered, "", nil
}

func (uc *projectUseCase) ToggleActive(id string) (*entity.Project, error) {
	project, err := uc.GetProject(id)
	if err != nil {
		return nil, err
	}

	project.IsActive = !project.IsActive
	if err := uc.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to toggle project: %w", err)
	}

	return project, nil
}
