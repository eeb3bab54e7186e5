package http

import (
	"net/http"

	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUseCase usecase.ProjectUseCase
	logger         *logger.Logger
}

func NewProjectHandler(projectUseCase usecase.ProjectUseCase, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		logger:         logger,
	}
}

type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Image           string   `json:"image"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category" binding:"required"`
	LiveURL         string   `json:"liveUrl"`
	GithubURL       string   `json:"githubUrl"`
	DetailedContent string   `json:"detailedContent"`
	Carousels       []string `json:"carousels"`
	VideoURL        string   `json:"videoUrl"`
	IsDetailedPage  bool     `json:"isDetailedPage"`
	IsPrivate       bool     `json:"isPrivate"`
	IsActive        *bool    `json:"isActive"`
}

type UpdateProjectRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Image           *string   `json:"image"`
	Tags            *[]string `json:"tags"`
	Category        *string   `json:"category"`
	LiveURL         *string   `json:"liveUrl"`
	GithubURL       *string   `json:"githubUrl"`
	DetailedContent *string   `json:"detailedContent"`
	Carousels       *[]string `json:"carousels"`
	VideoURL        *string   `json:"videoUrl"`
	IsDetailedPage  *bool     `json:"isDetailedPage"`
	IsPrivate       *bool     `json:"isPrivate"`
	IsActive        *bool     `json:"isActive"`
}

type ReorderRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ListProjects godoc
// @Summary      List projects
// @Description  Projects sorted by display order, with optional active/category filters
// @Tags         projects
// @Produce      json
// @Param        active query bool false "Only active projects"
// @Param        category query string false "Filter by category"
// @Success      200  {array}   entity.Project
// @Failure      500  {object}  map[string]string
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	category := c.Query("category")

	projects, err := h.projectUseCase.ListProjects(activeOnly, category)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary      Create project
// @Description  Create a project; the display order is assigned as max(existing)+1
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateProjectRequest true "Project data"
// @Success      201  {object}  entity.Project
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectUseCase.CreateProject(usecase.ProjectInput{
		Title:           req.Title,
		Description:     req.Description,
		Image:           req.Image,
		Tags:            req.Tags,
		Category:        entity.ProjectCategory(req.Category),
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
		DetailedContent: req.DetailedContent,
		Carousels:       req.Carousels,
		VideoURL:        req.VideoURL,
		IsDetailedPage:  req.IsDetailedPage,
		IsPrivate:       req.IsPrivate,
		IsActive:        req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary      Update project
// @Description  Partial update: only supplied fields change
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Param        request body UpdateProjectRequest true "Fields to update"
// @Success      200  {object}  entity.Project
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category *entity.ProjectCategory
	if req.Category != nil {
		cat := entity.ProjectCategory(*req.Category)
		category = &cat
	}

	project, err := h.projectUseCase.UpdateProject(c.Param("id"), usecase.ProjectPatch{
		Title:           req.Title,
		Description:     req.Description,
		Image:           req.Image,
		Tags:            req.Tags,
		Category:        category,
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
		DetailedContent: req.DetailedContent,
		Carousels:       req.Carousels,
		VideoURL:        req.VideoURL,
		IsDetailedPage:  req.IsDetailedPage,
		IsPrivate:       req.IsPrivate,
		IsActive:        req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary      Delete project
// @Description  Hard delete, irreversible
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectUseCase.DeleteProject(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// ReorderProject godoc
// @Summary      Move a project up or down
// @Description  Swaps display order with the adjacent project. At a list edge the unchanged list comes back with a reason instead of an error.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ReorderRequest true "Project and direction"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/reorder [post]
func (h *ProjectHandler) ReorderProject(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects, reason, err := h.projectUseCase.ReorderProject(req.ProjectID, entity.ReorderDirection(req.Direction))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := gin.H{"projects": projects}
	if reason != "" {
		response["reason"] = reason
	}

	c.JSON(http.StatusOK, response)
}

// ToggleProjectActive godoc
// @Summary      Toggle project visibility
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200  {object}  entity.Project
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/toggle-active [post]
func (h *ProjectHandler) ToggleProjectActive(c *gin.Context) {
	project, err := h.projectUseCase.ToggleActive(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
