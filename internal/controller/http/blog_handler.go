package http

import (
	"net/http"
	"strconv"

	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

type BlogAuthorRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

type CreateBlogRequest struct {
	Title       string            `json:"title" binding:"required"`
	Slug        string            `json:"slug"`
	Content     string            `json:"content" binding:"required"`
	Excerpt     string            `json:"excerpt" binding:"required"`
	CoverImage  string            `json:"coverImage" binding:"required"`
	Author      BlogAuthorRequest `json:"author" binding:"required"`
	Tags        []string          `json:"tags"`
	IsPublished bool              `json:"isPublished"`
	Featured    bool              `json:"featured"`
}

type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Content     *string   `json:"content"`
	Excerpt     *string   `json:"excerpt"`
	CoverImage  *string   `json:"coverImage"`
	AuthorName  *string   `json:"authorName"`
	AuthorImage *string   `json:"authorImage"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"isPublished"`
	Featured    *bool     `json:"featured"`
}

// ListBlogs godoc
// @Summary      List blogs
// @Description  Paginated blog list. Unauthenticated callers always get published posts only; the status filter is honored for the admin.
// @Tags         blogs
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page"
// @Param        tag query string false "Filter by tag"
// @Param        featured query bool false "Only featured blogs"
// @Param        status query string false "all, published or draft (admin only)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	tag := c.Query("tag")
	featuredOnly := c.Query("featured") == "true"

	// The server decides visibility from the verified session, never from a
	// client-supplied flag.
	status := entity.BlogStatusPublished
	if middleware.IsAuthenticated(c) {
		switch entity.BlogStatus(c.Query("status")) {
		case entity.BlogStatusAll:
			status = entity.BlogStatusAll
		case entity.BlogStatusDraft:
			status = entity.BlogStatusDraft
		}
	}

	blogs, pagination, err := h.blogUseCase.ListBlogs(status, tag, featuredOnly, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":      blogs,
		"pagination": pagination,
	})
}

// GetBlogBySlug godoc
// @Summary      Get a published blog by slug
// @Tags         blogs
// @Produce      json
// @Param        slug path string true "Blog slug"
// @Success      200  {object}  entity.Blog
// @Failure      404  {object}  map[string]string
// @Router       /blogs/by-slug/{slug} [get]
func (h *BlogHandler) GetBlogBySlug(c *gin.Context) {
	blog, err := h.blogUseCase.GetBlogBySlug(c.Param("slug"), true)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// IncrementViews godoc
// @Summary      Count a blog view
// @Description  Best-effort, unauthenticated counter bump. Every call increments; duplicates are accepted.
// @Tags         blogs
// @Produce      json
// @Param        slug path string true "Blog slug"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/by-slug/{slug}/views [post]
func (h *BlogHandler) IncrementViews(c *gin.Context) {
	if err := h.blogUseCase.IncrementViews(c.Param("slug")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "View counted"})
}

// GetTags godoc
// @Summary      Distinct blog tags
// @Description  Tags across published blogs; the admin sees tags from drafts too.
// @Tags         blogs
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  map[string]string
// @Router       /blogs/tags [get]
func (h *BlogHandler) GetTags(c *gin.Context) {
	tags, err := h.blogUseCase.GetTags(!middleware.IsAuthenticated(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// GetBlog godoc
// @Summary      Get a blog by ID (admin)
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  entity.Blog
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/manage/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, err := h.blogUseCase.GetBlog(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// CreateBlog godoc
// @Summary      Create blog
// @Description  Slug is derived from the title unless supplied; reading time is derived from the content. A slug collision fails with 400.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBlogRequest true "Blog data"
// @Success      201  {object}  entity.Blog
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /blogs/manage [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogUseCase.CreateBlog(usecase.BlogInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Author: entity.BlogAuthor{
			Name:  req.Author.Name,
			Image: req.Author.Image,
		},
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		Featured:    req.Featured,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// UpdateBlog godoc
// @Summary      Update blog
// @Description  Partial update. A content change recomputes reading time; the slug changes only when supplied explicitly.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Param        request body UpdateBlogRequest true "Fields to update"
// @Success      200  {object}  entity.Blog
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/manage/{id} [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogUseCase.UpdateBlog(c.Param("id"), usecase.BlogPatch{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		Featured:    req.Featured,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// DeleteBlog godoc
// @Summary      Delete blog
// @Description  Hard delete, irreversible
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/manage/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	if err := h.blogUseCase.DeleteBlog(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}

// TogglePublished godoc
// @Summary      Toggle publish state
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  entity.Blog
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/manage/{id}/publish [post]
func (h *BlogHandler) TogglePublished(c *gin.Context) {
	blog, err := h.blogUseCase.TogglePublished(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// ToggleFeatured godoc
// @Summary      Toggle featured state
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  entity.Blog
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/manage/{id}/feature [post]
func (h *BlogHandler) ToggleFeatured(c *gin.Context) {
	blog, err := h.blogUseCase.ToggleFeatured(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}
