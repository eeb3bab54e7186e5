package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/repo/persistent"
	"portfolio-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tagCacheKeyPublished = "blog:tags:published"
	tagCacheKeyAll       = "blog:tags:all"
	tagCacheTTL          = 10 * time.Minute
)

// BlogInput carries admin-submitted fields for a new blog. Slug is optional:
// when empty it is derived from the title. ReadingTime and Views are never
// part of the input.
type BlogInput struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	Author      entity.BlogAuthor
	Tags        []string
	IsPublished bool
	Featured    bool
}

// BlogPatch is a partial update: nil fields keep their prior values. A content
// change recomputes reading time; the slug only changes when supplied
// explicitly so published URLs stay stable.
type BlogPatch struct {
	Title       *string
	Slug        *string
	Content     *string
	Excerpt     *string
	CoverImage  *string
	AuthorName  *string
	AuthorImage *string
	Tags        *[]string
	IsPublished *bool
	Featured    *bool
}

type BlogUseCase interface {
	CreateBlog(input BlogInput) (*entity.Blog, error)
	GetBlog(id string) (*entity.Blog, error)
	GetBlogBySlug(slug string, publishedOnly bool) (*entity.Blog, error)
	ListBlogs(status entity.BlogStatus, tag string, featuredOnly bool, page, limit int) ([]*entity.Blog, *entity.Pagination, error)
	UpdateBlog(id string, patch BlogPatch) (*entity.Blog, error)
	DeleteBlog(id string) error
	TogglePublished(id string) (*entity.Blog, error)
	ToggleFeatured(id string) (*entity.Blog, error)
	IncrementViews(slug string) error
	GetTags(publishedOnly bool) ([]string, error)
}

type blogUseCase struct {
	blogRepo    persistent.BlogRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewBlogUseCase(blogRepo persistent.BlogRepository, redisClient *redis.Client, logger *logger.Logger) BlogUseCase {
	return &blogUseCase{
		blogRepo:    blogRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *blogUseCase) CreateBlog(input BlogInput) (*entity.Blog, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: title yields an empty slug", ErrValidation)
	}

	blog := &entity.Blog{
		Title:       input.Title,
		Slug:        slug,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		CoverImage:  input.CoverImage,
		Author:      input.Author,
		Tags:        input.Tags,
		IsPublished: input.IsPublished,
		Featured:    input.Featured,
		ReadingTime: ReadingTime(input.Content),
	}

	if input.IsPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}

	if err := uc.blogRepo.Create(blog); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	uc.invalidateTagCache()
	return blog, nil
}

func (uc *blogUseCase) GetBlog(id string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// GetBlogBySlug is the public read path. With publishedOnly set, drafts are
// reported as not found rather than as forbidden, so their existence leaks
// nothing.
func (uc *blogUseCase) GetBlogBySlug(slug string, publishedOnly bool) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if publishedOnly && !blog.IsPublished {
		return nil, ErrNotFound
	}

	return blog, nil
}

func (uc *blogUseCase) ListBlogs(status entity.BlogStatus, tag string, featuredOnly bool, page, limit int) ([]*entity.Blog, *entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	blogs, total, err := uc.blogRepo.List(status, tag, featuredOnly, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	pagination := &entity.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}

	return blogs, pagination, nil
}

func (uc *blogUseCase) UpdateBlog(id string, patch BlogPatch) (*entity.Blog, error) {
	blog, err := uc.GetBlog(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		blog.Title = *patch.Title
	}
	if patch.Slug != nil {
		slug := *patch.Slug
		if slug == "" {
			slug = Slugify(blog.Title)
		}
		if slug == "" {
			return nil, fmt.Errorf("%w: slug cannot be empty", ErrValidation)
		}
		blog.Slug = slug
	}
	if patch.Content != nil {
		blog.Content = *patch.Content
		blog.ReadingTime = ReadingTime(*patch.Content)
	}
	if patch.Excerpt != nil {
		blog.Excerpt = *patch.Excerpt
	}
	if patch.CoverImage != nil {
		blog.CoverImage = *patch.CoverImage
	}
	if patch.AuthorName != nil {
		blog.Author.Name = *patch.AuthorName
	}
	if patch.AuthorImage != nil {
		blog.Author.Image = *patch.AuthorImage
	}
	if patch.Tags != nil {
		blog.Tags = *patch.Tags
	}
	if patch.IsPublished != nil {
		uc.setPublished(blog, *patch.IsPublished)
	}
	if patch.Featured != nil {
		blog.Featured = *patch.Featured
	}

	if err := uc.blogRepo.Update(blog); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	uc.invalidateTagCache()
	return blog, nil
}

func (uc *blogUseCase) DeleteBlog(id string) error {
	if err := uc.blogRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	uc.invalidateTagCache()
	return nil
}

func (uc *blogUseCase) TogglePublished(id string) (*entity.Blog, error) {
	blog, err := uc.GetBlog(id)
	if err != nil {
		return nil, err
	}

	uc.setPublished(blog, !blog.IsPublished)
	if err := uc.blogRepo.Update(blog); err != nil {
		return nil, fmt.Errorf("failed to toggle publish state: %w", err)
	}

	uc.invalidateTagCache()
	return blog, nil
}

func (uc *blogUseCase) ToggleFeatured(id string) (*entity.Blog, error) {
	blog, err := uc.GetBlog(id)
	if err != nil {
		return nil, err
	}

	blog.Featured = !blog.Featured
	if err := uc.blogRepo.Update(blog); err != nil {
		return nil, fmt.Errorf("failed to toggle featured state: %w", err)
	}

	return blog, nil
}

// IncrementViews is best-effort and deliberately not idempotent: reloads
// inflate the count and that is accepted product behavior.
func (uc *blogUseCase) IncrementViews(slug string) error {
	if err := uc.blogRepo.IncrementViews(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

func (uc *blogUseCase) GetTags(publishedOnly bool) ([]string, error) {
	cacheKey := tagCacheKeyAll
	if publishedOnly {
		cacheKey = tagCacheKeyPublished
	}

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(context.Background(), cacheKey).Result(); err == nil {
			var tags []string
			if err := json.Unmarshal([]byte(cached), &tags); err == nil {
				return tags, nil
			}
		}
	}

	tags, err := uc.blogRepo.DistinctTags(publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(tags); err == nil {
			uc.redisClient.Set(context.Background(), cacheKey, data, tagCacheTTL)
		}
	}

	return tags, nil
}

// setPublished flips the publish flag and stamps publishedAt on the first
// transition to published.
func (uc *blogUseCase) setPublished(blog *entity.Blog, published bool) {
	if published && !blog.IsPublished && blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}
	blog.IsPublished = published
}

func (uc *blogUseCase) invalidateTagCache() {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(context.Background(), tagCacheKeyPublished, tagCacheKeyAll).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate tag cache: %v", err)
	}
}
