package main

import (
	"flag"
	"log"
	"time"

	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/model"
	"portfolio-backend/internal/repo/persistent"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/config"
	"portfolio-backend/pkg/database"
)

// Development helper: loads a small content set so the frontend has something
// to render. Refuses to touch a non-empty database unless -force is given.
func main() {
	force := flag.Bool("force", false, "seed even if content already exists")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if !*force {
		var count int64
		if err := db.Model(&model.ProjectModel{}).Count(&count).Error; err != nil {
			log.Fatalf("Failed to count projects: %v", err)
		}
		if count > 0 {
			log.Println("Database already has content, use -force to seed anyway")
			return
		}
	}

	projectRepo := persistent.NewProjectRepository(db)
	blogRepo := persistent.NewBlogRepository(db)
	testimonialRepo := persistent.NewTestimonialRepository(db)

	projects := []*entity.Project{
		{
			Title:       "Realtime Chat",
			Description: "WebSocket chat with presence and typing indicators",
			Category:    entity.CategoryFullstack,
			Tags:        []string{"go", "websocket", "react"},
			GithubURL:   "https://github.com/example/realtime-chat",
			IsActive:    true,
		},
		{
			Title:       "Price Tracker API",
			Description: "Scrapes retailer prices and exposes alerts over REST",
			Category:    entity.CategoryBackend,
			Tags:        []string{"go", "postgres"},
			LiveURL:     "https://prices.example.com",
			IsActive:    true,
		},
		{
			Title:       "Pocket Ledger",
			Description: "Offline-first expense tracker for iOS and Android",
			Category:    entity.CategoryMobile,
			Tags:        []string{"flutter", "sqlite"},
			IsActive:    true,
		},
	}
	for _, p := range projects {
		if err := projectRepo.Create(p); err != nil {
			log.Fatalf("Failed to seed project %q: %v", p.Title, err)
		}
	}

	blogContent := "Getting a side project over the finish line is mostly about scope. " +
		"Pick the smallest version that is still useful, ship it, then iterate."
	now := time.Now()
	blog := &entity.Blog{
		Title:       "Shipping Side Projects",
		Slug:        usecase.Slugify("Shipping Side Projects"),
		Content:     blogContent,
		Excerpt:     "Scope small, ship early.",
		CoverImage:  "https://images.example.com/covers/shipping.jpg",
		Author:      entity.BlogAuthor{Name: "Admin"},
		Tags:        []string{"process", "indie"},
		IsPublished: true,
		ReadingTime: usecase.ReadingTime(blogContent),
		PublishedAt: &now,
	}
	if err := blogRepo.Create(blog); err != nil {
		log.Fatalf("Failed to seed blog: %v", err)
	}

	testimonial := &entity.Testimonial{
		Content:  "Delivered ahead of schedule and the handover docs were excellent.",
		Name:     "Jordan Miles",
		Role:     "CTO",
		Company:  "Acme Labs",
		Rating:   5,
		IsActive: true,
	}
	if err := testimonialRepo.Create(testimonial); err != nil {
		log.Fatalf("Failed to seed testimonial: %v", err)
	}

	log.Println("Seed data loaded")
}
