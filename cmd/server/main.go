package main

import (
	"context"
	"log"
	"path/filepath"

	httpadapter "cv-generator/internal/adapter/http"
	repo "cv-generator/internal/adapter/repository"
	"cv-generator/internal/config"
	"cv-generator/internal/render"
	"cv-generator/internal/session"
	"cv-generator/pkg/generator"
	infra "cv-generator/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4/pgxpool"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// infra setup
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := infra.NewExportsPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("warning: exports DB not available: %v", err)
		} else {
			pool = p
		}
	}

	exportsRepo := repo.NewExportsRepo(pool)
	if err := exportsRepo.Init(ctx); err != nil {
		log.Printf("warning: exports table init failed: %v", err)
	}

	renderer, err := render.NewRenderer(cfg.TemplatesDir)
	if err != nil {
		log.Fatalf("template setup failed: %v", err)
	}

	pdf := infra.NewChromedpRenderer()
	gen := generator.NewClient(cfg.GenerateCVURL)
	store := session.NewStore()

	app := fiber.New()

	h := httpadapter.NewHandler(store, renderer, pdf, gen, exportsRepo,
		filepath.Join(cfg.TemplatesDir, "cv.schema.json"))
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
