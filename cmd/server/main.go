package main

import (
	"log"

	"github.com/joho/godotenv"

	"moviehub/internal/catalog"
	"moviehub/internal/config"
	"moviehub/internal/session"
	"moviehub/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warn: no .env file; using environment and defaults (%v)", err)
	}
	cfg := config.Load()

	images, err := storage.NewImages(cfg.StaticDir)
	if err != nil {
		log.Fatal(err)
	}

	s := &server{
		cfg:      cfg,
		catalog:  catalog.NewStore(),
		sessions: session.NewRegistry(cfg.SessionTTL, cfg.SessionRefreshTTL),
		images:   images,
	}

	r := newRouter(s)

	log.Printf("HTTP API listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
