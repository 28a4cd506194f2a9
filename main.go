package main

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"

	"pagemirror/config"
	"pagemirror/database"
	"pagemirror/handlers"
	"pagemirror/scraper"
	"pagemirror/store"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	log.WithField("path", cfg.DatabasePath).Info("database initialized")

	if err := scraper.EnsureStaticDirs(cfg.StaticDir); err != nil {
		log.WithError(err).Fatal("failed to create static directories")
	}

	pages := store.New(db)
	fetcher := scraper.NewFetcher(http.DefaultClient)
	archiver := scraper.NewArchiver(fetcher, cfg.StaticDir, log)
	service := scraper.NewService(fetcher, archiver, pages, log)

	engine := html.New("./templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(fiberlogger.New())
	app.Static("/static", cfg.StaticDir)

	h := handlers.New(service, pages, log)
	h.SetupRoutes(app)

	log.WithField("addr", cfg.ServerAddr).Info("starting server")
	log.Fatal(app.Listen(cfg.ServerAddr))
}
