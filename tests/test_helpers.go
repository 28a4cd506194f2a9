// Package tests holds helpers shared by the package test suites.
package tests

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pagemirror/models"
)

var dbCounter atomic.Int64

// SetupTestDB opens a fresh in-memory SQLite database with the schema
// migrated. Each call returns an independent database, so tests never
// share state.
func SetupTestDB() (*gorm.DB, error) {
	// A unique name per call keeps gorm's pooled connections on the same
	// in-memory database without sharing it across tests.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to in-memory test database: %w", err)
	}

	if err := db.AutoMigrate(&models.PageRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate test database schema: %w", err)
	}
	return db, nil
}

// NewTestApp builds a fiber app with the views engine rooted at
// templatesDir, mirroring the app constructed in main.
func NewTestApp(templatesDir string) *fiber.App {
	engine := html.New(templatesDir, ".html")
	return fiber.New(fiber.Config{Views: engine})
}

// NewSilentLogger returns a logrus logger that discards all output.
func NewSilentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
