package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mirrelia/inkwell/internal/blogservice"
	"github.com/mirrelia/inkwell/internal/common"
	"github.com/mirrelia/inkwell/internal/mailservice"
	"github.com/mirrelia/inkwell/internal/userservice"
	"github.com/mirrelia/inkwell/migrations"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	userService *userservice.UserService
	blogService *blogservice.BlogService
	mailService *mailservice.MailService
	templates   templateCache
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Create the schema if it is not there yet
	err = common.MigrateDB(db, migrations.FS)
	if err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Parse the page templates
	templates, err := newTemplateCache()
	if err != nil {
		logger.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionCache := common.NewCache(5*time.Minute, 10*time.Minute)

	// Initialize the services
	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, sessionCache),
		blogService: blogservice.NewBlogService(db),
		mailService: mailservice.NewMailService(cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.AdminEmail, cfg.MailPort, logger),
		templates:   templates,
	}

	// Drop sessions that expired while the server was down
	if err := app.userService.DeleteExpiredSessions(context.Background()); err != nil {
		logger.Error("failed to delete expired sessions", slog.String("error", err.Error()))
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
