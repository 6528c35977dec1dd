package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lumen-studio/recruit-intake/internal/config"
	"github.com/lumen-studio/recruit-intake/internal/db"
	"github.com/lumen-studio/recruit-intake/internal/security"
	"github.com/lumen-studio/recruit-intake/internal/service"
	"github.com/lumen-studio/recruit-intake/internal/webui"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultBootstrapPassword is used when bootstrap.password is not configured.
const DefaultBootstrapPassword = "123456"

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, cfg config.Config) error {
	conn, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(conn)
	return db.Migrate(conn.WithContext(ctx))
}

// Bootstrap migrates the schema and seeds the configured admin account unless
// an admin with that username already exists.
func Bootstrap(ctx context.Context, cfg config.Config) error {
	conn, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(conn)
	if errMigrate := db.Migrate(conn.WithContext(ctx)); errMigrate != nil {
		return errMigrate
	}

	username := strings.TrimSpace(cfg.Bootstrap.Username)
	if username == "" {
		username = "admin"
	}
	password := cfg.Bootstrap.Password
	if password == "" {
		password = DefaultBootstrapPassword
		log.Warnf("bootstrap.password not set; seeding %q with the default password, change it after first login", username)
	}

	created, errEnsure := service.NewAdminService(conn).EnsureAdmin(ctx, username, password)
	if errEnsure != nil {
		return fmt.Errorf("bootstrap admin: %w", errEnsure)
	}
	if created {
		log.Infof("bootstrap: created admin %q", username)
	} else {
		log.Infof("bootstrap: admin %q already exists, nothing to do", username)
	}
	return nil
}

// RunServer serves the API and web UI until ctx is cancelled, then shuts down
// gracefully within server.shutdown-timeout.
func RunServer(ctx context.Context, cfg config.Config) error {
	if errValidate := cfg.Validate(); errValidate != nil {
		return errValidate
	}
	tokens, errTokens := security.NewTokenService(cfg.JWT.Secret)
	if errTokens != nil {
		return errTokens
	}
	webBundle, errLoad := webui.Load()
	if errLoad != nil {
		return errLoad
	}
	conn, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(conn)
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      NewRouter(conn, tokens, webBundle),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errServe := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (database: %s)", cfg.Server.Addr, db.DialectName(conn))
		if errListen := srv.ListenAndServe(); errListen != nil && !errors.Is(errListen, http.ErrServerClosed) {
			errServe <- errListen
		}
		close(errServe)
	}()

	select {
	case errListen := <-errServe:
		return errListen
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
		return fmt.Errorf("shutdown: %w", errShutdown)
	}
	return <-errServe
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, config.ErrMissingDSN
	}
	return db.Open(cfg.Database.DSN)
}

func closeDatabase(conn *gorm.DB) {
	sqlDB, err := conn.DB()
	if err != nil {
		return
	}
	if errClose := sqlDB.Close(); errClose != nil {
		log.WithError(errClose).Warn("close database")
	}
}

func ginMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case gin.DebugMode:
		return gin.DebugMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
