package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lumen-studio/recruit-intake/internal/app"
	"github.com/lumen-studio/recruit-intake/internal/config"
	"github.com/lumen-studio/recruit-intake/internal/logging"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath string
		migrate    bool
		bootstrap  bool
	)
	flag.StringVar(&configPath, "config", "", "path to config.yaml (default $RECRUIT_CONFIG or ./config.yaml)")
	flag.BoolVar(&migrate, "migrate", false, "run database migrations and exit")
	flag.BoolVar(&bootstrap, "bootstrap", false, "migrate and seed the bootstrap admin, then exit")
	flag.Parse()

	appCfg := config.AppConfig{ConfigPath: config.ResolveConfigPath(configPath)}
	cfg, errLoad := config.Load(appCfg.ConfigPath)
	if errLoad != nil {
		log.Fatalf("load config: %v", errLoad)
	}
	logCloser, errLog := logging.Setup(cfg.Log)
	if errLog != nil {
		log.Fatalf("setup logging: %v", errLog)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var errRun error
	switch {
	case migrate:
		errRun = app.Migrate(ctx, cfg)
	case bootstrap:
		errRun = app.Bootstrap(ctx, cfg)
	default:
		log.Infof("starting with config=%s", appCfg.ConfigPath)
		errRun = app.RunServer(ctx, cfg)
	}
	if errRun != nil {
		log.Errorf("exit: %v", errRun)
		stop()
		_ = logCloser.Close()
		os.Exit(1)
	}
}
