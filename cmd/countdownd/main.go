package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ark-network/countdown/internal/config"
	grpcservice "github.com/ark-network/countdown/internal/interface/grpc"
	log "github.com/sirupsen/logrus"
)

//nolint:all
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	log.SetLevel(log.Level(cfg.LogLevel))

	svcConfig := grpcservice.Config{
		Port:        cfg.Port,
		NoAuth:      cfg.NoAuth,
		AuthMaxSkew: cfg.AuthMaxSkew,
	}

	svc, err := grpcservice.NewService(svcConfig, cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.RegisterExitHandler(svc.Stop)

	log.Infof("starting countdownd %s (commit %s, built %s)...", version, commit, date)
	if err := svc.Start(); err != nil {
		log.Fatal(err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT, os.Interrupt)
	<-sigChan

	log.Info("shutting down service...")
	log.Exit(0)
}
