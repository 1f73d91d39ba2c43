package grpcservice

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	"github.com/ark-network/countdown/internal/config"
	"github.com/ark-network/countdown/internal/infrastructure/metrics"
	interfaces "github.com/ark-network/countdown/internal/interface"
	"github.com/ark-network/countdown/internal/interface/grpc/handlers"
	"github.com/ark-network/countdown/internal/interface/grpc/interceptors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

type service struct {
	config      Config
	appConfig   *config.Config
	server      *http.Server
	grpcServer  *grpc.Server
	stopMetrics context.CancelFunc
}

func NewService(
	svcConfig Config, appConfig *config.Config,
) (interfaces.Service, error) {
	if err := svcConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service config: %s", err)
	}
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %s", err)
	}

	return &service{config: svcConfig, appConfig: appConfig}, nil
}

func (s *service) Start() error {
	appSvc := s.appConfig.AppService()
	if err := appSvc.Start(); err != nil {
		return fmt.Errorf("failed to start app service: %s", err)
	}
	log.Info("started app service")

	if err := s.newServer(); err != nil {
		return err
	}

	// nolint:all
	go s.server.ListenAndServe()
	log.Infof("started listening at %s", s.config.address())

	return nil
}

func (s *service) Stop() {
	if s.stopMetrics != nil {
		s.stopMetrics()
	}

	s.grpcServer.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	//nolint:all
	s.server.Shutdown(ctx)
	log.Info("stopped grpc server")

	s.appConfig.AppService().Stop()
	log.Info("stopped app service")
}

func (s *service) newServer() error {
	grpcConfig := []grpc.ServerOption{
		interceptors.UnaryInterceptor(interceptors.Auth{
			NoAuth:  s.config.NoAuth,
			MaxSkew: s.config.AuthMaxSkew,
		}),
		interceptors.StreamInterceptor(),
	}
	grpcServer := grpc.NewServer(grpcConfig...)

	appHandler := handlers.NewHandler(s.appConfig.AppService())
	countdownv1.RegisterCountdownServiceServer(grpcServer, appHandler)

	adminHandler := handlers.NewAdminHandler(s.appConfig.AdminService())
	countdownv1.RegisterAdminServiceServer(grpcServer, adminHandler)

	healthHandler := handlers.NewHealthHandler()
	grpchealth.RegisterHealthServer(grpcServer, healthHandler)

	metricsHandler, err := s.newMetricsHandler()
	if err != nil {
		return err
	}

	handler := router(grpcServer, metricsHandler)
	mux := http.NewServeMux()
	mux.Handle("/", handler)

	s.grpcServer = grpcServer
	s.server = &http.Server{
		Addr:    s.config.address(),
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}
	return nil
}

func (s *service) newMetricsHandler() (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	notifications, err := s.appConfig.AppService().GetNotificationsChannel(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe to notifications: %s", err)
	}
	go collector.Run(ctx, notifications)
	s.stopMetrics = cancel

	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func router(
	grpcServer *grpc.Server, metricsHandler http.Handler,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isMetricsRequest(r) {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		grpcServer.ServeHTTP(w, r)
	})
}

func isMetricsRequest(req *http.Request) bool {
	return req.Method == http.MethodGet &&
		strings.HasPrefix(req.URL.Path, metricsPath)
}
