// Package main is the entry point for the jaxws-example-rest-api application.
// It publishes the SOAP endpoints, the REST resources calling them and the admin surface.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/api/admin"
	restv1 "github.com/MGTheTrain/jaxws-example/internal/api/rest/v1"
	soapv1 "github.com/MGTheTrain/jaxws-example/internal/api/soap/v1"
	"github.com/MGTheTrain/jaxws-example/internal/app"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/infrastructure/persistence"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer closeDB(deps.db, log)

	// Setup and start servers with graceful shutdown
	return startServersWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	registry *prometheus.Registry
	bundle   *soap.Bundle
	clients  *soapClients
	persons  people.PersonService
}

type soapClients struct {
	wsdlFirst *soapv1.WsdlFirstClient
	javaFirst *soapv1.JavaFirstClient
}

// closeDB is swapped in tests to observe that the connection is released
var closeDB = func(db *gorm.DB, log logger.Logger) {
	if err := persistence.CloseDB(db); err != nil {
		log.Error("Failed to close database: ", err)
	}
}

// initializeDependencies sets up all application components. The database
// connection is closed again when any later step fails.
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	deps, err := wireDependencies(cfg, db, log)
	if err != nil {
		closeDB(db, log)
		return nil, err
	}
	return deps, nil
}

// wireDependencies builds everything that sits on top of the database connection
func wireDependencies(cfg *config.RestConfig, db *gorm.DB, log logger.Logger) (*appDependencies, error) {
	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	personRepo, err := persistence.NewGormPersonRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create person repository: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(cfg, personRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	services.UnitOfWork = persistence.NewGormUnitOfWork(db)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := soap.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOAP metrics: %w", err)
	}

	// Publish SOAP endpoints
	bundle, err := soap.NewBundle(&cfg.Soap, log, soap.WithMetrics(metrics))
	if err != nil {
		return nil, fmt.Errorf("failed to create SOAP bundle: %w", err)
	}
	if err := soapv1.SetupEndpoints(bundle, services, log); err != nil {
		return nil, fmt.Errorf("failed to publish SOAP endpoints: %w", err)
	}

	return &appDependencies{
		db:       db,
		registry: registry,
		bundle:   bundle,
		clients:  initializeSoapClients(cfg, bundle, log),
		persons:  services.Persons,
	}, nil
}

// initializeApplicationServices sets up the service implementations published as SOAP endpoints
func initializeApplicationServices(cfg *config.RestConfig, personRepo people.PersonRepository, log logger.Logger) (soapv1.Services, error) {
	simpleService, err := app.NewSimpleService(log)
	if err != nil {
		return soapv1.Services{}, fmt.Errorf("failed to create simple service: %w", err)
	}

	javaFirstService, err := app.NewJavaFirstService(log)
	if err != nil {
		return soapv1.Services{}, fmt.Errorf("failed to create java first service: %w", err)
	}

	wsdlFirstService, err := app.NewWsdlFirstService(log)
	if err != nil {
		return soapv1.Services{}, fmt.Errorf("failed to create wsdl first service: %w", err)
	}

	personService, err := app.NewPersonService(personRepo, log)
	if err != nil {
		return soapv1.Services{}, fmt.Errorf("failed to create person service: %w", err)
	}

	authenticator, err := app.NewBasicAuthenticator(cfg.Auth.Password, log)
	if err != nil {
		return soapv1.Services{}, fmt.Errorf("failed to create authenticator: %w", err)
	}

	log.Info("Application services initialized successfully")
	return soapv1.Services{
		Simple:         simpleService,
		JavaFirst:      javaFirstService,
		WsdlFirst:      wsdlFirstService,
		Persons:        personService,
		Authentication: soap.NewBasicAuthentication(authenticator, cfg.Auth.Realm),
	}, nil
}

// initializeSoapClients builds the clients used by the REST resources
func initializeSoapClients(cfg *config.RestConfig, bundle *soap.Bundle, log logger.Logger) *soapClients {
	wsdlFirst := bundle.NewClient(cfg.Client.BaseURL+soapv1.WsdlFirstPath,
		soap.WithTimeout(cfg.Client.Timeout),
		soap.WithClientHandlers(soapv1.NewWsdlFirstClientHandler(log)),
	)

	javaFirst := bundle.NewClient(cfg.Client.BaseURL+soapv1.JavaFirstPath,
		soap.WithTimeout(cfg.Client.Timeout),
		soap.WithBasicAuth(cfg.Client.Username, cfg.Client.Password),
		soap.WithClientInInterceptors(soap.NewLoggingInInterceptor(log)),
		soap.WithClientOutInterceptors(soap.NewLoggingOutInterceptor(log)),
	)

	return &soapClients{
		wsdlFirst: soapv1.NewWsdlFirstClient(wsdlFirst),
		javaFirst: soapv1.NewJavaFirstClient(javaFirst),
	}
}

// startServersWithGracefulShutdown starts the application and admin servers and handles graceful shutdown
func startServersWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "SOAPAction"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "WWW-Authenticate"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Mount SOAP endpoints and REST resources
	deps.bundle.RegisterRoutes(r)
	restv1.SetupRoutes(r, deps.clients.wsdlFirst, deps.clients.javaFirst, deps.persons)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	adminSrv := &http.Server{
		Addr:              ":" + cfg.AdminPort,
		Handler:           setupAdminRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors from the servers
	serverErrors := make(chan error, 2)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		for _, endpoint := range deps.bundle.Endpoints() {
			log.Info("Published SOAP endpoint ", deps.bundle.BasePath()+endpoint.Path())
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	go func() {
		log.Info("Starting admin server on port ", cfg.AdminPort)
		if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("admin server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down servers...")
	if err := adminSrv.Shutdown(ctx); err != nil {
		log.Error("Admin server shutdown error: ", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Servers stopped gracefully")
	return nil
}

// setupAdminRouter wires ping, health checks and metrics on a separate router
func setupAdminRouter(deps *appDependencies) http.Handler {
	checks := admin.NewHealthCheckRegistry()
	checks.Register("database", admin.HealthCheckFunc(func(ctx context.Context) (string, error) {
		if err := persistence.Ping(ctx, deps.db); err != nil {
			return "", err
		}
		return "database reachable", nil
	}))
	checks.Register("soap", admin.NewEndpointsCheck(deps.bundle))

	r := gin.New()
	r.Use(gin.Recovery())
	admin.SetupRoutes(r, checks, deps.registry)
	return r
}
