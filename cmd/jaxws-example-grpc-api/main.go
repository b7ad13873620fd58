// Package main is the entry point for the jaxws-example-grpc-api application.
// It sets up and starts both a gRPC server and a gRPC-Gateway server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/jaxws-example/internal/api/grpc/v1"
	"github.com/MGTheTrain/jaxws-example/internal/app"
	"github.com/MGTheTrain/jaxws-example/internal/infrastructure/persistence"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
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
		configPath = "../../configs/grpc-app.yaml"
	}

	grpcConfig, err := config.InitializeGrpcConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&grpcConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	servers, err := initializeGRPCServers(grpcConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer closeDB(servers.db, log)

	// Start servers with graceful shutdown
	return startServersWithGracefulShutdown(grpcConfig, servers, log)
}

type grpcServers struct {
	db     *gorm.DB
	echo   *v1.EchoServer
	person *v1.PersonServer
}

// closeDB is swapped in tests to observe that the connection is released
var closeDB = func(db *gorm.DB, log logger.Logger) {
	if err := persistence.CloseDB(db); err != nil {
		log.Error("Failed to close database: ", err)
	}
}

// initializeGRPCServers sets up persistence, services and the gRPC server
// implementations. The database connection is closed again when any later
// step fails.
func initializeGRPCServers(cfg *config.GrpcConfig, log logger.Logger) (*grpcServers, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	servers, err := wireServers(db, log)
	if err != nil {
		closeDB(db, log)
		return nil, err
	}
	return servers, nil
}

// wireServers builds the services and gRPC servers on top of db
func wireServers(db *gorm.DB, log logger.Logger) (*grpcServers, error) {
	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	personRepo, err := persistence.NewGormPersonRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create person repository: %w", err)
	}

	simpleService, err := app.NewSimpleService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create simple service: %w", err)
	}

	personService, err := app.NewPersonService(personRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create person service: %w", err)
	}

	echoServer, err := v1.NewEchoServer(simpleService)
	if err != nil {
		return nil, fmt.Errorf("failed to create echo server: %w", err)
	}

	personServer, err := v1.NewPersonServer(personService)
	if err != nil {
		return nil, fmt.Errorf("failed to create person server: %w", err)
	}

	log.Info("gRPC servers initialized successfully")
	return &grpcServers{
		db:     db,
		echo:   echoServer,
		person: personServer,
	}, nil
}

// startServersWithGracefulShutdown starts both gRPC and gateway servers with graceful shutdown
func startServersWithGracefulShutdown(cfg *config.GrpcConfig, servers *grpcServers, log logger.Logger) error {
	// Create gRPC server
	grpcServer := grpc.NewServer()

	// Register services
	v1.RegisterEchoServer(grpcServer, servers.echo)
	v1.RegisterPersonServer(grpcServer, servers.person)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(v1.EchoServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1.PersonServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Start gRPC server
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	grpcErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting on port ", cfg.Port)
		if err := grpcServer.Serve(lis); err != nil {
			grpcErrors <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	// Setup gRPC-Gateway
	gwServer, conn, err := setupGatewayServer(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to setup gateway server: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	gatewayErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC-Gateway server starting on port ", cfg.GatewayPort)
		log.Info("Gateway available at: http://localhost:", cfg.GatewayPort, v1.GatewayBasePath)
		if err := gwServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			gatewayErrors <- fmt.Errorf("gateway server failed: %w", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until error or signal
	select {
	case err := <-grpcErrors:
		return err
	case err := <-gatewayErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down servers...")

	healthServer.Shutdown()

	// Shutdown gateway
	if err := gwServer.Shutdown(ctx); err != nil {
		log.Error("Gateway shutdown error: ", err)
	}

	// Graceful stop gRPC
	grpcServer.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}

// setupGatewayServer creates and configures the gRPC-Gateway HTTP server
func setupGatewayServer(cfg *config.GrpcConfig, log logger.Logger) (*http.Server, *grpc.ClientConn, error) {
	gatewayTarget := "localhost:" + cfg.Port

	conn, err := grpc.NewClient(gatewayTarget, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial gRPC server: %w", err)
	}

	gwmux, err := v1.NewGatewayMux(conn)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	log.Info("gRPC-Gateway handlers registered successfully")

	return &http.Server{
		Addr:              ":" + cfg.GatewayPort,
		Handler:           gwmux,
		ReadHeaderTimeout: 10 * time.Second,
	}, conn, nil
}
