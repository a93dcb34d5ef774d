package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/programmerrush/api-bills/internal/worker"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// HttpHandlerRegister defines a function that registers custom HTTP handlers.
type HttpHandlerRegister func(mux *http.ServeMux)

// App manages the HTTP server, the gRPC health endpoint, and background
// workers. Both protocols share one port through h2c.
type App struct {
	httpServer *http.Server
	gRPCServer *grpc.Server
	workers    []worker.Worker
	port       int
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewApp creates and configures a new application server.
func NewApp(port int, logger *zap.Logger, register HttpHandlerRegister, unaryInterceptors []grpc.UnaryServerInterceptor, workers []worker.Worker) (*App, func(), error) {
	// The gRPC side carries only health checks and reflection; the bill API
	// itself is plain HTTP.
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(unaryInterceptors...))

	healthcheck := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthcheck)

	reflection.Register(s)

	// The gateway mux is the fallback handler so unmatched routes get the
	// same JSON error envelope as the API handlers.
	gwmux := newGatewayMux()

	mux := http.NewServeMux()
	mux.Handle("/", gwmux)
	if register != nil {
		register(mux)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: grpcHandlerFunc(s, mux),
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		httpServer: httpServer,
		gRPCServer: s,
		workers:    workers,
		port:       port,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	// The cleanup function will be called by main to gracefully shut down.
	cleanup := func() {
		app.logger.Info("Cleanup: stopping server and workers...")
		app.cancel() // Signal all background goroutines to stop

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		app.gRPCServer.GracefulStop()

		if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("HTTP server shutdown failed", zap.Error(err))
		}
		app.logger.Info("Cleanup finished.")
	}

	return app, cleanup, nil
}

// Run starts the application server and all background workers.
func (a *App) Run() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", a.port, err)
	}

	for _, w := range a.workers {
		go w.Start(a.ctx)
	}

	go func() {
		a.logger.Info("server started", zap.Int("port", a.port))
		if err := a.httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server Serve error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("Shutting down server...")
	a.cancel()

	return nil
}

// newGatewayMux creates a gRPC-Gateway mux whose error handler emits the
// {status, code, message} envelope used across the API.
func newGatewayMux() *runtime.ServeMux {
	return runtime.NewServeMux(
		runtime.WithErrorHandler(func(ctx context.Context, mux *runtime.ServeMux, marshaler runtime.Marshaler, w http.ResponseWriter, r *http.Request, err error) {
			st, ok := status.FromError(err)
			if !ok {
				st = status.New(codes.Unknown, "Unknown error")
			}

			httpCode := runtime.HTTPStatusFromCode(st.Code())

			resp := map[string]interface{}{
				"status":  "error",
				"code":    httpCode,
				"message": st.Message(),
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(httpCode)
			if err := json.NewEncoder(w).Encode(resp); err != nil {
				http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			}
		}),
	)
}

func grpcHandlerFunc(grpcServer *grpc.Server, otherHandler http.Handler) http.Handler {
	return h2c.NewHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.Contains(r.Header.Get("Content-Type"), "application/grpc") {
			grpcServer.ServeHTTP(w, r)
		} else {
			otherHandler.ServeHTTP(w, r)
		}
	}), &http2.Server{})
}
