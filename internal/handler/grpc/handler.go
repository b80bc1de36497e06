package grpc

import (
	"github.com/MKhiriev/notes-and-tags/internal/logger"
	"github.com/MKhiriev/notes-and-tags/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name under which the notes API reports its health, in
// addition to the server-wide empty name.
const ServiceName = "notes-and-tags"

// Handler is the root gRPC transport handler.
//
// It owns the standard gRPC health service and keeps references to the
// service layer and structured logger for interceptors. A handler instance
// is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING
// for both the server as a whole and [ServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// ServerOptions returns the options the gRPC server must be created with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	}
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Shutdown switches every status to NOT_SERVING so that health checks fail
// while in-flight requests drain.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
