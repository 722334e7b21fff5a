package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/contacts-server/internal/api/grpc/contactsapi"
	"github.com/dtroode/contacts-server/internal/api/grpc/handler"
	"github.com/dtroode/contacts-server/internal/api/grpc/middleware"
	"github.com/dtroode/contacts-server/internal/logger"
)

// Router wires the contacts services into a gRPC server.
type Router struct {
	contactService   handler.ContactService
	categoryService  handler.CategoryService
	directoryService handler.DirectoryService
	logger           *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	contactService handler.ContactService,
	categoryService handler.CategoryService,
	directoryService handler.DirectoryService,
	logger *logger.Logger,
) *Router {
	return &Router{
		contactService:   contactService,
		categoryService:  categoryService,
		directoryService: directoryService,
		logger:           logger,
	}
}

func logSkip(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

// Register builds the server with request logging, panic recovery and the
// health service.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			selector.UnaryServerInterceptor(
				logging.HandleGRPC,
				selector.MatchFunc(logSkip),
			),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(r.recover)),
		),
	)

	contactsapi.RegisterContactsServer(s, handler.NewContact(r.contactService, r.directoryService, r.logger))
	contactsapi.RegisterCategoriesServer(s, handler.NewCategory(r.categoryService, r.logger))
	healthpb.RegisterHealthServer(s, health.NewServer())

	return s
}

func (r *Router) recover(p any) error {
	r.logger.Error("gRPC handler panicked", "panic", p)
	return status.Error(codes.Internal, "internal server error")
}
