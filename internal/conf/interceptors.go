package conf

import (
	"time"

	middleware "github.com/programmerrush/api-bills/internal/middleware/grpc"

	"google.golang.org/grpc"
)

// NewUnaryInterceptors creates and returns a slice of gRPC UnaryServerInterceptor.
func NewUnaryInterceptors() []grpc.UnaryServerInterceptor {
	timeoutOverrides := map[string]time.Duration{}

	return []grpc.UnaryServerInterceptor{
		middleware.NewUnaryTimeoutInterceptor(timeoutOverrides),
		middleware.UnaryPanicInterceptor,
	}
}
