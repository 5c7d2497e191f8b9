package srv

import (
	"context"

	"github.com/sandevgo/veractbot/pkg/log"
)

// Service is anything with a blocking Start and a Shutdown: transports,
// background workers, resource cleanups.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices launches every service on its own goroutine. A service that
// fails to start takes the process down; a half-running bot is worse than a
// dead one.
func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(s Service) {
			if err := s.Start(ctx); err != nil {
				logger.Fatal().Err(err).Msgf("%T failed to start", s)
			}
		}(service)
	}
}

// ShutdownServices blocks until the context is cancelled, then shuts services
// down in registration order. Shutdown errors are logged, not propagated.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	logger := log.FromCtx(ctx)
	for _, service := range services {
		if err := service.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}
