package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"socialid/src/core/ports"
)

// HealthService reports the state of the service and its dependencies.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.ExternalService
}

// NewHealthService creates a new HealthService. A nil logger discards.
func NewHealthService(log *slog.Logger) *HealthService {
	return &HealthService{
		log:        orDiscard(log),
		components: make(map[string]ports.ExternalService),
	}
}

// Register adds a dependency to the detailed health check.
func (s *HealthService) Register(name string, component ports.ExternalService) *HealthService {
	if component != nil {
		s.components[name] = component
	}
	return s
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check pings every registered dependency. The overall status is "degraded"
// when any of them fails.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.components)),
	}

	names := make([]string, 0, len(s.components))
	for name := range s.components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.components[name].Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			s.log.Warn("health check failed", "component", name, "error", err)
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}

// orDiscard returns log, or a logger that drops every record when log is nil.
func orDiscard(log *slog.Logger) *slog.Logger {
	if log != nil {
		return log
	}
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
