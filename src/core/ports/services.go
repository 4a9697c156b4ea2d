package ports

import (
	"context"
)

// ExternalService is the base interface for dependencies reported by the
// detailed health check.
type ExternalService interface {
	// Health checks if the dependency is reachable.
	Health(ctx context.Context) error
}

// CodecMetrics records identifier codec activity.
type CodecMetrics interface {
	// ObserveCodec counts one operation (encode, decode, inspect, compose,
	// group) and the number of identifiers it touched.
	ObserveCodec(operation string, items int)
}
