// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This keeps the identifier model free of storage and
// transport concerns.
package ports

import (
	"context"

	"socialid/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ProviderRepository stores the federated providers known to this service.
// Providers are keyed by their encoded domain name.
type ProviderRepository interface {
	Repository

	// CreateProvider stores p and returns it with ID and CreatedAt set.
	// Returns a conflict error when the domain is already registered.
	CreateProvider(ctx context.Context, p domain.Provider) (*domain.Provider, error)

	// GetProviderByDomain returns a not found error for unknown domains.
	GetProviderByDomain(ctx context.Context, d domain.DomainName) (*domain.Provider, error)

	// ListProviders returns all providers ordered by domain name.
	ListProviders(ctx context.Context) ([]domain.Provider, error)

	// ListProvidersByDomains returns the registered providers among ds.
	// Unknown domains are skipped.
	ListProvidersByDomains(ctx context.Context, ds []domain.DomainName) ([]domain.Provider, error)

	// DeleteProvider returns a not found error for unknown domains.
	DeleteProvider(ctx context.Context, d domain.DomainName) error
}
