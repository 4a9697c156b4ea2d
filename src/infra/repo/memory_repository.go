package repo

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"socialid/src/core/domain"
	"socialid/src/core/ports"
	"socialid/src/infra/logger"
)

// MemoryRepository is a ProviderRepository held in process memory. It backs
// the service when no database is configured.
type MemoryRepository struct {
	mu       sync.RWMutex
	nextID   int64
	byDomain map[domain.DomainName]domain.Provider
	log      *slog.Logger
	now      func() time.Time
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository(log *slog.Logger) *MemoryRepository {
	return &MemoryRepository{
		byDomain: make(map[domain.DomainName]domain.Provider),
		log:      log,
		now:      time.Now,
	}
}

var _ ports.ProviderRepository = (*MemoryRepository)(nil)

// Health always succeeds.
func (r *MemoryRepository) Health(context.Context) error {
	return nil
}

func (r *MemoryRepository) CreateProvider(_ context.Context, p domain.Provider) (*domain.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byDomain[p.Domain]; ok {
		return nil, domain.NewConflictError("provider already registered")
	}
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = r.now().UTC()
	r.byDomain[p.Domain] = p
	return &p, nil
}

func (r *MemoryRepository) GetProviderByDomain(_ context.Context, d domain.DomainName) (*domain.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byDomain[d]
	if !ok {
		return nil, domain.NewNotFoundError("provider")
	}
	return &p, nil
}

func (r *MemoryRepository) ListProviders(context.Context) ([]domain.Provider, error) {
	r.mu.RLock()
	out := make([]domain.Provider, 0, len(r.byDomain))
	for _, p := range r.byDomain {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sortByDomain(out)
	return out, nil
}

func (r *MemoryRepository) ListProvidersByDomains(_ context.Context, ds []domain.DomainName) ([]domain.Provider, error) {
	r.mu.RLock()
	var out []domain.Provider
	seen := make(map[domain.DomainName]struct{}, len(ds))
	for _, d := range ds {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		if p, ok := r.byDomain[d]; ok {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	sortByDomain(out)
	return out, nil
}

func (r *MemoryRepository) DeleteProvider(_ context.Context, d domain.DomainName) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byDomain[d]; !ok {
		return domain.NewNotFoundError("provider")
	}
	delete(r.byDomain, d)
	logger.Debug(r.log, "provider removed from memory", "domain", d.String())
	return nil
}

// Matches the ORDER BY domain_name of the Postgres queries.
func sortByDomain(ps []domain.Provider) {
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Domain.String() < ps[j].Domain.String()
	})
}
