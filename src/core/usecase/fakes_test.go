package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"socialid/src/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeProviderRepo is an in-memory ProviderRepository for service tests.
type fakeProviderRepo struct {
	mu        sync.Mutex
	nextID    int64
	byDomain  map[domain.DomainName]domain.Provider
	healthErr error
	listErr   error
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{byDomain: make(map[domain.DomainName]domain.Provider)}
}

func (f *fakeProviderRepo) Health(context.Context) error { return f.healthErr }

func (f *fakeProviderRepo) CreateProvider(_ context.Context, p domain.Provider) (*domain.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byDomain[p.Domain]; ok {
		return nil, domain.NewConflictError("provider already registered")
	}
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.byDomain[p.Domain] = p
	return &p, nil
}

func (f *fakeProviderRepo) GetProviderByDomain(_ context.Context, d domain.DomainName) (*domain.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byDomain[d]
	if !ok {
		return nil, domain.NewNotFoundError("provider")
	}
	return &p, nil
}

func (f *fakeProviderRepo) ListProviders(context.Context) ([]domain.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Provider, 0, len(f.byDomain))
	for _, p := range f.byDomain {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain.String() < out[j].Domain.String() })
	return out, nil
}

func (f *fakeProviderRepo) ListProvidersByDomains(_ context.Context, ds []domain.DomainName) ([]domain.Provider, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Provider
	for _, d := range ds {
		if p, ok := f.byDomain[d]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProviderRepo) DeleteProvider(_ context.Context, d domain.DomainName) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byDomain[d]; !ok {
		return domain.NewNotFoundError("provider")
	}
	delete(f.byDomain, d)
	return nil
}

// countingMetrics records ObserveCodec calls.
type countingMetrics struct {
	ops   map[string]int
	items map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{ops: map[string]int{}, items: map[string]int{}}
}

func (m *countingMetrics) ObserveCodec(op string, items int) {
	m.ops[op]++
	m.items[op] += items
}

var errBoom = errors.New("boom")
