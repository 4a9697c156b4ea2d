package repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialid/src/core/domain"
	"socialid/src/infra/logger"
)

func newTestRepo() *MemoryRepository {
	r := NewMemoryRepository(logger.Discard())
	r.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	d := domain.NewDomainName("example.org")
	p, err := r.CreateProvider(ctx, domain.Provider{Domain: d, DisplayName: "Example"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), p.CreatedAt)

	got, err := r.GetProviderByDomain(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)

	_, err = r.CreateProvider(ctx, domain.Provider{Domain: d})
	assert.True(t, domain.IsConflict(err))

	_, err = r.GetProviderByDomain(ctx, domain.NewDomainName("missing.org"))
	assert.True(t, domain.IsNotFound(err))
}

func TestMemoryRepository_Lists(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	for _, raw := range []string{"zeta.net", "alpha.net", "мама.рф"} {
		_, err := r.CreateProvider(ctx, domain.Provider{Domain: domain.NewDomainName(raw)})
		require.NoError(t, err)
	}

	all, err := r.ListProviders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "_D0_BC_D0_B0_D0_BC_D0_B0._D1_80_D1_84", all[0].Domain.String())
	assert.Equal(t, "alpha.net", all[1].Domain.String())
	assert.Equal(t, "zeta.net", all[2].Domain.String())

	some, err := r.ListProvidersByDomains(ctx, []domain.DomainName{
		domain.NewDomainName("zeta.net"),
		domain.NewDomainName("unknown.net"),
		domain.NewDomainName("zeta.net"),
	})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "zeta.net", some[0].Domain.String())

	none, err := r.ListProvidersByDomains(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()
	d := domain.NewDomainName("example.org")

	assert.True(t, domain.IsNotFound(r.DeleteProvider(ctx, d)))

	_, err := r.CreateProvider(ctx, domain.Provider{Domain: d})
	require.NoError(t, err)
	require.NoError(t, r.DeleteProvider(ctx, d))

	_, err = r.GetProviderByDomain(ctx, d)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, r.Health(ctx))
}

func TestMemoryRepository_NilLogger(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)
	d := domain.NewDomainName("example.org")

	require.NotPanics(t, func() {
		_, err := r.CreateProvider(ctx, domain.Provider{Domain: d})
		require.NoError(t, err)
		require.NoError(t, r.DeleteProvider(ctx, d))
	})
}

func TestMemoryRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()
	d := domain.NewDomainName("race.example")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.CreateProvider(ctx, domain.Provider{Domain: d}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}
