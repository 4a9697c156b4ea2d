package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check(t *testing.T) {
	t.Run("no components", func(t *testing.T) {
		status := NewHealthService(discardLogger()).Check(context.Background())
		assert.Equal(t, "ok", status.Status)
		assert.Empty(t, status.Components)
	})

	t.Run("healthy repository", func(t *testing.T) {
		svc := NewHealthService(discardLogger()).Register("database", newFakeProviderRepo())
		status := svc.Check(context.Background())
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, ComponentHealth{Status: "healthy"}, status.Components["database"])
	})

	t.Run("failing repository degrades", func(t *testing.T) {
		repo := newFakeProviderRepo()
		repo.healthErr = errBoom
		svc := NewHealthService(discardLogger()).Register("database", repo)

		status := svc.Check(context.Background())
		assert.Equal(t, "degraded", status.Status)
		assert.Equal(t, ComponentHealth{Status: "unhealthy", Message: "boom"}, status.Components["database"])
	})
}
