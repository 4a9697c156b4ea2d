package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialid/src/core/domain"
)

func TestIdentifierService_EncodeDecode(t *testing.T) {
	metrics := newCountingMetrics()
	svc := NewIdentifierService(nil, nil, metrics, discardLogger())

	encoded := svc.Encode("мама мыла раму")
	assert.Regexp(t, `^[A-Za-z0-9._-]*$`, encoded)
	assert.Equal(t, "мама мыла раму", svc.Decode(encoded))

	assert.Equal(t, 1, metrics.ops["encode"])
	assert.Equal(t, 1, metrics.ops["decode"])
	assert.Same(t, domain.DefaultEncoder(), svc.Encoder())
}

func TestIdentifierService_Inspect(t *testing.T) {
	svc := NewIdentifierService(nil, nil, nil, discardLogger())

	t.Run("global", func(t *testing.T) {
		v := svc.Inspect("example.com:jo_20smith")
		assert.Equal(t, IdentifierView{
			ID:             "example.com:jo_20smith",
			Domain:         "example.com",
			DomainDecoded:  "example.com",
			LocalID:        "jo_20smith",
			LocalIDDecoded: "jo smith",
			Global:         true,
		}, v)
	})

	t.Run("local", func(t *testing.T) {
		v := svc.Inspect("34KJ")
		assert.False(t, v.Global)
		assert.Empty(t, v.Domain)
		assert.Equal(t, "34KJ", v.LocalIDDecoded)
	})

	t.Run("reserved", func(t *testing.T) {
		assert.Equal(t, domain.ReservedUser, svc.Inspect("@me").Reserved)
		assert.Equal(t, domain.ReservedGroup, svc.Inspect("@friends").Reserved)
	})
}

func TestIdentifierService_Compose(t *testing.T) {
	svc := NewIdentifierService(domain.NewEncoder(domain.WithScalarValues()), nil, nil, discardLogger())

	v := svc.Compose("example.com", "😀")
	assert.Equal(t, "example.com:_F0_9F_98_80", v.ID)
	assert.Equal(t, "😀", v.LocalIDDecoded)

	local := svc.Compose("", "1a")
	assert.Equal(t, "_31a", local.ID)
	assert.False(t, local.Global)
}

func TestIdentifierService_Group(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProviderRepo()
	_, err := repo.CreateProvider(ctx, domain.Provider{Domain: domain.NewDomainName("b.example"), DisplayName: "B"})
	require.NoError(t, err)

	metrics := newCountingMetrics()
	svc := NewIdentifierService(nil, repo, metrics, discardLogger())

	groups, err := svc.Group(ctx, []string{"b.example:1", "local", "a.example:2", "b.example:3", "b.example:1"})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, DomainGroup{
		Domain:        "a.example",
		DomainDecoded: "a.example",
		IDs:           []string{"a.example:2"},
	}, groups[0])
	assert.Equal(t, DomainGroup{
		Domain:        "b.example",
		DomainDecoded: "b.example",
		Known:         true,
		DisplayName:   "B",
		IDs:           []string{"b.example:1", "b.example:3"},
	}, groups[1])
	assert.Equal(t, "", groups[2].Domain)
	assert.Equal(t, []string{"local"}, groups[2].IDs)

	assert.Equal(t, 5, metrics.items["group"])
}

func TestIdentifierService_GroupValidation(t *testing.T) {
	svc := NewIdentifierService(nil, nil, nil, discardLogger()).WithMaxBatchSize(2)

	_, err := svc.Group(context.Background(), nil)
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Group(context.Background(), []string{"a", "b", "c"})
	assert.True(t, domain.IsValidationError(err))

	groups, err := svc.Group(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.False(t, groups[0].Known)
}

func TestIdentifierService_GroupRepositoryFailure(t *testing.T) {
	repo := newFakeProviderRepo()
	repo.listErr = errBoom
	svc := NewIdentifierService(nil, repo, nil, discardLogger())

	_, err := svc.Group(context.Background(), []string{"x.example:1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)

	// Local-only batches never reach the repository.
	_, err = svc.Group(context.Background(), []string{"local"})
	assert.NoError(t, err)
}
