package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialid/src/core/domain"
)

func TestProviderService_Register(t *testing.T) {
	ctx := context.Background()
	svc := NewProviderService(newFakeProviderRepo(), nil, discardLogger())

	t.Run("stores encoded domain", func(t *testing.T) {
		p, err := svc.Register(ctx, RegisterProviderInput{Domain: "соцсеть.рф", DisplayName: "Social"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, domain.NewDomainName("соцсеть.рф"), p.Domain)
		assert.Equal(t, "соцсеть.рф", p.Domain.Decoded())
	})

	t.Run("duplicate is a conflict", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterProviderInput{Domain: "соцсеть.рф"})
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("blank domain", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterProviderInput{})
		require.True(t, domain.IsValidationError(err))

		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "domain", de.Field)
	})

	t.Run("display name too long", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterProviderInput{
			Domain:      "long.example",
			DisplayName: strings.Repeat("x", domain.MaxDisplayNameLength+1),
		})
		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "display_name", de.Field)
	})
}

func TestServices_NilLogger(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProviderRepo()
	repo.healthErr = errBoom

	providers := NewProviderService(repo, nil, nil)
	ids := NewIdentifierService(nil, repo, nil, nil)
	health := NewHealthService(nil).Register("database", repo)

	require.NotPanics(t, func() {
		_, err := providers.Register(ctx, RegisterProviderInput{Domain: "example.com"})
		require.NoError(t, err)
		_, err = providers.RegisterMany(ctx, []RegisterProviderInput{{Domain: "example.com"}})
		require.Error(t, err)
		require.NoError(t, providers.Delete(ctx, "example.com"))

		_, err = ids.Group(ctx, []string{"example.com:1"})
		require.NoError(t, err)

		assert.Equal(t, "degraded", health.Check(ctx).Status)
	})
}

func TestProviderService_RegisterMany(t *testing.T) {
	ctx := context.Background()
	svc := NewProviderService(newFakeProviderRepo(), nil, discardLogger())

	created, err := svc.RegisterMany(ctx, []RegisterProviderInput{
		{Domain: "a.example"},
		{Domain: ""},
		{Domain: "b.example"},
		{Domain: "a.example"},
	})
	require.Error(t, err)
	assert.Len(t, created, 2)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.True(t, domain.IsValidationError(merr.Errors[0]))
	assert.True(t, domain.IsConflict(merr.Errors[1]))

	_, err = svc.RegisterMany(ctx, nil)
	assert.True(t, domain.IsValidationError(err))
}

func TestProviderService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewProviderService(newFakeProviderRepo(), nil, discardLogger())

	_, err := svc.Register(ctx, RegisterProviderInput{Domain: "b.example"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterProviderInput{Domain: "a.example"})
	require.NoError(t, err)

	p, err := svc.Get(ctx, "a.example")
	require.NoError(t, err)
	assert.Equal(t, "a.example", p.Domain.String())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a.example", list[0].Domain.String())

	require.NoError(t, svc.Delete(ctx, "a.example"))
	_, err = svc.Get(ctx, "a.example")
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(svc.Delete(ctx, "a.example")))

	_, err = svc.Get(ctx, "")
	assert.True(t, domain.IsValidationError(err))
	assert.True(t, domain.IsValidationError(svc.Delete(ctx, "")))
}
