package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"

	"socialid/src/core/domain"
	"socialid/src/core/ports"
)

// ProviderService manages the registry of federated providers.
type ProviderService struct {
	repo ports.ProviderRepository
	enc  *domain.Encoder
	log  *slog.Logger
}

// NewProviderService creates a ProviderService. A nil encoder selects the
// default encoder and a nil logger discards.
func NewProviderService(repo ports.ProviderRepository, enc *domain.Encoder, log *slog.Logger) *ProviderService {
	if enc == nil {
		enc = domain.DefaultEncoder()
	}
	return &ProviderService{repo: repo, enc: enc, log: orDiscard(log)}
}

// RegisterProviderInput carries a raw (not yet encoded) domain name.
type RegisterProviderInput struct {
	Domain      string `json:"domain"`
	DisplayName string `json:"display_name"`
}

// Validate checks field presence and lengths.
func (in RegisterProviderInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Domain, validation.Required, validation.RuneLength(1, domain.MaxDomainNameLength)),
		validation.Field(&in.DisplayName, validation.RuneLength(0, domain.MaxDisplayNameLength)),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError("", err.Error())
	}
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return domain.NewValidationError(fields[0], fieldErrs[fields[0]].Error())
}

// Register validates in and stores a new provider.
func (s *ProviderService) Register(ctx context.Context, in RegisterProviderInput) (*domain.Provider, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.CreateProvider(ctx, domain.Provider{
		Domain:      s.enc.NewDomainName(in.Domain),
		DisplayName: in.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("provider registered", "domain", p.Domain.String(), "provider_id", p.ID)
	return p, nil
}

// RegisterMany registers every input it can. Failures do not stop the batch;
// they are returned together as a *multierror.Error.
func (s *ProviderService) RegisterMany(ctx context.Context, inputs []RegisterProviderInput) ([]domain.Provider, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError("providers", "at least one provider required")
	}

	var (
		created []domain.Provider
		result  *multierror.Error
	)
	for i, in := range inputs {
		p, err := s.Register(ctx, in)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("provider %d (%s): %w", i, in.Domain, err))
			continue
		}
		created = append(created, *p)
	}

	if result != nil {
		s.log.Warn("batch registration incomplete", "created", len(created), "failed", result.Len())
	}
	return created, result.ErrorOrNil()
}

// Get returns the provider for a raw domain name.
func (s *ProviderService) Get(ctx context.Context, rawDomain string) (*domain.Provider, error) {
	if rawDomain == "" {
		return nil, domain.NewValidationError("domain", "cannot be blank")
	}
	return s.repo.GetProviderByDomain(ctx, s.enc.NewDomainName(rawDomain))
}

// List returns all registered providers.
func (s *ProviderService) List(ctx context.Context) ([]domain.Provider, error) {
	return s.repo.ListProviders(ctx)
}

// Delete removes the provider for a raw domain name.
func (s *ProviderService) Delete(ctx context.Context, rawDomain string) error {
	if rawDomain == "" {
		return domain.NewValidationError("domain", "cannot be blank")
	}
	d := s.enc.NewDomainName(rawDomain)
	if err := s.repo.DeleteProvider(ctx, d); err != nil {
		return err
	}
	s.log.Info("provider deleted", "domain", d.String())
	return nil
}
