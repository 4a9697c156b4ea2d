package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"socialid/src/core/domain"
	"socialid/src/core/ports"
)

// IdentifierService exposes the identifier codec and model to the outer
// layers. Providers and metrics are optional.
type IdentifierService struct {
	enc          *domain.Encoder
	providers    ports.ProviderRepository
	metrics      ports.CodecMetrics
	log          *slog.Logger
	maxBatchSize int
}

// NewIdentifierService creates an IdentifierService. A nil encoder selects the
// default encoder and a nil logger discards.
func NewIdentifierService(enc *domain.Encoder, providers ports.ProviderRepository, metrics ports.CodecMetrics, log *slog.Logger) *IdentifierService {
	if enc == nil {
		enc = domain.DefaultEncoder()
	}
	return &IdentifierService{
		enc:          enc,
		providers:    providers,
		metrics:      metrics,
		log:          orDiscard(log),
		maxBatchSize: domain.DefaultMaxBatchSize,
	}
}

// WithMaxBatchSize overrides the number of ids accepted by Group.
func (s *IdentifierService) WithMaxBatchSize(n int) *IdentifierService {
	if n > 0 {
		s.maxBatchSize = n
	}
	return s
}

// IdentifierView describes one identifier in both its wire and raw forms.
type IdentifierView struct {
	ID             string              `json:"id" yaml:"id"`
	Domain         string              `json:"domain,omitempty" yaml:"domain,omitempty"`
	DomainDecoded  string              `json:"domain_decoded,omitempty" yaml:"domain_decoded,omitempty"`
	LocalID        string              `json:"local_id" yaml:"local_id"`
	LocalIDDecoded string              `json:"local_id_decoded" yaml:"local_id_decoded"`
	Global         bool                `json:"global" yaml:"global"`
	Reserved       domain.ReservedKind `json:"reserved,omitempty" yaml:"reserved,omitempty"`
}

// DomainGroup is one bucket of a grouping request. Domain is empty for the
// bucket of local identifiers.
type DomainGroup struct {
	Domain        string   `json:"domain" yaml:"domain"`
	DomainDecoded string   `json:"domain_decoded" yaml:"domain_decoded"`
	Known         bool     `json:"known" yaml:"known"`
	DisplayName   string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	IDs           []string `json:"ids" yaml:"ids"`
}

// Encoder returns the encoder used by the service.
func (s *IdentifierService) Encoder() *domain.Encoder {
	return s.enc
}

// Encode converts raw text into the local-id alphabet.
func (s *IdentifierService) Encode(raw string) string {
	s.observe("encode", 1)
	return s.enc.Encode(raw)
}

// Decode converts an encoded fragment back into raw text.
func (s *IdentifierService) Decode(encoded string) string {
	s.observe("decode", 1)
	return s.enc.Decode(encoded)
}

// Inspect parses a wire identifier.
func (s *IdentifierService) Inspect(wire string) IdentifierView {
	s.observe("inspect", 1)
	return s.view(domain.ParseObjectID(wire))
}

// Compose builds an identifier from a raw domain and a raw local id. An
// empty domain yields a local identifier.
func (s *IdentifierService) Compose(rawDomain, rawLocalID string) IdentifierView {
	s.observe("compose", 1)
	return s.view(s.enc.NewObjectIDInDomain(rawDomain, rawLocalID))
}

// Group parses wire identifiers and buckets them by domain. Buckets are
// ordered by encoded domain with local identifiers last. When a provider
// repository is configured each bucket reports whether its domain is
// registered.
func (s *IdentifierService) Group(ctx context.Context, wires []string) ([]DomainGroup, error) {
	if len(wires) == 0 {
		return nil, domain.NewValidationError("ids", "at least one id required")
	}
	if len(wires) > s.maxBatchSize {
		return nil, domain.NewValidationError("ids", fmt.Sprintf("at most %d ids per request", s.maxBatchSize))
	}
	s.observe("group", len(wires))

	ids := make([]domain.ObjectID, 0, len(wires))
	for _, w := range wires {
		ids = append(ids, domain.ParseObjectID(w))
	}
	buckets := domain.GroupByDomain(ids)

	domains := make([]domain.DomainName, 0, len(buckets))
	for d := range buckets {
		domains = append(domains, d)
	}
	sort.Slice(domains, func(i, j int) bool {
		a, b := domains[i], domains[j]
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.String() < b.String()
	})

	known, err := s.knownProviders(ctx, domains)
	if err != nil {
		return nil, err
	}

	groups := make([]DomainGroup, 0, len(domains))
	for _, d := range domains {
		g := DomainGroup{
			Domain:        d.String(),
			DomainDecoded: d.Decoded(),
			IDs:           make([]string, 0, len(buckets[d])),
		}
		if p, ok := known[d]; ok {
			g.Known = true
			g.DisplayName = p.DisplayName
		}
		for _, id := range buckets[d] {
			g.IDs = append(g.IDs, id.String())
		}
		groups = append(groups, g)
	}

	s.log.Debug("grouped identifiers", "ids", len(wires), "groups", len(groups))
	return groups, nil
}

func (s *IdentifierService) knownProviders(ctx context.Context, domains []domain.DomainName) (map[domain.DomainName]domain.Provider, error) {
	known := make(map[domain.DomainName]domain.Provider)
	if s.providers == nil {
		return known, nil
	}

	lookup := make([]domain.DomainName, 0, len(domains))
	for _, d := range domains {
		if !d.IsZero() {
			lookup = append(lookup, d)
		}
	}
	if len(lookup) == 0 {
		return known, nil
	}

	providers, err := s.providers.ListProvidersByDomains(ctx, lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to look up providers: %w", err)
	}
	for _, p := range providers {
		known[p.Domain] = p
	}
	return known, nil
}

func (s *IdentifierService) view(id domain.ObjectID) IdentifierView {
	v := IdentifierView{
		ID:             id.String(),
		LocalID:        id.LocalID(),
		LocalIDDecoded: s.enc.Decode(id.LocalID()),
		Global:         id.IsGlobal(),
		Reserved:       domain.ReservedKindOf(id),
	}
	if id.HasDomain() {
		v.Domain = id.Domain().String()
		v.DomainDecoded = s.enc.Decode(id.Domain().String())
	}
	return v
}

func (s *IdentifierService) observe(op string, items int) {
	if s.metrics != nil {
		s.metrics.ObserveCodec(op, items)
	}
}
