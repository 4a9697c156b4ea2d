package dto

import (
	"time"

	"socialid/src/core/domain"
	"socialid/src/core/usecase"
)

// CreateProviderRequest is the payload for POST /v1/providers.
type CreateProviderRequest struct {
	Domain      string `json:"domain" binding:"required"`
	DisplayName string `json:"display_name"`
}

// ToInput converts the request to the service input.
func (r CreateProviderRequest) ToInput() usecase.RegisterProviderInput {
	return usecase.RegisterProviderInput{
		Domain:      r.Domain,
		DisplayName: r.DisplayName,
	}
}

// BatchProviderRequest is the payload for POST /v1/providers/batch.
type BatchProviderRequest struct {
	Providers []CreateProviderRequest `json:"providers" binding:"required"`
}

// ToInputs converts every entry to a service input.
func (r BatchProviderRequest) ToInputs() []usecase.RegisterProviderInput {
	out := make([]usecase.RegisterProviderInput, len(r.Providers))
	for i, p := range r.Providers {
		out[i] = p.ToInput()
	}
	return out
}

// ProviderResponse describes one registered provider.
type ProviderResponse struct {
	ID            int64     `json:"provider_id"`
	Domain        string    `json:"domain"`
	DomainDecoded string    `json:"domain_decoded"`
	DisplayName   string    `json:"display_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromProvider builds a ProviderResponse.
func FromProvider(p domain.Provider) ProviderResponse {
	return ProviderResponse{
		ID:            p.ID,
		Domain:        p.Domain.String(),
		DomainDecoded: p.Domain.Decoded(),
		DisplayName:   p.DisplayName,
		CreatedAt:     p.CreatedAt,
	}
}

// FromProviders builds a response for each provider.
func FromProviders(ps []domain.Provider) []ProviderResponse {
	out := make([]ProviderResponse, len(ps))
	for i, p := range ps {
		out[i] = FromProvider(p)
	}
	return out
}

// BatchProviderResponse reports a batch registration. Failed lists one
// message per rejected entry.
type BatchProviderResponse struct {
	Created []ProviderResponse `json:"created"`
	Failed  []string           `json:"failed"`
}
