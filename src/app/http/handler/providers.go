package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"

	"socialid/src/app/http/dto"
	"socialid/src/app/http/response"
	"socialid/src/app/middleware"
	"socialid/src/core/domain"
	"socialid/src/core/usecase"
)

// ProviderHandler manages the provider registry.
type ProviderHandler struct {
	providers *usecase.ProviderService
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(providers *usecase.ProviderService) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// Create registers one provider.
// POST /v1/providers
func (h *ProviderHandler) Create(c *gin.Context) {
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "domain", "domain is required", middleware.GetRequestID(c))
		return
	}

	p, err := h.providers.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dto.FromProvider(*p))
}

// CreateBatch registers several providers. Entries that fail are reported
// in "failed". The status is 201 when every entry was created, 200 when some
// were, and 422 when none were. A store outage on every entry answers 503.
// POST /v1/providers/batch
func (h *ProviderHandler) CreateBatch(c *gin.Context) {
	var req dto.BatchProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	created, err := h.providers.RegisterMany(c.Request.Context(), req.ToInputs())

	var merr *multierror.Error
	if err != nil && !errors.As(err, &merr) {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	if len(created) == 0 && allUnavailable(merr) {
		response.FromDomainError(c, merr.Errors[0], middleware.GetRequestID(c))
		return
	}

	out := dto.BatchProviderResponse{
		Created: dto.FromProviders(created),
		Failed:  []string{},
	}
	status := http.StatusCreated
	if merr != nil {
		status = http.StatusOK
		if len(created) == 0 {
			status = http.StatusUnprocessableEntity
		}
		for _, e := range merr.Errors {
			out.Failed = append(out.Failed, e.Error())
		}
	}
	c.JSON(status, response.Success{Data: out})
}

// allUnavailable reports whether every failure in merr came from an
// unreachable store rather than from the payload.
func allUnavailable(merr *multierror.Error) bool {
	if merr == nil || len(merr.Errors) == 0 {
		return false
	}
	for _, err := range merr.Errors {
		if !domain.IsUnavailable(err) {
			return false
		}
	}
	return true
}

// List returns every registered provider.
// GET /v1/providers
func (h *ProviderHandler) List(c *gin.Context) {
	ps, err := h.providers.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OKList(c, dto.FromProviders(ps))
}

// Get returns the provider for a raw domain.
// GET /v1/providers/:domain
func (h *ProviderHandler) Get(c *gin.Context) {
	p, err := h.providers.Get(c.Request.Context(), c.Param("domain"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.FromProvider(*p))
}

// Delete removes the provider for a raw domain.
// DELETE /v1/providers/:domain
func (h *ProviderHandler) Delete(c *gin.Context) {
	if err := h.providers.Delete(c.Request.Context(), c.Param("domain")); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
