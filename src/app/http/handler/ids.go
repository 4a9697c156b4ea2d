package handler

import (
	"github.com/gin-gonic/gin"

	"socialid/src/app/http/dto"
	"socialid/src/app/http/response"
	"socialid/src/app/middleware"
	"socialid/src/core/usecase"
)

// IdentifierHandler exposes the identifier codec.
type IdentifierHandler struct {
	ids *usecase.IdentifierService
}

// NewIdentifierHandler creates a new IdentifierHandler.
func NewIdentifierHandler(ids *usecase.IdentifierService) *IdentifierHandler {
	return &IdentifierHandler{ids: ids}
}

// Encode converts a raw value to the local-id alphabet.
// POST /v1/ids/encode
func (h *IdentifierHandler) Encode(c *gin.Context) {
	var req dto.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "value", "value is required", middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EncodeResponse{
		Value:   *req.Value,
		Encoded: h.ids.Encode(*req.Value),
	})
}

// Decode converts an encoded value back to raw text.
// POST /v1/ids/decode
func (h *IdentifierHandler) Decode(c *gin.Context) {
	var req dto.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "value", "value is required", middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.DecodeResponse{
		Value:   *req.Value,
		Decoded: h.ids.Decode(*req.Value),
	})
}

// Inspect parses a wire identifier.
// GET /v1/ids/:id
func (h *IdentifierHandler) Inspect(c *gin.Context) {
	response.OK(c, h.ids.Inspect(c.Param("id")))
}

// Compose builds a wire identifier from raw parts.
// POST /v1/ids/compose
func (h *IdentifierHandler) Compose(c *gin.Context) {
	var req dto.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "local_id", "local_id is required", middleware.GetRequestID(c))
		return
	}
	response.OK(c, h.ids.Compose(req.Domain, *req.LocalID))
}

// Group buckets wire identifiers by domain.
// POST /v1/ids/group
func (h *IdentifierHandler) Group(c *gin.Context) {
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "ids", "ids is required", middleware.GetRequestID(c))
		return
	}

	groups, err := h.ids.Group(c.Request.Context(), req.IDs)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OKList(c, groups)
}
