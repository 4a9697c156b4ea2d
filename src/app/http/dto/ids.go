package dto

// ValueRequest is the payload for /v1/ids/encode and /v1/ids/decode.
type ValueRequest struct {
	// Value may be empty; only its presence is required.
	Value *string `json:"value" binding:"required"`
}

// EncodeResponse pairs a raw value with its local-id form.
type EncodeResponse struct {
	Value   string `json:"value"`
	Encoded string `json:"encoded"`
}

// DecodeResponse pairs an encoded value with its raw form.
type DecodeResponse struct {
	Value   string `json:"value"`
	Decoded string `json:"decoded"`
}

// ComposeRequest is the payload for /v1/ids/compose. Both parts are raw;
// an empty domain yields a local identifier.
type ComposeRequest struct {
	Domain  string  `json:"domain"`
	LocalID *string `json:"local_id" binding:"required"`
}

// GroupRequest is the payload for /v1/ids/group.
type GroupRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
