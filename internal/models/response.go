package models

// Error kinds carried in failure responses so callers can distinguish
// failure classes without parsing message text.
const (
	ErrKindConfig     = "config"
	ErrKindNotReady   = "not_ready"
	ErrKindBadRequest = "bad_request"
	ErrKindUpload     = "upload"
	ErrKindGuild      = "guild"
	ErrKindChannel    = "channel"
	ErrKindSend       = "send"
)

type OrderResponse struct {
	Success        bool   `json:"success"`
	ChannelID      string `json:"channelId"`
	Message        string `json:"message"`
	ReferenceCount int    `json:"referenceCount"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	// Detail carries the internal diagnostic and is only populated when
	// DEBUG_ERRORS is enabled.
	Detail string `json:"detail,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Discord string `json:"discord"`
}
