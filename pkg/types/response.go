package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// PagedEnvelope wraps paginated list responses with the unfiltered total.
type PagedEnvelope struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
