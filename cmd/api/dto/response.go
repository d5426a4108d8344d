package dto

// Response is the envelope every API endpoint answers with.
// Error carries either a plain string or the aggregated field violations
// from validation.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      any         `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
