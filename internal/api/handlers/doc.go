package handlers

// ErrorResponse is the error body returned by the raw echo routes. Huma
// operations return RFC 7807 problem responses instead.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
