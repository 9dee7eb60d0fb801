package dto

// MessageResponse is a plain success message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDResponse is a success message carrying the id of a created row.
type IDResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// DataResponse wraps a result set.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the standard error body. Every user-visible failure is a
// JSON object with a human-readable message; internals are never exposed.
type ErrorResponse struct {
	Message string `json:"message"`
}
