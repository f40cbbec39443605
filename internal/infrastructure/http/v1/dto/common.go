// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthResponse is the body of health probes.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// MapList converts a slice of entities with fn.
// The result is never nil, so empty lists encode as [].
func MapList[E any, D any](items []E, fn func(E) D) []D {
	out := make([]D, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
