package httperr

import "time"

// Envelope é o formato único de erro da API:
// {success:false, error:{message, timestamp, validationErrors?}}
type Envelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message          string       `json:"message"`
	Timestamp        string       `json:"timestamp"`
	ValidationErrors []FieldError `json:"validationErrors,omitempty"`

	// Details carries the original cause. Development profile only.
	Details string `json:"details,omitempty"`
}

func NewEnvelope(app *AppError, details string) Envelope {
	return Envelope{
		Success: false,
		Error: ErrorBody{
			Message:          app.Message,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			ValidationErrors: app.ValidationErrors,
			Details:          details,
		},
	}
}
