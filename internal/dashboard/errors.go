package dashboard

// ValidationError is a user-input problem caught before any request was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ServerError is a failure the server reported in its response body.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }
