package ladle

// ErrorInfo is the wire representation of a scraping error.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Host    string `json:"host,omitempty"`
}

// Result is the uniform outcome of a scrape call. All cross-boundary calls
// (including the sandboxed backend, which serializes across its process
// boundary) communicate exclusively in this shape:
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": {"type": "...", "message": "...", "host": "..."}}
type Result struct {
	Success bool           `json:"success"`
	Data    *ScrapedRecipe `json:"data,omitempty"`
	Err     *ErrorInfo     `json:"error,omitempty"`
}

// OK wraps a successfully extracted record.
func OK(data *ScrapedRecipe) Result {
	return Result{Success: true, Data: data}
}

// Fail normalizes any error into the uniform result shape.
func Fail(err error) Result {
	return Result{Success: false, Err: &ErrorInfo{
		Type:    ErrorType(err),
		Message: ErrorMessage(err),
		Host:    ErrorHost(err),
	}}
}

// AsError converts a failed result back into a domain error.
// Returns nil for successful results.
func (r Result) AsError() error {
	if r.Success || r.Err == nil {
		return nil
	}
	return &Error{Type: r.Err.Type, Message: r.Err.Message, Host: r.Err.Host}
}
