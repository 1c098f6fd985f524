package schema

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Writer helps writing unified API responses
type Writer struct {
	InternalErrorHook func(err error)
}

// WriteJSONCode writes the JSON representation of value using the given HTTP status code
func (writer *Writer) WriteJSONCode(rw http.ResponseWriter, code int, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		writer.WriteInternalError(rw, err)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_, _ = rw.Write(encoded)
}

// WriteJSON writes the JSON representation of value using 200 OK as the HTTP status code
func (writer *Writer) WriteJSON(rw http.ResponseWriter, value any) {
	writer.WriteJSONCode(rw, http.StatusOK, value)
}

// WriteErrors sends an error response
func (writer *Writer) WriteErrors(rw http.ResponseWriter, code int, errors ...*Error) {
	if errors == nil {
		errors = []*Error{}
	}
	for _, err := range errors {
		if err.Details == nil {
			err.Details = map[string]any{}
		}
	}
	writer.WriteJSONCode(rw, code, &ErrorResponse{
		Status: code,
		Errors: errors,
	})
}

// WriteInternalError reports an unexpected error to the hook and sends a generic error response
func (writer *Writer) WriteInternalError(rw http.ResponseWriter, err error) {
	if writer.InternalErrorHook != nil {
		writer.InternalErrorHook(err)
	}
	writer.WriteErrors(rw, http.StatusInternalServerError, ErrInternal)
}
