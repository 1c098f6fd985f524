package data

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skybi/bitty/internal/api/schema"
	"github.com/skybi/bitty/internal/bitflag"
)

var errUnknownKind = func(kind string) *schema.Error {
	return &schema.Error{
		Type:    "kinds.unknown",
		Message: fmt.Sprintf("There is no flag enumeration kind called '%s'.", kind),
		Details: map[string]any{
			"kind": kind,
		},
	}
}

// EndpointGetKinds handles the 'GET /v1/kinds' endpoint
func (service *Service) EndpointGetKinds(writer http.ResponseWriter, _ *http.Request) {
	service.writer.WriteJSON(writer, service.Registry.Kinds())
}

// EndpointGetKind handles the 'GET /v1/kinds/{kind}' endpoint
func (service *Service) EndpointGetKind(writer http.ResponseWriter, request *http.Request) {
	kind := chi.URLParam(request, "kind")
	descriptor, ok := service.Registry.Describe(kind)
	if !ok {
		service.writer.WriteErrors(writer, http.StatusNotFound, errUnknownKind(kind))
		return
	}
	service.writer.WriteJSON(writer, descriptor)
}

// makeContainer creates an empty container of the kind named by the request path.
// If the kind is unknown, the error response is written and false is returned.
func (service *Service) makeContainer(writer http.ResponseWriter, request *http.Request) (bitflag.Dynamic, bool) {
	kind := chi.URLParam(request, "kind")
	container, err := service.Registry.Make(kind)
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, errUnknownKind(kind))
		return nil, false
	}
	return container, true
}
