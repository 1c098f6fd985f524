package data

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/skybi/bitty/internal/api/schema"
	"github.com/skybi/bitty/internal/apikey"
	"github.com/skybi/bitty/internal/bitflag"
)

type contextKey struct{}

var errAuthInsufficientCapabilities = func(provided, required, missing *apikey.Capabilities) *schema.Error {
	return &schema.Error{
		Type:    "access.insufficientKeyCapabilities",
		Message: "The specified API key lacks at least one capability required for this action.",
		Details: map[string]any{
			"provided": provided.Dynamic().Choices(),
			"required": required.Dynamic().Choices(),
			"missing":  missing.Dynamic().Choices(),
		},
	}
}

// MiddlewareVerifyKey makes sure that the requesting client has provided a valid API key.
// Additionally, it injects the API key object itself into the request context.
func (service *Service) MiddlewareVerifyKey(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		header := request.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer") {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		key := service.Keyring.Lookup(strings.TrimSpace(strings.TrimPrefix(header, "Bearer")))
		if key == nil {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		request = request.WithContext(context.WithValue(request.Context(), contextKey{}, key))
		next(writer, request)
	}
}

// MiddlewareVerifyKeyCapabilities makes sure that the provided API key has a set of required capabilities
func (service *Service) MiddlewareVerifyKeyCapabilities(caps ...apikey.Capability) func(http.HandlerFunc) http.HandlerFunc {
	required := bitflag.MustNew[apikey.Capability]()
	if _, err := required.Set(bitflag.Of(caps...)); err != nil {
		panic(err)
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(writer http.ResponseWriter, request *http.Request) {
			key := keyFromContext(request.Context())
			if key == nil {
				service.writer.WriteInternalError(writer, errors.New("API key capability check without API key verification"))
				return
			}

			granted, err := key.Capabilities.HasAll(required)
			if err != nil {
				service.writer.WriteInternalError(writer, err)
				return
			}
			if !granted && !required.IsEmpty() {
				missing := apikey.Missing(key.Capabilities, required)
				service.writer.WriteErrors(writer, http.StatusForbidden, errAuthInsufficientCapabilities(key.Capabilities, required, missing))
				return
			}
			next(writer, request)
		}
	}
}

func keyFromContext(ctx context.Context) *apikey.Key {
	key, _ := ctx.Value(contextKey{}).(*apikey.Key)
	return key
}
