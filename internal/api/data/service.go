package data

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/skybi/bitty/internal/api/schema"
	"github.com/skybi/bitty/internal/apikey"
	"github.com/skybi/bitty/internal/bitflag"
	"github.com/skybi/bitty/internal/config"
	"github.com/skybi/bitty/internal/storage"
)

// Service represents the data API service
type Service struct {
	server *http.Server

	Config   *config.Config
	Storage  storage.Driver
	Registry *bitflag.Registry
	Keyring  *apikey.Keyring

	writer *schema.Writer

	// Flag set updates are read-modify-write cycles and get serialized
	writeMtx sync.Mutex
}

// Startup starts up the data API
func (service *Service) Startup() error {
	server := &http.Server{
		Addr:    service.Config.APIListenAddress,
		Handler: service.Handler(),
	}
	service.server = server
	return server.ListenAndServe()
}

// Shutdown shuts down the data API
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

// Handler builds the HTTP handler serving the data API
func (service *Service) Handler() http.Handler {
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the data API experienced an unexpected error")
		},
	}

	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: service.Config.APIAllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	service.registerEndpoints(router)
	return router
}

func (service *Service) registerEndpoints(router chi.Router) {
	router.Get("/v1/key_info", nest(
		service.EndpointGetKeyInfo,
		service.MiddlewareVerifyKey,
	))

	router.Get("/v1/kinds", nest(
		service.EndpointGetKinds,
		service.MiddlewareVerifyKey,
		service.MiddlewareVerifyKeyCapabilities(apikey.CapabilityReadKinds),
	))
	router.Get("/v1/kinds/{kind}", nest(
		service.EndpointGetKind,
		service.MiddlewareVerifyKey,
		service.MiddlewareVerifyKeyCapabilities(apikey.CapabilityReadKinds),
	))

	router.Get("/v1/kinds/{kind}/flag_sets", nest(
		service.EndpointGetFlagSets,
		service.MiddlewareVerifyKey,
		service.MiddlewareVerifyKeyCapabilities(apikey.CapabilityReadFlagSets),
	))
	router.Get("/v1/kinds/{kind}/flag_sets/{subject}", nest(
		service.EndpointGetFlagSet,
		service.MiddlewareVerifyKey,
		service.MiddlewareVerifyKeyCapabilities(apikey.CapabilityReadFlagSets),
	))
	router.Get("/v1/kinds/{kind}/flag_sets/{subject}/has", nest(
		service.EndpointCheckFlagSet,
		service.MiddlewareVerifyKey,
		service.MiddlewareVerifyKeyCapabilities(apikey.CapabilityReadFlagSets),
	))
	router.Patch("/v1/kinds/{kind}/flag_sets/{subject}", nest(
		service.EndpointPatchFlagSet,
		service.MiddlewareVerifyKey,
		service.MiddlewareVerifyKeyCapabilities(apikey.CapabilityWriteFlagSets),
	))
	router.Delete("/v1/kinds/{kind}/flag_sets/{subject}", nest(
		service.EndpointDeleteFlagSet,
		service.MiddlewareVerifyKey,
		service.MiddlewareVerifyKeyCapabilities(apikey.CapabilityWriteFlagSets),
	))
}

// nest wraps final into the given middlewares; the first one is the outermost
func nest(final http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	res := final
	for i := len(middlewares); i > 0; i-- {
		res = middlewares[i-1](res)
	}
	return res
}
