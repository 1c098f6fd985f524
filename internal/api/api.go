package api

import (
	"errors"
	"net/http"

	"github.com/skybi/bitty/internal/api/data"
	"github.com/skybi/bitty/internal/apikey"
	"github.com/skybi/bitty/internal/bitflag"
	"github.com/skybi/bitty/internal/config"
	"github.com/skybi/bitty/internal/storage"
)

// Service represents the API service
type Service struct {
	Config   *config.Config
	Storage  storage.Driver
	Registry *bitflag.Registry
	Keyring  *apikey.Keyring
	data     *data.Service
}

// Startup starts up the data API.
// Errors occurring while serving are sent to errs.
func (service *Service) Startup(errs chan<- error) {
	dataService := &data.Service{
		Config:   service.Config,
		Storage:  service.Storage,
		Registry: service.Registry,
		Keyring:  service.Keyring,
	}
	service.data = dataService
	go func() {
		if err := dataService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
}

// Shutdown shuts down the data API
func (service *Service) Shutdown() {
	if service.data != nil {
		service.data.Shutdown()
		service.data = nil
	}
}
