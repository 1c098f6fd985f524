package data

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/skybi/bitty/internal/api/schema"
	"github.com/skybi/bitty/internal/api/validation"
	"github.com/skybi/bitty/internal/bitflag"
	"github.com/skybi/bitty/internal/flagset"
)

const (
	checkModeAny = "any"
	checkModeAll = "all"
)

var (
	errIncompatibleFlags = func(err error) *schema.Error {
		details := map[string]any{
			"error": err.Error(),
		}
		var flagErr *bitflag.FlagError
		if errors.As(err, &flagErr) {
			details["kind"] = flagErr.Kind
			details["flag"] = flagErr.Value
		}
		return &schema.Error{
			Type:    "flagSets.incompatibleFlags",
			Message: "At least one of the given flags does not belong to the flag enumeration kind.",
			Details: details,
		}
	}
	errInconsistentFlagSet = func(kind, subject string) error {
		return fmt.Errorf("stored flag set of subject '%s' does not fit the flag enumeration kind '%s'", subject, kind)
	}
)

type flagSetView struct {
	Kind      string   `json:"kind"`
	Subject   string   `json:"subject"`
	Value     uint64   `json:"value"`
	Flags     []string `json:"flags"`
	UpdatedAt int64    `json:"updated_at"`
}

type flagSetCheckView struct {
	Mode   string   `json:"mode"`
	Flags  []string `json:"flags"`
	Result bool     `json:"result"`
}

type flagSetPatchPayload struct {
	Clear  *bool    `json:"clear"`
	SetAll *bool    `json:"set_all"`
	Set    []string `json:"set" max_len:"64"`
	Unset  []string `json:"unset" max_len:"64"`
}

// EndpointGetFlagSets handles the 'GET /v1/kinds/{kind}/flag_sets' endpoint
func (service *Service) EndpointGetFlagSets(writer http.ResponseWriter, request *http.Request) {
	container, ok := service.makeContainer(writer, request)
	if !ok {
		return
	}

	offset, validationErr := validation.QueryNumber(request, "offset", false, 0, 0, ^uint64(0))
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}
	limit, validationErr := validation.QueryNumber(request, "limit", false, flagset.DefaultLimit, 1, 100)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	kind := container.KindName()
	flagSets, total, err := service.Storage.FlagSets().GetByKind(request.Context(), kind, offset, limit)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	views := make([]*flagSetView, 0, len(flagSets))
	for _, flagSet := range flagSets {
		view, err := service.buildView(container, flagSet)
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		views = append(views, view)
	}
	service.writer.WriteJSON(writer, schema.BuildPaginatedResponse(offset, limit, total, views))
}

// EndpointGetFlagSet handles the 'GET /v1/kinds/{kind}/flag_sets/{subject}' endpoint.
// Subjects without a stored flag set are reported as empty.
func (service *Service) EndpointGetFlagSet(writer http.ResponseWriter, request *http.Request) {
	container, flagSet, ok := service.loadFlagSet(writer, request)
	if !ok {
		return
	}
	view, err := service.buildView(container, flagSet)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, view)
}

// EndpointCheckFlagSet handles the 'GET /v1/kinds/{kind}/flag_sets/{subject}/has' endpoint
func (service *Service) EndpointCheckFlagSet(writer http.ResponseWriter, request *http.Request) {
	mode, validationErr := validation.QueryChoice(request, "mode", checkModeAny, checkModeAll)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}
	flags := validation.QueryList(request, "flags")

	container, flagSet, ok := service.loadFlagSet(writer, request)
	if !ok {
		return
	}
	if err := container.Load(flagSet.Value); err != nil {
		service.writer.WriteInternalError(writer, errInconsistentFlagSet(flagSet.Kind, flagSet.Subject))
		return
	}

	var result bool
	var err error
	switch mode {
	case checkModeAll:
		result, err = container.HasAll(flags...)
	default:
		result, err = container.HasAny(flags...)
	}
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errIncompatibleFlags(err))
		return
	}

	service.writer.WriteJSON(writer, &flagSetCheckView{
		Mode:   mode,
		Flags:  flags,
		Result: result,
	})
}

// EndpointPatchFlagSet handles the 'PATCH /v1/kinds/{kind}/flag_sets/{subject}' endpoint.
// The operations of the payload are applied in the order clear, set_all, set, unset. Nothing is stored if one of them
// fails.
func (service *Service) EndpointPatchFlagSet(writer http.ResponseWriter, request *http.Request) {
	payload, validationErrs, err := schema.UnmarshalBody[flagSetPatchPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	service.writeMtx.Lock()
	defer service.writeMtx.Unlock()

	container, flagSet, ok := service.loadFlagSet(writer, request)
	if !ok {
		return
	}
	if err := container.Load(flagSet.Value); err != nil {
		service.writer.WriteInternalError(writer, errInconsistentFlagSet(flagSet.Kind, flagSet.Subject))
		return
	}

	if payload.Clear != nil && *payload.Clear {
		container.Clear()
	}
	if payload.SetAll != nil && *payload.SetAll {
		container.SetAll()
	}
	if err := container.Set(payload.Set...); err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errIncompatibleFlags(err))
		return
	}
	if err := container.Unset(payload.Unset...); err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errIncompatibleFlags(err))
		return
	}

	stored, err := service.Storage.FlagSets().Put(request.Context(), flagSet.Kind, flagSet.Subject, container.Value())
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	log.Debug().
		Str("kind", stored.Kind).
		Str("subject", stored.Subject).
		Uint64("value", stored.Value).
		Msg("updated flag set")

	view, err := service.buildView(container, stored)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, view)
}

// EndpointDeleteFlagSet handles the 'DELETE /v1/kinds/{kind}/flag_sets/{subject}' endpoint
func (service *Service) EndpointDeleteFlagSet(writer http.ResponseWriter, request *http.Request) {
	container, ok := service.makeContainer(writer, request)
	if !ok {
		return
	}

	service.writeMtx.Lock()
	defer service.writeMtx.Unlock()

	if err := service.Storage.FlagSets().Delete(request.Context(), container.KindName(), chi.URLParam(request, "subject")); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

// loadFlagSet resolves the kind and subject of the request path and retrieves the stored flag set.
// A flag set with a zero value is returned for subjects without a stored one.
func (service *Service) loadFlagSet(writer http.ResponseWriter, request *http.Request) (bitflag.Dynamic, *flagset.FlagSet, bool) {
	container, ok := service.makeContainer(writer, request)
	if !ok {
		return nil, nil, false
	}

	kind := container.KindName()
	subject := chi.URLParam(request, "subject")
	flagSet, err := service.Storage.FlagSets().GetBySubject(request.Context(), kind, subject)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return nil, nil, false
	}
	if flagSet == nil {
		flagSet = &flagset.FlagSet{
			Kind:    kind,
			Subject: subject,
		}
	}
	return container, flagSet, true
}

func (service *Service) buildView(container bitflag.Dynamic, flagSet *flagset.FlagSet) (*flagSetView, error) {
	if err := container.Load(flagSet.Value); err != nil {
		return nil, errInconsistentFlagSet(flagSet.Kind, flagSet.Subject)
	}
	return &flagSetView{
		Kind:      flagSet.Kind,
		Subject:   flagSet.Subject,
		Value:     flagSet.Value,
		Flags:     container.Choices(),
		UpdatedAt: flagSet.UpdatedAt,
	}, nil
}
