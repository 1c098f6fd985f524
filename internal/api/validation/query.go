package validation

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/skybi/bitty/internal/api/schema"
)

var (
	errQueryParameterMissing = func(name string) *schema.Error {
		return &schema.Error{
			Type:    "validation.query.parameter.missing",
			Message: fmt.Sprintf("The query parameter '%s' is required but was not present in the request.", name),
			Details: map[string]any{
				"parameter": name,
			},
		}
	}
	errQueryParameterInvalidType = func(name, value, expectedType string) *schema.Error {
		return &schema.Error{
			Type:    "validation.query.parameter.invalidType",
			Message: fmt.Sprintf("The query parameter '%s' ('%s') could not be assigned to the required type (%s).", name, value, expectedType),
			Details: map[string]any{
				"parameter":     name,
				"value":         value,
				"expected_type": expectedType,
			},
		}
	}
	errQueryParameterNumberOutOfRange = func(name string, value, min, max uint64) *schema.Error {
		comparison := ""
		if value < min {
			comparison = fmt.Sprintf("%d [given] < %d [min]", value, min)
		} else if value > max {
			comparison = fmt.Sprintf("%d [given] > %d [max]", value, max)
		}

		return &schema.Error{
			Type:    "validation.query.parameter.number.outOfRange",
			Message: fmt.Sprintf("The query parameter '%s' is out of the required range (%s).", name, comparison),
			Details: map[string]any{
				"parameter": name,
				"value":     value,
				"min":       min,
				"max":       max,
			},
		}
	}
	errQueryParameterNotAllowed = func(name, value string, allowed []string) *schema.Error {
		return &schema.Error{
			Type:    "validation.query.parameter.notAllowed",
			Message: fmt.Sprintf("The query parameter '%s' ('%s') is none of the allowed values (%s).", name, value, strings.Join(allowed, ", ")),
			Details: map[string]any{
				"parameter": name,
				"value":     value,
				"allowed":   allowed,
			},
		}
	}
)

// QueryNumber extracts and validates an unsigned integer value out of the query parameters of the given request
func QueryNumber(request *http.Request, key string, required bool, def, min, max uint64) (uint64, *schema.Error) {
	value := request.URL.Query().Get(key)
	if value == "" {
		if required {
			return 0, errQueryParameterMissing(key)
		}
		return def, nil
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errQueryParameterInvalidType(key, value, "number")
	}

	if parsed < min || parsed > max {
		return 0, errQueryParameterNumberOutOfRange(key, parsed, min, max)
	}

	return parsed, nil
}

// QueryChoice extracts a query parameter that has to be one of the allowed values.
// The first allowed value is used if the parameter is absent.
func QueryChoice(request *http.Request, key string, allowed ...string) (string, *schema.Error) {
	value := request.URL.Query().Get(key)
	if value == "" {
		return allowed[0], nil
	}
	for _, candidate := range allowed {
		if value == candidate {
			return value, nil
		}
	}
	return "", errQueryParameterNotAllowed(key, value, allowed)
}

// QueryList extracts a comma-separated list out of the query parameters of the given request.
// Empty items are dropped, so an absent or empty parameter results in an empty list.
func QueryList(request *http.Request, key string) []string {
	items := []string{}
	for _, raw := range request.URL.Query()[key] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
