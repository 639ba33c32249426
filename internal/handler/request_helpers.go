package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
)

type clientIPKey struct{}

// WithClientIP stores the resolved client address on the context
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIPFromContext returns the client address set by the server middleware.
// It falls back to an empty string when none was set.
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	title := GetOptionalQueryParam(r, "scenario_title", "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// decodeJSONObject reads the body and decodes it into dst. Anything that is
// not a JSON object counts as missing fields, while a well-formed object
// whose members have the wrong JSON type is an invalid data format.
// A body over the size limit surfaces as *http.MaxBytesError.
func decodeJSONObject(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return fmt.Errorf("%w: read body: %v", domain.ErrMissingRankingFields, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: body is not a JSON object", domain.ErrMissingRankingFields)
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: field %q: %v", domain.ErrInvalidDataFormat, typeErr.Field, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrMissingRankingFields, err)
	}

	return nil
}

// DecodeAndValidateRequest decodes a JSON object body into req and checks its
// validation tags. On failure the error response has already been written
// and the handler should return.
//
// Example usage:
//
//	var req RankingRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Submit ranking"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := decodeJSONObject(r, req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		status, message := mapServiceError(err)
		respondError(w, status, message)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgClientError, "action", actionName, "missing", FailedFields(err))
		respondError(w, http.StatusBadRequest, ErrMsgMissingRankingFields)
		return fmt.Errorf("%w: %v", domain.ErrMissingRankingFields, err)
	}

	log.Debug(actionName+" request decoded")
	return nil
}

// jsonFieldName reports struct fields by their JSON name in validation errors
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
