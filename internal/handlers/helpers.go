package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "budget/internal/errors"
	"budget/internal/logger"
	"budget/internal/uuid"
	appvalidator "budget/internal/validator"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// bindPayload decodes the JSON body into req and runs binding validation.
// An empty body is treated as an empty object: every field is missing.
func bindPayload(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		return binding.Validator.ValidateStruct(req)
	}
	return err
}

// bindingErrors converts a decoding or validation failure into per-field
// detail keyed by JSON field name. Failures that cannot be attributed to a
// field are reported under "body".
func bindingErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			fields[fe.Field()] = fmt.Sprintf("value %v failed the '%s' rule", fe.Value(), fe.Tag())
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		fields[field] = fmt.Sprintf("cannot cast JSON %s to %s", typeErr.Value, typeErr.Type)
	case errors.As(err, &syntaxErr):
		fields["body"] = "malformed JSON: " + syntaxErr.Error()
	default:
		fields["body"] = err.Error()
	}
	return fields
}

// validationError builds the 400 returned when a payload does not fit the schema.
func validationError(message string, err error) *apperrors.AppError {
	return apperrors.WithFields(apperrors.ErrValidation, message, bindingErrors(err))
}

// parsePathID reads a UUID path parameter.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// DateInput is a request date: a JSON string (RFC 3339 or YYYY-MM-DD) or a
// JSON number of milliseconds since the Unix epoch.
type DateInput string

// UnmarshalJSON accepts a string or an integer number.
func (d *DateInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = DateInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if _, err := n.Int64(); err == nil {
			*d = DateInput(n.String())
			return nil
		}
	}
	return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(""), Field: "date"}
}

// parseOptionalDate parses a date that already passed the flexdate rule.
func parseOptionalDate(d *DateInput) *time.Time {
	if d == nil || *d == "" {
		return nil
	}
	t, err := appvalidator.ParseDate(string(*d))
	if err != nil {
		return nil
	}
	return &t
}

// optionalRef normalizes a reference: absent and empty both mean null.
func optionalRef(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message and field detail.
// Otherwise it logs the unexpected error and returns a generic internal error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	})
}
