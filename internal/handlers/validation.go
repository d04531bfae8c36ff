package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/realty-dashboard-api/internal/errors"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
)

func init() {
	// Report validation failures under the JSON field name the client sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	}
}

// bindJSON binds the request body into req. On failure it writes a 400 response
// listing every invalid field and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.ValidationFailed(c, "Invalid request body", fieldErrors(err))
		return false
	}
	return true
}

func fieldErrors(err error) []dto.FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]dto.FieldError, len(validationErrs))
		for i, fe := range validationErrs {
			fields[i] = dto.FieldError{Field: fe.Field(), Message: validationMessage(fe)}
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []dto.FieldError{{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}}
	}

	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return []dto.FieldError{{Field: "body", Message: "dates must be RFC 3339 timestamps"}}
	}

	if errors.Is(err, io.EOF) {
		return []dto.FieldError{{Field: "body", Message: "request body is required"}}
	}

	return []dto.FieldError{{Field: "body", Message: "malformed JSON"}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// respondValidation writes a 400 for a service-level validation error and reports
// whether err was one.
func respondValidation(c *gin.Context, err error) bool {
	var validationErr *services.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}
	apierrors.ValidationFailed(c, "Invalid request body", validationErr.Fields)
	return true
}
