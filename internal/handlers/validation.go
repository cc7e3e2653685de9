package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	apierrors "github.com/drcity/portal/api/internal/errors"
	"github.com/drcity/portal/api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterValidators configures gin's validator for the request types in this
// package: field names are reported by their JSON or form names, the section
// and capturetab tags are installed, and messages are translated to English.
// It is safe to call more than once.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(fieldName)

		if err := v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
			return models.Section(fl.Field().String()).Valid()
		}); err != nil {
			validatorsErr = err
			return
		}
		if err := v.RegisterValidation("capturetab", func(fl validator.FieldLevel) bool {
			_, err := models.ParseCaptureTab(fl.Field().String())
			return err == nil
		}); err != nil {
			validatorsErr = err
			return
		}

		validatorsErr = apierrors.RegisterTranslations(v)
	})
	return validatorsErr
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// bindJSON binds the request body into req and writes the error response on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return false
	}
	return true
}

// bindQuery binds query parameters into req and writes the error response on failure.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return false
	}
	return true
}

// bindURI binds path parameters into req and writes the error response on failure.
func bindURI(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindUri(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid path parameters", nil)
		return false
	}
	return true
}
