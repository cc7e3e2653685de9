package errors

import (
	"net/http"
	"sync"

	"github.com/drcity/portal/api/internal/logger"
	"github.com/drcity/portal/api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Error code constants for standardized error responses
const (
	ErrNotFound           = "NOT_FOUND"
	ErrBadRequest         = "BAD_REQUEST"
	ErrInternalServer     = "INTERNAL_SERVER_ERROR"
	ErrValidation         = "VALIDATION_ERROR"
	ErrServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrConflict           = "CONFLICT"
)

// ErrorResponse is the top-level error response structure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

var (
	translatorMu sync.RWMutex
	translator   ut.Translator
)

// RegisterTranslations installs the English validator translations on v and
// makes ValidationError render translated messages. Without a registered
// translator the built-in tag formatter is used.
func RegisterTranslations(v *validator.Validate) error {
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	translatorMu.Lock()
	translator = trans
	translatorMu.Unlock()
	return nil
}

func currentTranslator() ut.Translator {
	translatorMu.RLock()
	defer translatorMu.RUnlock()
	return translator
}

func respond(c *gin.Context, status int, detail ErrorDetail) {
	detail.RequestID = middleware.GetRequestID(c)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: detail})
}

func requestFields(c *gin.Context, message string) logger.Fields {
	return logger.Fields{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	}
}

// NotFound returns a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Resource not found", requestFields(c, message))
	}

	respond(c, http.StatusNotFound, ErrorDetail{
		Code:    ErrNotFound,
		Message: message,
	})
}

// Conflict returns a 409 response for an operation the current state does not allow.
func Conflict(c *gin.Context, message string, details map[string]interface{}) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c, message)
		if details != nil {
			fields["details"] = details
		}
		log.Warn("Conflicting request", fields)
	}

	respond(c, http.StatusConflict, ErrorDetail{
		Code:    ErrConflict,
		Message: message,
		Details: details,
	})
}

// BadRequest returns a 400 Bad Request error response with optional details.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c, message)
		if details != nil {
			fields["details"] = details
		}
		log.Warn("Bad request", fields)
	}

	respond(c, http.StatusBadRequest, ErrorDetail{
		Code:    ErrBadRequest,
		Message: message,
		Details: details,
	})
}

// ServiceUnavailable returns a 503 response, used while the catalog is not loaded.
func ServiceUnavailable(c *gin.Context, message string, err error) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("Service unavailable", err, requestFields(c, message))
	}

	respond(c, http.StatusServiceUnavailable, ErrorDetail{
		Code:    ErrServiceUnavailable,
		Message: message,
	})
}

// InternalServerError returns a 500 Internal Server Error response.
// The error itself is logged but never sent to the client.
func InternalServerError(c *gin.Context, message string, err error) {
	if log := middleware.GetLogger(c); log != nil {
		fields := requestFields(c, message)
		fields["method"] = c.Request.Method
		log.Error("Internal server error", err, fields)
	}

	respond(c, http.StatusInternalServerError, ErrorDetail{
		Code:    ErrInternalServer,
		Message: message,
	})
}

// ValidationError returns a 400 Bad Request error response with field-specific validation errors.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	trans := currentTranslator()

	details := make(map[string]interface{}, len(validationErrors))
	for _, err := range validationErrors {
		details[err.Field()] = fieldMessage(err, trans)
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Validation error", logger.Fields{
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
			"fields":     details,
		})
	}

	respond(c, http.StatusBadRequest, ErrorDetail{
		Code:    ErrValidation,
		Message: "Validation failed for one or more fields",
		Details: details,
	})
}

// fieldMessage prefers the registered translation and falls back to the tag formatter.
func fieldMessage(err validator.FieldError, trans ut.Translator) string {
	if trans != nil {
		// Translate returns the raw error text when no translation exists for the tag.
		if msg := err.Translate(trans); msg != "" && msg != err.Error() {
			return msg
		}
	}
	return formatValidationError(err)
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "oneof":
		return "Must be one of: " + err.Param()
	case "section":
		return "Must be one of: building flat units gallery amenities enquiry members"
	case "capturetab":
		return "Must be one of: captureClick captureCamera"
	case "uuid":
		return "Must be a valid UUID"
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
