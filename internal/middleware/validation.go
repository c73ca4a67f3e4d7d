package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Field length limits.
const (
	MaxChannelRefLen = 200
	MaxTopicLen      = 500
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateStruct checks the validate tags of a request model. It returns a
// message for the first failing field, or "" when the value is valid.
func ValidateStruct(v any) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ValidateChannelRef checks a channel ID, URL or handle.
func ValidateChannelRef(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "channelId is required"
	}
	if len(ref) > MaxChannelRefLen {
		return "", "channelId must be at most 200 characters"
	}
	if strings.ContainsFunc(ref, unicode.IsControl) {
		return "", "channelId contains invalid characters"
	}
	return ref, ""
}

// ValidateScriptID checks that a history ID is a UUID.
func ValidateScriptID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "id is required"
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", "id must be a UUID"
	}
	return parsed.String(), ""
}
