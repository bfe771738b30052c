package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"leadhub-backend/internal/transport"

	"github.com/go-playground/validator/v10"
)

func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// FieldErrors flattens validator violations into the response shape. All
// violations from one validation pass are reported, not just the first.
func FieldErrors(errs validator.ValidationErrors) []transport.FieldError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]transport.FieldError, 0, len(errs))
	for _, err := range errs {
		out = append(out, transport.FieldError{
			Path: err.Field(),
			Msg:  fieldMessage(err),
		})
	}
	return out
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "url":
		return "must be a valid URL"
	case "min":
		if err.Kind().String() == "slice" {
			return fmt.Sprintf("must contain at least %s item(s)", err.Param())
		}
		return fmt.Sprintf("must be at least %s characters", err.Param())
	case "max":
		if err.Kind().String() == "slice" {
			return fmt.Sprintf("must contain at most %s item(s)", err.Param())
		}
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", err.Param())
	case "numeric":
		return "must contain only digits"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(err.Param(), "'", ""))
	case "enum":
		return "is not an allowed value"
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}

// ParsePageLimit reads 1-based page and limit query parameters with
// defaults, capping limit at maxLimit.
func ParsePageLimit(values url.Values, defaultLimit, maxLimit int64) (int64, int64, error) {
	page := int64(1)
	limit := defaultLimit

	rawPage := strings.TrimSpace(values.Get("page"))
	if rawPage != "" {
		parsed, err := strconv.ParseInt(rawPage, 10, 64)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("invalid page")
		}
		page = parsed
	}

	rawLimit := strings.TrimSpace(values.Get("limit"))
	if rawLimit != "" {
		parsed, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || parsed <= 0 {
			return 0, 0, errors.New("invalid limit")
		}
		limit = parsed
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit, nil
}
