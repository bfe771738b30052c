package httpx

import (
	"net/url"
	"strings"
	"testing"

	"leadhub-backend/internal/validation"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"x","extra":true}`), &dst)
	require.Error(t, err)
}

func TestDecodeJSONRejectsTrailingContent(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"x"}{"name":"y"}`), &dst)
	require.Error(t, err)

	err = DecodeJSON(strings.NewReader(`{"name":"x"}`), &dst)
	require.NoError(t, err)
	require.Equal(t, "x", dst.Name)
}

func TestFieldErrorsReportAllViolations(t *testing.T) {
	type form struct {
		Email string   `json:"email" validate:"required,email"`
		Picks []string `json:"picks" validate:"required,min=1"`
	}
	v := validation.New(nil)
	err := v.Struct(form{Email: "not-an-email"})
	require.Error(t, err)

	fieldErrs := FieldErrors(v.ValidationErrors(err))
	require.Len(t, fieldErrs, 2)

	byPath := map[string]string{}
	for _, fe := range fieldErrs {
		byPath[fe.Path] = fe.Msg
	}
	require.Equal(t, "must be a valid email address", byPath["email"])
	require.Equal(t, "is required", byPath["picks"])
}

func TestFieldErrorsSliceMinMessage(t *testing.T) {
	type form struct {
		Picks []string `json:"picks" validate:"min=2"`
	}
	v := validation.New(nil)
	err := v.Struct(form{Picks: []string{"one"}})
	require.Error(t, err)

	fieldErrs := FieldErrors(v.ValidationErrors(err))
	require.Len(t, fieldErrs, 1)
	require.Equal(t, "must contain at least 2 item(s)", fieldErrs[0].Msg)
}

func TestParsePageLimitDefaults(t *testing.T) {
	page, limit, err := ParsePageLimit(url.Values{}, 10, 100)
	require.NoError(t, err)
	require.Equal(t, int64(1), page)
	require.Equal(t, int64(10), limit)
}

func TestParsePageLimitCapsAtMax(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("limit", "500")
	page, limit, err := ParsePageLimit(values, 10, 100)
	require.NoError(t, err)
	require.Equal(t, int64(3), page)
	require.Equal(t, int64(100), limit)
}

func TestParsePageLimitRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"0", "-1", "abc"} {
		values := url.Values{}
		values.Set("page", bad)
		_, _, err := ParsePageLimit(values, 10, 100)
		require.Error(t, err, "page=%s", bad)

		values = url.Values{}
		values.Set("limit", bad)
		_, _, err = ParsePageLimit(values, 10, 100)
		require.Error(t, err, "limit=%s", bad)
	}
}
