package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "hyperflow/internal/platform/errors"
)

type payload struct {
	Slug string `json:"slug" validate:"required,slug,max=64"`
	Name string `json:"name" validate:"required,min=2"`
}

func req(method, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, "/", nil)
	} else {
		r = httptest.NewRequest(method, "/", strings.NewReader(body))
	}
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestParseJSONSuccess(t *testing.T) {
	got, err := ParseJSON[payload](req(http.MethodPost, `{"slug":"alpha-1","name":"Alpha"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Slug != "alpha-1" || got.Name != "Alpha" {
		t.Fatalf("decoded mismatch: %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	// POST with no body is a JSON error
	_, err := ParseJSON[payload](req(http.MethodPost, ""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty POST body: got %v, want JSON error", err)
	}

	// GET/DELETE with no body decode to the zero value
	for _, m := range []string{http.MethodGet, http.MethodDelete} {
		got, err := ParseJSON[payload](req(m, ""))
		if err != nil {
			t.Fatalf("%s empty body: unexpected error %v", m, err)
		}
		if got != (payload{}) {
			t.Fatalf("%s empty body: expected zero value, got %+v", m, got)
		}
	}
}

func TestParseJSONAllowEmptyBody(t *testing.T) {
	got, err := ParseJSON[payload](req(http.MethodPost, ""), JSONOptions{
		MaxBytes:       1 << 20,
		AllowEmptyBody: true,
	})
	if err != nil {
		t.Fatalf("AllowEmptyBody: unexpected error %v", err)
	}
	if got != (payload{}) {
		t.Fatalf("AllowEmptyBody: expected zero value, got %+v", got)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON[payload](req(http.MethodPost, `{"slug":`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("malformed JSON: got %v, want JSON error", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	body := `{"slug":"alpha","name":"Alpha","bogus":1}`

	// default: unknown fields rejected
	_, err := ParseJSON[payload](req(http.MethodPost, body))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field: got %v, want JSON error", err)
	}

	// opt-out accepts them
	got, err := ParseJSON[payload](req(http.MethodPost, body), JSONOptions{
		MaxBytes:        1 << 20,
		DisallowUnknown: false,
	})
	if err != nil {
		t.Fatalf("DisallowUnknown=false: unexpected error %v", err)
	}
	if got.Slug != "alpha" {
		t.Fatalf("DisallowUnknown=false: decoded mismatch %+v", got)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	_, err := ParseJSON[payload](req(http.MethodPost, `{"slug":"alpha","name":"Alpha"} {"x":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data: got %v, want JSON error", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	// missing name
	_, err := ParseJSON[payload](req(http.MethodPost, `{"slug":"alpha"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("missing field: got %v, want validation error", err)
	}
	e, ok := perr.As(err)
	if !ok || e.Field() != "name" {
		t.Fatalf("validation error should name the json field, got %+v", e)
	}

	// slug tag rejects uppercase and spaces
	for _, bad := range []string{"Alpha", "has space", "ünï", ""} {
		_, err := ParseJSON[payload](req(http.MethodPost, `{"slug":"`+bad+`","name":"Alpha"}`))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("slug %q: got %v, want validation error", bad, err)
		}
		if e, ok := perr.As(err); !ok || e.Field() != "slug" {
			t.Fatalf("slug %q: field = %+v, want slug", bad, e)
		}
	}

	// slug tag accepts lowercase, digits, - and _
	got, err := ParseJSON[payload](req(http.MethodPost, `{"slug":"proj_1-a","name":"Alpha"}`))
	if err != nil {
		t.Fatalf("valid slug: unexpected error %v", err)
	}
	if got.Slug != "proj_1-a" {
		t.Fatalf("valid slug: decoded mismatch %+v", got)
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil error should give empty field/message")
	}

	var bad payload
	err := Get().Validator.Struct(bad)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	f, m := ValidationFieldAndMessage(err)
	if f != "slug" {
		t.Fatalf("first failing field = %q, want slug", f)
	}
	if m == "" {
		t.Fatalf("expected a translated message")
	}
}
