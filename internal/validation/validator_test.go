package validation

import "testing"

type sampleForm struct {
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone" validate:"required,phone"`
	Style    string   `json:"style" validate:"required,enum=style"`
	Picks    []string `json:"picks" validate:"required,min=1,dive,enum=pick"`
	Optional string   `json:"optional" validate:"omitempty,enum=style"`
}

func testVocab() map[string][]string {
	return map[string][]string{
		"style": {"Modern", "Custom Style"},
		"pick":  {"Logo Pack (PNG, JPG, SVG)", "Stationery Set"},
	}
}

func validForm() sampleForm {
	return sampleForm{
		Email: "lead@example.com",
		Phone: "+1 555 010 0000",
		Style: "Modern",
		Picks: []string{"Logo Pack (PNG, JPG, SVG)"},
	}
}

func TestValidFormPasses(t *testing.T) {
	v := New(testVocab())
	if err := v.Struct(validForm()); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestEnumAcceptsValuesWithCommas(t *testing.T) {
	v := New(testVocab())
	form := validForm()
	form.Style = "Custom Style"
	form.Picks = []string{"Logo Pack (PNG, JPG, SVG)", "Stationery Set"}
	if err := v.Struct(form); err != nil {
		t.Fatalf("comma-bearing enum values should pass, got %v", err)
	}
}

func TestEnumRejectsUnknownValue(t *testing.T) {
	v := New(testVocab())
	form := validForm()
	form.Style = "Brutalist"
	err := v.Struct(form)
	if err == nil {
		t.Fatal("unknown enum value should fail")
	}
	errs := v.ValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("expected one violation, got %d", len(errs))
	}
	if errs[0].Field() != "style" {
		t.Fatalf("violation should report the json name, got %q", errs[0].Field())
	}
}

func TestEnumRejectsUnknownValueInsideSlice(t *testing.T) {
	v := New(testVocab())
	form := validForm()
	form.Picks = []string{"Stationery Set", "Mug"}
	if err := v.Struct(form); err == nil {
		t.Fatal("unknown slice member should fail")
	}
}

func TestOptionalEnumAllowsEmpty(t *testing.T) {
	v := New(testVocab())
	form := validForm()
	form.Optional = ""
	if err := v.Struct(form); err != nil {
		t.Fatalf("empty optional enum should pass, got %v", err)
	}
	form.Optional = "nope"
	if err := v.Struct(form); err == nil {
		t.Fatal("invalid optional enum should fail")
	}
}

func TestPhoneValidation(t *testing.T) {
	v := New(testVocab())

	bad := []string{"abc", "123", "++1 555 010 0000", "555 010 000x"}
	for _, phone := range bad {
		form := validForm()
		form.Phone = phone
		if err := v.Struct(form); err == nil {
			t.Fatalf("phone %q should fail", phone)
		}
	}

	good := []string{"+243 999 000 111", "0155501000", "+1 (555) 010-0000"}
	for _, phone := range good {
		form := validForm()
		form.Phone = phone
		if err := v.Struct(form); err != nil {
			t.Fatalf("phone %q should pass, got %v", phone, err)
		}
	}
}
