package validation

import (
	"mime/multipart"
	"testing"
)

func TestFieldRules(t *testing.T) {
	tests := []struct {
		name       string
		validate   func(v *Validator)
		wantField  string
		wantErrors int
	}{
		{
			name:       "required empty",
			validate:   func(v *Validator) { v.Required("name", "") },
			wantField:  "name",
			wantErrors: 1,
		},
		{
			name:       "required present",
			validate:   func(v *Validator) { v.Required("name", "Ann") },
			wantErrors: 0,
		},
		{
			name:       "max length exceeded",
			validate:   func(v *Validator) { v.MaxLen("name", "abcdef", 5) },
			wantField:  "name",
			wantErrors: 1,
		},
		{
			name:       "max length skips empty",
			validate:   func(v *Validator) { v.MaxLen("name", "", 5) },
			wantErrors: 0,
		},
		{
			name:       "min length too short",
			validate:   func(v *Validator) { v.MinLen("password", "abc", 6) },
			wantField:  "password",
			wantErrors: 1,
		},
		{
			name:       "min length ok",
			validate:   func(v *Validator) { v.MinLen("password", "abcdef", 6) },
			wantErrors: 0,
		},
		{
			name:       "email malformed",
			validate:   func(v *Validator) { v.Email("email", "not-an-email") },
			wantField:  "email",
			wantErrors: 1,
		},
		{
			name:       "email well-formed",
			validate:   func(v *Validator) { v.Email("email", "ann@x.com") },
			wantErrors: 0,
		},
		{
			name:       "email skips empty",
			validate:   func(v *Validator) { v.Email("email", "") },
			wantErrors: 0,
		},
		{
			name:       "confirmation mismatch",
			validate:   func(v *Validator) { v.Confirmed("password", "abcdef", "abcxyz") },
			wantField:  "password",
			wantErrors: 1,
		},
		{
			name:       "confirmation match",
			validate:   func(v *Validator) { v.Confirmed("password", "abcdef", "abcdef") },
			wantErrors: 0,
		},
		{
			name:       "file missing",
			validate:   func(v *Validator) { v.File("photo", nil) },
			wantField:  "photo",
			wantErrors: 1,
		},
		{
			name: "file too large",
			validate: func(v *Validator) {
				v.FileMax("photo", &multipart.FileHeader{Size: 2521 * 1024}, 2520)
			},
			wantField:  "photo",
			wantErrors: 1,
		},
		{
			name: "file within limit",
			validate: func(v *Validator) {
				v.FileMax("photo", &multipart.FileHeader{Size: 2520 * 1024}, 2520)
			},
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			tt.validate(v)

			if tt.wantErrors == 0 {
				if v.Fails() {
					t.Fatalf("expected no errors, got %v", v.Errors())
				}
				return
			}

			if !v.Fails() {
				t.Fatal("expected validation to fail")
			}
			if got := len(v.Errors()[tt.wantField]); got != tt.wantErrors {
				t.Fatalf("expected %d errors on %q, got %v", tt.wantErrors, tt.wantField, v.Errors())
			}
		})
	}
}

func TestErrorsAccumulate(t *testing.T) {
	v := New()
	v.Required("name", "")
	v.Required("email", "")
	v.MinLen("password", "abc", 6)
	v.Confirmed("password", "abc", "xyz")

	if len(v.Errors()) != 3 {
		t.Fatalf("expected errors on 3 fields, got %v", v.Errors())
	}
	if len(v.Errors()["password"]) != 2 {
		t.Fatalf("expected 2 password errors, got %v", v.Errors()["password"])
	}
}
