package handler

import (
	"errors"
	"slices"
	"testing"
)

func validationMessages(t *testing.T, v *echoValidator, i any) []string {
	t.Helper()
	err := v.Validate(i)
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return ve.Messages
}

func TestValidator_SignupFieldMessages(t *testing.T) {
	v := NewValidator()

	msgs := validationMessages(t, v, &signupRequest{})
	for _, want := range []string{
		"username is required",
		"email is required",
		"password is required",
		"firstName is required",
		"lastName is required",
		"role is required",
	} {
		if !slices.Contains(msgs, want) {
			t.Errorf("missing message %q in %v", want, msgs)
		}
	}
}

func TestValidator_UsernameConstraints(t *testing.T) {
	v := NewValidator()
	base := signupRequest{
		Email:     "a@example.com",
		Password:  "secret1",
		FirstName: "A",
		LastName:  "B",
		Role:      "learner",
	}

	req := base
	req.Username = "ab"
	if msgs := validationMessages(t, v, &req); !slices.Contains(msgs, "username must be at least 3 characters") {
		t.Errorf("expected min-length message, got %v", msgs)
	}

	req = base
	req.Username = "user 2"
	if msgs := validationMessages(t, v, &req); !slices.Contains(msgs, "Username cannot contain whitespaces") {
		t.Errorf("expected whitespace message, got %v", msgs)
	}

	req = base
	req.Username = "Johnny"
	if err := v.Validate(&req); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidator_RoleEnum(t *testing.T) {
	v := NewValidator()
	req := signupRequest{
		Username:  "Johnny",
		Email:     "a@example.com",
		Password:  "secret1",
		FirstName: "A",
		LastName:  "B",
		Role:      "superuser",
	}
	if msgs := validationMessages(t, v, &req); !slices.Contains(msgs, "role must be one of: admin learner employee") {
		t.Errorf("expected role enum message, got %v", msgs)
	}
}

func TestValidator_LoginEmail(t *testing.T) {
	v := NewValidator()
	req := loginRequest{Email: "not-an-email", Password: "x"}
	if msgs := validationMessages(t, v, &req); !slices.Contains(msgs, "email must be a valid email") {
		t.Errorf("expected email message, got %v", msgs)
	}
}
