package validator

import (
	"errors"
	"testing"
)

type loginInput struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type decisionInput struct {
	Status  string `form:"status" validate:"required,booking_decision"`
	Current string `form:"current" validate:"required,booking_status"`
}

func TestValidateLoginInput(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(loginInput{Email: "user@example.com", Password: "pw"}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	err := v.Validate(loginInput{Email: "not-an-email", Password: ""})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var ve ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}

	msgs := ve.Format()
	if msgs["email"] == "" {
		t.Fatalf("expected email message, got %v", msgs)
	}
	if msgs["password"] != "password is required" {
		t.Fatalf("password message = %q", msgs["password"])
	}
}

func TestBookingDecisionTag(t *testing.T) {
	v := NewValidator()

	for _, ok := range []string{"confirmed", "cancelled"} {
		if err := v.Validate(decisionInput{Status: ok, Current: "pending"}); err != nil {
			t.Fatalf("decision %q rejected: %v", ok, err)
		}
	}

	// pending is a status, not a decision
	if err := v.Validate(decisionInput{Status: "pending", Current: "pending"}); err == nil {
		t.Fatalf("expected pending to be rejected as a decision")
	}
	if err := v.Validate(decisionInput{Status: "confirmed", Current: "approved"}); err == nil {
		t.Fatalf("expected unknown current status to be rejected")
	}
}
