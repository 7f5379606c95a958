package serverutils

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	MaxTurns int    `validate:"omitempty,min=1,max=50"`
}

func TestValidateRequestValid(t *testing.T) {
	req := sampleRequest{Email: "user@example.com", MaxTurns: 10}
	if err := ValidateRequest(req); err != nil {
		t.Errorf("ValidateRequest() = %v, want nil", err)
	}
}

func TestValidateRequestZeroOmitemptySkipped(t *testing.T) {
	req := sampleRequest{Email: "user@example.com"}
	if err := ValidateRequest(req); err != nil {
		t.Errorf("ValidateRequest() = %v, want nil (MaxTurns is omitempty)", err)
	}
}

func TestValidateRequestCollectsFailures(t *testing.T) {
	req := sampleRequest{Email: "not-an-email", MaxTurns: 99}
	err := ValidateRequest(req)
	if err == nil {
		t.Fatal("ValidateRequest() = nil, want error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "Email failed on 'email'") {
		t.Errorf("error %q missing Email failure", msg)
	}
	if !strings.Contains(msg, "MaxTurns failed on 'max'") {
		t.Errorf("error %q missing MaxTurns failure", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("error %q should join failures with '; '", msg)
	}
}
