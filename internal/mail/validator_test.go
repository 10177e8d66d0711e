package mail

import (
	"context"
	"testing"
)

func TestCheckerRejectsBadFormat(t *testing.T) {
	checker := &Checker{}

	for _, email := range []string{"", "not-an-email", "@example.com", "spaces in@example.com"} {
		res, err := checker.Validate(context.Background(), email)
		if err != nil {
			t.Fatalf("validate(%q) returned error: %v", email, err)
		}
		if res.Valid {
			t.Fatalf("expected %q to be rejected", email)
		}
		if res.Reason != ReasonFormat {
			t.Fatalf("expected format reason for %q, got %q", email, res.Reason)
		}
	}
}

func TestValidatorFuncAdapter(t *testing.T) {
	var seen string
	fn := ValidatorFunc(func(_ context.Context, email string) (Result, error) {
		seen = email
		return Result{Valid: true}, nil
	})

	res, err := fn.Validate(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid verdict")
	}
	if seen != "ada@example.com" {
		t.Fatalf("adapter did not forward the email, saw %q", seen)
	}
}
