package mail

import (
	"context"

	"github.com/badoux/checkmail"
)

// Rejection reasons. Only ReasonSMTP is contractual; callers treat
// every other reason the same way.
const (
	ReasonFormat = "format"
	ReasonMX     = "mx"
	ReasonSMTP   = "smtp"
)

// Result is the validator verdict. Reason is only meaningful when Valid
// is false.
type Result struct {
	Valid  bool
	Reason string
}

type Validator interface {
	Validate(ctx context.Context, email string) (Result, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, email string) (Result, error)

func (f ValidatorFunc) Validate(ctx context.Context, email string) (Result, error) {
	return f(ctx, email)
}

// Checker validates deliverability with checkmail: format first, then
// MX records, then an SMTP-level probe when a HELO host and sender
// address are configured.
type Checker struct {
	// HeloHost and From configure the SMTP probe. When either is empty
	// the probe is skipped and validation stops at the MX check.
	HeloHost string
	From     string
}

func (c *Checker) Validate(_ context.Context, email string) (Result, error) {
	if err := checkmail.ValidateFormat(email); err != nil {
		return Result{Reason: ReasonFormat}, nil
	}

	if err := checkmail.ValidateMX(email); err != nil {
		return Result{Reason: ReasonMX}, nil
	}

	if c.HeloHost != "" && c.From != "" {
		if err := checkmail.ValidateHostAndUser(c.HeloHost, c.From, email); err != nil {
			return Result{Reason: ReasonSMTP}, nil
		}
	}

	return Result{Valid: true}, nil
}
