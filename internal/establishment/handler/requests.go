package handler

import (
	"strconv"

	"github.com/asaskevich/govalidator"

	"edubase/internal/establishment/domain"
	"edubase/internal/establishment/service"
	dErrors "edubase/pkg/domain-errors"
)

// RegisterEstablishmentRequest is the HTTP request body for
// POST /establishments.
type RegisterEstablishmentRequest struct {
	URN             int    `json:"urn"`
	Name            string `json:"name"`
	WebsiteURL      string `json:"website_url"`
	TelephoneNumber string `json:"telephone_number"`
}

// Validate caps field sizes before the body reaches the domain.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
//
// Required-field and format rules live in the domain constructors so their
// messages stay authoritative; only oversized payloads are rejected here,
// which is why every minimum is zero.
func (r *RegisterEstablishmentRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if !govalidator.StringLength(r.Name, "0", "255") {
		return dErrors.New(dErrors.CodeValidation, "name must be at most 255 characters")
	}
	if !govalidator.StringLength(r.WebsiteURL, "0", "2048") {
		return dErrors.New(dErrors.CodeValidation, "website_url must be at most 2048 characters")
	}
	if !govalidator.StringLength(r.TelephoneNumber, "0", "32") {
		return dErrors.New(dErrors.CodeValidation, "telephone_number must be at most 32 characters")
	}
	return nil
}

// Input converts the request body into the service input, fields untouched.
func (r *RegisterEstablishmentRequest) Input() service.RegisterInput {
	return service.RegisterInput{
		URN:             r.URN,
		Name:            r.Name,
		WebsiteURL:      r.WebsiteURL,
		TelephoneNumber: r.TelephoneNumber,
	}
}

// parseURNParam builds the domain identifier from the {urn} path parameter.
// The length check keeps leading-zero forms like "0123456" from aliasing a
// six-digit number once parsed.
func parseURNParam(raw string) (domain.URN, error) {
	if len(raw) != 6 || !govalidator.IsNumeric(raw) {
		return domain.URN{}, domain.ErrInvalidURN
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return domain.URN{}, domain.ErrInvalidURN
	}
	return domain.NewURN(value)
}
