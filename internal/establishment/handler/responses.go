package handler

import (
	"edubase/internal/establishment/domain"
)

// EstablishmentResponse is the HTTP representation of a registered
// establishment.
type EstablishmentResponse struct {
	URN             int    `json:"urn"`
	Name            string `json:"name"`
	WebsiteURL      string `json:"website_url"`
	TelephoneNumber string `json:"telephone_number"`
}

// FromEstablishment converts a domain establishment to an HTTP response.
func FromEstablishment(est domain.Establishment) EstablishmentResponse {
	details := est.Details()
	return EstablishmentResponse{
		URN:             est.ID().Value(),
		Name:            details.Name(),
		WebsiteURL:      details.WebsiteURL(),
		TelephoneNumber: details.TelephoneNumber(),
	}
}

// EstablishmentsListResponse wraps a collection of establishments.
type EstablishmentsListResponse struct {
	Establishments []EstablishmentResponse `json:"establishments"`
	Total          int                     `json:"total"`
}

// FromEstablishments converts domain establishments to the list response.
// The slice is never nil so an empty register serialises as [].
func FromEstablishments(ests []domain.Establishment) EstablishmentsListResponse {
	out := make([]EstablishmentResponse, 0, len(ests))
	for _, est := range ests {
		out = append(out, FromEstablishment(est))
	}
	return EstablishmentsListResponse{Establishments: out, Total: len(out)}
}
