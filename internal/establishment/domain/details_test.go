package domain_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"edubase/internal/establishment/domain"
	dErrors "edubase/pkg/domain-errors"
)

type DetailsSuite struct {
	suite.Suite
}

func TestDetailsSuite(t *testing.T) {
	suite.Run(t, new(DetailsSuite))
}

func (s *DetailsSuite) TestConstruction() {
	s.Run("accepts valid fields", func() {
		d, err := domain.NewDetails("St Mary's Primary", "https://st-marys.sch.uk", "07123456789")
		s.Require().NoError(err)
		s.Equal("St Mary's Primary", d.Name())
		s.Equal("https://st-marys.sch.uk", d.WebsiteURL())
		s.Equal("07123456789", d.TelephoneNumber())
	})

	s.Run("stores values exactly as supplied", func() {
		d, err := domain.NewDetails("  Oakfield Academy  ", " https://oakfield.sch.uk", "07123456789")
		s.Require().NoError(err)
		s.Equal("  Oakfield Academy  ", d.Name())
		s.Equal(" https://oakfield.sch.uk", d.WebsiteURL())
	})

	s.Run("failure carries validation code", func() {
		_, err := domain.NewDetails("", "", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *DetailsSuite) TestValidationOrder() {
	tests := []struct {
		name      string
		inName    string
		inWebsite string
		inPhone   string
		wantErr   error
		wantMsg   string
	}{
		{
			name:    "blank name reported first",
			inName:  "",
			wantErr: domain.ErrNameRequired,
			wantMsg: "School name is required.",
		},
		{
			name:    "whitespace-only name is blank",
			inName:  "   ",
			wantErr: domain.ErrNameRequired,
			wantMsg: "School name is required.",
		},
		{
			name:    "blank website reported second",
			inName:  "St Mary's",
			wantErr: domain.ErrWebsiteURLRequired,
			wantMsg: "Website URL is required.",
		},
		{
			name:      "blank telephone reported third",
			inName:    "St Mary's",
			inWebsite: "https://st-marys.sch.uk",
			wantErr:   domain.ErrTelephoneRequired,
			wantMsg:   "Telephone number is required.",
		},
		{
			name:      "malformed telephone reported last",
			inName:    "St Mary's",
			inWebsite: "https://st-marys.sch.uk",
			inPhone:   "123456789",
			wantErr:   domain.ErrTelephoneInvalid,
			wantMsg:   "Telephone number must be a valid UK number.",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := domain.NewDetails(tt.inName, tt.inWebsite, tt.inPhone)
			s.Require().Error(err)
			s.ErrorIs(err, tt.wantErr)
			s.EqualError(err, tt.wantMsg)
		})
	}
}

func (s *DetailsSuite) TestTelephoneValidation() {
	valid := []string{
		"07123456789",
		"01234567890",
		"+447123456789",
		"+44 7123456789",
	}
	for _, phone := range valid {
		s.Run("accepts "+phone, func() {
			_, err := domain.NewDetails("St Mary's", "https://st-marys.sch.uk", phone)
			s.NoError(err)
		})
	}

	invalid := []string{
		"0712345678",      // ten digits, one short
		"071234567890",    // twelve digits, one over
		"123456789",       // no leading zero or country code
		"+448123456789",   // +44 must be followed by 7
		"+44  7123456789", // at most one space after the country code
		" 07123456789",    // leading whitespace is not stripped
		"07123 456789",    // no spaces inside the national form
	}
	for _, phone := range invalid {
		s.Run("rejects "+phone, func() {
			_, err := domain.NewDetails("St Mary's", "https://st-marys.sch.uk", phone)
			s.Require().Error(err)
			s.ErrorIs(err, domain.ErrTelephoneInvalid)
		})
	}
}

func (s *DetailsSuite) TestMust() {
	s.Run("panics on invalid fields", func() {
		s.Panics(func() {
			domain.MustDetails("", "", "")
		})
	})

	s.Run("returns value when valid", func() {
		s.NotPanics(func() {
			d := domain.MustDetails("St Mary's", "https://st-marys.sch.uk", "07123456789")
			s.Equal("St Mary's", d.Name())
		})
	})
}

func (s *DetailsSuite) TestEquality() {
	base := domain.MustDetails("St Mary's", "https://st-marys.sch.uk", "07123456789")

	s.Run("identical fields compare equal", func() {
		other := domain.MustDetails("St Mary's", "https://st-marys.sch.uk", "07123456789")
		s.True(base.Equal(other))
		s.True(other.Equal(base))
	})

	s.Run("any differing field breaks equality", func() {
		s.False(base.Equal(domain.MustDetails("Oakfield", "https://st-marys.sch.uk", "07123456789")))
		s.False(base.Equal(domain.MustDetails("St Mary's", "https://oakfield.sch.uk", "07123456789")))
		s.False(base.Equal(domain.MustDetails("St Mary's", "https://st-marys.sch.uk", "07999999999")))
	})

	s.Run("repeated construction is idempotent", func() {
		first, err := domain.NewDetails("St Mary's", "https://st-marys.sch.uk", "07123456789")
		s.Require().NoError(err)
		second, err := domain.NewDetails("St Mary's", "https://st-marys.sch.uk", "07123456789")
		s.Require().NoError(err)
		s.True(first.Equal(second))
	})
}

func (s *DetailsSuite) TestString() {
	d := domain.MustDetails("St Mary's", "https://st-marys.sch.uk", "07123456789")
	s.Equal("St Mary's (https://st-marys.sch.uk, 07123456789)", d.String())
}

func (s *DetailsSuite) TestIsZero() {
	s.Run("zero value Details is zero", func() {
		var d domain.Details
		s.True(d.IsZero())
	})

	s.Run("constructed Details is not zero", func() {
		d := domain.MustDetails("St Mary's", "https://st-marys.sch.uk", "07123456789")
		s.False(d.IsZero())
	})
}
