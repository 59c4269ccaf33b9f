package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"time"

	domain "users-api/internal/domain/user"
	"users-api/internal/interface/api/rest/dto/user"
)

// Errors maps a field name to a human-readable message. It satisfies the
// error interface so field failures can travel through gin's error chain.
type Errors map[string]string

func (e Errors) Error() string { return "invalid user payload" }

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}
	return p, nil
}

func IsUserID(s string) (bool, domain.ID) {
	id, err := strconv.ParseUint(s, 10, 64)
	return err == nil, domain.ID(id)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(user.DateLayout, strings.TrimSpace(s))
}

// ValidateUser performs the syntactic checks applied on create and full
// update. The minimum-age rule is a business check and lives in the
// controller, not here.
func ValidateUser(r user.Request) Errors {
	errs := make(Errors)

	email := trimmed(r.Email)
	firstName := trimmed(r.FirstName)
	lastName := trimmed(r.LastName)
	birthDate := trimmed(r.BirthDate)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if firstName == "" {
		errs["firstName"] = "firstName is required"
	}

	if lastName == "" {
		errs["lastName"] = "lastName is required"
	}

	// birthDate (required + format + in the past)
	if birthDate == "" {
		errs["birthDate"] = "birthDate is required"
	} else if dob, err := time.Parse(user.DateLayout, birthDate); err != nil {
		errs["birthDate"] = "must be YYYY-MM-DD"
	} else if !dob.Before(time.Now().UTC()) {
		errs["birthDate"] = "birthDate must be in the past"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
