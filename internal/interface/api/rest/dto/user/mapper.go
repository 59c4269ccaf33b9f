package user

import (
	"errors"
	"time"

	"users-api/internal/domain/user"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var ErrBadBirthDate = errors.New("invalid birthDate format, want YYYY-MM-DD")

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:          uint64(uDomain.ID),
		Email:       uDomain.Email,
		FirstName:   uDomain.FirstName,
		LastName:    uDomain.LastName,
		BirthDate:   uDomain.BirthDate.Format(DateLayout),
		Address:     uDomain.Address,
		PhoneNumber: uDomain.PhoneNumber,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToDomainUser builds a complete entity from a request, an absent field
// becomes its zero value. Used by create and full update.
func ToDomainUser(uRequest Request) (user.User, error) {
	var birthDate time.Time
	if uRequest.BirthDate != nil {
		d, err := time.Parse(DateLayout, *uRequest.BirthDate)
		if err != nil {
			return user.User{}, ErrBadBirthDate
		}
		birthDate = d
	}

	var u = user.User{
		Email:       strDeref(uRequest.Email),
		FirstName:   strDeref(uRequest.FirstName),
		LastName:    strDeref(uRequest.LastName),
		BirthDate:   birthDate,
		Address:     strDeref(uRequest.Address),
		PhoneNumber: strDeref(uRequest.PhoneNumber),
	}

	return u, nil
}

// ApplyPartial merges present fields into an existing entity, absent fields
// keep their stored value. Deliberately a separate path from ApplyFull.
func ApplyPartial(u *user.User, uRequest Request) error {
	if uRequest.Email != nil {
		u.Email = *uRequest.Email
	}
	if uRequest.FirstName != nil {
		u.FirstName = *uRequest.FirstName
	}
	if uRequest.LastName != nil {
		u.LastName = *uRequest.LastName
	}
	if uRequest.BirthDate != nil {
		d, err := time.Parse(DateLayout, *uRequest.BirthDate)
		if err != nil {
			return ErrBadBirthDate
		}
		u.BirthDate = d
	}
	if uRequest.Address != nil {
		u.Address = *uRequest.Address
	}
	if uRequest.PhoneNumber != nil {
		u.PhoneNumber = *uRequest.PhoneNumber
	}

	return nil
}

// ApplyFull overwrites every field except the identifier, absent fields
// clear the stored value.
func ApplyFull(u *user.User, incoming user.User) {
	u.Email = incoming.Email
	u.FirstName = incoming.FirstName
	u.LastName = incoming.LastName
	u.BirthDate = incoming.BirthDate
	u.Address = incoming.Address
	u.PhoneNumber = incoming.PhoneNumber
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
