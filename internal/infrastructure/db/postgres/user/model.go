package user

import (
	"time"
)

type (
	User struct {
		ID          uint64
		Email       string
		FirstName   string
		LastName    string
		BirthDate   time.Time
		Address     *string
		PhoneNumber *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
