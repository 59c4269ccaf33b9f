package user

import (
	"time"
)

type (
	// ID is assigned by the store on first persist and never changes afterwards.
	ID   uint64
	User struct {
		ID          ID
		Email       string
		FirstName   string
		LastName    string
		BirthDate   time.Time
		Address     string
		PhoneNumber string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
