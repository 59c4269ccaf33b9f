package user

// Request carries pointer fields so the partial-update path can tell an
// absent field from an explicit value. The full-update and create paths
// treat a nil pointer as the zero value.
type Request struct {
	Email       *string `json:"email"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	BirthDate   *string `json:"birthDate"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}
