package user

import (
	domain "users-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:          domain.ID(model.ID),
		Email:       model.Email,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		BirthDate:   model.BirthDate,
		Address:     strOrEmpty(model.Address),
		PhoneNumber: strOrEmpty(model.PhoneNumber),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
