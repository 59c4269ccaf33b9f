package user

const (
	SelectUsers = `
		SELECT id, email, first_name, last_name, birth_date, address, phone_number, created_at, updated_at
		FROM users
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectUserByID = `
		SELECT id, email, first_name, last_name, birth_date, address, phone_number, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	SelectUsersByBirthDateRange = `
		SELECT id, email, first_name, last_name, birth_date, address, phone_number, created_at, updated_at
		FROM users
		WHERE birth_date >= $1 AND birth_date <= $2
		ORDER BY id
	`
	InsertUser = `
		INSERT INTO users (email, first_name, last_name, birth_date, address, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, email, first_name, last_name, birth_date, address, phone_number, created_at, updated_at
	`
	UpdateUserByID = `
		UPDATE users
		SET email = $1,
		    first_name = $2,
		    last_name = $3,
		    birth_date = $4,
		    address = $5,
		    phone_number = $6,
		    updated_at = now()
		WHERE id = $7
		RETURNING
		  id, email, first_name, last_name, birth_date, address, phone_number, created_at, updated_at
	`
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING
		  id, email, first_name, last_name, birth_date, address, phone_number, created_at, updated_at
	`
)
