package dbhelper

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/ray-remotestate/storefront/database"
	"github.com/ray-remotestate/storefront/models"
)

func CreateUser(tx *sqlx.Tx, name, email, phone, hashedPassword string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(`INSERT INTO users (id, name, email, phone, password) VALUES ($1, $2, $3, $4, $5)`,
		id, name, email, phone, hashedPassword)
	return id, err
}

func IsUserExists(email string) (bool, error) {
	var count int
	err := database.Storefront.QueryRow(`SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER($1)`, email).Scan(&count)
	return count > 0, err
}

func AssignRole(tx *sqlx.Tx, userID uuid.UUID, role models.Role) error {
	_, err := tx.Exec(`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`, userID, role)
	return err
}

func GetUserByPassword(email, password string) (uuid.UUID, string, error) {
	var row struct {
		ID       uuid.UUID `db:"id"`
		Name     string    `db:"name"`
		Password string    `db:"password"`
	}

	err := database.Storefront.Get(&row, `
		SELECT id, name, password FROM users
		WHERE LOWER(email) = LOWER($1) AND archived_at IS NULL`, email)
	if err != nil {
		return uuid.Nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(row.Password), []byte(password)) != nil {
		return uuid.Nil, "", fmt.Errorf("incorrect password")
	}

	return row.ID, row.Name, nil
}

func GetUserRolesByUserID(userID uuid.UUID) ([]string, error) {
	var roles []string
	err := database.Storefront.Select(&roles, `
		SELECT role FROM user_roles
		WHERE user_id = $1 AND archived_at IS NULL`, userID)
	if err != nil {
		return nil, err
	}
	return roles, nil
}
