package database

import (
	"database/sql"
	"fmt"

	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(user *entity.User) error {
	query := `INSERT INTO users (name, docket) VALUES (?, ?)`

	result, err := r.db.Exec(query, user.Name, user.Docket)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepo) GetByID(id int64) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, name, docket FROM users WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Docket,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) ListAll() ([]*entity.User, error) {
	query := `SELECT id, name, docket FROM users ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := &entity.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Docket); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepo) Update(user *entity.User) error {
	query := `UPDATE users SET name = ?, docket = ? WHERE id = ?`

	_, err := r.db.Exec(query, user.Name, user.Docket, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepo) Delete(id int64) error {
	query := `DELETE FROM users WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (r *userRepo) ExistsByName(name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE name = ?)`

	var exists bool
	if err := r.db.QueryRow(query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
