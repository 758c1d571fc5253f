package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"projectmanager/internal/core/domain"
	"projectmanager/internal/core/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Name     string `db:"name"`
	Password string `db:"password"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmailAndPassword(ctx context.Context, email, password string) ([]domain.UserAccount, error) {
	var rows []userRow
	query := `SELECT * FROM users WHERE email = ? AND password = ? ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query, email, password); err != nil {
		return nil, err
	}

	accounts := make([]domain.UserAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, mapUserRowToAccount(row))
	}

	return accounts, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.UserAccount, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM users WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserAccount{}, domain.ErrUserNotFound
		}
		return domain.UserAccount{}, err
	}

	return mapUserRowToAccount(row), nil
}

func (r *UserRepository) Create(ctx context.Context, account domain.UserAccount) (domain.UserAccount, error) {
	query := `INSERT INTO users (id, email, name, password) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, account.ID, account.Email, account.Name, account.Password); err != nil {
		return domain.UserAccount{}, err
	}

	return account, nil
}

func mapUserRowToAccount(row userRow) domain.UserAccount {
	return domain.UserAccount{
		ID:       row.ID,
		Email:    row.Email,
		Name:     row.Name,
		Password: row.Password,
	}
}
