package store

import (
	"context"

	"ledgerkeep/internal/domain"
)

const userColumns = "user_id, username, first_name, last_name, password, active_status, date_added, date_updated"

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.ActiveStatus, &u.DateAdded, &u.DateUpdated)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (s *Store) InsertUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO t_user (username, first_name, last_name, password, active_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.Username, user.FirstName, user.LastName, user.PasswordHash, user.ActiveStatus,
	)
	return scanUser(row)
}

func (s *Store) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM t_user WHERE username = $1", username)
	return scanUser(row)
}

func (s *Store) DeleteUserByUsername(ctx context.Context, username string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM t_user WHERE username = $1", username)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
