package store

import (
	"context"

	"ledgerkeep/internal/domain"
)

const parameterColumns = "parameter_id, parameter_name, parameter_value, active_status, date_added, date_updated"

func scanParameter(row interface{ Scan(...any) error }) (*domain.Parameter, error) {
	var p domain.Parameter
	err := row.Scan(&p.ParameterID, &p.ParameterName, &p.ParameterValue, &p.ActiveStatus, &p.DateAdded, &p.DateUpdated)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (s *Store) InsertParameter(ctx context.Context, parameter *domain.Parameter) (*domain.Parameter, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO t_parameter (parameter_name, parameter_value, active_status)
		VALUES ($1, $2, $3)
		RETURNING `+parameterColumns,
		parameter.ParameterName, parameter.ParameterValue, parameter.ActiveStatus,
	)
	return scanParameter(row)
}

func (s *Store) FetchParameterByName(ctx context.Context, name string) (*domain.Parameter, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+parameterColumns+" FROM t_parameter WHERE parameter_name = $1", name)
	return scanParameter(row)
}

func (s *Store) ListParameters(ctx context.Context) ([]domain.Parameter, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+parameterColumns+" FROM t_parameter ORDER BY parameter_name")
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var parameters []domain.Parameter
	for rows.Next() {
		parameter, err := scanParameter(rows)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, *parameter)
	}
	return parameters, mapError(rows.Err())
}

func (s *Store) UpdateParameter(ctx context.Context, parameter *domain.Parameter) (*domain.Parameter, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE t_parameter SET parameter_value = $2, active_status = $3
		WHERE parameter_name = $1
		RETURNING `+parameterColumns,
		parameter.ParameterName, parameter.ParameterValue, parameter.ActiveStatus,
	)
	return scanParameter(row)
}

func (s *Store) DeleteParameterByName(ctx context.Context, name string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM t_parameter WHERE parameter_name = $1", name)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
