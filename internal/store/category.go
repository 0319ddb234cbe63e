package store

import (
	"context"

	"ledgerkeep/internal/domain"
)

const categoryColumns = "category_id, category_name, active_status, date_added, date_updated"

func scanCategory(row interface{ Scan(...any) error }) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.CategoryID, &c.CategoryName, &c.ActiveStatus, &c.DateAdded, &c.DateUpdated)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (s *Store) InsertCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO t_category (category_name, active_status)
		VALUES ($1, $2)
		RETURNING `+categoryColumns,
		category.CategoryName, category.ActiveStatus,
	)
	return scanCategory(row)
}

func (s *Store) FetchCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+categoryColumns+" FROM t_category WHERE category_name = $1", name)
	return scanCategory(row)
}

func (s *Store) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := "SELECT " + categoryColumns + " FROM t_category ORDER BY category_name"
	if activeOnly {
		query = "SELECT " + categoryColumns + " FROM t_category WHERE active_status = TRUE ORDER BY category_name"
	}
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, mapError(rows.Err())
}

// DeleteCategoryByName removes the category; the t_transaction_categories
// join rows cascade away with it.
func (s *Store) DeleteCategoryByName(ctx context.Context, name string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM t_category WHERE category_name = $1", name)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LinkTransactionCategory inserts a join row between an existing transaction
// and category.
func (s *Store) LinkTransactionCategory(ctx context.Context, categoryID, transactionID int64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO t_transaction_categories (category_id, transaction_id)
		VALUES ($1, $2)`,
		categoryID, transactionID)
	return mapError(err)
}
