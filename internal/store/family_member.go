package store

import (
	"context"

	"ledgerkeep/internal/domain"
)

const familyMemberColumns = `family_member_id, owner, member_name, relationship, date_of_birth,
	insurance_member_id, active_status, date_added, date_updated`

func scanFamilyMember(row interface{ Scan(...any) error }) (*domain.FamilyMember, error) {
	var f domain.FamilyMember
	err := row.Scan(&f.FamilyMemberID, &f.Owner, &f.MemberName, &f.Relationship, &f.DateOfBirth,
		&f.InsuranceMemberID, &f.ActiveStatus, &f.DateAdded, &f.DateUpdated)
	if err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

func (s *Store) InsertFamilyMember(ctx context.Context, member *domain.FamilyMember) (*domain.FamilyMember, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO t_family_member (owner, member_name, relationship, date_of_birth, insurance_member_id, active_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+familyMemberColumns,
		member.Owner, member.MemberName, member.Relationship, member.DateOfBirth,
		member.InsuranceMemberID, member.ActiveStatus,
	)
	return scanFamilyMember(row)
}

func (s *Store) FetchFamilyMemberByID(ctx context.Context, id int64) (*domain.FamilyMember, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+familyMemberColumns+" FROM t_family_member WHERE family_member_id = $1", id)
	return scanFamilyMember(row)
}

func (s *Store) ListFamilyMembersByOwner(ctx context.Context, owner string) ([]domain.FamilyMember, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+familyMemberColumns+` FROM t_family_member
		WHERE owner = $1 AND active_status = TRUE
		ORDER BY member_name`, owner)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var members []domain.FamilyMember
	for rows.Next() {
		member, err := scanFamilyMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, mapError(rows.Err())
}

// SoftDeleteFamilyMember flips active_status instead of removing the row, so
// medical expenses keep their attribution.
func (s *Store) SoftDeleteFamilyMember(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE t_family_member SET active_status = FALSE WHERE family_member_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
