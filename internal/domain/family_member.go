package domain

import "time"

// FamilyRelationship enumerates how a family member relates to the owner.
type FamilyRelationship string

const (
	RelationshipSelf      FamilyRelationship = "self"
	RelationshipSpouse    FamilyRelationship = "spouse"
	RelationshipChild     FamilyRelationship = "child"
	RelationshipDependent FamilyRelationship = "dependent"
	RelationshipOther     FamilyRelationship = "other"
)

func (r FamilyRelationship) Valid() bool {
	switch r {
	case RelationshipSelf, RelationshipSpouse, RelationshipChild, RelationshipDependent, RelationshipOther:
		return true
	}
	return false
}

// FamilyMember is a person medical expenses can be attributed to. Members are
// soft-deleted: ActiveStatus flips to false, the row stays.
type FamilyMember struct {
	FamilyMemberID    int64              `json:"familyMemberId"`
	Owner             string             `json:"owner"`
	MemberName        string             `json:"memberName"`
	Relationship      FamilyRelationship `json:"relationship"`
	DateOfBirth       time.Time          `json:"dateOfBirth"`
	InsuranceMemberID string             `json:"insuranceMemberId"`
	ActiveStatus      bool               `json:"activeStatus"`
	DateAdded         time.Time          `json:"dateAdded"`
	DateUpdated       time.Time          `json:"dateUpdated"`
}

func (f *FamilyMember) Validate() error {
	if err := requireLowercase("owner", f.Owner); err != nil {
		return err
	}
	if err := requireLength("owner", f.Owner, 1, AccountNameMaxLen); err != nil {
		return err
	}
	if err := requireLowercase("memberName", f.MemberName); err != nil {
		return err
	}
	if err := requireLength("memberName", f.MemberName, 1, 100); err != nil {
		return err
	}
	if !f.Relationship.Valid() {
		return validationErr("relationship", "must be one of self, spouse, child, dependent, other")
	}
	return nil
}
