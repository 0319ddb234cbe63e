package testdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledgerkeep/internal/domain"
)

// Builders produce fully-formed entities seeded with constraint-valid
// defaults. Build returns the entity as-is, including deliberate damage
// applied through the With* methods, so negative-path tests can drive
// malformed rows at the database. BuildValidated runs the same checks the
// schema enforces and fails fast before any I/O.

type AccountBuilder struct {
	account domain.Account
}

func NewAccountBuilder(testOwner string) *AccountBuilder {
	return &AccountBuilder{account: domain.Account{
		AccountNameOwner: UniqueAccountName(testOwner, "primary"),
		AccountType:      domain.AccountTypeCredit,
		ActiveStatus:     true,
		Moniker:          "0000",
		Outstanding:      decimal.Zero,
		Future:           decimal.Zero,
		Cleared:          decimal.Zero,
	}}
}

func (b *AccountBuilder) WithAccountNameOwner(name string) *AccountBuilder {
	b.account.AccountNameOwner = name
	return b
}

func (b *AccountBuilder) WithAccountType(t domain.AccountType) *AccountBuilder {
	b.account.AccountType = t
	return b
}

func (b *AccountBuilder) WithMoniker(moniker string) *AccountBuilder {
	b.account.Moniker = moniker
	return b
}

func (b *AccountBuilder) WithCleared(amount decimal.Decimal) *AccountBuilder {
	b.account.Cleared = amount
	return b
}

func (b *AccountBuilder) WithActiveStatus(active bool) *AccountBuilder {
	b.account.ActiveStatus = active
	return b
}

func (b *AccountBuilder) Build() domain.Account {
	return b.account
}

func (b *AccountBuilder) BuildValidated() (domain.Account, error) {
	if err := b.account.Validate(); err != nil {
		return domain.Account{}, err
	}
	return b.account, nil
}

type CategoryBuilder struct {
	category domain.Category
}

func NewCategoryBuilder(testOwner string) *CategoryBuilder {
	return &CategoryBuilder{category: domain.Category{
		CategoryName: UniqueCategoryName(testOwner, "online"),
		ActiveStatus: true,
	}}
}

func (b *CategoryBuilder) WithCategoryName(name string) *CategoryBuilder {
	b.category.CategoryName = name
	return b
}

func (b *CategoryBuilder) WithActiveStatus(active bool) *CategoryBuilder {
	b.category.ActiveStatus = active
	return b
}

func (b *CategoryBuilder) Build() domain.Category {
	return b.category
}

func (b *CategoryBuilder) BuildValidated() (domain.Category, error) {
	if err := b.category.Validate(); err != nil {
		return domain.Category{}, err
	}
	return b.category, nil
}

type TransactionBuilder struct {
	tx domain.Transaction
}

func NewTransactionBuilder(testOwner string) *TransactionBuilder {
	return &TransactionBuilder{tx: domain.Transaction{
		GUID:             uuid.NewString(),
		AccountType:      domain.AccountTypeCredit,
		AccountNameOwner: UniqueAccountName(testOwner, "primary"),
		TransactionDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description:      "generated description",
		Category:         UniqueCategoryName(testOwner, "online"),
		Amount:           decimal.NewFromFloat(12.34),
		TransactionState: domain.TransactionStateCleared,
		ActiveStatus:     true,
		ReoccurringType:  domain.ReoccurringOnetime,
	}}
}

func (b *TransactionBuilder) WithGUID(guid string) *TransactionBuilder {
	b.tx.GUID = guid
	return b
}

func (b *TransactionBuilder) WithAccountNameOwner(name string) *TransactionBuilder {
	b.tx.AccountNameOwner = name
	return b
}

func (b *TransactionBuilder) WithAccountID(id int64) *TransactionBuilder {
	b.tx.AccountID = id
	return b
}

func (b *TransactionBuilder) WithAccountType(t domain.AccountType) *TransactionBuilder {
	b.tx.AccountType = t
	return b
}

func (b *TransactionBuilder) WithTransactionDate(date time.Time) *TransactionBuilder {
	b.tx.TransactionDate = date
	return b
}

func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	b.tx.Description = description
	return b
}

func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.tx.Category = category
	return b
}

func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	b.tx.Amount = amount
	return b
}

func (b *TransactionBuilder) WithTransactionState(state domain.TransactionState) *TransactionBuilder {
	b.tx.TransactionState = state
	return b
}

func (b *TransactionBuilder) WithNotes(notes string) *TransactionBuilder {
	b.tx.Notes = notes
	return b
}

func (b *TransactionBuilder) Build() domain.Transaction {
	return b.tx
}

func (b *TransactionBuilder) BuildValidated() (domain.Transaction, error) {
	if err := b.tx.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return b.tx, nil
}

type PaymentBuilder struct {
	payment domain.Payment
}

func NewPaymentBuilder(testOwner string) *PaymentBuilder {
	return &PaymentBuilder{payment: domain.Payment{
		SourceAccount:      UniqueAccountName(testOwner, "bank"),
		DestinationAccount: UniqueAccountName(testOwner, "card"),
		TransactionDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:             decimal.NewFromFloat(25.00),
		ActiveStatus:       true,
	}}
}

func (b *PaymentBuilder) WithSourceAccount(name string) *PaymentBuilder {
	b.payment.SourceAccount = name
	return b
}

func (b *PaymentBuilder) WithDestinationAccount(name string) *PaymentBuilder {
	b.payment.DestinationAccount = name
	return b
}

func (b *PaymentBuilder) WithTransactionDate(date time.Time) *PaymentBuilder {
	b.payment.TransactionDate = date
	return b
}

func (b *PaymentBuilder) WithAmount(amount decimal.Decimal) *PaymentBuilder {
	b.payment.Amount = amount
	return b
}

func (b *PaymentBuilder) Build() domain.Payment {
	return b.payment
}

func (b *PaymentBuilder) BuildValidated() (domain.Payment, error) {
	if err := b.payment.Validate(); err != nil {
		return domain.Payment{}, err
	}
	return b.payment, nil
}

type ParameterBuilder struct {
	parameter domain.Parameter
}

func NewParameterBuilder(testOwner string) *ParameterBuilder {
	return &ParameterBuilder{parameter: domain.Parameter{
		ParameterName:  UniqueCategoryName(testOwner, "parm"),
		ParameterValue: "value",
		ActiveStatus:   true,
	}}
}

func (b *ParameterBuilder) WithParameterName(name string) *ParameterBuilder {
	b.parameter.ParameterName = name
	return b
}

func (b *ParameterBuilder) WithParameterValue(value string) *ParameterBuilder {
	b.parameter.ParameterValue = value
	return b
}

func (b *ParameterBuilder) Build() domain.Parameter {
	return b.parameter
}

func (b *ParameterBuilder) BuildValidated() (domain.Parameter, error) {
	if err := b.parameter.Validate(); err != nil {
		return domain.Parameter{}, err
	}
	return b.parameter, nil
}

type UserBuilder struct {
	user domain.User
}

func NewUserBuilder(testOwner string) *UserBuilder {
	return &UserBuilder{user: domain.User{
		Username:     UniqueUsername(testOwner, "functional"),
		FirstName:    "functional",
		LastName:     "tester",
		Password:     "Monday1!-functional",
		ActiveStatus: true,
	}}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) Build() domain.User {
	return b.user
}

func (b *UserBuilder) BuildValidated() (domain.User, error) {
	if err := b.user.Validate(); err != nil {
		return domain.User{}, err
	}
	return b.user, nil
}

type FamilyMemberBuilder struct {
	member domain.FamilyMember
}

func NewFamilyMemberBuilder(testOwner string) *FamilyMemberBuilder {
	return &FamilyMemberBuilder{member: domain.FamilyMember{
		Owner:        UniqueAccountName(testOwner, "family"),
		MemberName:   UniqueCategoryName(testOwner, "member"),
		Relationship: domain.RelationshipSelf,
		DateOfBirth:  time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC),
		ActiveStatus: true,
	}}
}

func (b *FamilyMemberBuilder) WithOwner(owner string) *FamilyMemberBuilder {
	b.member.Owner = owner
	return b
}

func (b *FamilyMemberBuilder) WithMemberName(name string) *FamilyMemberBuilder {
	b.member.MemberName = name
	return b
}

func (b *FamilyMemberBuilder) WithRelationship(r domain.FamilyRelationship) *FamilyMemberBuilder {
	b.member.Relationship = r
	return b
}

func (b *FamilyMemberBuilder) Build() domain.FamilyMember {
	return b.member
}

func (b *FamilyMemberBuilder) BuildValidated() (domain.FamilyMember, error) {
	if err := b.member.Validate(); err != nil {
		return domain.FamilyMember{}, err
	}
	return b.member, nil
}

type MedicalExpenseBuilder struct {
	expense domain.MedicalExpense
}

func NewMedicalExpenseBuilder(transactionID int64) *MedicalExpenseBuilder {
	return &MedicalExpenseBuilder{expense: domain.MedicalExpense{
		TransactionID:      transactionID,
		ServiceDate:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		ServiceDescription: "office visit",
		BilledAmount:       decimal.NewFromFloat(150.00),
		InsuranceDiscount:  decimal.NewFromFloat(30.00),
		InsurancePaid:      decimal.NewFromFloat(90.00),
		ClaimStatus:        domain.ClaimStatusSubmitted,
		ActiveStatus:       true,
	}}
}

func (b *MedicalExpenseBuilder) WithFamilyMemberID(id int64) *MedicalExpenseBuilder {
	b.expense.FamilyMemberID = id
	return b
}

func (b *MedicalExpenseBuilder) WithBilledAmount(amount decimal.Decimal) *MedicalExpenseBuilder {
	b.expense.BilledAmount = amount
	return b
}

func (b *MedicalExpenseBuilder) WithClaimStatus(status domain.ClaimStatus) *MedicalExpenseBuilder {
	b.expense.ClaimStatus = status
	return b
}

func (b *MedicalExpenseBuilder) Build() domain.MedicalExpense {
	return b.expense
}

func (b *MedicalExpenseBuilder) BuildValidated() (domain.MedicalExpense, error) {
	if err := b.expense.Validate(); err != nil {
		return domain.MedicalExpense{}, err
	}
	return b.expense, nil
}
