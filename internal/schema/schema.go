// Package schema holds the embedded SQL migrations and applies them at
// startup. Migrations are forward-only and every statement is idempotent, so
// re-running the full list against an existing database is a no-op.
package schema

type migration struct {
	version int
	name    string
	sql     string
}

// migrations are applied in slice order; versions must be strictly
// increasing. Never edit an applied migration, append a new one.
var migrations = []migration{
	{version: 1, name: "timestamp-trigger-function", sql: sqlTimestampFn},
	{version: 2, name: "create-account", sql: sqlAccount},
	{version: 3, name: "create-category", sql: sqlCategory},
	{version: 4, name: "create-transaction", sql: sqlTransaction},
	{version: 5, name: "create-transaction-categories", sql: sqlTransactionCategories},
	{version: 6, name: "create-payment-legacy", sql: sqlPaymentV1},
	{version: 7, name: "create-parameter", sql: sqlParameter},
	{version: 8, name: "create-user", sql: sqlUser},
	{version: 9, name: "payment-source-destination", sql: sqlPaymentV2},
	{version: 10, name: "create-transfer", sql: sqlTransfer},
	{version: 11, name: "create-family-member", sql: sqlFamilyMember},
	{version: 12, name: "create-medical-expense", sql: sqlMedicalExpense},
}

// The persistence layer, not the caller, owns date_added and date_updated.
// Both are overwritten on insert and date_updated on every update no matter
// what the client supplied.
const sqlTimestampFn = `
CREATE OR REPLACE FUNCTION fn_stamp_row() RETURNS TRIGGER AS $$
BEGIN
    IF TG_OP = 'INSERT' THEN
        NEW.date_added := now();
    ELSE
        NEW.date_added := OLD.date_added;
    END IF;
    NEW.date_updated := now();
    RETURN NEW;
END;
$$ LANGUAGE plpgsql;
`

const sqlAccount = `
CREATE TABLE IF NOT EXISTS t_account (
    account_id         BIGSERIAL PRIMARY KEY,
    account_name_owner TEXT UNIQUE NOT NULL,
    account_type       TEXT NOT NULL DEFAULT 'undefined',
    active_status      BOOLEAN NOT NULL DEFAULT TRUE,
    moniker            TEXT NOT NULL DEFAULT '0000',
    outstanding        NUMERIC(12,2) NOT NULL DEFAULT 0.00,
    future             NUMERIC(12,2) NOT NULL DEFAULT 0.00,
    cleared            NUMERIC(12,2) NOT NULL DEFAULT 0.00,
    date_closed        TIMESTAMPTZ NOT NULL DEFAULT TO_TIMESTAMP(0),
    validation_date    TIMESTAMPTZ NOT NULL DEFAULT TO_TIMESTAMP(0),
    date_added         TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated       TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT unique_account_id_name_owner_type UNIQUE (account_id, account_name_owner, account_type),
    CONSTRAINT ck_account_type CHECK (account_type IN ('debit', 'credit', 'undefined')),
    CONSTRAINT ck_account_type_lowercase CHECK (account_type = lower(account_type)),
    CONSTRAINT ck_account_name_owner_lowercase CHECK (account_name_owner = lower(account_name_owner))
);

DROP TRIGGER IF EXISTS tr_stamp_account ON t_account;
CREATE TRIGGER tr_stamp_account
    BEFORE INSERT OR UPDATE ON t_account
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

const sqlCategory = `
CREATE TABLE IF NOT EXISTS t_category (
    category_id   BIGSERIAL PRIMARY KEY,
    category_name TEXT UNIQUE NOT NULL,
    active_status BOOLEAN NOT NULL DEFAULT TRUE,
    date_added    TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated  TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT ck_category_name_lowercase CHECK (category_name = lower(category_name))
);

DROP TRIGGER IF EXISTS tr_stamp_category ON t_category;
CREATE TRIGGER tr_stamp_category
    BEFORE INSERT OR UPDATE ON t_category
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

const sqlTransaction = `
CREATE TABLE IF NOT EXISTS t_transaction (
    transaction_id     BIGSERIAL PRIMARY KEY,
    account_id         BIGINT NOT NULL,
    account_type       TEXT NOT NULL DEFAULT 'undefined',
    account_name_owner TEXT NOT NULL,
    guid               TEXT UNIQUE NOT NULL,
    transaction_date   DATE NOT NULL,
    description        TEXT NOT NULL,
    category           TEXT NOT NULL DEFAULT '',
    amount             NUMERIC(12,2) NOT NULL DEFAULT 0.00,
    transaction_state  TEXT NOT NULL DEFAULT 'undefined',
    active_status      BOOLEAN NOT NULL DEFAULT TRUE,
    reoccurring        BOOLEAN NOT NULL DEFAULT FALSE,
    reoccurring_type   TEXT NOT NULL DEFAULT 'undefined',
    notes              TEXT NOT NULL DEFAULT '',
    date_added         TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated       TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT unique_transaction_fields UNIQUE (account_name_owner, transaction_date, description, category, amount, notes),
    CONSTRAINT ck_transaction_state CHECK (transaction_state IN ('outstanding', 'future', 'cleared', 'undefined')),
    CONSTRAINT ck_reoccurring_type CHECK (reoccurring_type IN ('onetime', 'monthly', 'annually', 'fortnightly', 'quarterly', 'undefined')),
    CONSTRAINT ck_description_lowercase CHECK (description = lower(description)),
    CONSTRAINT ck_category_lowercase CHECK (category = lower(category)),
    CONSTRAINT ck_notes_lowercase CHECK (notes = lower(notes)),
    CONSTRAINT fk_account_id_name_owner_type FOREIGN KEY (account_id, account_name_owner, account_type)
        REFERENCES t_account (account_id, account_name_owner, account_type) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_transaction_account_name_owner ON t_transaction (account_name_owner);
CREATE INDEX IF NOT EXISTS idx_transaction_category ON t_transaction (category);

DROP TRIGGER IF EXISTS tr_stamp_transaction ON t_transaction;
CREATE TRIGGER tr_stamp_transaction
    BEFORE INSERT OR UPDATE ON t_transaction
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

const sqlTransactionCategories = `
CREATE TABLE IF NOT EXISTS t_transaction_categories (
    category_id    BIGINT NOT NULL,
    transaction_id BIGINT NOT NULL,
    date_added     TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated   TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (category_id, transaction_id),
    CONSTRAINT fk_category_id FOREIGN KEY (category_id) REFERENCES t_category (category_id) ON DELETE CASCADE,
    CONSTRAINT fk_transaction_id FOREIGN KEY (transaction_id) REFERENCES t_transaction (transaction_id) ON DELETE CASCADE
);

DROP TRIGGER IF EXISTS tr_stamp_transaction_categories ON t_transaction_categories;
CREATE TRIGGER tr_stamp_transaction_categories
    BEFORE INSERT OR UPDATE ON t_transaction_categories
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

// Historical shape: a single account_name_owner column. Superseded by the
// source/destination model in a later migration.
const sqlPaymentV1 = `
CREATE TABLE IF NOT EXISTS t_payment (
    payment_id         BIGSERIAL PRIMARY KEY,
    account_name_owner TEXT NOT NULL,
    transaction_date   DATE NOT NULL,
    amount             NUMERIC(8,2) NOT NULL DEFAULT 0.00,
    guid_source        TEXT NOT NULL,
    guid_destination   TEXT NOT NULL,
    active_status      BOOLEAN NOT NULL DEFAULT TRUE,
    date_added         TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated       TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT fk_payment_guid_source FOREIGN KEY (guid_source) REFERENCES t_transaction (guid) ON DELETE CASCADE,
    CONSTRAINT fk_payment_guid_destination FOREIGN KEY (guid_destination) REFERENCES t_transaction (guid) ON DELETE CASCADE
);

DROP TRIGGER IF EXISTS tr_stamp_payment ON t_payment;
CREATE TRIGGER tr_stamp_payment
    BEFORE INSERT OR UPDATE ON t_payment
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

const sqlParameter = `
CREATE TABLE IF NOT EXISTS t_parameter (
    parameter_id    BIGSERIAL PRIMARY KEY,
    parameter_name  TEXT UNIQUE NOT NULL,
    parameter_value TEXT NOT NULL,
    active_status   BOOLEAN NOT NULL DEFAULT TRUE,
    date_added      TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated    TIMESTAMPTZ NOT NULL DEFAULT now()
);

DROP TRIGGER IF EXISTS tr_stamp_parameter ON t_parameter;
CREATE TRIGGER tr_stamp_parameter
    BEFORE INSERT OR UPDATE ON t_parameter
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

const sqlUser = `
CREATE TABLE IF NOT EXISTS t_user (
    user_id       BIGSERIAL PRIMARY KEY,
    username      TEXT UNIQUE NOT NULL,
    first_name    TEXT NOT NULL DEFAULT '',
    last_name     TEXT NOT NULL DEFAULT '',
    password      TEXT NOT NULL,
    active_status BOOLEAN NOT NULL DEFAULT TRUE,
    date_added    TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated  TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT ck_username_lowercase CHECK (username = lower(username))
);

DROP TRIGGER IF EXISTS tr_stamp_user ON t_user;
CREATE TRIGGER tr_stamp_user
    BEFORE INSERT OR UPDATE ON t_user
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

// Replaces the single-account payment shape with explicit source and
// destination accounts, both referencing t_account.
const sqlPaymentV2 = `
ALTER TABLE t_payment ADD COLUMN IF NOT EXISTS source_account TEXT NOT NULL DEFAULT '';
ALTER TABLE t_payment ADD COLUMN IF NOT EXISTS destination_account TEXT NOT NULL DEFAULT '';

UPDATE t_payment SET destination_account = account_name_owner WHERE destination_account = '';

ALTER TABLE t_payment DROP COLUMN IF EXISTS account_name_owner;

DO $$
BEGIN
    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'uk_payment_destination_date_amount') THEN
        ALTER TABLE t_payment ADD CONSTRAINT uk_payment_destination_date_amount
            UNIQUE (destination_account, transaction_date, amount);
    END IF;
    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_payment_source_account') THEN
        ALTER TABLE t_payment ADD CONSTRAINT fk_payment_source_account
            FOREIGN KEY (source_account) REFERENCES t_account (account_name_owner) ON DELETE CASCADE;
    END IF;
    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_payment_destination_account') THEN
        ALTER TABLE t_payment ADD CONSTRAINT fk_payment_destination_account
            FOREIGN KEY (destination_account) REFERENCES t_account (account_name_owner) ON DELETE CASCADE;
    END IF;
END $$;
`

const sqlTransfer = `
CREATE TABLE IF NOT EXISTS t_transfer (
    transfer_id         BIGSERIAL PRIMARY KEY,
    source_account      TEXT NOT NULL,
    destination_account TEXT NOT NULL,
    transaction_date    DATE NOT NULL,
    amount              NUMERIC(8,2) NOT NULL DEFAULT 0.00,
    guid_source         TEXT NOT NULL,
    guid_destination    TEXT NOT NULL,
    active_status       BOOLEAN NOT NULL DEFAULT TRUE,
    date_added          TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated        TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT fk_transfer_source_account FOREIGN KEY (source_account) REFERENCES t_account (account_name_owner) ON DELETE CASCADE,
    CONSTRAINT fk_transfer_destination_account FOREIGN KEY (destination_account) REFERENCES t_account (account_name_owner) ON DELETE CASCADE,
    CONSTRAINT fk_transfer_guid_source FOREIGN KEY (guid_source) REFERENCES t_transaction (guid) ON DELETE CASCADE,
    CONSTRAINT fk_transfer_guid_destination FOREIGN KEY (guid_destination) REFERENCES t_transaction (guid) ON DELETE CASCADE
);

DROP TRIGGER IF EXISTS tr_stamp_transfer ON t_transfer;
CREATE TRIGGER tr_stamp_transfer
    BEFORE INSERT OR UPDATE ON t_transfer
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

const sqlFamilyMember = `
CREATE TABLE IF NOT EXISTS t_family_member (
    family_member_id    BIGSERIAL PRIMARY KEY,
    owner               TEXT NOT NULL,
    member_name         TEXT NOT NULL,
    relationship        TEXT NOT NULL DEFAULT 'self',
    date_of_birth       DATE,
    insurance_member_id TEXT NOT NULL DEFAULT '',
    active_status       BOOLEAN NOT NULL DEFAULT TRUE,
    date_added          TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated        TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uk_family_member_owner_name UNIQUE (owner, member_name),
    CONSTRAINT ck_relationship CHECK (relationship IN ('self', 'spouse', 'child', 'dependent', 'other')),
    CONSTRAINT ck_member_name_lowercase CHECK (member_name = lower(member_name))
);

DROP TRIGGER IF EXISTS tr_stamp_family_member ON t_family_member;
CREATE TRIGGER tr_stamp_family_member
    BEFORE INSERT OR UPDATE ON t_family_member
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`

const sqlMedicalExpense = `
CREATE TABLE IF NOT EXISTS t_medical_expense (
    medical_expense_id  BIGSERIAL PRIMARY KEY,
    transaction_id      BIGINT NOT NULL,
    family_member_id    BIGINT,
    service_date        DATE NOT NULL,
    service_description TEXT NOT NULL DEFAULT '',
    billed_amount       NUMERIC(12,2) NOT NULL DEFAULT 0.00,
    insurance_discount  NUMERIC(12,2) NOT NULL DEFAULT 0.00,
    insurance_paid      NUMERIC(12,2) NOT NULL DEFAULT 0.00,
    paid_date           DATE,
    claim_number        TEXT NOT NULL DEFAULT '',
    claim_status        TEXT NOT NULL DEFAULT 'submitted',
    is_out_of_network   BOOLEAN NOT NULL DEFAULT FALSE,
    active_status       BOOLEAN NOT NULL DEFAULT TRUE,
    date_added          TIMESTAMPTZ NOT NULL DEFAULT now(),
    date_updated        TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uk_medical_expense_transaction UNIQUE (transaction_id),
    CONSTRAINT ck_claim_status CHECK (claim_status IN ('submitted', 'processing', 'approved', 'denied', 'paid', 'closed')),
    CONSTRAINT ck_billed_amount_non_negative CHECK (billed_amount >= 0),
    CONSTRAINT fk_medical_expense_transaction FOREIGN KEY (transaction_id) REFERENCES t_transaction (transaction_id) ON DELETE CASCADE,
    CONSTRAINT fk_medical_expense_family_member FOREIGN KEY (family_member_id) REFERENCES t_family_member (family_member_id) ON DELETE SET NULL
);

DROP TRIGGER IF EXISTS tr_stamp_medical_expense ON t_medical_expense;
CREATE TRIGGER tr_stamp_medical_expense
    BEFORE INSERT OR UPDATE ON t_medical_expense
    FOR EACH ROW EXECUTE FUNCTION fn_stamp_row();
`
