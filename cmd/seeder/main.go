package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"ledgerkeep/internal/config"
	"ledgerkeep/internal/domain"
	"ledgerkeep/internal/logger"
	"ledgerkeep/internal/schema"
	"ledgerkeep/internal/testdata"
)

var (
	accountCount     int
	transactionsPer  int
	seededCategories = []string{"groceries", "utilities", "restaurants", "fuel", "medical", "online"}
)

func init() {
	flag.IntVar(&accountCount, "accounts", 50, "number of accounts to seed")
	flag.IntVar(&transactionsPer, "transactions", 20, "transactions per account")
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("production")
		boot.Fatal().Err(err).Msg("configuration error")
	}
	log := logger.New(cfg.Env)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to database")
	}
	defer pool.Close()

	if err := schema.Apply(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	var existing int
	pool.QueryRow(ctx, "SELECT COUNT(*) FROM t_account").Scan(&existing)
	if existing >= accountCount {
		log.Info().Int("existing", existing).Msg("database already seeded, skipping")
		return
	}

	owner := testdata.NewTestOwner()
	log.Info().Str("testOwner", owner).Int("accounts", accountCount).Msg("seeding database")

	categoryNames := make([]string, 0, len(seededCategories))
	for _, name := range seededCategories {
		category, err := testdata.NewCategoryBuilder(owner).
			WithCategoryName(testdata.UniqueCategoryName(owner, name)).
			BuildValidated()
		if err != nil {
			log.Fatal().Err(err).Msg("category generation failed")
		}
		if _, err := pool.Exec(ctx,
			"INSERT INTO t_category (category_name, active_status) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			category.CategoryName, category.ActiveStatus,
		); err != nil {
			log.Fatal().Err(err).Str("category", category.CategoryName).Msg("category insert failed")
		}
		categoryNames = append(categoryNames, category.CategoryName)
	}

	// Bulk insert accounts with CopyFrom, then read the generated ids back
	// so the transaction rows can carry a valid foreign key.
	accountRows := make([][]interface{}, 0, accountCount)
	names := make([]string, 0, accountCount)
	for i := 0; i < accountCount; i++ {
		kind := domain.AccountTypeDebit
		if i%3 == 0 {
			kind = domain.AccountTypeCredit
		}
		account, err := testdata.NewAccountBuilder(owner).
			WithAccountNameOwner(testdata.UniqueAccountName(owner, "seeded")).
			WithAccountType(kind).
			WithMoniker(fmt.Sprintf("%04d", i%10000)).
			BuildValidated()
		if err != nil {
			log.Fatal().Err(err).Msg("account generation failed")
		}
		names = append(names, account.AccountNameOwner)
		accountRows = append(accountRows, []interface{}{
			account.AccountNameOwner, string(account.AccountType), account.ActiveStatus, account.Moniker,
		})
	}

	copied, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{"t_account"},
		[]string{"account_name_owner", "account_type", "active_status", "moniker"},
		pgx.CopyFromRows(accountRows),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("account bulk insert failed")
	}
	log.Info().Int64("accounts", copied).Msg("accounts seeded")

	ids := make(map[string]int64, accountCount)
	kinds := make(map[string]domain.AccountType, accountCount)
	rows, err := pool.Query(ctx, "SELECT account_id, account_name_owner, account_type FROM t_account")
	if err != nil {
		log.Fatal().Err(err).Msg("account id readback failed")
	}
	for rows.Next() {
		var id int64
		var name string
		var kind domain.AccountType
		if err := rows.Scan(&id, &name, &kind); err != nil {
			log.Fatal().Err(err).Msg("account id scan failed")
		}
		ids[name] = id
		kinds[name] = kind
	}
	rows.Close()

	txRows := make([][]interface{}, 0, accountCount*transactionsPer)
	for _, name := range names {
		for j := 0; j < transactionsPer; j++ {
			category := categoryNames[rand.Intn(len(categoryNames))]
			amount := decimal.NewFromInt(int64(rand.Intn(20000))).Div(decimal.NewFromInt(100))
			tx, err := testdata.NewTransactionBuilder(owner).
				WithAccountNameOwner(name).
				WithAccountID(ids[name]).
				WithAccountType(kinds[name]).
				WithTransactionDate(time.Date(2024, time.Month(1+j%12), 1+j%28, 0, 0, 0, 0, time.UTC)).
				WithDescription(fmt.Sprintf("seeded purchase %d", j)).
				WithCategory(category).
				WithAmount(amount).
				WithTransactionState(domain.TransactionStateCleared).
				BuildValidated()
			if err != nil {
				log.Fatal().Err(err).Msg("transaction generation failed")
			}
			txRows = append(txRows, []interface{}{
				tx.GUID, tx.AccountID, string(tx.AccountType), tx.AccountNameOwner,
				tx.TransactionDate, tx.Description, tx.Category, tx.Amount.StringFixed(2),
				string(tx.TransactionState), tx.ActiveStatus, tx.Reoccurring, string(tx.ReoccurringType), tx.Notes,
			})
		}
	}

	copied, err = pool.CopyFrom(
		ctx,
		pgx.Identifier{"t_transaction"},
		[]string{"guid", "account_id", "account_type", "account_name_owner",
			"transaction_date", "description", "category", "amount",
			"transaction_state", "active_status", "reoccurring", "reoccurring_type", "notes"},
		pgx.CopyFromRows(txRows),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("transaction bulk insert failed")
	}
	log.Info().Int64("transactions", copied).Msg("transactions seeded")

	if _, err := pool.Exec(ctx, `
		UPDATE t_account a SET
		    cleared = COALESCE((SELECT SUM(t.amount) FROM t_transaction t
		        WHERE t.account_name_owner = a.account_name_owner
		          AND t.transaction_state = 'cleared' AND t.active_status = TRUE), 0)`,
	); err != nil {
		log.Fatal().Err(err).Msg("account totals refresh failed")
	}
	log.Info().Msg("seeding complete")
}
