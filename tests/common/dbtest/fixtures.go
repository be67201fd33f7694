//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestMember(t *testing.T, db DBLike, providerID, name string) uuid.UUID {
	t.Helper()

	memberID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO members (id, provider_id, name, profile_url) VALUES ($1, $2, $3, $4) ON CONFLICT (provider_id) DO NOTHING",
		memberID, providerID, name, "https://img.example/"+providerID+".png")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM members WHERE provider_id = $1", providerID).Scan(&memberID)
	}

	return memberID
}

func CreateTestProduct(t *testing.T, db DBLike, name string, price int64) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var brandID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM brands WHERE name = $1 LIMIT 1", DefaultBrandName).Scan(&brandID)
	require.NoError(t, err)

	productID := uuid.New()
	_, err = db.Exec(ctx, "INSERT INTO products (id, brand_id, name, photo, price) VALUES ($1, $2, $3, $4, $5)",
		productID, brandID, name, "https://img.example/"+productID.String()+".png", price)
	require.NoError(t, err)

	return productID
}

// CreateTestOptionDetail creates an option with a single detail and returns the detail id.
func CreateTestOptionDetail(t *testing.T, db DBLike, productID uuid.UUID, optionName, detailName string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	optionID, detailID := uuid.New(), uuid.New()

	_, err := db.Exec(ctx, "INSERT INTO options (id, product_id, name) VALUES ($1, $2, $3)", optionID, productID, optionName)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO option_details (id, option_id, name) VALUES ($1, $2, $3)", detailID, optionID, detailName)
	require.NoError(t, err)

	return detailID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

const DefaultBrandName = "Default Brand"

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO brands (id, name)
		SELECT gen_random_uuid(), $1
		WHERE NOT EXISTS (SELECT 1 FROM brands WHERE name = $1);
	`, DefaultBrandName)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
