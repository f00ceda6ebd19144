package postgres

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"resale/config"
	"resale/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB renders statements without a server and records them through the slog bridge.
func newDryRunDB(t *testing.T) (*gorm.DB, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	db, err := gorm.Open(
		gormpostgres.New(gormpostgres.Config{DSN: "host=localhost user=resale dbname=resale sslmode=disable"}),
		&gorm.Config{
			DryRun:               true,
			DisableAutomaticPing: true,
			Logger:               newGormSlogLogger(newBufferLogger(&buf), cfg),
		},
	)
	require.NoError(t, err)

	return db, &buf
}

func statements(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var sqls []string
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var line struct {
			SQL string `json:"sql"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		if line.SQL != "" {
			sqls = append(sqls, line.SQL)
		}
	}

	return sqls
}

func TestUserRepository_FindByEmail_Query(t *testing.T) {
	db, buf := newDryRunDB(t)

	_, err := NewUserRepository(db).FindByEmail(context.Background(), "a@x.io")
	require.NoError(t, err)

	sqls := statements(t, buf)
	require.Len(t, sqls, 1)
	assert.Contains(t, sqls[0], `FROM "users"`)
	assert.Contains(t, sqls[0], `"users"."email" = 'a@x.io'`)
	assert.Contains(t, sqls[0], "LIMIT 1")
}

func TestUserRepository_FindByEmails_EmptySkipsQuery(t *testing.T) {
	db, buf := newDryRunDB(t)

	users, err := NewUserRepository(db).FindByEmails(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, users)
	assert.Empty(t, statements(t, buf))
}

func TestCategoryRepository_FindAll_Query(t *testing.T) {
	db, buf := newDryRunDB(t)

	_, err := NewCategoryRepository(db).FindAll(context.Background())
	require.NoError(t, err)

	sqls := statements(t, buf)
	require.Len(t, sqls, 1)
	assert.Contains(t, sqls[0], `ORDER BY "categories"."name" ASC`)
}

func TestProductRepository_List_Query(t *testing.T) {
	db, buf := newDryRunDB(t)
	categoryID := uuid.New()
	notSold := false

	_, err := NewProductRepository(db).List(context.Background(), repository.ProductFilter{
		CategoryID: &categoryID,
		Sold:       &notSold,
	})
	require.NoError(t, err)

	sqls := statements(t, buf)
	require.Len(t, sqls, 1)
	assert.Contains(t, sqls[0], `"products"."category_id" = '`+categoryID.String()+`'`)
	assert.Contains(t, sqls[0], `"products"."sold" = false`)
	assert.NotContains(t, sqls[0], `"products"."advertised"`)
	assert.Contains(t, sqls[0], `ORDER BY "products"."created_at" DESC`)
}

func TestProductRepository_FindByIDForUpdate_Query(t *testing.T) {
	db, buf := newDryRunDB(t)
	id := uuid.New()

	_, err := NewProductRepository(db).FindByIDForUpdate(context.Background(), id)
	require.NoError(t, err)

	sqls := statements(t, buf)
	require.Len(t, sqls, 1)
	assert.Contains(t, sqls[0], `"products"."id" = '`+id.String()+`'`)
	assert.Contains(t, sqls[0], "FOR UPDATE")
}

func TestBookingRepository_FindActive_Query(t *testing.T) {
	db, buf := newDryRunDB(t)
	productID := uuid.New()

	_, err := NewBookingRepository(db).FindActive(context.Background(), "b@x.io", productID)
	require.NoError(t, err)

	sqls := statements(t, buf)
	require.Len(t, sqls, 1)
	assert.Contains(t, sqls[0], `"bookings"."buyer_email" = 'b@x.io'`)
	assert.Contains(t, sqls[0], `"bookings"."product_id" = '`+productID.String()+`'`)
	assert.Contains(t, sqls[0], `"bookings"."paid" = false`)
}

func TestBookingRepository_MarkPaid_GuardsOnUnpaid(t *testing.T) {
	db, buf := newDryRunDB(t)
	id := uuid.New()

	_, err := NewBookingRepository(db).MarkPaid(context.Background(), id, "pi_1")
	require.NoError(t, err)

	sqls := statements(t, buf)
	require.Len(t, sqls, 1)
	assert.Contains(t, sqls[0], `UPDATE "bookings"`)
	assert.Contains(t, sqls[0], `'pi_1'`)
	assert.Contains(t, sqls[0], `"bookings"."id" = '`+id.String()+`'`)
	assert.Contains(t, sqls[0], `"bookings"."paid" = false`)
}

func TestWishlistRepository_DeleteByProduct_Query(t *testing.T) {
	db, buf := newDryRunDB(t)
	productID := uuid.New()

	_, err := NewWishlistRepository(db).DeleteByProduct(context.Background(), productID)
	require.NoError(t, err)

	sqls := statements(t, buf)
	require.Len(t, sqls, 1)
	assert.Contains(t, sqls[0], `DELETE FROM "wishlists"`)
	assert.Contains(t, sqls[0], `"wishlists"."product_id" = '`+productID.String()+`'`)
}
