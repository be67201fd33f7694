//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/readstore"
	readstoremock "gift-commerce/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}

func TestCatalogReadStore_PricesByProductIDs(t *testing.T) {
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()

	t.Run("success: unknown ids are absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		db := &mockDBTX{}

		mockQueries.EXPECT().GetPricesByProductIDs(ctx, db, []uuid.UUID{known, unknown}).
			Return([]query.ProductPriceRow{{ID: known, Price: 4500}}, nil)

		prices, err := readstore.NewCatalogReadStore(mockQueries, db).PricesByProductIDs(ctx, []uuid.UUID{known, unknown})
		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]int64{known: 4500}, prices)
	})

	t.Run("success: empty input skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)

		prices, err := readstore.NewCatalogReadStore(mockQueries, &mockDBTX{}).PricesByProductIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, prices)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		db := &mockDBTX{}

		mockQueries.EXPECT().GetPricesByProductIDs(ctx, db, gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := readstore.NewCatalogReadStore(mockQueries, db).PricesByProductIDs(ctx, []uuid.UUID{known})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogReadStore_ProductsAndOptions(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
	db := &mockDBTX{}
	store := readstore.NewCatalogReadStore(mockQueries, db)

	productID, detailID, optionID := uuid.New(), uuid.New(), uuid.New()
	mockQueries.EXPECT().GetProductSummariesByIDs(ctx, db, []uuid.UUID{productID}).
		Return([]query.ProductSummaryRow{{ID: productID, Name: "Americano", Photo: "p.png", Price: 4500, BrandName: "Bean"}}, nil)
	mockQueries.EXPECT().GetOptionDetailsByIDs(ctx, db, []uuid.UUID{detailID}).
		Return([]query.OptionDetailRow{{ID: detailID, OptionID: optionID, OptionName: "Size", Name: "Large"}}, nil)

	products, err := store.ProductsByIDs(ctx, []uuid.UUID{productID})
	require.NoError(t, err)
	require.Contains(t, products, productID)
	assert.Equal(t, "Bean", products[productID].BrandName)

	details, err := store.OptionDetailsByIDs(ctx, []uuid.UUID{detailID})
	require.NoError(t, err)
	require.Contains(t, details, detailID)
	assert.Equal(t, "Size", details[detailID].OptionName)
	assert.Equal(t, optionID, details[detailID].OptionID)
}

func TestMemberReadStore_FindByProviderID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        query.MemberRow
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: member found", row: query.MemberRow{ID: uuid.New(), ProviderID: "kakao-1", Name: "Buyer"}},
		{name: "error: member not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database failure", err: errors.New("timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockMemberReadQueries(ctrl)
			db := &mockDBTX{}
			mockQueries.EXPECT().GetMemberByProviderID(ctx, db, "kakao-1").Return(tc.row, tc.err)

			member, err := readstore.NewMemberReadStore(mockQueries, db).FindByProviderID(ctx, "kakao-1")
			if tc.expectKind != "" {
				assert.Nil(t, member)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.row.ID, member.ID)
			assert.Equal(t, "Buyer", member.Name)
		})
	}
}
