package readstore

import (
	"context"

	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/pkg/pgconv"
	"gift-commerce/internal/usecase/shared"
)

type MemberReadQueries interface {
	GetMemberByProviderID(ctx context.Context, db query.DBTX, providerID string) (query.MemberRow, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      query.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db query.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *MemberReadStore) FindByProviderID(ctx context.Context, providerID string) (*shared.MemberSnapshot, error) {
	row, err := s.queries.GetMemberByProviderID(ctx, s.db, providerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by provider id", err)
	}

	return &shared.MemberSnapshot{
		ID:         row.ID,
		ProviderID: row.ProviderID,
		Name:       row.Name,
		ProfileURL: row.ProfileURL,
	}, nil
}
