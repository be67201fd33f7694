//go:build unit || e2e

package authtest

import (
	"testing"

	"gift-commerce/internal/pkg/config"
	"gift-commerce/tests/common/dbtest"

	"github.com/google/uuid"
)

// CreateBuyer stores a member and returns its id with a token for its provider id.
func CreateBuyer(t *testing.T, db dbtest.DBLike, cfg config.JWTConfig, providerID, name string) (uuid.UUID, string) {
	t.Helper()
	memberID := dbtest.CreateTestMember(t, db, providerID, name)
	return memberID, NewJWTHelper(cfg).GenerateToken(t, providerID)
}
