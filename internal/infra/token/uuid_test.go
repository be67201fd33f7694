//go:build unit

package token_test

import (
	"sync"
	"testing"

	"gift-commerce/internal/infra/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDFactory(t *testing.T) {
	f := token.NewUUIDFactory()

	t.Run("order numbers are 32 hex chars", func(t *testing.T) {
		num, err := f.OrderNumber()
		require.NoError(t, err)
		assert.Len(t, num, 32)
		assert.NotContains(t, num, "-")
	})

	t.Run("no collisions across concurrent callers", func(t *testing.T) {
		const workers, perWorker = 8, 500

		var (
			mu   sync.Mutex
			seen = make(map[string]struct{}, workers*perWorker*2)
			wg   sync.WaitGroup
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					tok, err := f.StagingToken()
					require.NoError(t, err)
					num, err := f.OrderNumber()
					require.NoError(t, err)

					mu.Lock()
					seen[tok] = struct{}{}
					seen[num] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker*2)
	})
}
