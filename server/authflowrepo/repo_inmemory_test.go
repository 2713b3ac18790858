package authflowrepo_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-oidc-webapp/server/authflowrepo"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo(t *testing.T) {
	t.Run("upsert then get", func(t *testing.T) {
		repo := authflowrepo.NewInMemoryRepo()
		stored := authflowrepo.AuthFlowState{
			Nonce:        "nonce-1",
			CodeVerifier: "verifier-1",
			ReturnURL:    "/profile",
			CreatedAt:    time.Now(),
		}
		require.NoError(t, repo.Upsert("state-1", stored))

		got, err := repo.Get("state-1")
		require.NoError(t, err)
		require.Equal(t, stored, got)
	})

	t.Run("unknown state", func(t *testing.T) {
		repo := authflowrepo.NewInMemoryRepo()
		_, err := repo.Get("missing")
		require.Error(t, err)
	})

	t.Run("expired state is rejected", func(t *testing.T) {
		repo := authflowrepo.NewInMemoryRepo()
		require.NoError(t, repo.Upsert("state-1", authflowrepo.AuthFlowState{
			Nonce:     "nonce-1",
			CreatedAt: time.Now().Add(-authflowrepo.StateTTL - time.Minute),
		}))

		_, err := repo.Get("state-1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "expired")
	})

	t.Run("delete consumes the state", func(t *testing.T) {
		repo := authflowrepo.NewInMemoryRepo()
		require.NoError(t, repo.Upsert("state-1", authflowrepo.AuthFlowState{Nonce: "n", CreatedAt: time.Now()}))
		require.NoError(t, repo.Delete("state-1"))

		_, err := repo.Get("state-1")
		require.Error(t, err)
	})

	t.Run("empty state is rejected", func(t *testing.T) {
		repo := authflowrepo.NewInMemoryRepo()
		require.Error(t, repo.Upsert("", authflowrepo.AuthFlowState{}))
	})
}
