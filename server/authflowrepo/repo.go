package authflowrepo

import "time"

// StateTTL is how long a login flow may sit between the redirect to the
// provider and the callback before its state is rejected.
const StateTTL = 10 * time.Minute

// AuthFlowState is the per-login material minted at /login and consumed
// exactly once at /callback.
type AuthFlowState struct {
	Nonce        string
	CodeVerifier string
	ReturnURL    string
	CreatedAt    time.Time
}

// Expired reports whether the flow state has outlived StateTTL.
func (s AuthFlowState) Expired(now time.Time) bool {
	return now.After(s.CreatedAt.Add(StateTTL))
}

type Repo interface {
	Upsert(state string, flowState AuthFlowState) error
	Get(state string) (AuthFlowState, error)
	Delete(state string) error
}
