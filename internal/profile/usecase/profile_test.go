package usecase

import (
	"context"
	"testing"

	"bank-api/internal/model"
	"bank-api/pkg/authority"
	"bank-api/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhoAmI(t *testing.T) {
	uc := New(log.NewNop())

	tcs := map[string]struct {
		sc   model.Scope
		want []string
	}{
		"roles and scopes": {
			sc: model.Scope{
				UserID:      "alice",
				FirstName:   "Alice",
				LastName:    "Doe",
				Authorities: authority.Set{"ROLE_customer", "SCOPE_accounts:list"},
			},
			want: []string{"ROLE_customer", "SCOPE_accounts:list"},
		},
		"no authorities": {
			sc:   model.Scope{UserID: "bob", FirstName: "Alice", LastName: "Doe", Authorities: authority.Set{}},
			want: []string{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := uc.WhoAmI(context.Background(), tc.sc)
			require.NoError(t, err)
			assert.Equal(t, "Alice", got.FirstName)
			assert.Equal(t, "Doe", got.LastName)
			assert.Equal(t, tc.want, got.Authorities)
		})
	}
}
