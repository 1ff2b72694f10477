package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleEvaluate(t *testing.T) {
	listAccounts := All(HasScope("accounts:list"), HasRole("customer"))

	tcs := map[string]struct {
		rule Rule
		set  Set
		want bool
	}{
		"list accounts granted": {
			rule: listAccounts,
			set:  Set{"ROLE_customer", "SCOPE_accounts:list"},
			want: true,
		},
		"list accounts missing scope": {
			rule: listAccounts,
			set:  Set{"ROLE_customer"},
			want: false,
		},
		"list accounts missing role": {
			rule: listAccounts,
			set:  Set{"SCOPE_accounts:list"},
			want: false,
		},
		"authenticated with empty set": {
			rule: Authenticated(),
			set:  Set{},
			want: true,
		},
		"authenticated without principal": {
			rule: Authenticated(),
			set:  nil,
			want: false,
		},
		"permit all without principal": {
			rule: PermitAll(),
			set:  nil,
			want: true,
		},
		"any matches second": {
			rule: Any(HasRole("admin"), HasRole("customer")),
			set:  Set{"ROLE_customer"},
			want: true,
		},
		"any with no rules": {
			rule: Any(),
			set:  Set{"ROLE_customer"},
			want: false,
		},
		"all with no rules": {
			rule: All(),
			set:  Set{},
			want: true,
		},
		"not inverts": {
			rule: Not(HasRole("banned")),
			set:  Set{"ROLE_customer"},
			want: true,
		},
		"raw authority": {
			rule: HasAuthority("SCOPE_accounts:details"),
			set:  Set{"SCOPE_accounts:details"},
			want: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Evaluate(tc.set))
		})
	}
}

func TestRuleString(t *testing.T) {
	tcs := map[string]struct {
		rule Rule
		want string
	}{
		"all": {
			rule: All(HasScope("accounts:list"), HasRole("customer")),
			want: "hasAuthority('SCOPE_accounts:list') and hasAuthority('ROLE_customer')",
		},
		"nested": {
			rule: Any(All(HasRole("a"), HasRole("b")), Not(HasScope("c"))),
			want: "(hasAuthority('ROLE_a') and hasAuthority('ROLE_b')) or not hasAuthority('SCOPE_c')",
		},
		"authenticated": {
			rule: Authenticated(),
			want: "isAuthenticated()",
		},
		"permit all": {
			rule: PermitAll(),
			want: "permitAll()",
		},
		"empty all": {
			rule: All(),
			want: "permitAll()",
		},
		"empty any": {
			rule: Any(),
			want: "denyAll()",
		},
		"empty operands": {
			rule: Any(All(), Not(Any())),
			want: "permitAll() or not denyAll()",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.String())
		})
	}
}
