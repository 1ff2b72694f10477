// Command token-generator mints HS256 bearer tokens for local development
// against a server running with security.secret_key.
package main

import (
	"fmt"
	"os"
	"time"

	"bank-api/pkg/scope"

	"github.com/caarlos0/env/v9"
)

type settings struct {
	SecretKey  string        `env:"SECURITY_SECRET_KEY,required"`
	Issuer     string        `env:"SECURITY_ISSUER"`
	Audience   string        `env:"SECURITY_AUDIENCE"`
	Subject    string        `env:"TOKEN_SUBJECT" envDefault:"alice"`
	GivenName  string        `env:"TOKEN_GIVEN_NAME" envDefault:"Alice"`
	FamilyName string        `env:"TOKEN_FAMILY_NAME" envDefault:"Doe"`
	Roles      []string      `env:"TOKEN_ROLES" envSeparator:"," envDefault:"customer"`
	Scopes     []string      `env:"TOKEN_SCOPES" envSeparator:"," envDefault:"accounts:list,accounts:details"`
	TTL        time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

func main() {
	var s settings
	if err := env.Parse(&s); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to parse settings:", err)
		os.Exit(1)
	}

	mgr, err := scope.NewManager(s.SecretKey, s.Issuer, s.Audience)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create token manager:", err)
		os.Exit(1)
	}

	token, err := mgr.CreateToken(scope.TokenRequest{
		Subject:    s.Subject,
		GivenName:  s.GivenName,
		FamilyName: s.FamilyName,
		Roles:      s.Roles,
		Scopes:     s.Scopes,
		TTL:        s.TTL,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
