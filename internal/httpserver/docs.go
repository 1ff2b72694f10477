package httpserver

import (
	"encoding/json"
	"fmt"
	"sort"

	"bank-api/docs"
	"bank-api/internal/account"

	"github.com/go-openapi/spec"
)

// SecuritySchemeName names the OAuth2 scheme referenced by the API operations.
const SecuritySchemeName = "bank_auth"

// buildSwaggerDoc renders the generated document and replaces the OAuth2
// endpoints and host with the configured ones.
func buildSwaggerDoc(cfg DocsConfig) ([]byte, error) {
	raw := docs.SwaggerInfo.ReadDoc()

	var sw spec.Swagger
	if err := json.Unmarshal([]byte(raw), &sw); err != nil {
		return nil, fmt.Errorf("failed to parse swagger doc: %w", err)
	}

	if cfg.Host != "" {
		sw.Host = cfg.Host
	}

	scheme := spec.OAuth2AccessToken(cfg.AuthorizationURL, cfg.TokenURL)
	names := make([]string, 0, len(account.ScopeDescriptions))
	for name := range account.ScopeDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		scheme.AddScope(name, account.ScopeDescriptions[name])
	}

	if sw.SecurityDefinitions == nil {
		sw.SecurityDefinitions = spec.SecurityDefinitions{}
	}
	sw.SecurityDefinitions[SecuritySchemeName] = scheme

	out, err := json.Marshal(&sw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode swagger doc: %w", err)
	}
	return out, nil
}
