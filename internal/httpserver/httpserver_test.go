package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bank-api/internal/middleware"
	"bank-api/pkg/log"
	"bank-api/pkg/scope"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestServer(t *testing.T) (*HTTPServer, scope.Manager) {
	t.Helper()

	mgr, err := scope.NewManager(testSecret, "", "")
	require.NoError(t, err)

	srv, err := New(log.NewNop(), Config{
		Port:     8080,
		Mode:     "test",
		Verifier: mgr,
		Security: SecurityConfig{
			Issuer:      "https://idp.test/realms/bank",
			JWKSURL:     "https://idp.test/realms/bank/certs",
			ResourceURL: "https://api.bank.test/sample/api/v1",
		},
		CORS: middleware.DefaultCORSConfig(),
		Docs: DocsConfig{
			AuthorizationURL: "https://idp.test/auth",
			TokenURL:         "https://idp.test/token",
			ClientID:         "swagger-ui",
			Host:             "api.bank.test",
		},
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv, mgr
}

func (srv *HTTPServer) do(method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew_Validate(t *testing.T) {
	mgr, err := scope.NewManager(testSecret, "", "")
	require.NoError(t, err)
	docs := DocsConfig{AuthorizationURL: "a", TokenURL: "t"}

	tcs := map[string]struct {
		cfg Config
		l   log.Logger
	}{
		"no logger":   {cfg: Config{Port: 1, Verifier: mgr, Docs: docs}},
		"no port":     {cfg: Config{Verifier: mgr, Docs: docs}, l: log.NewNop()},
		"no verifier": {cfg: Config{Port: 1, Docs: docs}, l: log.NewNop()},
		"no docs":     {cfg: Config{Port: 1, Verifier: mgr}, l: log.NewNop()},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.l, tc.cfg)
			assert.Error(t, err)
		})
	}
}

func TestAPI(t *testing.T) {
	srv, mgr := newTestServer(t)

	token := func(roles []string, scopes ...string) string {
		s, err := mgr.CreateToken(scope.TokenRequest{Subject: "alice", GivenName: "Alice", FamilyName: "Doe", Roles: roles, Scopes: scopes})
		require.NoError(t, err)
		return "Bearer " + s
	}
	customer := []string{"customer"}

	tcs := map[string]struct {
		path       string
		auth       string
		wantStatus int
		wantBody   string
	}{
		"ping anonymous": {
			path:       "/sample/api/v1/ping",
			wantStatus: http.StatusOK,
			wantBody:   `"pong"`,
		},
		"whoami anonymous": {
			path:       "/sample/api/v1/whoami",
			wantStatus: http.StatusUnauthorized,
		},
		"whoami": {
			path:       "/sample/api/v1/whoami",
			auth:       token(customer, "accounts:list"),
			wantStatus: http.StatusOK,
			wantBody:   `{"firstName":"Alice","lastName":"Doe","roles":["ROLE_customer","SCOPE_accounts:list"]}`,
		},
		"accounts anonymous": {
			path:       "/sample/api/v1/accounts",
			wantStatus: http.StatusUnauthorized,
		},
		"accounts with role only": {
			path:       "/sample/api/v1/accounts",
			auth:       token(customer),
			wantStatus: http.StatusForbidden,
		},
		"accounts": {
			path:       "/sample/api/v1/accounts",
			auth:       token(customer, "accounts:list"),
			wantStatus: http.StatusOK,
			wantBody:   `[{"accountNumber":"12345"},{"accountNumber":"ABCDE"}]`,
		},
		"account detail": {
			path:       "/sample/api/v1/accounts/ABCDE",
			auth:       token(customer, "accounts:details"),
			wantStatus: http.StatusOK,
			wantBody:   `{"accountNumber":"ABCDE"}`,
		},
		"account detail wrong holder": {
			path:       "/sample/api/v1/accounts/12349",
			auth:       token(customer, "accounts:details"),
			wantStatus: http.StatusForbidden,
		},
		"account detail needs details scope": {
			path:       "/sample/api/v1/accounts/12345",
			auth:       token(customer, "accounts:list"),
			wantStatus: http.StatusForbidden,
		},
		"account detail without customer role": {
			path:       "/sample/api/v1/accounts/12345",
			auth:       token([]string{"ops"}, "accounts:details"),
			wantStatus: http.StatusForbidden,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := srv.do(http.MethodGet, tc.path, tc.auth)
			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			}
			if w.Code == http.StatusUnauthorized {
				assert.Contains(t, w.Header().Get("WWW-Authenticate"),
					`resource_metadata="https://api.bank.test/.well-known/oauth-protected-resource/sample/api/v1"`)
			}
		})
	}
}

func TestOperationalEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := srv.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	// metrics are populated by a decision first
	srv.do(http.MethodGet, "/sample/api/v1/ping", "")
	w := srv.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `bank_api_authorization_decisions_total{decision="granted",rule="permitAll()"} 1`)
}

func TestSwaggerDoc(t *testing.T) {
	srv, _ := newTestServer(t)

	w := srv.do(http.MethodGet, SwaggerDocPath, "")
	require.Equal(t, http.StatusOK, w.Code)

	var sw spec.Swagger
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sw))

	assert.Equal(t, "api.bank.test", sw.Host)
	assert.Equal(t, "/sample/api/v1", sw.BasePath)

	scheme, ok := sw.SecurityDefinitions[SecuritySchemeName]
	require.True(t, ok)
	assert.Equal(t, "oauth2", scheme.Type)
	assert.Equal(t, "accessCode", scheme.Flow)
	assert.Equal(t, "https://idp.test/auth", scheme.AuthorizationURL)
	assert.Equal(t, "https://idp.test/token", scheme.TokenURL)
	assert.Equal(t, map[string]string{
		"accounts:list":    "Right to list accounts",
		"accounts:details": "Right to consult accounts details",
	}, scheme.Scopes)

	require.Contains(t, sw.Paths.Paths, "/accounts")
	get := sw.Paths.Paths["/accounts"].Get
	require.NotNil(t, get)
	assert.Equal(t, []map[string][]string{{SecuritySchemeName: {"accounts:list"}}}, get.Security)

	ui := srv.do(http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, ui.Code)
	assert.True(t, strings.Contains(ui.Body.String(), "swagger"))
}

func TestSwaggerDoc_MatchesRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	w := srv.do(http.MethodGet, SwaggerDocPath, "")
	require.Equal(t, http.StatusOK, w.Code)

	var sw spec.Swagger
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sw))

	documented := make([]string, 0, len(sw.Paths.Paths))
	for path := range sw.Paths.Paths {
		documented = append(documented, path)
	}

	var served []string
	for _, r := range srv.gin.Routes() {
		if !strings.HasPrefix(r.Path, Api+"/") {
			continue
		}
		segments := strings.Split(strings.TrimPrefix(r.Path, Api), "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		served = append(served, strings.Join(segments, "/"))
	}

	assert.ElementsMatch(t, served, documented)

	resp, ok := sw.Definitions["response.Resp"]
	require.True(t, ok)
	props := make([]string, 0, len(resp.Properties))
	for name := range resp.Properties {
		props = append(props, name)
	}
	assert.ElementsMatch(t, []string{"error_code", "message", "data"}, props)
}

func TestProtectedResourceMetadata(t *testing.T) {
	srv, _ := newTestServer(t)

	w := srv.do(http.MethodGet, ResourceDocPath+"/sample/api/v1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"resource": "https://api.bank.test/sample/api/v1",
		"authorization_servers": ["https://idp.test/realms/bank"],
		"bearer_methods_supported": ["header"],
		"jwks_uri": "https://idp.test/realms/bank/certs",
		"scopes_supported": ["accounts:details", "accounts:list"]
	}`, w.Body.String())
}

func TestResourceMetadataLocation(t *testing.T) {
	tcs := map[string]struct {
		resourceURL string
		wantPath    string
		wantURL     string
	}{
		"not configured": {
			wantPath: ResourceDocPath,
		},
		"origin only": {
			resourceURL: "https://api.bank.test",
			wantPath:    ResourceDocPath,
			wantURL:     "https://api.bank.test/.well-known/oauth-protected-resource",
		},
		"with path": {
			resourceURL: "https://api.bank.test/sample/api/v1",
			wantPath:    ResourceDocPath + "/sample/api/v1",
			wantURL:     "https://api.bank.test/.well-known/oauth-protected-resource/sample/api/v1",
		},
		"trailing slash": {
			resourceURL: "https://api.bank.test/sample/api/v1/",
			wantPath:    ResourceDocPath + "/sample/api/v1",
			wantURL:     "https://api.bank.test/.well-known/oauth-protected-resource/sample/api/v1",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			srv := &HTTPServer{security: SecurityConfig{ResourceURL: tc.resourceURL}}
			assert.Equal(t, tc.wantPath, srv.resourceMetadataPath())
			assert.Equal(t, tc.wantURL, srv.resourceMetadataURL())
		})
	}
}

func TestProtectedResourceMetadata_RootNotServedForPathResource(t *testing.T) {
	srv, _ := newTestServer(t)

	w := srv.do(http.MethodGet, ResourceDocPath, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedResourceMetadata_NotConfigured(t *testing.T) {
	srv := &HTTPServer{}
	assert.Equal(t, "", srv.resourceMetadataURL())
}
