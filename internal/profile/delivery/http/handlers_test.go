package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-api/internal/middleware"
	"bank-api/internal/profile/usecase"
	"bank-api/pkg/log"
	"bank-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhoAmI(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mgr, err := scope.NewManager("0123456789abcdef0123456789abcdef", "", "")
	require.NoError(t, err)

	l := log.NewNop()
	r := gin.New()
	New(l, usecase.New(l), nil).RegisterRoutes(r.Group("/sample/api/v1"), middleware.New(l, mgr, nil, middleware.Config{}))

	token, err := mgr.CreateToken(scope.TokenRequest{
		Subject:    "alice",
		GivenName:  "Alice",
		FamilyName: "Doe",
		Roles:      []string{"customer"},
		Scopes:     []string{"accounts:list", "accounts:details"},
	})
	require.NoError(t, err)

	tcs := map[string]struct {
		auth       string
		wantStatus int
		wantBody   string
	}{
		"authenticated": {
			auth:       "Bearer " + token,
			wantStatus: http.StatusOK,
			wantBody:   `{"firstName":"Alice","lastName":"Doe","roles":["ROLE_customer","SCOPE_accounts:list","SCOPE_accounts:details"]}`,
		},
		"anonymous": {
			wantStatus: http.StatusUnauthorized,
		},
		"bad token": {
			auth:       "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sample/api/v1/whoami", nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestWhoAmI_NoAuthorities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mgr, err := scope.NewManager("0123456789abcdef0123456789abcdef", "", "")
	require.NoError(t, err)

	l := log.NewNop()
	r := gin.New()
	New(l, usecase.New(l), nil).RegisterRoutes(r.Group(""), middleware.New(l, mgr, nil, middleware.Config{}))

	token, err := mgr.CreateToken(scope.TokenRequest{Subject: "bob"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"firstName":"","lastName":"","roles":[]}`, w.Body.String())
}
