package httpserver

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"bank-api/internal/account"

	"github.com/gin-gonic/gin"
)

// protectedResourceMetadata is the RFC 9728 OAuth protected resource document.
type protectedResourceMetadata struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers,omitempty"`
	BearerMethodsSupported []string `json:"bearer_methods_supported"`
	JWKSURI                string   `json:"jwks_uri,omitempty"`
	ScopesSupported        []string `json:"scopes_supported"`
}

func (srv *HTTPServer) protectedResource(c *gin.Context) {
	if srv.security.ResourceURL == "" {
		c.Status(http.StatusNotFound)
		return
	}

	scopes := make([]string, 0, len(account.ScopeDescriptions))
	for name := range account.ScopeDescriptions {
		scopes = append(scopes, name)
	}
	sort.Strings(scopes)

	md := protectedResourceMetadata{
		Resource:               srv.security.ResourceURL,
		BearerMethodsSupported: []string{"header"},
		JWKSURI:                srv.security.JWKSURL,
		ScopesSupported:        scopes,
	}
	if srv.security.Issuer != "" {
		md.AuthorizationServers = []string{srv.security.Issuer}
	}

	c.JSON(http.StatusOK, md)
}

// resourceMetadataPath is the well-known suffix followed by the path of the
// resource URL, so "https://host/sample/api/v1" is described at
// "/.well-known/oauth-protected-resource/sample/api/v1".
func (srv *HTTPServer) resourceMetadataPath() string {
	u, err := url.Parse(srv.security.ResourceURL)
	if err != nil {
		return ResourceDocPath
	}
	return ResourceDocPath + strings.TrimSuffix(u.Path, "/")
}

// resourceMetadataURL is the absolute URL of the metadata document on the
// resource's origin. Empty when no resource URL is configured.
func (srv *HTTPServer) resourceMetadataURL() string {
	if srv.security.ResourceURL == "" {
		return ""
	}
	u, err := url.Parse(srv.security.ResourceURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: srv.resourceMetadataPath()}).String()
}
