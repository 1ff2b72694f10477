package httpserver

import (
	"net/http"

	accountHTTP "bank-api/internal/account/delivery/http"
	accountUC "bank-api/internal/account/usecase"
	"bank-api/internal/middleware"
	profileHTTP "bank-api/internal/profile/delivery/http"
	profileUC "bank-api/internal/profile/usecase"
	"bank-api/pkg/authority"
	"bank-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api             = "/sample/api/v1"
	SwaggerDocPath  = "/api-docs/swagger.json"
	ResourceDocPath = "/.well-known/oauth-protected-resource"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(srv.cors))

	doc, err := buildSwaggerDoc(srv.docs)
	if err != nil {
		return err
	}

	// Operational endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))
	srv.gin.GET(srv.resourceMetadataPath(), srv.protectedResource)

	// Swagger UI, reading the patched document
	srv.gin.GET(SwaggerDocPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
	})
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(SwaggerDocPath),
		ginSwagger.Oauth2DefaultClientID(srv.docs.ClientID),
	))

	mw := middleware.New(srv.l, srv.verifier, srv.metrics, middleware.Config{
		Realm:               srv.security.Issuer,
		ResourceMetadataURL: srv.resourceMetadataURL(),
	})

	api := srv.gin.Group(Api)
	api.GET("/ping", mw.Authorize(authority.PermitAll()), srv.ping)

	profileH := profileHTTP.New(srv.l, profileUC.New(srv.l), srv.discord)
	profileH.RegisterRoutes(api, mw)

	accountH := accountHTTP.New(srv.l, accountUC.New(srv.l), srv.discord)
	accountH.RegisterRoutes(api, mw)

	return nil
}

// ping
// @Summary Ping
// @Description Unauthenticated liveness probe of the API surface.
// @Tags Sample
// @Produce json
// @Success 200 {string} string "pong"
// @Router /ping [GET]
func (srv *HTTPServer) ping(c *gin.Context) {
	response.Body(c, "pong")
}
