package http

import (
	"net/http"

	"schemamodel/internal/core/domain/model/record"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving server, the health check and
// the Swagger UI for the catalog.
func NewRouter(server *Server, catalog *record.Catalog) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = JSONSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	RegisterHandlers(e, server)

	RegisterDocs(catalog)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.InstanceName(SwaggerInstance),
		echoSwagger.URL("doc.json"),
	))

	return e
}
