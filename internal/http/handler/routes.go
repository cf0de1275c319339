package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, analysisSvc service.AnalysisService, authSvc service.AuthService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/", Root())
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	app.Post("/analyze", AnalyzeResume(analysisSvc))
	app.Post("/analyze/bulk", AnalyzeBulk(analysisSvc))

	authGroup := app.Group("/api/auth")
	authGroup.Post("/signup", Signup(authSvc))
	authGroup.Post("/login", Login(authSvc))
	authGroup.Post("/refresh", RefreshToken(authSvc))
	authGroup.Get("/me", Me(authSvc))
	authGroup.Get("/verify", VerifyToken(authSvc))
}
