package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"medref/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, doctors service.DoctorService, patients service.PatientService, suggestions service.SuggestionService) {
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

	// Health endpoints: readiness checks DB connectivity, liveness does not
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Post("/doctors", RegisterDoctor(doctors))
	api.Delete("/doctors/:id", DeleteDoctor(doctors))

	api.Post("/patients", RegisterPatient(patients))
	api.Get("/patients/:id", GetPatient(patients))
	api.Delete("/patients/:id", DeletePatient(patients))

	api.Get("/suggestions/:patientId", SuggestDoctors(suggestions))
}
