package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>Prefer API</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#0ea5e9,#6366f1); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
main { flex: 1; padding: 60px 20px; text-align: center; }
code { background: rgba(255,255,255,0.15); padding: 2px 6px; border-radius: 4px; }
ul { list-style: none; padding: 0; line-height: 2; }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<main>
  <h1>Prefer</h1>
  <p>Day-trip planning API: sign up, set your travel preferences, and generate personalized itineraries.</p>
  <ul>
    <li><code>POST /v1/auth/signup</code> — create an account</li>
    <li><code>GET /v1/preferences/options</code> — wizard option catalog</li>
    <li><code>POST /v1/trips/plan</code> — generate day-trip plans</li>
    <li><code>GET /v1/destinations/recommended</code> — dashboard suggestions</li>
  </ul>
</main>
<footer>Prefer API</footer>
</body>
</html>`

func RegisterPages(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})
}
