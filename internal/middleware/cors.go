package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS builds cross-origin middleware from a comma-separated origin list,
// typically the FRONTEND_URL config value.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	origins := parseOrigins(frontendURL)

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	return c.Handler
}

func parseOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:3000"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, strings.TrimSuffix(origin, "/"))
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
