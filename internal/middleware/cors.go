package middleware

import (
	"giftshop/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS accepts cross-origin requests from the configured origins with any
// method and any header. The default origin list is "*".
// TODO: restrict CORS_ALLOW_ORIGINS to the storefront domain once it is deployed.
func CORS(cfg config.CORSConfig) fiber.Handler {
	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		// Empty AllowHeaders reflects the request's Access-Control-Request-Headers.
		AllowHeaders: "",
	})
}
