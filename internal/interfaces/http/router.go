package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Impuestos-api/internal/application/taxes"
	"github.com/jhoicas/Impuestos-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TaxUC       *taxes.UseCase
	AuthEnabled bool
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sin auth (desarrollo local) las rutas quedan abiertas y sin RBAC.
	var guards, batchGuards []fiber.Handler
	if deps.AuthEnabled {
		guards = []fiber.Handler{AuthMiddleware(deps.JWTSecret)}
		batchGuards = []fiber.Handler{RequireRole(jwt.RoleAdmin, jwt.RoleContable)}
	}

	taxGroup := api.Group("/tax", guards...)
	h := NewTaxHandler(deps.TaxUC)
	taxGroup.Post("/base", h.Base)
	taxGroup.Post("/breakdown", h.Breakdown)
	taxGroup.Post("/withholding-check", h.WithholdingCheck)
	taxGroup.Post("/batch", append(batchGuards, h.Batch)...)
}
