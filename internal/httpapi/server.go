// Package httpapi exposes the fiber surface of the stockroom service:
// registration and login, admin user management, and the goods
// catalog routes with their role requirements.
package httpapi

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/stockroom-dev/stockroom/internal/auth"
	"github.com/stockroom-dev/stockroom/internal/goods"
)

// Dependencies carries the wired collaborators for the server.
type Dependencies struct {
	Directory *auth.Directory
	Auther    *auth.Auther
	Tokens    auth.TokenService
	Guard     *auth.AccessGuard
	Catalog   *goods.Catalog
	Logger    auth.Logger
}

// Server owns the fiber app and its routes.
type Server struct {
	app    *fiber.App
	logger auth.Logger
}

// New builds the app with the central error handler and registers
// every route with its authentication and role requirements.
func New(deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	app := fiber.New(fiber.Config{
		AppName:      "stockroom",
		ErrorHandler: errorHandler(logger),
	})

	s := &Server{app: app, logger: logger}
	s.registerRoutes(deps)

	return s
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes(deps Dependencies) {
	authController := &AuthController{Auther: deps.Auther, Logger: s.logger}
	usersController := &UsersController{Directory: deps.Directory, Logger: s.logger}
	goodsController := &GoodsController{Catalog: deps.Catalog, Logger: s.logger}

	protected := auth.Protected(deps.Tokens, deps.Directory)

	adminOnly := auth.RequireRoles(deps.Guard, auth.NewRoleRequirement(auth.RoleAdmin))
	editorsAndUp := auth.RequireRoles(deps.Guard, auth.NewRoleRequirement(auth.RoleAdmin, auth.RoleEditor))

	authGroup := s.app.Group("/auth")
	authGroup.Post("/register", authController.Register)
	authGroup.Post("/login", authController.Login)

	usersGroup := s.app.Group("/users", protected, adminOnly)
	usersGroup.Post("/", usersController.Create)
	usersGroup.Get("/", usersController.List)
	usersGroup.Get("/:id", usersController.Show)
	usersGroup.Put("/:id", usersController.Update)
	usersGroup.Delete("/:id", usersController.Delete)

	goodsGroup := s.app.Group("/goods")
	goodsGroup.Get("/", goodsController.List)
	goodsGroup.Post("/", protected, editorsAndUp, goodsController.Create)
	goodsGroup.Get("/:id", protected, goodsController.Show)
	goodsGroup.Put("/:id", protected, editorsAndUp, goodsController.Update)
	goodsGroup.Delete("/:id", protected, adminOnly, goodsController.Delete)
}

// errorHandler maps rich errors to responses. Authentication failures
// share one uniform body regardless of cause; internals never leak.
func errorHandler(logger auth.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var richErr *errors.Error
		if !errors.As(err, &richErr) {
			var fiberErr *fiber.Error
			if stderrors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{
					"message":     fiberErr.Message,
					"status_code": fiberErr.Code,
				})
			}
			richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred")
		}

		status := auth.HTTPStatus(richErr)

		switch richErr.Category {
		case errors.CategoryAuth:
			return c.Status(status).JSON(fiber.Map{
				"message":     "Unauthorized",
				"status_code": status,
			})
		case errors.CategoryAuthz:
			return c.Status(status).JSON(fiber.Map{
				"message":     "Forbidden",
				"status_code": status,
			})
		case errors.CategoryInternal, errors.CategoryOperation:
			logger.Error("request failed: %v", err)
			return c.Status(status).JSON(fiber.Map{
				"message":     "Internal server error",
				"status_code": status,
			})
		}

		body := fiber.Map{
			"message":     richErr.Message,
			"status_code": status,
		}
		if richErr.TextCode != "" {
			body["text_code"] = richErr.TextCode
		}

		return c.Status(status).JSON(body)
	}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
