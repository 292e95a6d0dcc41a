// Package router registers the HTTP routes.
package router

import (
	"recipebox/internal/delivery/http/middleware"
	"recipebox/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	RecipeHandler     *handler.RecipeHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	recipeHandler     *handler.RecipeHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		recipeHandler:     params.RecipeHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every other route sees the cookie's session, anonymous or not.
	app := e.Group("", r.sessionMiddleware.Load)
	{
		app.POST("/signup", r.userHandler.Signup)
		app.POST("/login", r.userHandler.Login)
		app.GET("/check_session", r.userHandler.CheckSession)
		app.DELETE("/logout", r.userHandler.Logout)
	}

	recipes := app.Group("/recipes", r.sessionMiddleware.RequireUser)
	{
		recipes.GET("", r.recipeHandler.List)
		recipes.POST("", r.recipeHandler.Create)
	}
}
