// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strings"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/delivery/http/middleware"
	"recipebox/internal/delivery/http/response"
	"recipebox/internal/delivery/http/validator"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"image_url"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserHandler serves signup, login, logout and session checks.
type UserHandler struct {
	accounts          usecase.AccountUsecase
	sessions          usecase.SessionUsecase
	sessionMiddleware *middleware.SessionMiddleware
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Accounts          usecase.AccountUsecase
	Sessions          usecase.SessionUsecase
	SessionMiddleware *middleware.SessionMiddleware
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accounts:          params.Accounts,
		sessions:          params.Sessions,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// Signup creates an account and logs it in.
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrCredentialsRequired.WrapMessage("missing " + strings.Join(validator.FailedFields(err), ", "))
	}

	user, err := h.accounts.Signup(c.Request().Context(), usecase.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.establish(c, user.ID); err != nil {
		return err
	}

	return response.Created(c, newUserView(user))
}

// CheckSession returns the logged-in user.
func (h *UserHandler) CheckSession(c echo.Context) error {
	userID, ok := deliverycontext.SessionUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	user, err := h.accounts.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserView(user))
}

// Login verifies credentials and attaches the user to the session.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	user, err := h.accounts.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.establish(c, user.ID); err != nil {
		return err
	}

	return response.OK(c, newUserView(user))
}

// Logout deletes the session and expires its cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	if _, ok := deliverycontext.SessionUserID(c); !ok {
		return domainerrors.ErrNotAuthorized
	}

	if err := h.sessions.Clear(c.Request().Context(), deliverycontext.GetSession(c)); err != nil {
		return errors.WithStack(err)
	}
	h.sessionMiddleware.ExpireCookie(c)

	return response.NoContent(c)
}

func (h *UserHandler) establish(c echo.Context, userID uint) error {
	out, err := h.sessions.Establish(c.Request().Context(), deliverycontext.GetSession(c), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.SetSession(c, out.Session)
	h.sessionMiddleware.WriteCookie(c, out.Token, h.sessions.TTL())

	return nil
}
