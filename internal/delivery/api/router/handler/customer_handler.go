package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	SessionUC  usecase.SessionUsecase
	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves the customer account and session endpoints.
type CustomerHandler struct {
	sessionUC  usecase.SessionUsecase
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		sessionUC:  params.SessionUC,
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CreateSessionRequest is the login form.
type CreateSessionRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=254"`
	FullName string `json:"full_name" form:"full_name" validate:"max=255"`
	Password string `json:"password" form:"password" validate:"required"`
}

// CreateSession authenticates a customer and responds with {"token": ...}.
func (h *CustomerHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("failed to bind session request")
	}

	// Missing fields are reported exactly like wrong credentials.
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidCredentials.WrapMessage("email and password are required")
	}

	output, err := h.sessionUC.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.Wrap(err, "failed to authenticate customer")
	}

	return response.Success(c, http.StatusOK, output)
}

// Register creates a customer account and responds with {"result":"okie"}.
func (h *CustomerHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("failed to bind register request")
	}

	if err := c.Validate(&req); err != nil {
		return registrationValidationError(err)
	}

	_, err := h.customerUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.Wrap(err, "failed to register customer")
	}

	return response.Result(c, "okie")
}

// registrationValidationError keeps "Email and password are required" for missing
// fields and reports length violations separately.
func registrationValidationError(err error) error {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.ErrInvalidRegistration.WrapMessage(err.Error())
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}
	}

	return domainerrors.ErrInvalidRegistration.WrapMessage(err.Error())
}

// List is the placeholder customer listing.
func (h *CustomerHandler) List(c echo.Context) error {
	return c.String(http.StatusOK, "respond with a resource")
}
