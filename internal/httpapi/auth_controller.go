package httpapi

import (
	stderrors "errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/stockroom-dev/stockroom/internal/auth"
)

// AuthController serves registration and login.
type AuthController struct {
	Auther *auth.Auther
	Logger auth.Logger
}

// TokenResponse is the body returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type RegisterRequest struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
			validation.Field(&r.Email, validation.Required, validation.Length(3, 100), is.Email),
			validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
			validation.Field(&r.PasswordConfirmation, validation.By(matchesPassword(r.Password))),
		)
	}, "Invalid registration payload")
}

// matchesPassword accepts an absent confirmation but rejects one that
// disagrees with the password.
func matchesPassword(password string) validation.RuleFunc {
	return func(value any) error {
		confirmation, _ := value.(string)
		if confirmation != "" && confirmation != password {
			return stderrors.New("must match password")
		}
		return nil
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Username, validation.Required),
			validation.Field(&r.Password, validation.Required),
		)
	}, "Invalid login payload")
}

// Register creates the account and returns a fresh session token.
func (a *AuthController) Register(c *fiber.Ctx) error {
	payload := new(RegisterRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Error parsing request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	token, err := a.Auther.Register(c.UserContext(), auth.UserCandidate{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(TokenResponse{AccessToken: token})
}

// Login verifies credentials and returns a session token.
func (a *AuthController) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Error parsing request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	token, err := a.Auther.Login(c.UserContext(), payload.Username, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{AccessToken: token})
}
