package httpapi

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/stockroom-dev/stockroom/internal/auth"
)

// UsersController serves the admin only user management routes.
type UsersController struct {
	Directory *auth.Directory
	Logger    auth.Logger
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r CreateUserRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
			validation.Field(&r.Email, validation.Required, validation.Length(3, 100), is.Email),
			validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
		)
	}, "Invalid user payload")
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate will run validation rules
func (r UpdateUserRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Username, validation.Length(1, 100)),
			validation.Field(&r.Email, validation.Length(3, 100), is.Email),
			validation.Field(&r.Password, validation.Length(6, 100)),
		)
	}, "Invalid user payload")
}

// Create adds an account on behalf of an administrator.
func (u *UsersController) Create(c *fiber.Ctx) error {
	payload := new(CreateUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Error parsing request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, err := u.Directory.Create(c.UserContext(), auth.UserCandidate{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// List returns every account, hashes redacted by the model.
func (u *UsersController) List(c *fiber.Ctx) error {
	users, err := u.Directory.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Show returns one account by id.
func (u *UsersController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := u.Directory.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// Update applies a partial update to an account.
func (u *UsersController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(UpdateUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Error parsing request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, err := u.Directory.Update(c.UserContext(), id, auth.UserChanges{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// Delete removes an account.
func (u *UsersController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := u.Directory.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errors.New("id must be a number", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest)
	}
	return id, nil
}
