package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/stockroom-dev/stockroom/internal/auth"
	"github.com/stockroom-dev/stockroom/internal/goods"
)

// GoodsController serves the catalog routes.
type GoodsController struct {
	Catalog *goods.Catalog
	Logger  auth.Logger
}

type CreateGoodRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Validate will run validation rules
func (r CreateGoodRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
			validation.Field(&r.Price, validation.Min(0.0)),
		)
	}, "Invalid good payload")
}

type UpdateGoodRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// Validate will run validation rules
func (r UpdateGoodRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Name, validation.Length(1, 200)),
			validation.Field(&r.Price, validation.Min(0.0)),
		)
	}, "Invalid good payload")
}

// Create adds a catalog item.
func (g *GoodsController) Create(c *fiber.Ctx) error {
	payload := new(CreateGoodRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Error parsing request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	good, err := g.Catalog.Create(c.UserContext(), goods.GoodCandidate{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(good)
}

// List returns the whole catalog. This route is public.
func (g *GoodsController) List(c *fiber.Ctx) error {
	items, err := g.Catalog.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Show returns one item by id.
func (g *GoodsController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	good, err := g.Catalog.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(good)
}

// Update applies a partial update to an item.
func (g *GoodsController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(UpdateGoodRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Error parsing request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	good, err := g.Catalog.Update(c.UserContext(), id, goods.GoodChanges{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(good)
}

// Delete removes an item.
func (g *GoodsController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := g.Catalog.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
