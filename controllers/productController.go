package controllers

import (
	"optica-backend/middlewares"
	"optica-backend/models"
	"optica-backend/store"
	"optica-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProductInput struct {
	SKU          string  `json:"sku" validate:"required"`
	Brand        string  `json:"brand" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=frame single-vision bifocal progressive contact"`
	Category     string  `json:"category" validate:"required,oneof=frames lenses"`
	CostPrice    float64 `json:"cost_price" validate:"gte=0"`
	SellingPrice float64 `json:"selling_price" validate:"gte=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
}

// StockAdjustInput is the stock modal: a signed, non-zero integer delta.
type StockAdjustInput struct {
	Delta int `json:"delta" validate:"required"`
}

func (input ProductInput) toModel(id string) (models.Product, error) {
	t := models.ProductType(input.Type)
	category := models.ProductCategory(input.Category)
	if models.CategoryFor(t) != category {
		return models.Product{}, fiber.NewError(fiber.StatusBadRequest, "category does not match product type")
	}
	return models.Product{
		Id:           id,
		SKU:          input.SKU,
		Brand:        input.Brand,
		Model:        input.Model,
		Type:         t,
		Category:     category,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		Stock:        input.Stock,
	}, nil
}

func CreateProduct(c *fiber.Ctx) error {
	var input ProductInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	product, err := input.toModel("")
	if err != nil {
		return err
	}

	st := store.New(middlewares.Tx(c))
	created, err := st.CreateProduct(product)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create product")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func GetProducts(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))
	products, err := st.Products()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list products")
	}

	return c.JSON(fiber.Map{
		"products": products,
		"message":  "success",
	})
}

func GetProduct(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))
	product, err := st.Product(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func UpdateProduct(c *fiber.Ctx) error {
	var input ProductInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	st := store.New(middlewares.Tx(c))
	existing, err := st.Product(c.Params("id"))
	if err != nil {
		return err
	}

	updated, err := input.toModel(existing.Id)
	if err != nil {
		return err
	}
	if err := st.UpdateProduct(updated); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update product")
	}

	return c.JSON(updated)
}

// AdjustStock applies a signed delta to a product's stock. The store
// clamps the result at zero, so overshooting a decrement empties the
// shelf instead of going negative.
func AdjustStock(c *fiber.Ctx) error {
	var input StockAdjustInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	st := store.New(middlewares.Tx(c))
	product, err := st.Product(c.Params("id"))
	if err != nil {
		return err
	}

	if err := st.AdjustStock(product.Id, input.Delta); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not adjust stock")
	}

	refreshed, err := st.Product(product.Id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not reload product")
	}
	return c.JSON(refreshed)
}
