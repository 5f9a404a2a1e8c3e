package controllers

import (
	"optica-backend/middlewares"
	"optica-backend/models"
	"optica-backend/store"
	"optica-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type SaleItemInput struct {
	ProductId string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type SaleInput struct {
	ClientId string          `json:"client_id" validate:"required"`
	Items    []SaleItemInput `json:"items" validate:"required,min=1,dive"`
	Discount float64         `json:"discount" validate:"gte=0"`
	Date     string          `json:"date"` // optional; defaults to today
}

// CreateSale is the POS checkout. The controller resolves every
// reference up front (unknown client or product is a 404 here — the
// store itself stays best-effort), snapshots product names and prices
// into the items, and derives the totals:
//
//	subtotal = Σ unitPrice·qty
//	total    = max(0, subtotal − discount)
//	profit   = total − Σ costPrice·qty
//
// The store records the sale exactly as derived.
func CreateSale(c *fiber.Ctx) error {
	var input SaleInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	st := store.New(middlewares.Tx(c))

	client, err := st.Client(input.ClientId)
	if err != nil {
		return err
	}

	var items []models.SaleItem
	var subtotal, totalCost float64
	for _, line := range input.Items {
		product, err := st.Product(line.ProductId)
		if err != nil {
			return err
		}
		items = append(items, models.SaleItem{
			ProductId:   product.Id,
			ProductName: product.Brand + " " + product.Model,
			Quantity:    line.Quantity,
			UnitPrice:   product.SellingPrice,
			CostPrice:   product.CostPrice,
		})
		subtotal += product.SellingPrice * float64(line.Quantity)
		totalCost += product.CostPrice * float64(line.Quantity)
	}

	discount := utils.Round2(input.Discount)
	total := utils.Round2(subtotal - discount)
	if total < 0 {
		total = 0
	}

	date := input.Date
	if date == "" {
		date = utils.Today()
	}

	sale, err := st.RecordSale(models.Sale{
		ClientId:   client.Id,
		ClientName: client.FullName,
		Items:      items,
		Subtotal:   utils.Round2(subtotal),
		Discount:   discount,
		Total:      total,
		Profit:     utils.Round2(total - totalCost),
		Date:       date,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not record sale")
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}

func GetSales(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))
	sales, err := st.Sales()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list sales")
	}

	return c.JSON(fiber.Map{
		"sales":   sales,
		"message": "success",
	})
}

func GetSale(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))
	sale, err := st.Sale(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(sale)
}
