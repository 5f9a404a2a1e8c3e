package controllers

import (
	"optica-backend/middlewares"
	"optica-backend/store"
	"optica-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func GetDashboard(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))

	sales, err := st.Sales()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load sales")
	}
	products, err := st.Products()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load products")
	}

	return c.JSON(dashboardMetrics(sales, products, utils.Today()))
}

func GetReport(c *fiber.Ctx) error {
	period := c.Query("period", "week")
	switch period {
	case "day", "week", "month":
	default:
		return fiber.NewError(fiber.StatusBadRequest, "period must be day, week or month")
	}

	st := store.New(middlewares.Tx(c))
	sales, err := st.Sales()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load sales")
	}

	return c.JSON(reportMetrics(sales, period, utils.Today()))
}
