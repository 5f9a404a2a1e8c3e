package middlewares

import (
	"log"

	"optica-backend/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestTx opens a per-request DB transaction so a handler's reads and
// writes commit or roll back as one unit. Run it AFTER Idempotency()
// so stored idempotency records are not tied to the handler TX.
func RequestTx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		// Ensure we always cleanup.
		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so Fiber's handler can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log.Printf("tx commit failed: %v", e)
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		// Make the TX available to handlers via Tx(c).
		c.Locals("tx", tx)

		err = c.Next()
		return err
	}
}

// Tx returns the per-request transaction installed by RequestTx, or the
// shared handle when none is present (tests, background work).
func Tx(c *fiber.Ctx) *gorm.DB {
	if tx, ok := c.Locals("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return database.DB
}
