package controllers

import (
	"optica-backend/middlewares"
	"optica-backend/models"
	"optica-backend/store"
	"optica-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ClientInput carries the client form. Required fullName/phone mirror
// the form rule; prescription values stay opaque strings.
type ClientInput struct {
	FullName     string              `json:"full_name" validate:"required"`
	Phone        string              `json:"phone" validate:"required"`
	Email        string              `json:"email" validate:"omitempty,email"`
	LastExamDate string              `json:"last_exam_date"`
	ExamInStore  bool                `json:"exam_in_store"`
	Prescription models.Prescription `json:"prescription"`
	Notes        string              `json:"notes"`
}

func (input ClientInput) toModel(id string) models.Client {
	return models.Client{
		Id:           id,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Email:        input.Email,
		LastExamDate: input.LastExamDate,
		ExamInStore:  input.ExamInStore,
		Prescription: datatypes.NewJSONType(input.Prescription),
		Notes:        input.Notes,
	}
}

func CreateClient(c *fiber.Ctx) error {
	var input ClientInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	st := store.New(middlewares.Tx(c))
	client, err := st.CreateClient(input.toModel(""))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create client")
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func GetClients(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))
	clients, err := st.Clients()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list clients")
	}

	return c.JSON(fiber.Map{
		"clients": clients,
		"message": "success",
	})
}

func GetClient(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))
	client, err := st.Client(c.Params("id"))
	if err != nil {
		return err // ErrRecordNotFound maps to 404
	}
	return c.JSON(client)
}

// UpdateClient is a full replacement of the record. The store treats a
// missing id as a no-op; the API surfaces it as 404 instead, so the
// operator notices a stale edit.
func UpdateClient(c *fiber.Ctx) error {
	var input ClientInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	st := store.New(middlewares.Tx(c))
	existing, err := st.Client(c.Params("id"))
	if err != nil {
		return err
	}

	updated := input.toModel(existing.Id)
	updated.LastPurchaseDate = existing.LastPurchaseDate // owned by RecordSale
	if err := st.UpdateClient(updated); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update client")
	}

	return c.JSON(updated)
}

func DeleteClient(c *fiber.Ctx) error {
	st := store.New(middlewares.Tx(c))
	client, err := st.Client(c.Params("id"))
	if err != nil {
		return err
	}

	// Sales referencing the client keep their name snapshot; no cascade.
	if err := st.DeleteClient(client.Id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete client")
	}

	return c.JSON(fiber.Map{"message": "client deleted"})
}
