package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"petcare/internal/model"
	"petcare/internal/service"
)

// DefaultMarketplaceLimit is the page size of marketplace listings.
const DefaultMarketplaceLimit = 20

// postRequest lists an existing pet by pet_id, or creates a new one from
// the pet_* fields.
type postRequest struct {
	PetID        string     `json:"pet_id" validate:"omitempty,uuid"`
	OwnerMessage string     `json:"owner_message"`
	PetName      string     `json:"pet_name" validate:"max=100"`
	PetType      string     `json:"pet_type" validate:"max=50"`
	PetColor     string     `json:"pet_color" validate:"max=50"`
	PetGender    string     `json:"pet_gender" validate:"max=10"`
	PetBirthday  model.Date `json:"pet_birthday"`
	PetPhoto     string     `json:"pet_photo"`
}

func (r postRequest) input() service.PostInput {
	in := service.PostInput{
		PetID:        r.PetID,
		OwnerMessage: r.OwnerMessage,
	}
	if strings.TrimSpace(r.PetName) != "" {
		in.NewPet = &service.PetInput{
			PetName:     r.PetName,
			PetType:     r.PetType,
			PetColor:    r.PetColor,
			PetGender:   r.PetGender,
			PetBirthday: r.PetBirthday,
			PetPhoto:    r.PetPhoto,
		}
	}
	return in
}

// ListPosts returns the marketplace listing filtered by query parameters.
func ListPosts(svc service.MarketplaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c, DefaultMarketplaceLimit)
		if !ok {
			return err
		}
		pets, err := svc.List(c.UserContext(), model.PetFilter{
			PetType:   c.Query("pet_type"),
			PetGender: c.Query("pet_gender"),
			PetColor:  c.Query("pet_color"),
			Location:  c.Query("location"),
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pets)
	}
}

func CreatePost(svc service.MarketplaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req postRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		pet, err := svc.Create(c.UserContext(), userID(c), req.input())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(pet)
	}
}

// WithdrawPost removes the caller's post for the pet in :pet_id.
func WithdrawPost(svc service.MarketplaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		petID, err := pathID(c, "pet_id")
		if err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.Withdraw(c.UserContext(), userID(c), petID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
