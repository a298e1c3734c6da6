package handler

import (
	"github.com/gofiber/fiber/v2"

	"petcare/internal/model"
	"petcare/internal/service"
)

type interactionRequest struct {
	PetID        string `json:"pet_id" validate:"required,uuid"`
	RequestType  string `json:"request_type" validate:"required,oneof=Mate Adoption"`
	Message      string `json:"message"`
	AttachedFile string `json:"attached_file" validate:"omitempty,url"`
}

type statusRequest struct {
	Status               string `json:"status" validate:"required,oneof=Accepted Rejected"`
	OwnerResponseMessage string `json:"owner_response_message"`
}

func CreateRequest(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req interactionRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.Create(c.UserContext(), userID(c), service.RequestInput{
			PetID:        req.PetID,
			RequestType:  model.RequestType(req.RequestType),
			Message:      req.Message,
			AttachedFile: req.AttachedFile,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// RequestInbox lists requests received by the caller.
func RequestInbox(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Inbox(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// SentRequests lists requests the caller sent.
func SentRequests(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Sent(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

func GetRequest(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		detail, err := svc.Get(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(detail)
	}
}

// UpdateRequestStatus lets the receiver accept or reject a request.
func UpdateRequestStatus(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req statusRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.UpdateStatus(c.UserContext(), userID(c), id, model.RequestStatus(req.Status), req.OwnerResponseMessage)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
