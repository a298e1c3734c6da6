package handler

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"petcare/internal/model"
	"petcare/internal/service"
)

type petRequest struct {
	PetName     string     `json:"pet_name" validate:"required,max=100"`
	PetType     string     `json:"pet_type" validate:"max=50"`
	PetColor    string     `json:"pet_color" validate:"max=50"`
	PetGender   string     `json:"pet_gender" validate:"max=10"`
	PetBirthday model.Date `json:"pet_birthday"`
	PetPhoto    string     `json:"pet_photo"`
}

func (r petRequest) input() service.PetInput {
	return service.PetInput{
		PetName:     r.PetName,
		PetType:     r.PetType,
		PetColor:    r.PetColor,
		PetGender:   r.PetGender,
		PetBirthday: r.PetBirthday,
		PetPhoto:    r.PetPhoto,
	}
}

type petPatchRequest struct {
	PetName     *string     `json:"pet_name" validate:"omitempty,max=100"`
	PetType     *string     `json:"pet_type" validate:"omitempty,max=50"`
	PetColor    *string     `json:"pet_color" validate:"omitempty,max=50"`
	PetGender   *string     `json:"pet_gender" validate:"omitempty,max=10"`
	PetBirthday *model.Date `json:"pet_birthday"`
	PetPhoto    *string     `json:"pet_photo"`
}

func ListPets(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pets, err := svc.List(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pets)
	}
}

func CreatePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req petRequest
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

func GetPet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		pet, err := svc.Get(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pet)
	}
}

// ReplacePet overwrites every editable field of the pet.
func ReplacePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req petRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		pet, err := svc.Update(c.UserContext(), userID(c), id, service.PetPatch{
			PetName:     &req.PetName,
			PetType:     &req.PetType,
			PetColor:    &req.PetColor,
			PetGender:   &req.PetGender,
			PetBirthday: &req.PetBirthday,
			PetPhoto:    &req.PetPhoto,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pet)
	}
}

// PatchPet changes only the fields present in the body.
func PatchPet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req petPatchRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		pet, err := svc.Update(c.UserContext(), userID(c), id, service.PetPatch(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pet)
	}
}

func DeletePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.Delete(c.UserContext(), userID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PetQRList returns the public QR links of the caller's pets.
func PetQRList(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.QRList(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

// PetQRImage renders the QR code of one of the caller's pets as PNG.
func PetQRImage(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		png, err := svc.QRCode(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Type("png")
		return c.Send(png)
	}
}

// PublicPetQRImage renders the QR code for a public token.
func PublicPetQRImage(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		png, err := svc.PublicQRCode(c.UserContext(), c.Params("token"))
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Type("png")
		return c.Send(png)
	}
}

var profilePage = template.Must(template.New("pet").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.PetName}}</title>
  <style>
    body { font-family: sans-serif; max-width: 28rem; margin: 2rem auto; padding: 0 1rem; text-align: center; }
    img.photo { max-width: 100%; border-radius: 0.5rem; }
    dl { text-align: left; }
    dt { font-weight: bold; margin-top: 0.5rem; }
  </style>
</head>
<body>
  <h1>{{.PetName}}</h1>
  {{if .PetPhoto}}<img class="photo" src="{{.PetPhoto}}" alt="{{.PetName}}" />{{end}}
  <p>If you found this pet, please contact the owner.</p>
  <dl>
    <dt>Owner</dt><dd>{{.OwnerName}}</dd>
    {{if .OwnerPhone}}<dt>Phone</dt><dd>{{.OwnerPhone}}</dd>{{end}}
    {{if .OwnerLocation}}<dt>Location</dt><dd>{{.OwnerLocation}}</dd>{{end}}
  </dl>
</body>
</html>`))

// PetProfilePage serves the public page a scanned QR code points to.
func PetProfilePage(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := svc.PublicProfile(c.UserContext(), c.Params("token"))
		if err != nil {
			return writeServiceError(c, err)
		}
		var buf bytes.Buffer
		if err := profilePage.Execute(&buf, profile); err != nil {
			return writeServiceError(c, err)
		}
		return c.Type("html").Send(buf.Bytes())
	}
}
