package handler

import (
	"github.com/gofiber/fiber/v2"

	"petcare/internal/service"
)

// ListUploads lists the caller's uploads with limit & offset.
func ListUploads(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c, service.DefaultUploadLimit)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), userID(c), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadImage stores the multipart field image.
func UploadImage(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "image is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		up, err := svc.Upload(c.UserContext(), userID(c), f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(up)
	}
}

func GetUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		up, err := svc.Get(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(up)
	}
}

// DownloadUpload streams the stored image of an upload.
func DownloadUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		rc, up, err := svc.Open(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if up.ContentType != "" {
			c.Set(fiber.HeaderContentType, up.ContentType)
		}
		c.Set(fiber.HeaderContentDisposition, `inline; filename="`+up.Filename+`"`)
		// fasthttp closes rc once the body is written.
		return c.SendStream(rc, int(up.Size))
	}
}

func DeleteUpload(svc service.UploadService) fiber.Handler {
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
