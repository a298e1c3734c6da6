package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petcare/internal/model"
	"petcare/internal/service"
	serviceMocks "petcare/internal/service/mocks"
)

func TestCreatePet(t *testing.T) {
	mockSvc := new(serviceMocks.MockPetService)
	app := newTestApp()
	app.Post("/pets", CreatePet(mockSvc))

	t.Run("success", func(t *testing.T) {
		birthday, _ := model.ParseDate("2022-05-01")
		mockSvc.On("Create", mock.Anything, testUserID, service.PetInput{
			PetName:     "Mishmish",
			PetType:     "Cat",
			PetBirthday: birthday,
		}).Return(&service.PetDetail{Pet: model.Pet{ID: "p1", PetName: "Mishmish"}, Age: 2}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/pets", map[string]string{
			"pet_name":     "Mishmish",
			"pet_type":     "Cat",
			"pet_birthday": "2022-05-01",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var pet service.PetDetail
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&pet))
		assert.Equal(t, "p1", pet.ID)
		assert.Equal(t, 2, pet.Age)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad birthday", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/pets", map[string]string{
			"pet_name":     "Mishmish",
			"pet_birthday": "01/05/2022",
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)
	})

	t.Run("name required", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/pets", map[string]string{"pet_type": "Dog"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation failed: pet_name is required", decodeError(t, resp).Error.Message)
	})
}

func TestGetPet(t *testing.T) {
	mockSvc := new(serviceMocks.MockPetService)
	app := newTestApp()
	app.Get("/pets/:id", GetPet(mockSvc))

	t.Run("not owner", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, testUserID, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/pets/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodGet, "/pets/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestUpdatePet(t *testing.T) {
	mockSvc := new(serviceMocks.MockPetService)
	app := newTestApp()
	app.Put("/pets/:id", ReplacePet(mockSvc))
	app.Patch("/pets/:id", PatchPet(mockSvc))
	id := uuid.New().String()

	t.Run("patch", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, testUserID, id, mock.MatchedBy(func(p service.PetPatch) bool {
			return p.PetColor != nil && *p.PetColor == "Black" && p.PetName == nil && p.PetBirthday == nil
		})).Return(&service.PetDetail{Pet: model.Pet{ID: id, PetColor: "Black"}}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/pets/"+id, map[string]string{"pet_color": "Black"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("put sets every field", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, testUserID, id, mock.MatchedBy(func(p service.PetPatch) bool {
			return p.PetName != nil && *p.PetName == "Rex" &&
				p.PetPhoto != nil && *p.PetPhoto == "" &&
				p.PetBirthday != nil && p.PetBirthday.IsZero()
		})).Return(&service.PetDetail{Pet: model.Pet{ID: id, PetName: "Rex"}}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/pets/"+id, map[string]string{"pet_name": "Rex"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeletePet(t *testing.T) {
	mockSvc := new(serviceMocks.MockPetService)
	app := newTestApp()
	app.Delete("/pets/:id", DeletePet(mockSvc))
	id := uuid.New().String()

	mockSvc.On("Delete", mock.Anything, testUserID, id).Return(nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodDelete, "/pets/"+id, nil))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestPetQRImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockPetService)
	app := newTestApp()
	app.Get("/pets/:id/qr.png", PetQRImage(mockSvc))
	id := uuid.New().String()
	png := []byte("\x89PNG\r\n\x1a\n")

	mockSvc.On("QRCode", mock.Anything, testUserID, id).Return(png, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodGet, "/pets/"+id+"/qr.png", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, png, body)
}

func TestPetProfilePage(t *testing.T) {
	mockSvc := new(serviceMocks.MockPetService)
	app := newTestApp()
	app.Get("/pets/qr/:token", PetProfilePage(mockSvc))

	t.Run("renders owner contact", func(t *testing.T) {
		mockSvc.On("PublicProfile", mock.Anything, "tok").Return(&model.PetProfile{
			PetName:       "Mishmish",
			OwnerName:     "Ana <Admin>",
			OwnerPhone:    "+201000000",
			OwnerLocation: "Giza",
		}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/pets/qr/tok", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		body, _ := io.ReadAll(resp.Body)
		html := string(body)
		assert.Contains(t, html, "<h1>Mishmish</h1>")
		assert.Contains(t, html, "Ana &lt;Admin&gt;")
		assert.Contains(t, html, "+201000000")
		assert.Contains(t, html, "Giza")
	})

	t.Run("unknown token", func(t *testing.T) {
		mockSvc.On("PublicProfile", mock.Anything, "missing").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/pets/qr/missing", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
