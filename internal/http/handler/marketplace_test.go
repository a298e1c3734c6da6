package handler

import (
	"encoding/json"
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

func TestListPosts(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketplaceService)
	app := newTestApp()
	app.Get("/adoptions", ListPosts(mockSvc))

	t.Run("filters and paging", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.PetFilter{
			PetType:  "Cat",
			Location: "cairo",
			Limit:    5,
			Offset:   10,
		}).Return([]model.MarketplacePet{{ID: "p1", PetName: "Mishmish"}}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/adoptions?pet_type=Cat&location=cairo&limit=5&offset=10", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var pets []model.MarketplacePet
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&pets))
		assert.Len(t, pets, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("default limit", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.PetFilter{Limit: DefaultMarketplaceLimit}).
			Return([]model.MarketplacePet{}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodGet, "/adoptions", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid offset", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodGet, "/adoptions?offset=-1", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})
}

func TestCreatePost(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketplaceService)
	app := newTestApp()
	app.Post("/adoptions", CreatePost(mockSvc))

	t.Run("existing pet", func(t *testing.T) {
		petID := uuid.New().String()
		mockSvc.On("Create", mock.Anything, testUserID, service.PostInput{
			PetID:        petID,
			OwnerMessage: "Needs a garden",
		}).Return(&model.MarketplacePet{ID: petID}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/adoptions", map[string]string{
			"pet_id":        petID,
			"owner_message": "Needs a garden",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("new pet", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in service.PostInput) bool {
			return in.PetID == "" && in.NewPet != nil && in.NewPet.PetName == "Luna"
		})).Return(&model.MarketplacePet{ID: "new"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/adoptions", map[string]string{
			"pet_name":      "Luna",
			"pet_type":      "Dog",
			"owner_message": "Friendly",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("already posted", func(t *testing.T) {
		petID := uuid.New().String()
		mockSvc.On("Create", mock.Anything, testUserID, mock.Anything).Return(nil, service.ErrConflict).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/adoptions", map[string]string{"pet_id": petID}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", decodeError(t, resp).Error.Code)
	})

	t.Run("malformed pet id", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/adoptions", map[string]string{"pet_id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation failed: pet_id must be a valid id", decodeError(t, resp).Error.Message)
	})
}

func TestWithdrawPost(t *testing.T) {
	mockSvc := new(serviceMocks.MockMarketplaceService)
	app := newTestApp()
	app.Delete("/matings/:pet_id", WithdrawPost(mockSvc))
	petID := uuid.New().String()

	mockSvc.On("Withdraw", mock.Anything, testUserID, petID).Return(nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodDelete, "/matings/"+petID, nil))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}
