package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petcare/internal/model"
	"petcare/internal/service"
	serviceMocks "petcare/internal/service/mocks"
)

func TestPointsBalance(t *testing.T) {
	mockSvc := new(serviceMocks.MockRewardService)
	app := newTestApp()
	app.Get("/balance", PointsBalance(mockSvc))

	mockSvc.On("Balance", mock.Anything, testUserID).Return(&model.Wallet{UserID: testUserID, TotalPoints: 350}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodGet, "/balance", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]int{"total_points": 350}, body)
}

func TestRedeemPoints(t *testing.T) {
	mockSvc := new(serviceMocks.MockRewardService)
	app := newTestApp()
	app.Post("/redeem", RedeemPoints(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Redeem", mock.Anything, testUserID, "FREE_GROOMING").Return(&service.RedeemResult{
			Message:          "Reward redeemed successfully.",
			CouponCode:       "GROOM-1A2B3C",
			RewardName:       "Free Grooming",
			PointsCost:       300,
			NewPointsBalance: 50,
		}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/redeem", map[string]string{"reward_system_name": "FREE_GROOMING"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res service.RedeemResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, 50, res.NewPointsBalance)
	})

	t.Run("insufficient points", func(t *testing.T) {
		mockSvc.On("Redeem", mock.Anything, testUserID, "VET_DISCOUNT").Return(nil, service.ErrInsufficientPoints).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/redeem", map[string]string{"reward_system_name": "VET_DISCOUNT"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INSUFFICIENT_POINTS", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestCompleteActivity(t *testing.T) {
	mockSvc := new(serviceMocks.MockRewardService)
	app := newTestApp()
	app.Post("/complete", CompleteActivity(mockSvc))

	t.Run("awarded", func(t *testing.T) {
		mockSvc.On("Award", mock.Anything, testUserID, "PROFILE_COMPLETE", "", "").Return(&service.AwardResult{
			Activity:      model.Activity{Name: "Complete your profile", SystemName: "PROFILE_COMPLETE"},
			PointsAwarded: 50,
			NewBalance:    50,
		}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/complete", map[string]string{"system_name": "PROFILE_COMPLETE"}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Points awarded for Complete your profile.", body["detail"])
		assert.EqualValues(t, 50, body["points_awarded"])
		assert.EqualValues(t, 50, body["new_total_points"])
	})

	t.Run("once only", func(t *testing.T) {
		mockSvc.On("Award", mock.Anything, testUserID, "PROFILE_COMPLETE", "", "").Return(nil, service.ErrAlreadyAwarded).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/complete", map[string]string{"system_name": "PROFILE_COMPLETE"}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "ALREADY_AWARDED", decodeError(t, resp).Error.Code)
	})
}

func TestPushTokenHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockNotificationService)
	app := newTestApp()
	app.Post("/register", RegisterPushToken(mockSvc))
	app.Delete("/register", UnregisterPushToken(mockSvc))

	t.Run("register", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, testUserID, "device-1", "android").
			Return(&model.PushToken{ID: "t1", UserID: testUserID, Token: "device-1", Platform: "android"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/register", map[string]string{"token": "device-1", "platform": "android"}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unregister by body", func(t *testing.T) {
		mockSvc.On("Unregister", mock.Anything, testUserID, "device-1").Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodDelete, "/register", map[string]string{"token": "device-1"}))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("unregister by query", func(t *testing.T) {
		mockSvc.On("Unregister", mock.Anything, testUserID, "device-2").Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodDelete, "/register?token=device-2", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("token missing", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodDelete, "/register", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}
