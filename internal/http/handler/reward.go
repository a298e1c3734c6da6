package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"petcare/internal/service"
)

type redeemRequest struct {
	RewardSystemName string `json:"reward_system_name" validate:"required"`
}

type completeActivityRequest struct {
	SystemName string `json:"system_name" validate:"required"`
}

// PointsBalance returns the caller's wallet total.
func PointsBalance(svc service.RewardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w, err := svc.Balance(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"total_points": w.TotalPoints})
	}
}

// RedeemPoints exchanges points for a reward coupon.
func RedeemPoints(svc service.RewardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req redeemRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.Redeem(c.UserContext(), userID(c), req.RewardSystemName)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func RewardSummary(svc service.RewardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sum, err := svc.Summary(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sum)
	}
}

func RewardCoupons(svc service.RewardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		coupons, err := svc.Coupons(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(coupons)
	}
}

// ListActivities returns the activity catalog.
func ListActivities(svc service.RewardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.Activities(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

// ActivityLogs returns the caller's points transactions.
func ActivityLogs(svc service.RewardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logs, err := svc.Logs(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(logs)
	}
}

// CompleteActivity awards the points of an EARN activity to the caller.
func CompleteActivity(svc service.RewardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req completeActivityRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.Award(c.UserContext(), userID(c), req.SystemName, "", "")
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"detail":           fmt.Sprintf("Points awarded for %s.", res.Activity.Name),
			"points_awarded":   res.PointsAwarded,
			"new_total_points": res.NewBalance,
		})
	}
}
