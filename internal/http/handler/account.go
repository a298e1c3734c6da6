package handler

import (
	"github.com/gofiber/fiber/v2"

	"petcare/internal/service"
)

type signupRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"max=20"`
	Location        string `json:"location" validate:"max=255"`
	Password        string `json:"password" validate:"required,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,max=72"`
}

type verifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	OTP             string `json:"otp" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,max=72"`
}

type profilePatchRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Location       *string `json:"location" validate:"omitempty,max=255"`
	ProfilePicture *string `json:"profile_picture"`
}

// RequestSignup registers an inactive account and mails the activation OTP.
func RequestSignup(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req signupRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		err := svc.RequestSignup(c.UserContext(), service.SignupInput{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Phone:           req.Phone,
			Location:        req.Location,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "OTP sent to your email. Please verify to activate your account.",
		})
	}
}

// VerifySignup activates the account and returns a token pair.
func VerifySignup(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req verifyRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		pair, err := svc.VerifySignup(c.UserContext(), req.Email, req.OTP)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pair)
	}
}

func Login(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		pair, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pair)
	}
}

// RefreshToken exchanges a refresh token for a new access token.
func RefreshToken(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req refreshRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		access, err := svc.Refresh(c.UserContext(), req.Refresh)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"access": access})
	}
}

// ForgotPassword mails a reset OTP to a registered address.
func ForgotPassword(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req forgotPasswordRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.ForgotPassword(c.UserContext(), req.Email); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "OTP sent to your email."})
	}
}

func ResetPassword(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req resetPasswordRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		err := svc.ResetPassword(c.UserContext(), service.ResetPasswordInput{
			Email:           req.Email,
			OTP:             req.OTP,
			NewPassword:     req.NewPassword,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Password has been reset successfully."})
	}
}

// Me returns the caller's profile.
func Me(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Me(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateMe applies a partial profile update.
func UpdateMe(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req profilePatchRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		u, err := svc.UpdateProfile(c.UserContext(), userID(c), service.ProfilePatch{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Phone:          req.Phone,
			Location:       req.Location,
			ProfilePicture: req.ProfilePicture,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}
