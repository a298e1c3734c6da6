package model

import "time"

// User is an account holder. PasswordHash never leaves the service layer.
type User struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	ProfilePicture string    `json:"profile_picture"`
	PasswordHash   string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	IsStaff        bool      `json:"is_staff"`
	CreatedAt      time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// ProfileComplete reports whether the optional contact details are filled in.
func (u User) ProfileComplete() bool {
	return u.Phone != "" && u.Location != "" && u.ProfilePicture != ""
}

// OTPType distinguishes what a one-time password unlocks.
type OTPType string

const (
	OTPSignup        OTPType = "signup"
	OTPResetPassword OTPType = "reset_password"
)

// OTP is a hashed one-time password issued to a user.
type OTP struct {
	ID        string
	UserID    string
	CodeHash  string
	Type      OTPType
	IsUsed    bool
	CreatedAt time.Time
}

// Expired reports whether the code is older than ttl at now.
func (o OTP) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(o.CreatedAt) > ttl
}
