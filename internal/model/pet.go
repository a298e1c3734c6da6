package model

import (
	"strings"
	"time"
)

// PetColors lists the accepted coat colors.
var PetColors = []string{"Black", "White", "Brown", "Grey", "Golden", "Tan", "Creamy", "Cinamon", "Ginger", "Silver"}

// ValidPetColor reports whether c is one of PetColors.
func ValidPetColor(c string) bool {
	for _, v := range PetColors {
		if v == c {
			return true
		}
	}
	return false
}

// Pet is an animal profile owned by a user.
type Pet struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	PetName     string    `json:"pet_name"`
	PetType     string    `json:"pet_type"`
	PetColor    string    `json:"pet_color"`
	PetGender   string    `json:"pet_gender"`
	PetBirthday Date      `json:"pet_birthday"`
	PetPhoto    string    `json:"pet_photo"`
	QRToken     string    `json:"qr_token"`
	QRURL       string    `json:"qr_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Age returns the number of whole years between the birthday and now.
// Pets without a birthday report 0.
func (p Pet) Age(now time.Time) int {
	if p.PetBirthday.IsZero() {
		return 0
	}
	b := p.PetBirthday.Time
	years := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// PetFilter narrows marketplace listings. Empty fields are ignored.
type PetFilter struct {
	PetType   string
	PetGender string
	PetColor  string
	Location  string
	Limit     int
	Offset    int
}

// Normalize trims whitespace from the filter values.
func (f PetFilter) Normalize() PetFilter {
	f.PetType = strings.TrimSpace(f.PetType)
	f.PetGender = strings.TrimSpace(f.PetGender)
	f.PetColor = strings.TrimSpace(f.PetColor)
	f.Location = strings.TrimSpace(f.Location)
	return f
}

// PetProfile is the public page rendered when a pet QR code is scanned.
type PetProfile struct {
	PetName       string `json:"pet_name"`
	PetPhoto      string `json:"pet_photo"`
	OwnerName     string `json:"owner_name"`
	OwnerPhone    string `json:"owner_phone"`
	OwnerLocation string `json:"owner_location"`
	QRURL         string `json:"qr_url"`
}
