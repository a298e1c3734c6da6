package model

import (
	"fmt"
	"time"
)

// Appointment is a scheduled service visit for a pet.
type Appointment struct {
	ID         string    `json:"id"`
	PetID      string    `json:"pet_id"`
	Service    string    `json:"service"`
	Date       Date      `json:"date"`
	Time       string    `json:"time"`
	Provider   string    `json:"provider"`
	PetDetails *PetBrief `json:"pet_details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PetBrief is the compact pet view embedded in appointments.
type PetBrief struct {
	ID       string `json:"id"`
	PetName  string `json:"pet_name"`
	PetType  string `json:"pet_type"`
	PetPhoto string `json:"pet_photo"`
}

// Vaccination records a vaccine given to a pet.
type Vaccination struct {
	ID              string    `json:"id"`
	PetID           string    `json:"pet_id"`
	PetName         string    `json:"pet_name"`
	VaccName        string    `json:"vacc_name"`
	VaccDate        Date      `json:"vacc_date"`
	VaccCertificate string    `json:"vacc_certificate"`
	CreatedAt       time.Time `json:"created_at"`
}

// Mood scores are on a 1 (low) to 5 (great) scale.
const (
	MinMood = 1
	MaxMood = 5
)

// Mood is a daily mood entry for a pet.
type Mood struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	PetName   string    `json:"pet_name"`
	Mood      int       `json:"mood"`
	Notes     string    `json:"notes"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Alert is a daily reminder delivered by push notification at Time (HH:MM, UTC).
type Alert struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Time      string    `json:"time"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ClockLayout is the HH:MM format used by appointments and alerts.
const ClockLayout = "15:04"

// NormalizeClock parses s as HH:MM (or HH:MM:SS) and returns it as HH:MM.
func NormalizeClock(s string) (string, error) {
	for _, layout := range []string{ClockLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", fmt.Errorf("time must be in HH:MM format")
}
