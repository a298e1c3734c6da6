package model

import "time"

// PostKind names the two marketplaces a pet can be listed in.
type PostKind string

const (
	PostAdoption PostKind = "adoption"
	PostMating   PostKind = "mating"
)

// Post lists a pet on a marketplace. A pet has at most one post per kind.
type Post struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	OwnerMessage string    `json:"owner_message"`
	CreatedAt    time.Time `json:"created_at"`
}

// VaccinationSummary is the short vaccination view embedded in listings.
type VaccinationSummary struct {
	VaccName        string `json:"vacc_name"`
	VaccDate        Date   `json:"vacc_date"`
	VaccCertificate string `json:"vacc_certificate"`
}

// MarketplacePet is a listed pet joined with its owner and post.
type MarketplacePet struct {
	ID            string               `json:"id"`
	PetName       string               `json:"pet_name"`
	PetType       string               `json:"pet_type"`
	PetColor      string               `json:"pet_color"`
	PetGender     string               `json:"pet_gender"`
	PetBirthday   Date                 `json:"-"`
	Age           int                  `json:"age"`
	PetPhoto      string               `json:"pet_photo"`
	OwnerID       string               `json:"owner_id"`
	OwnerName     string               `json:"owner_name"`
	OwnerLocation string               `json:"owner_location"`
	OwnerMessage  string               `json:"owner_message"`
	PostedAt      time.Time            `json:"posted_at"`
	Vaccinations  []VaccinationSummary `json:"vaccinations"`
}
