package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"petcare/internal/model"
	"petcare/internal/qrcode"
	"petcare/internal/repository"
)

// PetInput is a full pet profile as submitted on create or replace.
type PetInput struct {
	PetName     string
	PetType     string
	PetColor    string
	PetGender   string
	PetBirthday model.Date
	PetPhoto    string
}

// PetPatch changes only the non-nil fields.
type PetPatch struct {
	PetName     *string
	PetType     *string
	PetColor    *string
	PetGender   *string
	PetBirthday *model.Date
	PetPhoto    *string
}

// PetDetail is a pet with its derived fields.
type PetDetail struct {
	model.Pet
	Age         int    `json:"age"`
	QRCodeImage string `json:"qr_code_image"`
}

// PetQR is one entry of the QR listing.
type PetQR struct {
	ID       string `json:"id"`
	PetName  string `json:"pet_name"`
	PetPhoto string `json:"pet_photo"`
	QRURL    string `json:"qr_url"`
}

// PetService manages the caller's pets and their public QR profiles.
// Pets of other owners behave as missing.
type PetService interface {
	List(ctx context.Context, ownerID string) ([]PetDetail, error)
	Create(ctx context.Context, ownerID string, in PetInput) (*PetDetail, error)
	Get(ctx context.Context, ownerID, id string) (*PetDetail, error)
	Update(ctx context.Context, ownerID, id string, patch PetPatch) (*PetDetail, error)
	Delete(ctx context.Context, ownerID, id string) error
	QRList(ctx context.Context, ownerID string) ([]PetQR, error)
	QRCode(ctx context.Context, ownerID, id string) ([]byte, error)
	PublicProfile(ctx context.Context, token string) (*model.PetProfile, error)
	PublicQRCode(ctx context.Context, token string) ([]byte, error)
}

type petService struct {
	pets    repository.PetRepository
	baseURL string
	now     func() time.Time
}

// NewPetService builds the service. baseURL prefixes the public QR links.
func NewPetService(pets repository.PetRepository, baseURL string) PetService {
	return &petService{pets: pets, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// newPet validates in and assigns a fresh QR token and link.
func newPet(baseURL, ownerID string, in PetInput) (*model.Pet, error) {
	p := &model.Pet{
		OwnerID:     ownerID,
		PetName:     strings.TrimSpace(in.PetName),
		PetType:     strings.TrimSpace(in.PetType),
		PetColor:    strings.TrimSpace(in.PetColor),
		PetGender:   strings.TrimSpace(in.PetGender),
		PetBirthday: in.PetBirthday,
		PetPhoto:    strings.TrimSpace(in.PetPhoto),
	}
	if err := validatePet(p); err != nil {
		return nil, err
	}
	p.QRToken = uuid.NewString()
	p.QRURL = qrLink(baseURL, p.QRToken)
	return p, nil
}

func validatePet(p *model.Pet) error {
	if p.PetName == "" {
		return validation("pet_name is required")
	}
	if p.PetColor != "" && !model.ValidPetColor(p.PetColor) {
		return validation("pet_color must be one of %s", strings.Join(model.PetColors, ", "))
	}
	return nil
}

func qrLink(baseURL, token string) string {
	return baseURL + "/pets/qr/" + token
}

func (s *petService) detail(p *model.Pet) PetDetail {
	return PetDetail{
		Pet:         *p,
		Age:         p.Age(s.now()),
		QRCodeImage: qrLink(s.baseURL, p.QRToken) + "/image.png",
	}
}

func (s *petService) List(ctx context.Context, ownerID string) ([]PetDetail, error) {
	pets, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]PetDetail, 0, len(pets))
	for i := range pets {
		out = append(out, s.detail(&pets[i]))
	}
	return out, nil
}

func (s *petService) Create(ctx context.Context, ownerID string, in PetInput) (*PetDetail, error) {
	p, err := newPet(s.baseURL, ownerID, in)
	if err != nil {
		return nil, err
	}
	created, err := s.pets.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	d := s.detail(created)
	return &d, nil
}

func (s *petService) Get(ctx context.Context, ownerID, id string) (*PetDetail, error) {
	p, err := s.pets.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err, "pet")
	}
	d := s.detail(p)
	return &d, nil
}

func (s *petService) Update(ctx context.Context, ownerID, id string, patch PetPatch) (*PetDetail, error) {
	p, err := s.pets.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err, "pet")
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&p.PetName, patch.PetName)
	set(&p.PetType, patch.PetType)
	set(&p.PetColor, patch.PetColor)
	set(&p.PetGender, patch.PetGender)
	set(&p.PetPhoto, patch.PetPhoto)
	if patch.PetBirthday != nil {
		p.PetBirthday = *patch.PetBirthday
	}
	if err := validatePet(p); err != nil {
		return nil, err
	}

	updated, err := s.pets.Update(ctx, p)
	if err != nil {
		return nil, notFound(err, "pet")
	}
	d := s.detail(updated)
	return &d, nil
}

func (s *petService) Delete(ctx context.Context, ownerID, id string) error {
	return notFound(s.pets.Delete(ctx, id, ownerID), "pet")
}

func (s *petService) QRList(ctx context.Context, ownerID string) ([]PetQR, error) {
	pets, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]PetQR, 0, len(pets))
	for _, p := range pets {
		out = append(out, PetQR{ID: p.ID, PetName: p.PetName, PetPhoto: p.PetPhoto, QRURL: p.QRURL})
	}
	return out, nil
}

func (s *petService) QRCode(ctx context.Context, ownerID, id string) ([]byte, error) {
	p, err := s.pets.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err, "pet")
	}
	return qrcode.PNG(p.QRURL, qrcode.DefaultSize)
}

func (s *petService) PublicProfile(ctx context.Context, token string) (*model.PetProfile, error) {
	p, err := s.pets.FindProfileByQRToken(ctx, token)
	if err != nil {
		return nil, notFound(err, "pet")
	}
	return p, nil
}

func (s *petService) PublicQRCode(ctx context.Context, token string) ([]byte, error) {
	p, err := s.PublicProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	return qrcode.PNG(p.QRURL, qrcode.DefaultSize)
}
