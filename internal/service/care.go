package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare/internal/model"
	"petcare/internal/repository"
)

// MoodHistoryDays is how far back mood history reaches.
const MoodHistoryDays = 7

// ownedPet resolves petID among the caller's pets. Pets of other owners yield ErrForbidden.
func ownedPet(ctx context.Context, pets repository.PetRepository, ownerID, petID string) (*model.Pet, error) {
	if petID == "" {
		return nil, validation("pet_id is required")
	}
	p, err := pets.FindOwned(ctx, petID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: you can only manage records of your own pets", ErrForbidden)
	}
	return p, err
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// AppointmentInput is a new appointment.
type AppointmentInput struct {
	PetID    string
	Service  string
	Date     model.Date
	Time     string
	Provider string
}

// AppointmentPatch changes only the non-nil fields.
type AppointmentPatch struct {
	PetID    *string
	Service  *string
	Date     *model.Date
	Time     *string
	Provider *string
}

// AppointmentService schedules visits for the caller's pets.
type AppointmentService interface {
	List(ctx context.Context, ownerID string) ([]model.Appointment, error)
	ListByPet(ctx context.Context, ownerID, petID string) ([]model.Appointment, error)
	Create(ctx context.Context, ownerID string, in AppointmentInput) (*model.Appointment, error)
	Get(ctx context.Context, ownerID, id string) (*model.Appointment, error)
	Update(ctx context.Context, ownerID, id string, patch AppointmentPatch) (*model.Appointment, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type appointmentService struct {
	repo repository.AppointmentRepository
	pets repository.PetRepository
}

func NewAppointmentService(repo repository.AppointmentRepository, pets repository.PetRepository) AppointmentService {
	return &appointmentService{repo: repo, pets: pets}
}

func validateAppointment(a *model.Appointment) error {
	if a.Service == "" {
		return validation("service is required")
	}
	if a.Date.IsZero() {
		return validation("date is required")
	}
	clock, err := model.NormalizeClock(a.Time)
	if err != nil {
		return validation("%s", err.Error())
	}
	a.Time = clock
	return nil
}

func (s *appointmentService) List(ctx context.Context, ownerID string) ([]model.Appointment, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *appointmentService) ListByPet(ctx context.Context, ownerID, petID string) ([]model.Appointment, error) {
	if _, err := s.pets.FindOwned(ctx, petID, ownerID); err != nil {
		return nil, notFound(err, "pet")
	}
	return s.repo.ListByPet(ctx, petID, ownerID)
}

func (s *appointmentService) Create(ctx context.Context, ownerID string, in AppointmentInput) (*model.Appointment, error) {
	a := &model.Appointment{
		PetID:    strings.TrimSpace(in.PetID),
		Service:  strings.TrimSpace(in.Service),
		Date:     in.Date,
		Time:     strings.TrimSpace(in.Time),
		Provider: strings.TrimSpace(in.Provider),
	}
	if err := validateAppointment(a); err != nil {
		return nil, err
	}
	if _, err := ownedPet(ctx, s.pets, ownerID, a.PetID); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, ownerID, created.ID)
}

func (s *appointmentService) Get(ctx context.Context, ownerID, id string) (*model.Appointment, error) {
	a, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err, "appointment")
	}
	return a, nil
}

func (s *appointmentService) Update(ctx context.Context, ownerID, id string, patch AppointmentPatch) (*model.Appointment, error) {
	a, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	setString(&a.PetID, patch.PetID)
	setString(&a.Service, patch.Service)
	setString(&a.Time, patch.Time)
	setString(&a.Provider, patch.Provider)
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if err := validateAppointment(a); err != nil {
		return nil, err
	}
	if patch.PetID != nil {
		if _, err := ownedPet(ctx, s.pets, ownerID, a.PetID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, notFound(err, "appointment")
	}
	return s.Get(ctx, ownerID, id)
}

func (s *appointmentService) Delete(ctx context.Context, ownerID, id string) error {
	return notFound(s.repo.Delete(ctx, id, ownerID), "appointment")
}

// VaccinationInput is a new vaccination record.
type VaccinationInput struct {
	PetID           string
	VaccName        string
	VaccDate        model.Date
	VaccCertificate string
}

// VaccinationPatch changes only the non-nil fields.
type VaccinationPatch struct {
	PetID           *string
	VaccName        *string
	VaccDate        *model.Date
	VaccCertificate *string
}

// VaccinationService keeps vaccination records of the caller's pets.
type VaccinationService interface {
	List(ctx context.Context, ownerID string) ([]model.Vaccination, error)
	Create(ctx context.Context, ownerID string, in VaccinationInput) (*model.Vaccination, error)
	Get(ctx context.Context, ownerID, id string) (*model.Vaccination, error)
	Update(ctx context.Context, ownerID, id string, patch VaccinationPatch) (*model.Vaccination, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type vaccinationService struct {
	repo repository.VaccinationRepository
	pets repository.PetRepository
}

func NewVaccinationService(repo repository.VaccinationRepository, pets repository.PetRepository) VaccinationService {
	return &vaccinationService{repo: repo, pets: pets}
}

func validateVaccination(v *model.Vaccination) error {
	if v.VaccName == "" {
		return validation("vacc_name is required")
	}
	if v.VaccDate.IsZero() {
		return validation("vacc_date is required")
	}
	return nil
}

func (s *vaccinationService) List(ctx context.Context, ownerID string) ([]model.Vaccination, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *vaccinationService) Create(ctx context.Context, ownerID string, in VaccinationInput) (*model.Vaccination, error) {
	v := &model.Vaccination{
		PetID:           strings.TrimSpace(in.PetID),
		VaccName:        strings.TrimSpace(in.VaccName),
		VaccDate:        in.VaccDate,
		VaccCertificate: strings.TrimSpace(in.VaccCertificate),
	}
	if err := validateVaccination(v); err != nil {
		return nil, err
	}
	if _, err := ownedPet(ctx, s.pets, ownerID, v.PetID); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, ownerID, created.ID)
}

func (s *vaccinationService) Get(ctx context.Context, ownerID, id string) (*model.Vaccination, error) {
	v, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err, "vaccination")
	}
	return v, nil
}

func (s *vaccinationService) Update(ctx context.Context, ownerID, id string, patch VaccinationPatch) (*model.Vaccination, error) {
	v, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	setString(&v.PetID, patch.PetID)
	setString(&v.VaccName, patch.VaccName)
	setString(&v.VaccCertificate, patch.VaccCertificate)
	if patch.VaccDate != nil {
		v.VaccDate = *patch.VaccDate
	}
	if err := validateVaccination(v); err != nil {
		return nil, err
	}
	if patch.PetID != nil {
		if _, err := ownedPet(ctx, s.pets, ownerID, v.PetID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, notFound(err, "vaccination")
	}
	return s.Get(ctx, ownerID, id)
}

func (s *vaccinationService) Delete(ctx context.Context, ownerID, id string) error {
	return notFound(s.repo.Delete(ctx, id, ownerID), "vaccination")
}

// MoodInput records a mood for the caller's pet named PetName.
// A zero Date means today.
type MoodInput struct {
	PetName string
	Mood    int
	Notes   string
	Date    model.Date
}

// MoodService tracks daily moods.
type MoodService interface {
	Record(ctx context.Context, ownerID string, in MoodInput) (*model.Mood, error)
	// History returns the last MoodHistoryDays days, oldest first.
	History(ctx context.Context, ownerID, petID string) ([]model.Mood, error)
}

type moodService struct {
	repo repository.MoodRepository
	pets repository.PetRepository
	now  func() time.Time
}

func NewMoodService(repo repository.MoodRepository, pets repository.PetRepository) MoodService {
	return &moodService{repo: repo, pets: pets, now: time.Now}
}

func (s *moodService) Record(ctx context.Context, ownerID string, in MoodInput) (*model.Mood, error) {
	name := strings.TrimSpace(in.PetName)
	if name == "" {
		return nil, validation("pet_name is required")
	}
	if in.Mood < model.MinMood || in.Mood > model.MaxMood {
		return nil, validation("mood must be between %d and %d", model.MinMood, model.MaxMood)
	}
	pet, err := s.pets.FindOwnedByName(ctx, ownerID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, validation("you have no pet named %q", name)
	}
	if err != nil {
		return nil, err
	}
	date := in.Date
	if date.IsZero() {
		date = model.NewDate(s.now())
	}
	m, err := s.repo.Create(ctx, &model.Mood{
		PetID: pet.ID,
		Mood:  in.Mood,
		Notes: strings.TrimSpace(in.Notes),
		Date:  date,
	})
	if err != nil {
		return nil, err
	}
	m.PetName = pet.PetName
	return m, nil
}

func (s *moodService) History(ctx context.Context, ownerID, petID string) ([]model.Mood, error) {
	if _, err := s.pets.FindOwned(ctx, petID, ownerID); err != nil {
		return nil, notFound(err, "pet")
	}
	since := model.NewDate(s.now().AddDate(0, 0, -MoodHistoryDays))
	return s.repo.History(ctx, petID, since)
}

// AlertInput is a new reminder. IsActive defaults to true.
type AlertInput struct {
	Name     string
	Time     string
	IsActive *bool
}

// AlertPatch changes only the non-nil fields.
type AlertPatch struct {
	Name     *string
	Time     *string
	IsActive *bool
}

// AlertService manages the caller's reminders.
type AlertService interface {
	List(ctx context.Context, ownerID string) ([]model.Alert, error)
	Create(ctx context.Context, ownerID string, in AlertInput) (*model.Alert, error)
	Get(ctx context.Context, ownerID, id string) (*model.Alert, error)
	Update(ctx context.Context, ownerID, id string, patch AlertPatch) (*model.Alert, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type alertService struct {
	repo repository.AlertRepository
}

func NewAlertService(repo repository.AlertRepository) AlertService {
	return &alertService{repo: repo}
}

func validateAlert(a *model.Alert) error {
	if a.Name == "" {
		return validation("name is required")
	}
	clock, err := model.NormalizeClock(a.Time)
	if err != nil {
		return validation("%s", err.Error())
	}
	a.Time = clock
	return nil
}

func (s *alertService) List(ctx context.Context, ownerID string) ([]model.Alert, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *alertService) Create(ctx context.Context, ownerID string, in AlertInput) (*model.Alert, error) {
	a := &model.Alert{
		OwnerID:  ownerID,
		Name:     strings.TrimSpace(in.Name),
		Time:     strings.TrimSpace(in.Time),
		IsActive: true,
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if err := validateAlert(a); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, a)
}

func (s *alertService) Get(ctx context.Context, ownerID, id string) (*model.Alert, error) {
	a, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err, "alert")
	}
	return a, nil
}

func (s *alertService) Update(ctx context.Context, ownerID, id string, patch AlertPatch) (*model.Alert, error) {
	a, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	setString(&a.Name, patch.Name)
	setString(&a.Time, patch.Time)
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}
	if err := validateAlert(a); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, notFound(err, "alert")
	}
	return a, nil
}

func (s *alertService) Delete(ctx context.Context, ownerID, id string) error {
	return notFound(s.repo.Delete(ctx, id, ownerID), "alert")
}
