package postgres

import (
	"context"
	"database/sql"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

const appointmentSelect = `
		SELECT a.id, a.pet_id, a.service, a.date, a.time, a.provider, a.created_at,
		       p.pet_name, p.pet_type, p.pet_photo
		FROM appointments a
		JOIN pets p ON p.id = a.pet_id`

// AppointmentPostgres is a PostgreSQL implementation of repository.AppointmentRepository.
type AppointmentPostgres struct {
	db *sql.DB
}

// NewAppointmentPostgres creates a new AppointmentPostgres repository.
func NewAppointmentPostgres(db *sql.DB) *AppointmentPostgres {
	return &AppointmentPostgres{db: db}
}

var _ repository.AppointmentRepository = (*AppointmentPostgres)(nil)

func (r *AppointmentPostgres) Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	const q = `
		INSERT INTO appointments (pet_id, service, date, time, provider)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	out := *a
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		a.PetID, a.Service, a.Date, a.Time, a.Provider,
	).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AppointmentPostgres) FindByID(ctx context.Context, id, ownerID string) (*model.Appointment, error) {
	q := appointmentSelect + "\n\t\tWHERE a.id = $1 AND p.owner_id = $2"
	return scanAppointment(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id, ownerID))
}

func (r *AppointmentPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Appointment, error) {
	q := appointmentSelect + "\n\t\tWHERE p.owner_id = $1\n\t\tORDER BY a.date, a.time"
	return r.list(ctx, q, ownerID)
}

func (r *AppointmentPostgres) ListByPet(ctx context.Context, petID, ownerID string) ([]model.Appointment, error) {
	q := appointmentSelect + "\n\t\tWHERE a.pet_id = $1 AND p.owner_id = $2\n\t\tORDER BY a.date, a.time"
	return r.list(ctx, q, petID, ownerID)
}

func (r *AppointmentPostgres) list(ctx context.Context, q string, args ...any) ([]model.Appointment, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r *AppointmentPostgres) Update(ctx context.Context, a *model.Appointment) error {
	const q = `
		UPDATE appointments
		SET pet_id = $2, service = $3, date = $4, time = $5, provider = $6
		WHERE id = $1
	`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q,
		a.ID, a.PetID, a.Service, a.Date, a.Time, a.Provider,
	))
}

func (r *AppointmentPostgres) Delete(ctx context.Context, id, ownerID string) error {
	const q = `
		DELETE FROM appointments a
		USING pets p
		WHERE a.id = $1 AND p.id = a.pet_id AND p.owner_id = $2
	`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id, ownerID))
}

func scanAppointment(s scanner) (*model.Appointment, error) {
	var (
		a  model.Appointment
		pb model.PetBrief
	)
	if err := s.Scan(
		&a.ID,
		&a.PetID,
		&a.Service,
		&a.Date,
		&a.Time,
		&a.Provider,
		&a.CreatedAt,
		&pb.PetName,
		&pb.PetType,
		&pb.PetPhoto,
	); err != nil {
		return nil, err
	}
	pb.ID = a.PetID
	a.PetDetails = &pb
	return &a, nil
}

const vaccinationSelect = `
		SELECT v.id, v.pet_id, p.pet_name, v.vacc_name, v.vacc_date, v.vacc_certificate, v.created_at
		FROM vaccinations v
		JOIN pets p ON p.id = v.pet_id`

// VaccinationPostgres is a PostgreSQL implementation of repository.VaccinationRepository.
type VaccinationPostgres struct {
	db *sql.DB
}

// NewVaccinationPostgres creates a new VaccinationPostgres repository.
func NewVaccinationPostgres(db *sql.DB) *VaccinationPostgres {
	return &VaccinationPostgres{db: db}
}

var _ repository.VaccinationRepository = (*VaccinationPostgres)(nil)

func (r *VaccinationPostgres) Create(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error) {
	const q = `
		INSERT INTO vaccinations (pet_id, vacc_name, vacc_date, vacc_certificate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	out := *v
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		v.PetID, v.VaccName, v.VaccDate, v.VaccCertificate,
	).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *VaccinationPostgres) FindByID(ctx context.Context, id, ownerID string) (*model.Vaccination, error) {
	q := vaccinationSelect + "\n\t\tWHERE v.id = $1 AND p.owner_id = $2"
	return scanVaccination(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id, ownerID))
}

func (r *VaccinationPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Vaccination, error) {
	q := vaccinationSelect + "\n\t\tWHERE p.owner_id = $1\n\t\tORDER BY v.vacc_date DESC"
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	return items, rows.Err()
}

func (r *VaccinationPostgres) Update(ctx context.Context, v *model.Vaccination) error {
	const q = `
		UPDATE vaccinations
		SET pet_id = $2, vacc_name = $3, vacc_date = $4, vacc_certificate = $5
		WHERE id = $1
	`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q,
		v.ID, v.PetID, v.VaccName, v.VaccDate, v.VaccCertificate,
	))
}

func (r *VaccinationPostgres) Delete(ctx context.Context, id, ownerID string) error {
	const q = `
		DELETE FROM vaccinations v
		USING pets p
		WHERE v.id = $1 AND p.id = v.pet_id AND p.owner_id = $2
	`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id, ownerID))
}

func scanVaccination(s scanner) (*model.Vaccination, error) {
	var v model.Vaccination
	if err := s.Scan(
		&v.ID,
		&v.PetID,
		&v.PetName,
		&v.VaccName,
		&v.VaccDate,
		&v.VaccCertificate,
		&v.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}

// MoodPostgres is a PostgreSQL implementation of repository.MoodRepository.
type MoodPostgres struct {
	db *sql.DB
}

// NewMoodPostgres creates a new MoodPostgres repository.
func NewMoodPostgres(db *sql.DB) *MoodPostgres {
	return &MoodPostgres{db: db}
}

var _ repository.MoodRepository = (*MoodPostgres)(nil)

func (r *MoodPostgres) Create(ctx context.Context, m *model.Mood) (*model.Mood, error) {
	const q = `
		INSERT INTO moods (pet_id, mood, notes, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	out := *m
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		m.PetID, m.Mood, m.Notes, m.Date,
	).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MoodPostgres) History(ctx context.Context, petID string, since model.Date) ([]model.Mood, error) {
	const q = `
		SELECT m.id, m.pet_id, p.pet_name, m.mood, m.notes, m.date, m.created_at
		FROM moods m
		JOIN pets p ON p.id = m.pet_id
		WHERE m.pet_id = $1 AND m.date >= $2
		ORDER BY m.date ASC, m.created_at ASC
	`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, petID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Mood, 0)
	for rows.Next() {
		var m model.Mood
		if err := rows.Scan(&m.ID, &m.PetID, &m.PetName, &m.Mood, &m.Notes, &m.Date, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const alertColumns = `id, owner_id, name, time, is_active, created_at`

// AlertPostgres is a PostgreSQL implementation of repository.AlertRepository.
type AlertPostgres struct {
	db *sql.DB
}

// NewAlertPostgres creates a new AlertPostgres repository.
func NewAlertPostgres(db *sql.DB) *AlertPostgres {
	return &AlertPostgres{db: db}
}

var _ repository.AlertRepository = (*AlertPostgres)(nil)

func (r *AlertPostgres) Create(ctx context.Context, a *model.Alert) (*model.Alert, error) {
	const q = `
		INSERT INTO alerts (owner_id, name, time, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + alertColumns
	return scanAlert(database.Conn(ctx, r.db).QueryRowContext(ctx, q, a.OwnerID, a.Name, a.Time, a.IsActive))
}

func (r *AlertPostgres) FindByID(ctx context.Context, id, ownerID string) (*model.Alert, error) {
	const q = `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1 AND owner_id = $2`
	return scanAlert(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id, ownerID))
}

func (r *AlertPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Alert, error) {
	const q = `SELECT ` + alertColumns + ` FROM alerts WHERE owner_id = $1 ORDER BY time, name`
	return r.list(ctx, q, ownerID)
}

func (r *AlertPostgres) ListDue(ctx context.Context, clock string) ([]model.Alert, error) {
	const q = `SELECT ` + alertColumns + ` FROM alerts WHERE is_active AND time = $1`
	return r.list(ctx, q, clock)
}

func (r *AlertPostgres) list(ctx context.Context, q string, arg string) ([]model.Alert, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r *AlertPostgres) Update(ctx context.Context, a *model.Alert) error {
	const q = `UPDATE alerts SET name = $3, time = $4, is_active = $5 WHERE id = $1 AND owner_id = $2`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, a.ID, a.OwnerID, a.Name, a.Time, a.IsActive))
}

func (r *AlertPostgres) Delete(ctx context.Context, id, ownerID string) error {
	const q = `DELETE FROM alerts WHERE id = $1 AND owner_id = $2`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id, ownerID))
}

func scanAlert(s scanner) (*model.Alert, error) {
	var a model.Alert
	if err := s.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Time, &a.IsActive, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
