package postgres

import (
	"context"
	"database/sql"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

const petColumns = `id, owner_id, pet_name, pet_type, pet_color, pet_gender, pet_birthday, pet_photo, qr_token, qr_url, created_at`

// PetPostgres is a PostgreSQL implementation of repository.PetRepository.
type PetPostgres struct {
	db *sql.DB
}

// NewPetPostgres creates a new PetPostgres repository.
func NewPetPostgres(db *sql.DB) *PetPostgres {
	return &PetPostgres{db: db}
}

var _ repository.PetRepository = (*PetPostgres)(nil)

func (r *PetPostgres) Create(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	const q = `
		INSERT INTO pets (owner_id, pet_name, pet_type, pet_color, pet_gender, pet_birthday, pet_photo, qr_token, qr_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + petColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		p.OwnerID,
		p.PetName,
		p.PetType,
		p.PetColor,
		p.PetGender,
		p.PetBirthday,
		p.PetPhoto,
		p.QRToken,
		p.QRURL,
	)
	return scanPet(row)
}

func (r *PetPostgres) FindByID(ctx context.Context, id string) (*model.Pet, error) {
	const q = `SELECT ` + petColumns + ` FROM pets WHERE id = $1`
	return scanPet(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *PetPostgres) FindOwned(ctx context.Context, id, ownerID string) (*model.Pet, error) {
	const q = `SELECT ` + petColumns + ` FROM pets WHERE id = $1 AND owner_id = $2`
	return scanPet(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id, ownerID))
}

func (r *PetPostgres) FindOwnedByName(ctx context.Context, ownerID, name string) (*model.Pet, error) {
	const q = `
		SELECT ` + petColumns + `
		FROM pets
		WHERE owner_id = $1 AND pet_name = $2
		ORDER BY created_at
		LIMIT 1
	`
	return scanPet(database.Conn(ctx, r.db).QueryRowContext(ctx, q, ownerID, name))
}

func (r *PetPostgres) FindProfileByQRToken(ctx context.Context, token string) (*model.PetProfile, error) {
	const q = `
		SELECT p.pet_name, p.pet_photo, p.qr_url, u.first_name, u.last_name, u.phone, u.location
		FROM pets p
		JOIN users u ON u.id = p.owner_id
		WHERE p.qr_token::text = $1
	`
	var (
		pp          model.PetProfile
		first, last string
	)
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, token).Scan(
		&pp.PetName, &pp.PetPhoto, &pp.QRURL, &first, &last, &pp.OwnerPhone, &pp.OwnerLocation,
	); err != nil {
		return nil, err
	}
	pp.OwnerName = model.User{FirstName: first, LastName: last}.FullName()
	return &pp, nil
}

func (r *PetPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error) {
	const q = `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r *PetPostgres) Update(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	const q = `
		UPDATE pets
		SET pet_name = $3, pet_type = $4, pet_color = $5, pet_gender = $6, pet_birthday = $7, pet_photo = $8
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + petColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		p.ID,
		p.OwnerID,
		p.PetName,
		p.PetType,
		p.PetColor,
		p.PetGender,
		p.PetBirthday,
		p.PetPhoto,
	)
	return scanPet(row)
}

func (r *PetPostgres) TransferOwnership(ctx context.Context, petID, newOwnerID string) error {
	const q = `UPDATE pets SET owner_id = $2 WHERE id = $1`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, petID, newOwnerID))
}

func (r *PetPostgres) Delete(ctx context.Context, id, ownerID string) error {
	const q = `DELETE FROM pets WHERE id = $1 AND owner_id = $2`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, id, ownerID))
}

func scanPet(s scanner) (*model.Pet, error) {
	var p model.Pet
	if err := s.Scan(
		&p.ID,
		&p.OwnerID,
		&p.PetName,
		&p.PetType,
		&p.PetColor,
		&p.PetGender,
		&p.PetBirthday,
		&p.PetPhoto,
		&p.QRToken,
		&p.QRURL,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
