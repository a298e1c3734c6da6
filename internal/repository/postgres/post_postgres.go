package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"petcare/internal/database"
	"petcare/internal/model"
	"petcare/internal/repository"
)

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var postTables = map[model.PostKind]string{
	model.PostAdoption: "adoption_posts",
	model.PostMating:   "mating_posts",
}

// PostPostgres is a PostgreSQL implementation of repository.PostRepository
// for a single marketplace table.
type PostPostgres struct {
	db    *sql.DB
	table string
}

// NewPostPostgres creates a PostPostgres for the given marketplace kind.
func NewPostPostgres(db *sql.DB, kind model.PostKind) *PostPostgres {
	table, ok := postTables[kind]
	if !ok {
		panic(fmt.Sprintf("postgres: unknown post kind %q", kind))
	}
	return &PostPostgres{db: db, table: table}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

func (r *PostPostgres) Create(ctx context.Context, petID, ownerMessage string) (*model.Post, error) {
	q := `INSERT INTO ` + r.table + ` (pet_id, owner_message) VALUES ($1, $2) RETURNING id, pet_id, owner_message, created_at`
	var p model.Post
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, petID, ownerMessage).Scan(
		&p.ID, &p.PetID, &p.OwnerMessage, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostPostgres) ExistsForPet(ctx context.Context, petID string) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM ` + r.table + ` WHERE pet_id = $1)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, petID).Scan(&exists)
	return exists, err
}

func (r *PostPostgres) DeleteByPet(ctx context.Context, petID string) error {
	q := `DELETE FROM ` + r.table + ` WHERE pet_id = $1`
	return expectAffected(database.Conn(ctx, r.db).ExecContext(ctx, q, petID))
}

func (r *PostPostgres) selectListed() string {
	return `
		SELECT p.id, p.pet_name, p.pet_type, p.pet_color, p.pet_gender, p.pet_birthday, p.pet_photo,
		       u.id, u.first_name, u.last_name, u.location, a.owner_message, a.created_at
		FROM ` + r.table + ` a
		JOIN pets p ON p.id = a.pet_id
		JOIN users u ON u.id = p.owner_id`
}

func (r *PostPostgres) List(ctx context.Context, f model.PetFilter) ([]model.MarketplacePet, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.PetType != "" {
		add("lower(p.pet_type) = lower($%d)", f.PetType)
	}
	if f.PetGender != "" {
		add("lower(p.pet_gender) = lower($%d)", f.PetGender)
	}
	if f.PetColor != "" {
		add("p.pet_color = $%d", f.PetColor)
	}
	if f.Location != "" {
		add(`u.location ILIKE '%%' || $%d || '%%' ESCAPE '\'`, likeEscaper.Replace(f.Location))
	}

	q := r.selectListed()
	if len(where) > 0 {
		q += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	q += "\n\t\tORDER BY a.created_at DESC, p.id"
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		q += fmt.Sprintf("\n\t\tLIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	conn := database.Conn(ctx, r.db)
	rows, err := conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MarketplacePet, 0)
	for rows.Next() {
		mp, err := scanMarketplacePet(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *mp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := attachVaccinations(ctx, conn, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostPostgres) GetByPet(ctx context.Context, petID string) (*model.MarketplacePet, error) {
	q := r.selectListed() + "\n\t\tWHERE p.id = $1"
	conn := database.Conn(ctx, r.db)
	mp, err := scanMarketplacePet(conn.QueryRowContext(ctx, q, petID))
	if err != nil {
		return nil, err
	}
	items := []model.MarketplacePet{*mp}
	if err := attachVaccinations(ctx, conn, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func scanMarketplacePet(s scanner) (*model.MarketplacePet, error) {
	var (
		mp          model.MarketplacePet
		first, last string
	)
	if err := s.Scan(
		&mp.ID,
		&mp.PetName,
		&mp.PetType,
		&mp.PetColor,
		&mp.PetGender,
		&mp.PetBirthday,
		&mp.PetPhoto,
		&mp.OwnerID,
		&first,
		&last,
		&mp.OwnerLocation,
		&mp.OwnerMessage,
		&mp.PostedAt,
	); err != nil {
		return nil, err
	}
	mp.OwnerName = model.User{FirstName: first, LastName: last}.FullName()
	mp.Vaccinations = []model.VaccinationSummary{}
	return &mp, nil
}

// attachVaccinations loads vaccinations for all listed pets in one query.
func attachVaccinations(ctx context.Context, conn database.DBTX, items []model.MarketplacePet) error {
	if len(items) == 0 {
		return nil
	}
	idx := make(map[string]int, len(items))
	ids := make([]string, 0, len(items))
	for i, it := range items {
		idx[it.ID] = i
		ids = append(ids, it.ID)
	}

	const q = `
		SELECT pet_id, vacc_name, vacc_date, vacc_certificate
		FROM vaccinations
		WHERE pet_id::text = ANY(string_to_array($1, ','))
		ORDER BY vacc_date DESC
	`
	rows, err := conn.QueryContext(ctx, q, strings.Join(ids, ","))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			petID string
			v     model.VaccinationSummary
		)
		if err := rows.Scan(&petID, &v.VaccName, &v.VaccDate, &v.VaccCertificate); err != nil {
			return err
		}
		if i, ok := idx[petID]; ok {
			items[i].Vaccinations = append(items[i].Vaccinations, v)
		}
	}
	return rows.Err()
}
