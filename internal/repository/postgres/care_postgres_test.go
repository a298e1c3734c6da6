package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare/internal/model"
)

func TestAppointmentPostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM appointments a JOIN pets p ON p.id = a.pet_id WHERE p.owner_id = \\$1 ORDER BY a.date, a.time").
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "pet_id", "service", "date", "time", "provider", "created_at", "pet_name", "pet_type", "pet_photo"}).
			AddRow("ap-1", "pet-1", "Grooming", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "10:30", "Paws", time.Now(), "Milo", "Cat", ""))

	items, err := NewAppointmentPostgres(db).ListByOwner(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2025-03-01", items[0].Date.String())
	require.NotNil(t, items[0].PetDetails)
	assert.Equal(t, "pet-1", items[0].PetDetails.ID)
	assert.Equal(t, "Milo", items[0].PetDetails.PetName)
}

func TestAppointmentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM appointments a USING pets p WHERE a.id = \\$1 AND p.id = a.pet_id AND p.owner_id = \\$2").
		WithArgs("ap-1", "other").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewAppointmentPostgres(db).Delete(context.Background(), "ap-1", "other")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestVaccinationPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d, _ := model.ParseDate("2024-05-01")
	mock.ExpectQuery("INSERT INTO vaccinations").
		WithArgs("pet-1", "Rabies", "2024-05-01", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("v-1", time.Now()))

	v, err := NewVaccinationPostgres(db).Create(context.Background(), &model.Vaccination{PetID: "pet-1", VaccName: "Rabies", VaccDate: d})

	require.NoError(t, err)
	assert.Equal(t, "v-1", v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodPostgres_History(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	since, _ := model.ParseDate("2025-06-08")
	mock.ExpectQuery("FROM moods m JOIN pets p ON p.id = m.pet_id WHERE m.pet_id = \\$1 AND m.date >= \\$2 ORDER BY m.date ASC").
		WithArgs("pet-1", "2025-06-08").
		WillReturnRows(sqlmock.NewRows([]string{"id", "pet_id", "pet_name", "mood", "notes", "date", "created_at"}).
			AddRow("m-1", "pet-1", "Milo", 4, "", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), time.Now()).
			AddRow("m-2", "pet-1", "Milo", 2, "vet", time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), time.Now()))

	items, err := NewMoodPostgres(db).History(context.Background(), "pet-1", since)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2025-06-09", items[0].Date.String())
	assert.Equal(t, 2, items[1].Mood)
}

func TestAlertPostgres_ListDue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM alerts WHERE is_active AND time = \\$1").
		WithArgs("08:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "time", "is_active", "created_at"}).
			AddRow("al-1", "owner-1", "Feed Milo", "08:00", true, time.Now()))

	items, err := NewAlertPostgres(db).ListDue(context.Background(), "08:00")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Feed Milo", items[0].Name)
}

func TestAlertPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE alerts SET name = \\$3, time = \\$4, is_active = \\$5 WHERE id = \\$1 AND owner_id = \\$2").
		WithArgs("al-1", "owner-1", "Walk", "18:00", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewAlertPostgres(db).Update(context.Background(), &model.Alert{ID: "al-1", OwnerID: "owner-1", Name: "Walk", Time: "18:00"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
