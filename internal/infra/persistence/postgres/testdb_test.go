package postgres

import (
	"testing"
	"time"

	"medlink/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role entity.Role) *entity.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	user := &entity.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        uuid.NewString() + "@example.com",
		Name:         name,
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == entity.RoleDoctor {
		user.DoctorProfile = &entity.DoctorProfile{Specialty: entity.DefaultSpecialty}
	} else {
		user.PatientProfile = &entity.PatientProfile{}
	}

	require.NoError(t, NewUserRepository(db).Create(t.Context(), user))

	return user
}
