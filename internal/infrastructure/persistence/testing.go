//go:build integration
// +build integration

package persistence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB                  *gorm.DB
	BioRepo             profile.BioRepository
	EducationRepo       education.Repository
	ExperienceRepo      experience.Repository
	SkillRepo           skills.SkillRepository
	SkillCategoryRepo   skills.CategoryRepository
	ProjectRepo         projects.ProjectRepository
	ProjectCategoryRepo projects.CategoryRepository
	ContactRepo         contacts.Repository
	UserRepo            users.Repository
}

// SetupTestDB initializes a migrated test database with automatic cleanup.
// SQLite databases live in a uniquely named shared memory cache so that every
// pooled connection sees the same schema.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.BioRepo, err = NewGormBioRepository(db, logger)
	require.NoError(t, err)
	tc.EducationRepo, err = NewGormEducationRepository(db, logger)
	require.NoError(t, err)
	tc.ExperienceRepo, err = NewGormExperienceRepository(db, logger)
	require.NoError(t, err)
	tc.SkillRepo, err = NewGormSkillRepository(db, logger)
	require.NoError(t, err)
	tc.SkillCategoryRepo, err = NewGormSkillCategoryRepository(db, logger)
	require.NoError(t, err)
	tc.ProjectRepo, err = NewGormProjectRepository(db, logger)
	require.NoError(t, err)
	tc.ProjectCategoryRepo, err = NewGormProjectCategoryRepository(db, logger)
	require.NoError(t, err)
	tc.ContactRepo, err = NewGormContactRepository(db, logger)
	require.NoError(t, err)
	tc.UserRepo, err = NewGormUserRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestBio returns a valid, unsaved Bio.
func CreateTestBio(t *testing.T) *profile.Bio {
	t.Helper()

	return &profile.Bio{
		Name:        "Jane Doe",
		Roles:       []string{"Backend Engineer", "Writer"},
		Description: "Builds APIs.",
		Github:      "https://github.com/janedoe",
		Linkedin:    "https://www.linkedin.com/in/janedoe",
	}
}

// CreateTestProject returns a valid, unsaved Project in the given category.
func CreateTestProject(t *testing.T, title, category string) *projects.Project {
	t.Helper()

	return &projects.Project{
		Title:       title,
		Date:        "2024",
		Description: "A test project",
		Category:    category,
		Tags:        []string{"go", "gin"},
		Github:      "https://github.com/janedoe/" + strings.ToLower(title),
	}
}
