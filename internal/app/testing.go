//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/auth"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/storage"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	BioService             profile.BioService
	EducationService       education.Service
	ExperienceService      experience.Service
	SkillService           skills.SkillService
	SkillCategoryService   skills.CategoryService
	ProjectService         projects.ProjectService
	ProjectCategoryService projects.CategoryService
	ContactService         contacts.Service
	AuthService            users.AuthService
	UploadService          uploads.UploadService

	// Infrastructure
	Store     *storage.LocalFileStore
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests.
// Uploads are written to a temporary directory.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	store, err := storage.NewLocalFileStore(config.StorageSettings{
		UploadDir:    t.TempDir(),
		PublicPrefix: "/uploads",
		MaxFileSize:  config.DefaultMaxFileSize,
	}, logger)
	require.NoError(t, err, "Failed to create file store")

	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err, "Failed to create password hasher")

	tokens, err := auth.NewJWTManager("integration-test-secret", time.Hour)
	require.NoError(t, err, "Failed to create token manager")

	bioService, err := NewBioService(dbContext.BioRepo, store, logger)
	require.NoError(t, err, "Failed to create BioService")

	educationService, err := NewEducationService(dbContext.EducationRepo, store, logger)
	require.NoError(t, err, "Failed to create EducationService")

	experienceService, err := NewExperienceService(dbContext.ExperienceRepo, store, logger)
	require.NoError(t, err, "Failed to create ExperienceService")

	skillService, err := NewSkillService(dbContext.SkillRepo, dbContext.SkillCategoryRepo, store, logger)
	require.NoError(t, err, "Failed to create SkillService")

	skillCategoryService, err := NewSkillCategoryService(dbContext.SkillCategoryRepo, dbContext.SkillRepo, logger)
	require.NoError(t, err, "Failed to create SkillCategoryService")

	projectService, err := NewProjectService(dbContext.ProjectRepo, dbContext.ProjectCategoryRepo, store, logger)
	require.NoError(t, err, "Failed to create ProjectService")

	projectCategoryService, err := NewProjectCategoryService(dbContext.ProjectCategoryRepo, dbContext.ProjectRepo, logger)
	require.NoError(t, err, "Failed to create ProjectCategoryService")

	contactService, err := NewContactService(dbContext.ContactRepo, logger)
	require.NoError(t, err, "Failed to create ContactService")

	authService, err := NewAuthService(dbContext.UserRepo, hasher, tokens, logger)
	require.NoError(t, err, "Failed to create AuthService")

	uploadService, err := NewUploadService(store, logger)
	require.NoError(t, err, "Failed to create UploadService")

	return &TestServices{
		BioService:             bioService,
		EducationService:       educationService,
		ExperienceService:      experienceService,
		SkillService:           skillService,
		SkillCategoryService:   skillCategoryService,
		ProjectService:         projectService,
		ProjectCategoryService: projectCategoryService,
		ContactService:         contactService,
		AuthService:            authService,
		UploadService:          uploadService,
		Store:                  store,
		DBContext:              dbContext,
	}
}

func ptr[T any](v T) *T {
	return &v
}
