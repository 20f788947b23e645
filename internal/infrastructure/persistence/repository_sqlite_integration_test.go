//go:build integration
// +build integration

package persistence

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBioSqliteRepository_CreateAndGetByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	bio := CreateTestBio(t)
	require.NoError(t, tc.BioRepo.Create(ctx, bio))
	require.NotZero(t, bio.ID)
	assert.False(t, bio.CreatedAt.IsZero())

	var stored models.BioModel
	require.NoError(t, tc.DB.First(&stored, bio.ID).Error)
	assert.Equal(t, bio.Name, stored.Name)

	fetched, err := tc.BioRepo.GetByID(ctx, bio.ID)
	require.NoError(t, err)
	assert.Equal(t, bio.Roles, fetched.Roles)
	assert.Equal(t, bio.Github, fetched.Github)
}

func TestBioSqliteRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.BioRepo.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	var buf bytes.Buffer
	db := tc.DB.Session(&gorm.Session{Logger: newGormLogger(&buf)})

	err := db.First(&models.BioModel{}, 999).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	var rows []map[string]interface{}
	require.Error(t, db.Raw("SELECT * FROM no_such_table").Scan(&rows).Error)
	assert.Contains(t, buf.String(), "no_such_table")
}

func TestBioSqliteRepository_Update(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	bio := CreateTestBio(t)
	require.NoError(t, tc.BioRepo.Create(ctx, bio))
	createdAt := bio.CreatedAt

	bio.Name = "John Doe"
	bio.Roles = []string{"SRE"}
	bio.Twitter = ""
	require.NoError(t, tc.BioRepo.Update(ctx, bio))

	fetched, err := tc.BioRepo.GetByID(ctx, bio.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", fetched.Name)
	assert.Equal(t, []string{"SRE"}, fetched.Roles)
	assert.WithinDuration(t, createdAt, fetched.CreatedAt, time.Second)
}

func TestBioSqliteRepository_Update_Missing(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	bio := CreateTestBio(t)
	bio.ID = 42

	err := tc.BioRepo.Update(context.Background(), bio)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestBioSqliteRepository_DeleteByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	bio := CreateTestBio(t)
	require.NoError(t, tc.BioRepo.Create(ctx, bio))

	require.NoError(t, tc.BioRepo.DeleteByID(ctx, bio.ID))

	_, err := tc.BioRepo.GetByID(ctx, bio.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = tc.BioRepo.DeleteByID(ctx, bio.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProjectSqliteRepository_List_FilterSortPaginate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, p := range []*projects.Project{
		CreateTestProject(t, "Alpha", "Web"),
		CreateTestProject(t, "Beta", "Mobile"),
		CreateTestProject(t, "Gamma", "Web"),
	} {
		require.NoError(t, tc.ProjectRepo.Create(ctx, p))
	}

	query := common.NewListQuery()
	query.Filters["category"] = "Web"
	query.SortBy = "title"
	query.SortOrder = common.SortDesc

	list, err := tc.ProjectRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Gamma", list[0].Title)
	assert.Equal(t, "Alpha", list[1].Title)
	assert.Equal(t, []string{"go", "gin"}, list[0].Tags)

	paged, err := tc.ProjectRepo.List(ctx, &common.ListQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Beta", paged[0].Title)
}

func TestProjectSqliteRepository_List_InvalidQuery(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.ProjectRepo.List(context.Background(), &common.ListQuery{SortBy: "title; DROP TABLE projects"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestSkillCategorySqliteRepository_UniqueName(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.SkillCategoryRepo.Create(ctx, &skills.Category{Name: "Backend"}))

	err := tc.SkillCategoryRepo.Create(ctx, &skills.Category{Name: "Backend"})
	assert.ErrorIs(t, err, common.ErrConflict)

	found, err := tc.SkillCategoryRepo.GetByName(ctx, "Backend")
	require.NoError(t, err)
	assert.Equal(t, "Backend", found.Name)

	_, err = tc.SkillCategoryRepo.GetByName(ctx, "Frontend")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSkillSqliteRepository_CountByCategory(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	category := &skills.Category{Name: "Languages"}
	require.NoError(t, tc.SkillCategoryRepo.Create(ctx, category))

	require.NoError(t, tc.SkillRepo.Create(ctx, &skills.Skill{Title: "Backend", Name: "Go", SkillCategoryID: &category.ID}))
	require.NoError(t, tc.SkillRepo.Create(ctx, &skills.Skill{Title: "Backend", Name: "Rust", SkillCategoryID: &category.ID}))
	require.NoError(t, tc.SkillRepo.Create(ctx, &skills.Skill{Title: "Tools", Name: "Docker"}))

	count, err := tc.SkillRepo.CountByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	query := common.NewListQuery()
	query.Filters["title"] = "Tools"
	list, err := tc.SkillRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].SkillCategoryID)
}

func TestProjectCategorySqliteRepository_RenameMovesProjects(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	web := &projects.Category{Name: "Web"}
	require.NoError(t, tc.ProjectCategoryRepo.Create(ctx, web))
	require.NoError(t, tc.ProjectCategoryRepo.Create(ctx, &projects.Category{Name: "Mobile"}))
	for _, p := range []*projects.Project{
		CreateTestProject(t, "Alpha", "Web"),
		CreateTestProject(t, "Beta", "Web"),
		CreateTestProject(t, "Gamma", "Mobile"),
	} {
		require.NoError(t, tc.ProjectRepo.Create(ctx, p))
	}

	count, err := tc.ProjectRepo.CountByCategory(ctx, "Web")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	web.Name = "Websites"
	require.NoError(t, tc.ProjectCategoryRepo.Rename(ctx, web, "Web"))

	count, err = tc.ProjectRepo.CountByCategory(ctx, "Web")
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = tc.ProjectRepo.CountByCategory(ctx, "Websites")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A clash with an existing name rolls the whole rename back.
	web.Name = "Mobile"
	err = tc.ProjectCategoryRepo.Rename(ctx, web, "Websites")
	assert.ErrorIs(t, err, common.ErrConflict)

	count, err = tc.ProjectRepo.CountByCategory(ctx, "Websites")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestContactSqliteRepository_FilterByEmail(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.ContactRepo.Create(ctx, &contacts.Contact{Name: "A", Email: "a@example.com", Message: "one"}))
	require.NoError(t, tc.ContactRepo.Create(ctx, &contacts.Contact{Name: "A", Email: "a@example.com", Message: "two"}))
	require.NoError(t, tc.ContactRepo.Create(ctx, &contacts.Contact{Name: "B", Email: "b@example.com", Message: "three"}))

	query := common.NewListQuery()
	query.Filters["email"] = "a@example.com"
	list, err := tc.ContactRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserSqliteRepository_GetByEmail(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.UserRepo.Create(ctx, &users.User{Email: "admin@example.com", PasswordHash: "hash"}))

	u, err := tc.UserRepo.GetByEmail(ctx, "  ADMIN@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "hash", u.PasswordHash)

	err = tc.UserRepo.Create(ctx, &users.User{Email: "admin@example.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, common.ErrConflict)
}
