//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/httputil"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadExists(t *testing.T, services *TestServices, publicPath string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(services.Store.Dir(), path.Base(publicPath)))
	return err == nil
}

func countUploads(t *testing.T, services *TestServices) int {
	t.Helper()
	entries, err := os.ReadDir(services.Store.Dir())
	require.NoError(t, err)
	return len(entries)
}

func validBioPatch() *profile.BioPatch {
	return &profile.BioPatch{
		Name:        ptr("Jane Doe"),
		Roles:       ptr([]string{"Engineer"}),
		Description: ptr("Builds things."),
		Github:      ptr("https://github.com/janedoe"),
		Linkedin:    ptr("https://linkedin.com/in/janedoe"),
	}
}

func TestBioService_CreateWithFiles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	form, err := httputil.CreateMultipartForm(nil,
		httputil.FormFile{Field: "profile_pic", FileName: "me.png", Content: testutil.PNGBytes},
		httputil.FormFile{Field: "resume", FileName: "cv.pdf", Content: testutil.PDFBytes},
	)
	require.NoError(t, err)

	bio, err := services.BioService.Create(ctx, validBioPatch(), form)
	require.NoError(t, err)
	require.NotZero(t, bio.ID)
	assert.True(t, uploadExists(t, services, bio.Image))
	assert.True(t, uploadExists(t, services, bio.Resume))

	fetched, err := services.BioService.GetByID(ctx, bio.ID)
	require.NoError(t, err)
	assert.Equal(t, bio.Image, fetched.Image)
	assert.Equal(t, []string{"Engineer"}, fetched.Roles)
}

func TestBioService_CreateInvalidStoresNothing(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	patch := validBioPatch()
	patch.Github = ptr("not a url")

	_, err := services.BioService.Create(context.Background(), patch, testutil.CreateImageForm(t, "image", "me.png"))
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 0, countUploads(t, services))
}

func TestBioService_CreateRejectedFileRollsBack(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	// The image is stored first, then the resume is rejected.
	form, err := httputil.CreateMultipartForm(nil,
		httputil.FormFile{Field: "image", FileName: "me.png", Content: testutil.PNGBytes},
		httputil.FormFile{Field: "resume", FileName: "cv.txt", Content: []byte("plain text")},
	)
	require.NoError(t, err)

	_, err = services.BioService.Create(context.Background(), validBioPatch(), form)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 0, countUploads(t, services))
}

func TestBioService_UpdateReplacesFile(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	bio, err := services.BioService.Create(ctx, validBioPatch(), testutil.CreateImageForm(t, "image", "old.png"))
	require.NoError(t, err)
	oldImage := bio.Image

	updated, err := services.BioService.Update(ctx, bio.ID, &profile.BioPatch{Name: ptr("John Doe")}, testutil.CreateImageForm(t, "image", "new.png"))
	require.NoError(t, err)

	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, "Builds things.", updated.Description)
	assert.NotEqual(t, oldImage, updated.Image)
	assert.False(t, uploadExists(t, services, oldImage))
	assert.True(t, uploadExists(t, services, updated.Image))
}

func TestBioService_UpdateWithoutFileKeepsPath(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	bio, err := services.BioService.Create(ctx, validBioPatch(), testutil.CreateImageForm(t, "image", "me.png"))
	require.NoError(t, err)

	updated, err := services.BioService.Update(ctx, bio.ID, &profile.BioPatch{Twitter: ptr("https://x.com/jane")}, nil)
	require.NoError(t, err)
	assert.Equal(t, bio.Image, updated.Image)
	assert.True(t, uploadExists(t, services, bio.Image))
}

func TestBioService_DeleteRemovesFiles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	bio, err := services.BioService.Create(ctx, validBioPatch(), testutil.CreateImageForm(t, "image", "me.png"))
	require.NoError(t, err)

	require.NoError(t, services.BioService.DeleteByID(ctx, bio.ID))
	assert.False(t, uploadExists(t, services, bio.Image))

	_, err = services.BioService.GetByID(ctx, bio.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, services.BioService.DeleteByID(ctx, bio.ID), common.ErrNotFound)
}

func TestEducationService_CRUD(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	e, err := services.EducationService.Create(ctx, &education.Patch{
		School: ptr("TU Munich"),
		Degree: ptr("MSc"),
		Date:   ptr("2015 - 2017"),
		Desc:   ptr("Distributed systems"),
	}, testutil.CreateImageForm(t, "img", "logo.png"))
	require.NoError(t, err)
	assert.NotEmpty(t, e.Img)

	updated, err := services.EducationService.Update(ctx, e.ID, &education.Patch{Grade: ptr("1.3")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "1.3", updated.Grade)
	assert.Equal(t, "TU Munich", updated.School)

	list, err := services.EducationService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, services.EducationService.DeleteByID(ctx, e.ID))
	assert.False(t, uploadExists(t, services, e.Img))
}

func TestExperienceService_DocumentAndLink(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	form, err := httputil.CreateMultipartForm(nil, httputil.FormFile{Field: "doc", FileName: "ref.pdf", Content: testutil.PDFBytes})
	require.NoError(t, err)

	e, err := services.ExperienceService.Create(ctx, &experience.Patch{
		Role:    ptr("Engineer"),
		Company: ptr("ACME"),
		Date:    ptr("2020"),
		Desc:    ptr("Did things"),
		Skills:  ptr([]string{"go", "sql"}),
	}, form)
	require.NoError(t, err)
	storedDoc := e.Doc
	assert.True(t, uploadExists(t, services, storedDoc))

	// Switching to an external link removes the stored document.
	updated, err := services.ExperienceService.Update(ctx, e.ID, &experience.Patch{Doc: ptr("https://example.com/reference")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/reference", updated.Doc)
	assert.False(t, uploadExists(t, services, storedDoc))

	require.NoError(t, services.ExperienceService.DeleteByID(ctx, e.ID))
}

func TestExperienceService_RequiresSkills(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.ExperienceService.Create(context.Background(), &experience.Patch{
		Role:    ptr("Engineer"),
		Company: ptr("ACME"),
		Date:    ptr("2020"),
		Desc:    ptr("Did things"),
	}, nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestExperienceService_RejectsDocThatIsNotALink(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	patch := &experience.Patch{
		Role:    ptr("Engineer"),
		Company: ptr("ACME"),
		Date:    ptr("2020"),
		Desc:    ptr("Did things"),
		Skills:  ptr([]string{"go"}),
		Doc:     ptr("not a url"),
	}
	_, err := services.ExperienceService.Create(ctx, patch, nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	patch.Doc = nil
	e, err := services.ExperienceService.Create(ctx, patch, nil)
	require.NoError(t, err)

	_, err = services.ExperienceService.Update(ctx, e.ID, &experience.Patch{Doc: ptr("ftp://example.com/cv.pdf")}, nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	cleared, err := services.ExperienceService.Update(ctx, e.ID, &experience.Patch{Doc: ptr("")}, nil)
	require.NoError(t, err)
	assert.Empty(t, cleared.Doc)
}

func TestExperienceService_CannotClaimAnotherUpload(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	form, err := httputil.CreateMultipartForm(nil,
		httputil.FormFile{Field: "resume", FileName: "cv.pdf", Content: testutil.PDFBytes},
	)
	require.NoError(t, err)
	bio, err := services.BioService.Create(ctx, validBioPatch(), form)
	require.NoError(t, err)
	require.True(t, uploadExists(t, services, bio.Resume))

	e, err := services.ExperienceService.Create(ctx, &experience.Patch{
		Role:    ptr("Engineer"),
		Company: ptr("ACME"),
		Date:    ptr("2020"),
		Desc:    ptr("Did things"),
		Skills:  ptr([]string{"go"}),
	}, nil)
	require.NoError(t, err)

	_, err = services.ExperienceService.Update(ctx, e.ID, &experience.Patch{Doc: ptr(bio.Resume)}, nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, services.ExperienceService.DeleteByID(ctx, e.ID))
	assert.True(t, uploadExists(t, services, bio.Resume), "the resume belongs to the bio")
}

func TestSkillService_CategoryReference(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.SkillService.Create(ctx, &skills.SkillPatch{
		Title: ptr("Backend"), Name: ptr("Go"), SkillCategoryID: ptr(uint(99)),
	}, nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	category, err := services.SkillCategoryService.Create(ctx, "  Languages  ")
	require.NoError(t, err)
	assert.Equal(t, "Languages", category.Name)

	skill, err := services.SkillService.Create(ctx, &skills.SkillPatch{
		Title: ptr("Backend"), Name: ptr("Go"), SkillCategoryID: ptr(category.ID),
	}, testutil.CreateImageForm(t, "image", "go.png"))
	require.NoError(t, err)
	require.NotNil(t, skill.SkillCategoryID)
	assert.Equal(t, category.ID, *skill.SkillCategoryID)

	// In use: the category cannot be deleted.
	err = services.SkillCategoryService.DeleteByID(ctx, category.ID)
	assert.ErrorIs(t, err, common.ErrConflict)

	// Detach, then delete.
	_, err = services.SkillService.Update(ctx, skill.ID, &skills.SkillPatch{SkillCategoryID: ptr(uint(0))}, nil)
	require.NoError(t, err)
	require.NoError(t, services.SkillCategoryService.DeleteByID(ctx, category.ID))
}

func TestSkillCategoryService_Validation(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.SkillCategoryService.Create(ctx, "   ")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = services.SkillCategoryService.Create(ctx, "Tools")
	require.NoError(t, err)
	_, err = services.SkillCategoryService.Create(ctx, "Tools")
	assert.ErrorIs(t, err, common.ErrConflict)

	_, err = services.SkillCategoryService.Update(ctx, 4242, "Other")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProjectService_CategoryAndImages(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	patch := &projects.ProjectPatch{
		Title:       ptr("Portfolio"),
		Description: ptr("This site"),
		Category:    ptr("Web"),
		Tags:        ptr([]string{"go"}),
	}

	_, err := services.ProjectService.Create(ctx, patch, nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = services.ProjectCategoryService.Create(ctx, "Web")
	require.NoError(t, err)

	files := []httputil.FormFile{{Field: "iconImage", FileName: "icon.png", Content: testutil.PNGBytes}}
	for i := 0; i < 2; i++ {
		files = append(files, httputil.FormFile{Field: "images", FileName: "shot.png", Content: testutil.PNGBytes})
	}
	form, err := httputil.CreateMultipartForm(nil, files...)
	require.NoError(t, err)

	p, err := services.ProjectService.Create(ctx, patch, form)
	require.NoError(t, err)
	assert.NotEmpty(t, p.Image)
	assert.Len(t, p.Images, 2)

	oldImages := p.Images
	form, err = httputil.CreateMultipartForm(nil, httputil.FormFile{Field: "images", FileName: "new.png", Content: testutil.PNGBytes})
	require.NoError(t, err)
	updated, err := services.ProjectService.Update(ctx, p.ID, nil, form)
	require.NoError(t, err)
	assert.Len(t, updated.Images, 1)
	for _, img := range oldImages {
		assert.False(t, uploadExists(t, services, img))
	}

	require.NoError(t, services.ProjectService.DeleteByID(ctx, p.ID))
	assert.Equal(t, 0, countUploads(t, services))
}

func TestProjectService_TooManyImages(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.ProjectCategoryService.Create(ctx, "Web")
	require.NoError(t, err)

	var files []httputil.FormFile
	for i := 0; i <= projects.MaxImages; i++ {
		files = append(files, httputil.FormFile{Field: "images", FileName: "shot.png", Content: testutil.PNGBytes})
	}
	form, err := httputil.CreateMultipartForm(nil, files...)
	require.NoError(t, err)

	_, err = services.ProjectService.Create(ctx, &projects.ProjectPatch{
		Title:       ptr("Portfolio"),
		Description: ptr("This site"),
		Category:    ptr("Web"),
	}, form)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 0, countUploads(t, services))
}

func TestProjectCategoryService_RenameMovesProjects(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	category, err := services.ProjectCategoryService.Create(ctx, "Web")
	require.NoError(t, err)
	p, err := services.ProjectService.Create(ctx, &projects.ProjectPatch{
		Title: ptr("Portfolio"), Description: ptr("This site"), Category: ptr("Web"),
	}, nil)
	require.NoError(t, err)

	renamed, err := services.ProjectCategoryService.Update(ctx, category.ID, "Websites")
	require.NoError(t, err)
	assert.Equal(t, "Websites", renamed.Name)

	fetched, err := services.ProjectService.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Websites", fetched.Category)

	// A partial update after the rename leaves the category alone.
	updated, err := services.ProjectService.Update(ctx, p.ID, &projects.ProjectPatch{Title: ptr("New title")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Websites", updated.Category)

	_, err = services.ProjectService.Update(ctx, p.ID, &projects.ProjectPatch{Category: ptr("Web")}, nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestProjectCategoryService_DeleteInUse(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	mobile, err := services.ProjectCategoryService.Create(ctx, "Mobile")
	require.NoError(t, err)
	_, err = services.ProjectCategoryService.Create(ctx, "Web")
	require.NoError(t, err)
	p, err := services.ProjectService.Create(ctx, &projects.ProjectPatch{
		Title: ptr("App"), Description: ptr("An app"), Category: ptr("Mobile"),
	}, nil)
	require.NoError(t, err)

	err = services.ProjectCategoryService.DeleteByID(ctx, mobile.ID)
	assert.ErrorIs(t, err, common.ErrConflict)
	_, err = services.ProjectCategoryService.GetByID(ctx, mobile.ID)
	require.NoError(t, err)

	// Move the project away, then delete.
	_, err = services.ProjectService.Update(ctx, p.ID, &projects.ProjectPatch{Category: ptr("Web")}, nil)
	require.NoError(t, err)
	require.NoError(t, services.ProjectCategoryService.DeleteByID(ctx, mobile.ID))

	assert.ErrorIs(t, services.ProjectCategoryService.DeleteByID(ctx, mobile.ID), common.ErrNotFound)
}

func TestContactService_CRUD(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	c, err := services.ContactService.Create(ctx, &contacts.Patch{
		Name: ptr("Visitor"), Email: ptr(" Visitor@Example.COM "), Message: ptr("Hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", c.Email)

	_, err = services.ContactService.Create(ctx, &contacts.Patch{
		Name: ptr("Visitor"), Email: ptr("invalid"), Message: ptr("Hello"),
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	updated, err := services.ContactService.Update(ctx, c.ID, &contacts.Patch{Message: ptr("Updated")})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Message)
	assert.Equal(t, "Visitor", updated.Name)

	require.NoError(t, services.ContactService.DeleteByID(ctx, c.ID))
	_, err = services.ContactService.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAuthService_LoginFlow(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, services.AuthService.EnsureAdmin(ctx, "Admin@Example.com", "s3cret-password"))
	// Second call is a no-op.
	require.NoError(t, services.AuthService.EnsureAdmin(ctx, "admin@example.com", "other-password"))

	token, err := services.AuthService.Login(ctx, "admin@example.com", "s3cret-password")
	require.NoError(t, err)

	claims, err := services.AuthService.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	user, err := services.AuthService.Profile(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	_, err = services.AuthService.Login(ctx, "admin@example.com", "other-password")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = services.AuthService.Login(ctx, "nobody@example.com", "s3cret-password")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuthService_SetPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.AuthService.CreateUser(ctx, "editor@example.com", "first-password")
	require.NoError(t, err)

	_, err = services.AuthService.CreateUser(ctx, "editor@example.com", "first-password")
	assert.ErrorIs(t, err, common.ErrConflict)

	assert.ErrorIs(t, services.AuthService.SetPassword(ctx, "editor@example.com", "short"), common.ErrValidation)
	require.NoError(t, services.AuthService.SetPassword(ctx, "editor@example.com", "second-password"))

	_, err = services.AuthService.Login(ctx, "editor@example.com", "first-password")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	_, err = services.AuthService.Login(ctx, "editor@example.com", "second-password")
	assert.NoError(t, err)

	assert.ErrorIs(t, services.AuthService.SetPassword(ctx, "ghost@example.com", "whatever-pass"), common.ErrNotFound)
}

func TestUploadService(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	filePath, err := services.UploadService.UploadSingle(ctx, testutil.CreateImageForm(t, "file", "a.png"))
	require.NoError(t, err)
	assert.True(t, uploadExists(t, services, filePath))

	_, err = services.UploadService.UploadSingle(ctx, testutil.CreateEmptyForm())
	assert.ErrorIs(t, err, common.ErrValidation)

	form, err := httputil.CreateMultipartForm(nil,
		httputil.FormFile{Field: "image", FileName: "a.png", Content: testutil.PNGBytes},
		httputil.FormFile{Field: "resume", FileName: "cv.pdf", Content: testutil.PDFBytes},
	)
	require.NoError(t, err)
	files, err := services.UploadService.UploadMultiple(ctx, form)
	require.NoError(t, err)
	assert.Contains(t, files, "image")
	assert.Contains(t, files, "resume")

	_, err = services.UploadService.UploadMultiple(ctx, testutil.CreateEmptyForm())
	assert.ErrorIs(t, err, common.ErrValidation)
}
