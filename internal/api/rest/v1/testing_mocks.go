//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockBioService is a mock implementation of profile.BioService
type MockBioService struct {
	mock.Mock
}

func (m *MockBioService) Create(ctx context.Context, patch *profile.BioPatch, form *multipart.Form) (*profile.Bio, error) {
	args := m.Called(ctx, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Bio), args.Error(1)
}

func (m *MockBioService) List(ctx context.Context, query *common.ListQuery) ([]*profile.Bio, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Bio), args.Error(1)
}

func (m *MockBioService) GetByID(ctx context.Context, id uint) (*profile.Bio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Bio), args.Error(1)
}

func (m *MockBioService) Update(ctx context.Context, id uint, patch *profile.BioPatch, form *multipart.Form) (*profile.Bio, error) {
	args := m.Called(ctx, id, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Bio), args.Error(1)
}

func (m *MockBioService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEducationService is a mock implementation of education.Service
type MockEducationService struct {
	mock.Mock
}

func (m *MockEducationService) Create(ctx context.Context, patch *education.Patch, form *multipart.Form) (*education.Education, error) {
	args := m.Called(ctx, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*education.Education), args.Error(1)
}

func (m *MockEducationService) List(ctx context.Context, query *common.ListQuery) ([]*education.Education, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*education.Education), args.Error(1)
}

func (m *MockEducationService) GetByID(ctx context.Context, id uint) (*education.Education, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*education.Education), args.Error(1)
}

func (m *MockEducationService) Update(ctx context.Context, id uint, patch *education.Patch, form *multipart.Form) (*education.Education, error) {
	args := m.Called(ctx, id, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*education.Education), args.Error(1)
}

func (m *MockEducationService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockExperienceService is a mock implementation of experience.Service
type MockExperienceService struct {
	mock.Mock
}

func (m *MockExperienceService) Create(ctx context.Context, patch *experience.Patch, form *multipart.Form) (*experience.Experience, error) {
	args := m.Called(ctx, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*experience.Experience), args.Error(1)
}

func (m *MockExperienceService) List(ctx context.Context, query *common.ListQuery) ([]*experience.Experience, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*experience.Experience), args.Error(1)
}

func (m *MockExperienceService) GetByID(ctx context.Context, id uint) (*experience.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*experience.Experience), args.Error(1)
}

func (m *MockExperienceService) Update(ctx context.Context, id uint, patch *experience.Patch, form *multipart.Form) (*experience.Experience, error) {
	args := m.Called(ctx, id, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*experience.Experience), args.Error(1)
}

func (m *MockExperienceService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSkillService is a mock implementation of skills.SkillService
type MockSkillService struct {
	mock.Mock
}

func (m *MockSkillService) Create(ctx context.Context, patch *skills.SkillPatch, form *multipart.Form) (*skills.Skill, error) {
	args := m.Called(ctx, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Skill), args.Error(1)
}

func (m *MockSkillService) List(ctx context.Context, query *common.ListQuery) ([]*skills.Skill, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*skills.Skill), args.Error(1)
}

func (m *MockSkillService) GetByID(ctx context.Context, id uint) (*skills.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Skill), args.Error(1)
}

func (m *MockSkillService) Update(ctx context.Context, id uint, patch *skills.SkillPatch, form *multipart.Form) (*skills.Skill, error) {
	args := m.Called(ctx, id, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Skill), args.Error(1)
}

func (m *MockSkillService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectService is a mock implementation of projects.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, patch *projects.ProjectPatch, form *multipart.Form) (*projects.Project, error) {
	args := m.Called(ctx, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, query *common.ListQuery) ([]*projects.Project, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.Project), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, id uint) (*projects.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id uint, patch *projects.ProjectPatch, form *multipart.Form) (*projects.Project, error) {
	args := m.Called(ctx, id, patch, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactService is a mock implementation of contacts.Service
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Create(ctx context.Context, patch *contacts.Patch) (*contacts.Contact, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contacts.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, query *common.ListQuery) ([]*contacts.Contact, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contacts.Contact), args.Error(1)
}

func (m *MockContactService) GetByID(ctx context.Context, id uint) (*contacts.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contacts.Contact), args.Error(1)
}

func (m *MockContactService) Update(ctx context.Context, id uint, patch *contacts.Patch) (*contacts.Contact, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contacts.Contact), args.Error(1)
}

func (m *MockContactService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSkillCategoryService is a mock implementation of skills.CategoryService
type MockSkillCategoryService struct {
	mock.Mock
}

func (m *MockSkillCategoryService) Create(ctx context.Context, name string) (*skills.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Category), args.Error(1)
}

func (m *MockSkillCategoryService) List(ctx context.Context, query *common.ListQuery) ([]*skills.Category, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*skills.Category), args.Error(1)
}

func (m *MockSkillCategoryService) GetByID(ctx context.Context, id uint) (*skills.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Category), args.Error(1)
}

func (m *MockSkillCategoryService) Update(ctx context.Context, id uint, name string) (*skills.Category, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skills.Category), args.Error(1)
}

func (m *MockSkillCategoryService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectCategoryService is a mock implementation of projects.CategoryService
type MockProjectCategoryService struct {
	mock.Mock
}

func (m *MockProjectCategoryService) Create(ctx context.Context, name string) (*projects.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Category), args.Error(1)
}

func (m *MockProjectCategoryService) List(ctx context.Context, query *common.ListQuery) ([]*projects.Category, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.Category), args.Error(1)
}

func (m *MockProjectCategoryService) GetByID(ctx context.Context, id uint) (*projects.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Category), args.Error(1)
}

func (m *MockProjectCategoryService) Update(ctx context.Context, id uint, name string) (*projects.Category, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Category), args.Error(1)
}

func (m *MockProjectCategoryService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService is a mock implementation of users.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) CreateUser(ctx context.Context, email, password string) (*users.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) SetPassword(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// MockUploadService is a mock implementation of uploads.UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadSingle(ctx context.Context, form *multipart.Form) (string, error) {
	args := m.Called(ctx, form)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) UploadMultiple(ctx context.Context, form *multipart.Form) (map[string]string, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// MockLimiter is a mock implementation of ratelimit.Limiter
type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockLimiter) Close() error {
	args := m.Called()
	return args.Error(0)
}
