package v1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"
)

// StringList decodes a JSON array of strings or a single string holding a
// JSON array or comma separated items.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		*l = out
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected an array of strings or a string")
	}
	*l = strutil.SplitList(s)
	return nil
}

func (l *StringList) slice() *[]string {
	if l == nil {
		return nil
	}
	s := []string(*l)
	return &s
}

// FlexibleID decodes a JSON number or a numeric string. An empty string decodes to 0.
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(strings.Trim(string(data), `"`))
	if raw == "" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = FlexibleID(v)
	return nil
}

// BioRequest is the body of POST and PUT on /about and /bio
type BioRequest struct {
	Name        *string     `json:"name"`
	Roles       *StringList `json:"roles"`
	Description *string     `json:"description"`
	Github      *string     `json:"github"`
	Linkedin    *string     `json:"linkedin"`
	Twitter     *string     `json:"twitter"`
	Insta       *string     `json:"insta"`
	Facebook    *string     `json:"facebook"`
}

func (r *BioRequest) toPatch() *profile.BioPatch {
	return &profile.BioPatch{
		Name:        r.Name,
		Roles:       r.Roles.slice(),
		Description: r.Description,
		Github:      r.Github,
		Linkedin:    r.Linkedin,
		Twitter:     r.Twitter,
		Insta:       r.Insta,
		Facebook:    r.Facebook,
	}
}

// EducationRequest is the body of POST and PUT on /education
type EducationRequest struct {
	School *string `json:"school"`
	Degree *string `json:"degree"`
	Date   *string `json:"date"`
	Grade  *string `json:"grade"`
	Desc   *string `json:"desc"`
}

func (r *EducationRequest) toPatch() *education.Patch {
	return &education.Patch{
		School: r.School,
		Degree: r.Degree,
		Date:   r.Date,
		Grade:  r.Grade,
		Desc:   r.Desc,
	}
}

// ExperienceRequest is the body of POST and PUT on /experience. Doc may carry
// a link instead of an uploaded document.
type ExperienceRequest struct {
	Role    *string     `json:"role"`
	Company *string     `json:"company"`
	Date    *string     `json:"date"`
	Desc    *string     `json:"desc"`
	Skills  *StringList `json:"skills"`
	Doc     *string     `json:"doc"`
}

func (r *ExperienceRequest) toPatch() *experience.Patch {
	return &experience.Patch{
		Role:    r.Role,
		Company: r.Company,
		Date:    r.Date,
		Desc:    r.Desc,
		Skills:  r.Skills.slice(),
		Doc:     r.Doc,
	}
}

// SkillRequest is the body of POST and PUT on /skills
type SkillRequest struct {
	Title           *string     `json:"title"`
	Name            *string     `json:"name"`
	SkillCategoryID *FlexibleID `json:"skill_category_id"`
	CategoryIDAlias *FlexibleID `json:"skillCategoryId"`
}

func (r *SkillRequest) toPatch() *skills.SkillPatch {
	patch := &skills.SkillPatch{Title: r.Title, Name: r.Name}
	categoryID := r.SkillCategoryID
	if categoryID == nil {
		categoryID = r.CategoryIDAlias
	}
	if categoryID != nil {
		id := uint(*categoryID)
		patch.SkillCategoryID = &id
	}
	return patch
}

// CategoryRequest is the body of POST and PUT on /skill-categories and /project-categories
type CategoryRequest struct {
	Name string `json:"name"`
}

// ProjectRequest is the body of POST and PUT on /projects
type ProjectRequest struct {
	Title       *string     `json:"title"`
	Date        *string     `json:"date"`
	Description *string     `json:"description"`
	Category    *string     `json:"category"`
	Tags        *StringList `json:"tags"`
	Github      *string     `json:"github"`
	Webapp      *string     `json:"webapp"`
}

func (r *ProjectRequest) toPatch() *projects.ProjectPatch {
	return &projects.ProjectPatch{
		Title:       r.Title,
		Date:        r.Date,
		Description: r.Description,
		Category:    r.Category,
		Tags:        r.Tags.slice(),
		Github:      r.Github,
		Webapp:      r.Webapp,
	}
}

// ContactRequest is the body of POST and PUT on /contacts
type ContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

func (r *ContactRequest) toPatch() *contacts.Patch {
	return &contacts.Patch{Name: r.Name, Email: r.Email, Message: r.Message}
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileResponse is the body of GET /auth/profile
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type BioResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Roles       []string  `json:"roles"`
	Description string    `json:"description"`
	Github      string    `json:"github"`
	Linkedin    string    `json:"linkedin"`
	Twitter     string    `json:"twitter"`
	Insta       string    `json:"insta"`
	Facebook    string    `json:"facebook"`
	Resume      string    `json:"resume"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newBioResponse(b *profile.Bio) BioResponse {
	return BioResponse{
		ID:          b.ID,
		Name:        b.Name,
		Roles:       nonNil(b.Roles),
		Description: b.Description,
		Github:      b.Github,
		Linkedin:    b.Linkedin,
		Twitter:     b.Twitter,
		Insta:       b.Insta,
		Facebook:    b.Facebook,
		Resume:      b.Resume,
		Image:       b.Image,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type EducationResponse struct {
	ID        uint      `json:"id"`
	School    string    `json:"school"`
	Degree    string    `json:"degree"`
	Date      string    `json:"date"`
	Grade     string    `json:"grade"`
	Desc      string    `json:"desc"`
	Img       string    `json:"img"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newEducationResponse(e *education.Education) EducationResponse {
	return EducationResponse{
		ID:        e.ID,
		School:    e.School,
		Degree:    e.Degree,
		Date:      e.Date,
		Grade:     e.Grade,
		Desc:      e.Desc,
		Img:       e.Img,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type ExperienceResponse struct {
	ID        uint      `json:"id"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Date      string    `json:"date"`
	Desc      string    `json:"desc"`
	Skills    []string  `json:"skills"`
	Img       string    `json:"img"`
	Doc       string    `json:"doc"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newExperienceResponse(e *experience.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:        e.ID,
		Role:      e.Role,
		Company:   e.Company,
		Date:      e.Date,
		Desc:      e.Desc,
		Skills:    nonNil(e.Skills),
		Img:       e.Img,
		Doc:       e.Doc,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type SkillResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	SkillCategoryID *uint     `json:"skillCategoryId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func newSkillResponse(s *skills.Skill) SkillResponse {
	return SkillResponse{
		ID:              s.ID,
		Title:           s.Title,
		Name:            s.Name,
		Image:           s.Image,
		SkillCategoryID: s.SkillCategoryID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newSkillCategoryResponse(c *skills.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func newProjectCategoryResponse(c *projects.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Github      string    `json:"github"`
	Webapp      string    `json:"webapp"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProjectResponse(p *projects.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Date:        p.Date,
		Description: p.Description,
		Category:    p.Category,
		Tags:        nonNil(p.Tags),
		Github:      p.Github,
		Webapp:      p.Webapp,
		Image:       p.Image,
		Images:      nonNil(p.Images),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ContactResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newContactResponse(c *contacts.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// UploadResponse is the body of POST /upload
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

// UploadedFiles lists the paths stored by POST /upload-multiple. Missing files are null.
type UploadedFiles struct {
	Image  *string `json:"image"`
	Resume *string `json:"resume"`
}

// UploadMultipleResponse is the body of POST /upload-multiple
type UploadMultipleResponse struct {
	Message string        `json:"message"`
	Files   UploadedFiles `json:"files"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func mapAll[T any, R any](items []*T, convert func(*T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
