package v1

import (
	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/ratelimit"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services the routes dispatch to.
type Services struct {
	Bio             profile.BioService
	Education       education.Service
	Experience      experience.Service
	Skill           skills.SkillService
	SkillCategory   skills.CategoryService
	Project         projects.ProjectService
	ProjectCategory projects.CategoryService
	Contact         contacts.Service
	Auth            users.AuthService
	Upload          uploads.UploadService
}

// RouteOptions holds the non-service dependencies of the router.
type RouteOptions struct {
	// UploadPrefix is the URL prefix uploaded files are served under, UploadDir the directory behind it.
	UploadPrefix string
	UploadDir    string
	Limiter      ratelimit.Limiter
	Ping         Pinger
	Logger       logger.Logger
}

type crudHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// SetupRoutes sets up all the API routes. Reads are public except for
// contacts, writes need a bearer token except the contact form and login.
func SetupRoutes(r *gin.Engine, services Services, opts RouteOptions) {
	requireAuth := RequireAuth(services.Auth)
	rateLimit := RateLimit(opts.Limiter, opts.Logger)

	r.GET("/health", NewHealthHandler(opts.Ping).Health)
	if opts.UploadDir != "" {
		r.Static(opts.UploadPrefix, opts.UploadDir)
	}

	uploadHandler := NewUploadHandler(services.Upload)
	r.POST("/upload", requireAuth, uploadHandler.UploadSingle)
	r.POST("/upload-multiple", requireAuth, uploadHandler.UploadMultiple)

	api := r.Group(BasePath) // lookup in version file
	protected := api.Group("", requireAuth)

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth)
	api.POST("/auth/login", rateLimit, authHandler.Login)
	protected.GET("/auth/profile", authHandler.Profile)

	// Bio is served under both names
	bioHandler := NewBioHandler(services.Bio)
	registerCRUD(api, protected, "/about", bioHandler)
	registerCRUD(api, protected, "/bio", bioHandler)

	registerCRUD(api, protected, "/education", NewEducationHandler(services.Education))

	experienceHandler := NewExperienceHandler(services.Experience)
	registerCRUD(api, protected, "/experience", experienceHandler)
	registerCRUD(api, protected, "/experiences", experienceHandler)

	registerCRUD(api, protected, "/skills", NewSkillHandler(services.Skill))
	registerCRUD(api, protected, "/skill-categories", NewSkillCategoryHandler(services.SkillCategory))
	registerCRUD(api, protected, "/projects", NewProjectHandler(services.Project))
	registerCRUD(api, protected, "/project-categories", NewProjectCategoryHandler(services.ProjectCategory))

	// Contact Routes: only submitting the form is public
	contactHandler := NewContactHandler(services.Contact)
	api.POST("/contacts", rateLimit, contactHandler.Create)
	protected.GET("/contacts", contactHandler.List)
	protected.GET("/contacts/:id", contactHandler.GetByID)
	protected.PUT("/contacts/:id", contactHandler.Update)
	protected.DELETE("/contacts/:id", contactHandler.DeleteByID)
}

func registerCRUD(public, protected *gin.RouterGroup, path string, handler crudHandler) {
	public.GET(path, handler.List)
	public.GET(path+"/:id", handler.GetByID)
	protected.POST(path, handler.Create)
	protected.PUT(path+"/:id", handler.Update)
	protected.DELETE(path+"/:id", handler.DeleteByID)
}
