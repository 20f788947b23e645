package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"

	"github.com/gin-gonic/gin"
)

// ProjectHandler defines the interface for handling project requests
type ProjectHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type projectHandler struct {
	projectService projects.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService projects.ProjectService) ProjectHandler {
	return &projectHandler{projectService: projectService}
}

// Create stores a new project. Accepts an "image" (or "iconImage") cover and
// up to five "images".
// @Summary Create a project
// @Description Store a new project. Files may be sent as multipart form data.
// @Tags Project
// @Accept json,mpfd
// @Produce json
// @Param requestBody body ProjectRequest true "Project data"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/projects [post]
func (handler *projectHandler) Create(ctx *gin.Context) {
	var request ProjectRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	p, err := handler.projectService.Create(ctx, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newProjectResponse(p))
}

// List returns projects, filterable by category
// @Summary List project records
// @Description Fetch project records with pagination, sorting and filters.
// @Tags Project
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Param category query string false "Filter by category"
// @Success 200 {array} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/projects [get]
func (handler *projectHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, projects.ProjectListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.projectService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(items, newProjectResponse))
}

// @Summary Retrieve a project by ID
// @Description Fetch a single project by ID.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id} [get]
func (handler *projectHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	p, err := handler.projectService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProjectResponse(p))
}

// Update changes the fields present in the request. Uploaded "images"
// replace the whole gallery.
// @Summary Update a project
// @Description Change the fields present in the request. Files may be sent as multipart form data.
// @Tags Project
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Project ID"
// @Param requestBody body ProjectRequest true "Fields to change"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/projects/{id} [put]
func (handler *projectHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request ProjectRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	p, err := handler.projectService.Update(ctx, id, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProjectResponse(p))
}

// @Summary Delete a project by ID
// @Description Delete a project by ID together with its stored files.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/projects/{id} [delete]
func (handler *projectHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.projectService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ProjectCategoryHandler defines the interface for handling project category requests
type ProjectCategoryHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type projectCategoryHandler struct {
	categoryService projects.CategoryService
}

// NewProjectCategoryHandler creates a new ProjectCategoryHandler
func NewProjectCategoryHandler(categoryService projects.CategoryService) ProjectCategoryHandler {
	return &projectCategoryHandler{categoryService: categoryService}
}

// @Summary Create a project category
// @Description Store a new project category.
// @Tags ProjectCategory
// @Accept json
// @Produce json
// @Param requestBody body CategoryRequest true "Project category data"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/project-categories [post]
func (handler *projectCategoryHandler) Create(ctx *gin.Context) {
	var request CategoryRequest
	if _, err := decodeRequest(ctx, &request); err != nil {
		respondError(ctx, err)
		return
	}

	c, err := handler.categoryService.Create(ctx, request.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newProjectCategoryResponse(c))
}

// @Summary List project category records
// @Description Fetch project category records with pagination, sorting and filters.
// @Tags ProjectCategory
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/project-categories [get]
func (handler *projectCategoryHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, projects.CategoryListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.categoryService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(items, newProjectCategoryResponse))
}

// @Summary Retrieve a project category by ID
// @Description Fetch a single project category by ID.
// @Tags ProjectCategory
// @Accept json
// @Produce json
// @Param id path int true "ProjectCategory ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/project-categories/{id} [get]
func (handler *projectCategoryHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	c, err := handler.categoryService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProjectCategoryResponse(c))
}

// @Summary Update a project category
// @Description Rename the category and move its projects along.
// @Tags ProjectCategory
// @Accept json
// @Produce json
// @Param id path int true "ProjectCategory ID"
// @Param requestBody body CategoryRequest true "Fields to change"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/project-categories/{id} [put]
func (handler *projectCategoryHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request CategoryRequest
	if _, err := decodeRequest(ctx, &request); err != nil {
		respondError(ctx, err)
		return
	}

	c, err := handler.categoryService.Update(ctx, id, request.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProjectCategoryResponse(c))
}

// @Summary Delete a project category by ID
// @Description Delete a project category by ID. Fails while it is still in use.
// @Tags ProjectCategory
// @Accept json
// @Produce json
// @Param id path int true "ProjectCategory ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/project-categories/{id} [delete]
func (handler *projectCategoryHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.categoryService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
