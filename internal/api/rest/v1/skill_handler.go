package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"

	"github.com/gin-gonic/gin"
)

// SkillHandler defines the interface for handling skill requests
type SkillHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type skillHandler struct {
	skillService skills.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skillService skills.SkillService) SkillHandler {
	return &skillHandler{skillService: skillService}
}

// Create stores a new skill with an optional "image" file
// @Summary Create a skill
// @Description Store a new skill. Files may be sent as multipart form data.
// @Tags Skill
// @Accept json,mpfd
// @Produce json
// @Param requestBody body SkillRequest true "Skill data"
// @Success 201 {object} SkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/skills [post]
func (handler *skillHandler) Create(ctx *gin.Context) {
	var request SkillRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	s, err := handler.skillService.Create(ctx, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newSkillResponse(s))
}

// List returns skills, filterable by category_id and title
// @Summary List skill records
// @Description Fetch skill records with pagination, sorting and filters.
// @Tags Skill
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Param category_id query int false "Filter by skill category ID"
// @Param title query string false "Filter by title"
// @Success 200 {array} SkillResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/skills [get]
func (handler *skillHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, skills.SkillListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.skillService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(items, newSkillResponse))
}

// @Summary Retrieve a skill by ID
// @Description Fetch a single skill by ID.
// @Tags Skill
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} SkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/skills/{id} [get]
func (handler *skillHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	s, err := handler.skillService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSkillResponse(s))
}

// @Summary Update a skill
// @Description Change the fields present in the request. Files may be sent as multipart form data.
// @Tags Skill
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Skill ID"
// @Param requestBody body SkillRequest true "Fields to change"
// @Success 200 {object} SkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/skills/{id} [put]
func (handler *skillHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request SkillRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	s, err := handler.skillService.Update(ctx, id, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSkillResponse(s))
}

// @Summary Delete a skill by ID
// @Description Delete a skill by ID together with its stored files.
// @Tags Skill
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/skills/{id} [delete]
func (handler *skillHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.skillService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SkillCategoryHandler defines the interface for handling skill category requests
type SkillCategoryHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type skillCategoryHandler struct {
	categoryService skills.CategoryService
}

// NewSkillCategoryHandler creates a new SkillCategoryHandler
func NewSkillCategoryHandler(categoryService skills.CategoryService) SkillCategoryHandler {
	return &skillCategoryHandler{categoryService: categoryService}
}

// @Summary Create a skill category
// @Description Store a new skill category.
// @Tags SkillCategory
// @Accept json
// @Produce json
// @Param requestBody body CategoryRequest true "Skill category data"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/skill-categories [post]
func (handler *skillCategoryHandler) Create(ctx *gin.Context) {
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
	ctx.JSON(http.StatusCreated, newSkillCategoryResponse(c))
}

// @Summary List skill category records
// @Description Fetch skill category records with pagination, sorting and filters.
// @Tags SkillCategory
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/skill-categories [get]
func (handler *skillCategoryHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, skills.CategoryListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.categoryService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(items, newSkillCategoryResponse))
}

// @Summary Retrieve a skill category by ID
// @Description Fetch a single skill category by ID.
// @Tags SkillCategory
// @Accept json
// @Produce json
// @Param id path int true "SkillCategory ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/skill-categories/{id} [get]
func (handler *skillCategoryHandler) GetByID(ctx *gin.Context) {
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
	ctx.JSON(http.StatusOK, newSkillCategoryResponse(c))
}

// Update renames a category
// @Summary Update a skill category
// @Description Change the fields present in the request.
// @Tags SkillCategory
// @Accept json
// @Produce json
// @Param id path int true "SkillCategory ID"
// @Param requestBody body CategoryRequest true "Fields to change"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/skill-categories/{id} [put]
func (handler *skillCategoryHandler) Update(ctx *gin.Context) {
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
	ctx.JSON(http.StatusOK, newSkillCategoryResponse(c))
}

// DeleteByID answers 409 while skills still reference the category
// @Summary Delete a skill category by ID
// @Description Delete a skill category by ID. Fails while it is still in use.
// @Tags SkillCategory
// @Accept json
// @Produce json
// @Param id path int true "SkillCategory ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/skill-categories/{id} [delete]
func (handler *skillCategoryHandler) DeleteByID(ctx *gin.Context) {
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
