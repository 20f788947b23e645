package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"

	"github.com/gin-gonic/gin"
)

// ExperienceHandler defines the interface for handling work experience requests
type ExperienceHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type experienceHandler struct {
	experienceService experience.Service
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(experienceService experience.Service) ExperienceHandler {
	return &experienceHandler{experienceService: experienceService}
}

// Create stores a new experience with optional "img" and "doc" files
// @Summary Create an experience entry
// @Description Store a new experience entry. Files may be sent as multipart form data.
// @Tags Experience
// @Accept json,mpfd
// @Produce json
// @Param requestBody body ExperienceRequest true "Experience entry data"
// @Success 201 {object} ExperienceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/experience [post]
// @Router /api/experiences [post]
func (handler *experienceHandler) Create(ctx *gin.Context) {
	var request ExperienceRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	e, err := handler.experienceService.Create(ctx, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newExperienceResponse(e))
}

// List returns experiences, filterable by company
// @Summary List experience entry records
// @Description Fetch experience entry records with pagination, sorting and filters.
// @Tags Experience
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Param company query string false "Filter by company"
// @Success 200 {array} ExperienceResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/experience [get]
// @Router /api/experiences [get]
func (handler *experienceHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, experience.ListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	entries, err := handler.experienceService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(entries, newExperienceResponse))
}

// @Summary Retrieve an experience entry by ID
// @Description Fetch a single experience entry by ID.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} ExperienceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/experience/{id} [get]
// @Router /api/experiences/{id} [get]
func (handler *experienceHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	e, err := handler.experienceService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newExperienceResponse(e))
}

// @Summary Update an experience entry
// @Description Change the fields present in the request. Files may be sent as multipart form data.
// @Tags Experience
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Experience ID"
// @Param requestBody body ExperienceRequest true "Fields to change"
// @Success 200 {object} ExperienceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/experience/{id} [put]
// @Router /api/experiences/{id} [put]
func (handler *experienceHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request ExperienceRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	e, err := handler.experienceService.Update(ctx, id, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newExperienceResponse(e))
}

// @Summary Delete an experience entry by ID
// @Description Delete an experience entry by ID together with its stored files.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path int true "Experience ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/experience/{id} [delete]
// @Router /api/experiences/{id} [delete]
func (handler *experienceHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.experienceService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
