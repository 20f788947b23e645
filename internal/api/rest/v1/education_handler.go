package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/education"

	"github.com/gin-gonic/gin"
)

// EducationHandler defines the interface for handling education requests
type EducationHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type educationHandler struct {
	educationService education.Service
}

// NewEducationHandler creates a new EducationHandler
func NewEducationHandler(educationService education.Service) EducationHandler {
	return &educationHandler{educationService: educationService}
}

// Create stores a new education entry with an optional "img" file
// @Summary Create an education entry
// @Description Store a new education entry. Files may be sent as multipart form data.
// @Tags Education
// @Accept json,mpfd
// @Produce json
// @Param requestBody body EducationRequest true "Education entry data"
// @Success 201 {object} EducationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/education [post]
func (handler *educationHandler) Create(ctx *gin.Context) {
	var request EducationRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	e, err := handler.educationService.Create(ctx, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newEducationResponse(e))
}

// List returns education entries, filterable by school
// @Summary List education entry records
// @Description Fetch education entry records with pagination, sorting and filters.
// @Tags Education
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Param school query string false "Filter by school"
// @Success 200 {array} EducationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/education [get]
func (handler *educationHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, education.ListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	entries, err := handler.educationService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(entries, newEducationResponse))
}

// @Summary Retrieve an education entry by ID
// @Description Fetch a single education entry by ID.
// @Tags Education
// @Accept json
// @Produce json
// @Param id path int true "Education ID"
// @Success 200 {object} EducationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/education/{id} [get]
func (handler *educationHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	e, err := handler.educationService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEducationResponse(e))
}

// @Summary Update an education entry
// @Description Change the fields present in the request. Files may be sent as multipart form data.
// @Tags Education
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Education ID"
// @Param requestBody body EducationRequest true "Fields to change"
// @Success 200 {object} EducationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/education/{id} [put]
func (handler *educationHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request EducationRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	e, err := handler.educationService.Update(ctx, id, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEducationResponse(e))
}

// @Summary Delete an education entry by ID
// @Description Delete an education entry by ID together with its stored files.
// @Tags Education
// @Accept json
// @Produce json
// @Param id path int true "Education ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/education/{id} [delete]
func (handler *educationHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.educationService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
