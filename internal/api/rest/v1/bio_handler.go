package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"

	"github.com/gin-gonic/gin"
)

// BioHandler defines the interface for handling biography requests, served
// under both /about and /bio
type BioHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type bioHandler struct {
	bioService profile.BioService
}

// NewBioHandler creates a new BioHandler
func NewBioHandler(bioService profile.BioService) BioHandler {
	return &bioHandler{bioService: bioService}
}

// Create stores a new bio. Accepts JSON or multipart with "image" (or
// "profile_pic") and "resume" files.
// @Summary Create a bio
// @Description Store a new bio. Files may be sent as multipart form data.
// @Tags Bio
// @Accept json,mpfd
// @Produce json
// @Param requestBody body BioRequest true "Bio data"
// @Success 201 {object} BioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/about [post]
// @Router /api/bio [post]
func (handler *bioHandler) Create(ctx *gin.Context) {
	var request BioRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	bio, err := handler.bioService.Create(ctx, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBioResponse(bio))
}

// List returns every bio
// @Summary List bio records
// @Description Fetch bio records with pagination, sorting and filters.
// @Tags Bio
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} BioResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/about [get]
// @Router /api/bio [get]
func (handler *bioHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, profile.ListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	bios, err := handler.bioService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(bios, newBioResponse))
}

// GetByID returns a bio by its id
// @Summary Retrieve a bio by ID
// @Description Fetch a single bio by ID.
// @Tags Bio
// @Accept json
// @Produce json
// @Param id path int true "Bio ID"
// @Success 200 {object} BioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/about/{id} [get]
// @Router /api/bio/{id} [get]
func (handler *bioHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	bio, err := handler.bioService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBioResponse(bio))
}

// Update changes the fields present in the request
// @Summary Update a bio
// @Description Change the fields present in the request. Files may be sent as multipart form data.
// @Tags Bio
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Bio ID"
// @Param requestBody body BioRequest true "Fields to change"
// @Success 200 {object} BioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/about/{id} [put]
// @Router /api/bio/{id} [put]
func (handler *bioHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request BioRequest
	form, err := decodeRequest(ctx, &request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	bio, err := handler.bioService.Update(ctx, id, request.toPatch(), form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBioResponse(bio))
}

// DeleteByID removes a bio and its files
// @Summary Delete a bio by ID
// @Description Delete a bio by ID together with its stored files.
// @Tags Bio
// @Accept json
// @Produce json
// @Param id path int true "Bio ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/about/{id} [delete]
// @Router /api/bio/{id} [delete]
func (handler *bioHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.bioService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
