package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"

	"github.com/gin-gonic/gin"
)

// ContactHandler defines the interface for handling contact form submissions
type ContactHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type contactHandler struct {
	contactService contacts.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService contacts.Service) ContactHandler {
	return &contactHandler{contactService: contactService}
}

// Create stores a message sent through the public contact form
// @Summary Create a contact message
// @Description Store a new contact message.
// @Tags Contact
// @Accept json
// @Produce json
// @Param requestBody body ContactRequest true "Contact message data"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/contacts [post]
func (handler *contactHandler) Create(ctx *gin.Context) {
	var request ContactRequest
	if _, err := decodeRequest(ctx, &request); err != nil {
		respondError(ctx, err)
		return
	}

	c, err := handler.contactService.Create(ctx, request.toPatch())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newContactResponse(c))
}

// List returns contact messages, filterable by email
// @Summary List contact message records
// @Description Fetch contact message records with pagination, sorting and filters.
// @Tags Contact
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Param email query string false "Filter by e-mail"
// @Success 200 {array} ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/contacts [get]
func (handler *contactHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, contacts.ListSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	items, err := handler.contactService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapAll(items, newContactResponse))
}

// @Summary Retrieve a contact message by ID
// @Description Fetch a single contact message by ID.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/contacts/{id} [get]
func (handler *contactHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	c, err := handler.contactService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newContactResponse(c))
}

// @Summary Update a contact message
// @Description Change the fields present in the request.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param requestBody body ContactRequest true "Fields to change"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/contacts/{id} [put]
func (handler *contactHandler) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request ContactRequest
	if _, err := decodeRequest(ctx, &request); err != nil {
		respondError(ctx, err)
		return
	}

	c, err := handler.contactService.Update(ctx, id, request.toPatch())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newContactResponse(c))
}

// @Summary Delete a contact message by ID
// @Description Delete a contact message by ID.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/contacts/{id} [delete]
func (handler *contactHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := handler.contactService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
