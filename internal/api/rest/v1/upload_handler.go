package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"

	"github.com/gin-gonic/gin"
)

// UploadHandler defines the interface for the stand-alone upload endpoints
type UploadHandler interface {
	UploadSingle(ctx *gin.Context)
	UploadMultiple(ctx *gin.Context)
}

type uploadHandler struct {
	uploadService uploads.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService uploads.UploadService) UploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

// UploadSingle stores the "file" field
// @Summary Upload a file
// @Description Store the "file" field and return its public path.
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image or document"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /upload [post]
func (handler *uploadHandler) UploadSingle(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondError(ctx, common.Invalid("invalid form data"))
		return
	}

	filePath, err := handler.uploadService.UploadSingle(ctx, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, UploadResponse{
		Message:  "File uploaded successfully",
		FilePath: filePath,
	})
}

// UploadMultiple stores the "image" and "resume" fields
// @Summary Upload an image and a resume
// @Description Store the "image" and "resume" fields and return their public paths.
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param image formData file false "Image"
// @Param resume formData file false "Resume"
// @Success 200 {object} UploadMultipleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /upload-multiple [post]
func (handler *uploadHandler) UploadMultiple(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondError(ctx, common.Invalid("invalid form data"))
		return
	}

	stored, err := handler.uploadService.UploadMultiple(ctx, form)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var files UploadedFiles
	if p, ok := stored["image"]; ok {
		files.Image = &p
	}
	if p, ok := stored["resume"]; ok {
		files.Resume = &p
	}
	ctx.JSON(http.StatusOK, UploadMultipleResponse{
		Message: "Files uploaded successfully",
		Files:   files,
	})
}
