//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/httputil"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUploadHandler_UploadSingle(t *testing.T) {
	mockService := new(MockUploadService)
	handler := NewUploadHandler(mockService)

	mockService.On("UploadSingle", mock.Anything, mock.Anything).Return("/uploads/1-a.png", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = testutil.NewMultipartRequest(t, "POST", "/upload", nil,
		httputil.FormFile{Field: "file", FileName: "a.png", Content: testutil.PNGBytes})

	handler.UploadSingle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/uploads/1-a.png", decodeBody[UploadResponse](t, w).FilePath)
}

func TestUploadHandler_UploadSingle_NotMultipart(t *testing.T) {
	handler := NewUploadHandler(new(MockUploadService))

	c, w := newJSONContext("POST", "/upload", `{}`)
	handler.UploadSingle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_UploadMultiple(t *testing.T) {
	mockService := new(MockUploadService)
	handler := NewUploadHandler(mockService)

	mockService.On("UploadMultiple", mock.Anything, mock.Anything).
		Return(map[string]string{"image": "/uploads/1-a.png"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = testutil.NewMultipartRequest(t, "POST", "/upload-multiple", nil,
		httputil.FormFile{Field: "image", FileName: "a.png", Content: testutil.PNGBytes})

	handler.UploadMultiple(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Files uploaded successfully","files":{"image":"/uploads/1-a.png","resume":null}}`, w.Body.String())
}

func TestUploadHandler_UploadMultiple_Rejected(t *testing.T) {
	mockService := new(MockUploadService)
	handler := NewUploadHandler(mockService)

	mockService.On("UploadMultiple", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: file a.exe has unsupported type", common.ErrValidation))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = testutil.NewMultipartRequest(t, "POST", "/upload-multiple", nil,
		httputil.FormFile{Field: "image", FileName: "a.exe", Content: []byte("MZ")})

	handler.UploadMultiple(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
