package testutil

import (
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// CreateImageForm returns a parsed multipart form with one PNG under field.
func CreateImageForm(t *testing.T, field, fileName string) *multipart.Form {
	t.Helper()

	form, err := httputil.CreateMultipartForm(nil, httputil.FormFile{Field: field, FileName: fileName, Content: PNGBytes})
	require.NoError(t, err)
	return form
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		Value: make(map[string][]string),
		File:  make(map[string][]*multipart.FileHeader),
	}
}

// NewMultipartRequest builds an HTTP request whose body is a multipart form.
func NewMultipartRequest(t *testing.T, method, url string, values map[string][]string, files ...httputil.FormFile) *http.Request {
	t.Helper()

	body, contentType, err := httputil.EncodeMultipart(values, files...)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	return req
}
