//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactHandler_Create_JSON(t *testing.T) {
	mockService := new(MockContactService)
	handler := NewContactHandler(mockService)

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(p *contacts.Patch) bool {
		return *p.Email == "a@b.co" && *p.Message == "hi"
	})).Return(&contacts.Contact{ID: 1, Name: "A", Email: "a@b.co", Message: "hi"}, nil)

	c, w := newJSONContext("POST", "/api/contacts", `{"name":"A","email":"a@b.co","message":"hi"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "a@b.co", decodeBody[ContactResponse](t, w).Email)
}

func TestContactHandler_Create_URLEncoded(t *testing.T) {
	mockService := new(MockContactService)
	handler := NewContactHandler(mockService)

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(p *contacts.Patch) bool {
		return *p.Name == "A"
	})).Return(&contacts.Contact{ID: 1, Name: "A"}, nil)

	values := url.Values{"name": {"A"}, "email": {"a@b.co"}, "message": {"hi"}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/contacts", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestContactHandler_Create_EmptyBody(t *testing.T) {
	mockService := new(MockContactService)
	handler := NewContactHandler(mockService)

	c, w := newJSONContext("POST", "/api/contacts", "")
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation failed: request body is required", decodeBody[ErrorResponse](t, w).Error)
}

func TestContactHandler_List_FilterByEmail(t *testing.T) {
	mockService := new(MockContactService)
	handler := NewContactHandler(mockService)

	mockService.On("List", mock.Anything, mock.MatchedBy(func(q *common.ListQuery) bool {
		return q.Filters["email"] == "a@b.co" && q.Offset == 10
	})).Return([]*contacts.Contact{}, nil)

	c, w := newJSONContext("GET", "/api/contacts?email=a@b.co&offset=10", "")
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
