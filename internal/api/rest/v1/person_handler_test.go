//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPersonHandler_List_Success(t *testing.T) {
	mockPersonService := new(MockPersonService)
	handler := NewPersonHandler(mockPersonService)

	mockPersonService.On("GetPersons", mock.Anything).Return([]*people.Person{
		{ID: 1, FullName: "John Doe", JobTitle: "Engineer", DateTimeCreated: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/people", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fullName":"John Doe"`)
	mockPersonService.AssertExpectations(t)
}

func TestPersonHandler_List_Empty(t *testing.T) {
	mockPersonService := new(MockPersonService)
	handler := NewPersonHandler(mockPersonService)

	mockPersonService.On("GetPersons", mock.Anything).Return([]*people.Person{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/people", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestPersonHandler_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setup      func(m *MockPersonService)
		wantStatus int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(m *MockPersonService) {
				m.On("GetPerson", mock.Anything, int64(1)).Return(&people.Person{ID: 1, FullName: "John Doe", JobTitle: "Engineer"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "42",
			setup: func(m *MockPersonService) {
				m.On("GetPerson", mock.Anything, int64(42)).Return(nil, people.ErrPersonNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			id:         "abc",
			setup:      func(m *MockPersonService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			id:   "7",
			setup: func(m *MockPersonService) {
				m.On("GetPerson", mock.Anything, int64(7)).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPersonService := new(MockPersonService)
			tt.setup(mockPersonService)
			handler := NewPersonHandler(mockPersonService)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/people/"+tt.id, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			handler.GetByID(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			mockPersonService.AssertExpectations(t)
		})
	}
}

func TestPersonHandler_Create_Success(t *testing.T) {
	mockPersonService := new(MockPersonService)
	handler := NewPersonHandler(mockPersonService)

	mockPersonService.
		On("CreatePerson", mock.Anything, &people.Person{FullName: "Jane Doe", JobTitle: "Manager"}).
		Return(&people.Person{ID: 2, FullName: "Jane Doe", JobTitle: "Manager", DateTimeCreated: time.Now()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/people", bytes.NewBufferString(`{"fullName":"Jane Doe","jobTitle":"Manager"}`))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":2`)
	mockPersonService.AssertExpectations(t)
}

func TestPersonHandler_Create_InvalidRequest(t *testing.T) {
	mockPersonService := new(MockPersonService)
	handler := NewPersonHandler(mockPersonService)

	for _, body := range []string{`{"fullName":`, `{"fullName":"","jobTitle":"Manager"}`} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/people", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	mockPersonService.AssertNotCalled(t, "CreatePerson", mock.Anything, mock.Anything)
}
