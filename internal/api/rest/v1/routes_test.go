//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockWsdlFirstClient := new(MockWsdlFirstClient)
	mockJavaFirstClient := new(MockJavaFirstClient)
	mockPersonService := new(MockPersonService)

	mockWsdlFirstClient.On("Echo", mock.Anything, mock.Anything).Return("x", nil)
	mockWsdlFirstClient.On("NonBlockingEchoAsync", mock.Anything, mock.Anything).Return("x", nil)
	mockJavaFirstClient.On("Echo", mock.Anything, mock.Anything).Return("x", nil)
	mockPersonService.On("GetPersons", mock.Anything).Return([]*people.Person{}, nil)
	mockPersonService.On("GetPerson", mock.Anything, mock.Anything).Return(nil, people.ErrPersonNotFound)

	r := gin.New()
	SetupRoutes(r, mockWsdlFirstClient, mockJavaFirstClient, mockPersonService)

	tests := []struct {
		method string
		url    string
		want   int
	}{
		{"GET", "/api/v1/wsdlfirstclient", http.StatusOK},
		{"GET", "/api/v1/wsdlfirstclient/nonblocking", http.StatusOK},
		{"GET", "/api/v1/javafirstclient", http.StatusOK},
		{"GET", "/api/v1/people", http.StatusOK},
		{"GET", "/api/v1/people/1", http.StatusNotFound},
		{"POST", "/api/v1/people", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
