package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mwell-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success hides password hashes", func(t *testing.T) {
		mockService := new(MockUserService)
		mockService.On("List", mock.Anything, 10, 20).Return([]model.User{
			{ID: testUserID, Name: "Juan Dela Cruz", Email: "juan@example.com", Role: model.RoleUser, PasswordHash: "$2a$10$secret"},
		}, nil)

		req := asCaller(httptest.NewRequest(http.MethodGet, "/api/users?limit=10&offset=20", nil), testAdmin)
		w := httptest.NewRecorder()
		NewUserHandler(mockService, logger).List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, strings.Contains(w.Body.String(), "secret"))
		var body model.UserListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Users, 1)
		assert.Equal(t, "juan@example.com", body.Users[0].Email)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid paging", func(t *testing.T) {
		mockService := new(MockUserService)
		w := httptest.NewRecorder()
		NewUserHandler(mockService, logger).List(w, httptest.NewRequest(http.MethodGet, "/api/users?offset=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}
