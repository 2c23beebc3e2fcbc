package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/services/auth"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, rawPassword, email string, phone *string) (*models.User, string, error) {
	args := m.Called(ctx, username, rawPassword, email, phone)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			requestBody: Request{
				Username: "newuser",
				Password: "secret123",
				Email:    "new@example.com",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "newuser", "secret123", "new@example.com", (*string)(nil)).
					Return(&models.User{ID: 1, Username: "newuser", Email: "new@example.com"}, "token-abc", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"token-abc"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка валидации: короткий пароль",
			requestBody: Request{
				Username: "newuser",
				Password: "123",
				Email:    "new@example.com",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Password is too short`,
		},
		{
			name: "имя пользователя занято",
			requestBody: Request{
				Username: "existing",
				Password: "secret123",
				Email:    "new@example.com",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "existing", "secret123", "new@example.com", (*string)(nil)).
					Return(nil, "", auth.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"username already taken"}`,
		},
		{
			name: "ошибка сервиса",
			requestBody: Request{
				Username: "newuser",
				Password: "secret123",
				Email:    "new@example.com",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "newuser", "secret123", "new@example.com", (*string)(nil)).
					Return(nil, "", errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
