package assignpackage

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/services/user"
)

// MockService реализует интерфейс assignpackage.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AssignPackage(ctx context.Context, userID int, packageID string) (*models.User, error) {
	args := m.Called(ctx, userID, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAssignPackageHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	monthly := "monthly"

	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное назначение пакета",
			id:          "3",
			requestBody: Request{PackageID: "monthly"},
			setupMock: func(m *MockService) {
				m.On("AssignPackage", mock.Anything, 3, "monthly").
					Return(&models.User{ID: 3, Username: "client", CurrentPackage: &monthly}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"currentPackage":"monthly"`,
		},
		{
			name:           "некорректный id в url",
			id:             "abc",
			requestBody:    Request{PackageID: "monthly"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
		{
			name:           "ошибка валидации: неизвестный пакет",
			id:             "3",
			requestBody:    Request{PackageID: "weekly"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field PackageID must be one of: monthly quarterly halfYearly yearly`,
		},
		{
			name:        "пользователь не найден",
			id:          "99",
			requestBody: Request{PackageID: "yearly"},
			setupMock: func(m *MockService) {
				m.On("AssignPackage", mock.Anything, 99, "yearly").
					Return(nil, user.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			body, err := json.Marshal(tt.requestBody)
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/users/"+tt.id+"/package", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
