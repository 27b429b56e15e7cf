package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/recipehub/recipehub/internal/middlewares"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const token = "some.jwt.token"

	tests := []struct {
		name         string
		mockSetup    func(m *MockSignOuter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			mockSetup: func(m *MockSignOuter) {
				m.EXPECT().SignOut(gomock.Any(), token).Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Signed out"},
		},
		{
			name: "store failure",
			mockSetup: func(m *MockSignOuter) {
				m.EXPECT().SignOut(gomock.Any(), token).Return(errors.New("redis down"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignOuter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLogoutHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			req = req.WithContext(middlewares.SetToken(req.Context(), token))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
