package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/recipehub/recipehub/internal/middlewares"
	"github.com/recipehub/recipehub/internal/models"
	"github.com/recipehub/recipehub/internal/services"
)

func strPtr(s string) *string { return &s }

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const token = "some.jwt.token"
	userID := uuid.New()

	profile := &models.ProfileDB{
		ID:       userID,
		Username: strPtr("chef1"),
		FullName: strPtr("John Doe"),
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockCurrentProvider)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			mockSetup: func(m *MockCurrentProvider) {
				m.EXPECT().Current(gomock.Any(), token).Return(userID, profile, nil)
			},
			expectedCode: 200,
			check: func(t *testing.T, body []byte) {
				var resp ProfileResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, userID, resp.ID)
				assert.Equal(t, "chef1", *resp.Username)
				assert.Equal(t, "John Doe", resp.DisplayName)
			},
		},
		{
			name: "dead session",
			mockSetup: func(m *MockCurrentProvider) {
				m.EXPECT().Current(gomock.Any(), token).Return(uuid.Nil, nil, nil)
			},
			expectedCode: 401,
			check: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Not signed in", resp["error"])
			},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockCurrentProvider) {
				m.EXPECT().Current(gomock.Any(), token).Return(uuid.Nil, nil, errors.New("db down"))
			},
			expectedCode: 500,
			check: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Internal server error", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCurrentProvider(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetProfileHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req = req.WithContext(middlewares.SetToken(req.Context(), token))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.check(t, rr.Body.Bytes())
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const token = "some.jwt.token"
	userID := uuid.New()

	updated := &models.ProfileDB{
		ID:       userID,
		Username: strPtr("chef1"),
		FullName: strPtr("John Doe"),
	}

	tests := []struct {
		name         string
		username     string
		fullName     string
		mockSetup    func(m *MockProfileUpdater)
		expectedCode int
		expectedErr  string
		rawBody      bool
	}{
		{
			name:     "success",
			username: "chef1",
			fullName: "John Doe",
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), token, "chef1", "John Doe").
					Return(updated, nil)
			},
			expectedCode: 200,
		},
		{
			name:     "username required",
			username: "",
			fullName: "John Doe",
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), token, "", "John Doe").
					Return(nil, services.NewValidationError("Username is required"))
			},
			expectedCode: 400,
			expectedErr:  "Username is required",
		},
		{
			name:     "full name required",
			username: "chef1",
			fullName: "",
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), token, "chef1", "").
					Return(nil, services.NewValidationError("Full name is required"))
			},
			expectedCode: 400,
			expectedErr:  "Full name is required",
		},
		{
			name:     "not signed in",
			username: "chef1",
			fullName: "John Doe",
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), token, "chef1", "John Doe").
					Return(nil, services.ErrUnauthenticated)
			},
			expectedCode: 401,
			expectedErr:  "Not signed in",
		},
		{
			name:     "username taken",
			username: "chef1",
			fullName: "John Doe",
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), token, "chef1", "John Doe").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: 409,
			expectedErr:  "Username already taken",
		},
		{
			name:     "internal server error",
			username: "chef1",
			fullName: "John Doe",
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), token, "chef1", "John Doe").
					Return(nil, services.ErrSubmission)
			},
			expectedCode: 500,
			expectedErr:  "Failed to update profile. Please try again.",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateProfileHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(UpdateProfileRequest{
					Username: tt.username,
					FullName: tt.fullName,
				})
				req = httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBuffer(bodyBytes))
			}
			req = req.WithContext(middlewares.SetToken(req.Context(), token))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp["error"])
			} else {
				var resp ProfileResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, userID, resp.ID)
				assert.Equal(t, "chef1", *resp.Username)
			}
		})
	}
}
