package provisioning_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctrack/internal/provisioning"
	provisioningerrors "doctrack/internal/provisioning/errors"
	verificationerrors "doctrack/internal/verification/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeProvisioningService struct {
	CreateUserFn  func(ctx context.Context, token string, req provisioning.CreateUserRequest) (provisioning.CreateUserResponse, error)
	InviteStaffFn func(ctx context.Context, token string, req provisioning.InviteStaffRequest) (provisioning.InviteStaffResponse, error)
	VerifyStaffFn func(ctx context.Context, req provisioning.VerifyStaffRequest) (provisioning.VerifyStaffResponse, error)
	DeleteUserFn  func(ctx context.Context, token, userID string) (provisioning.DeleteUserResponse, error)
}

func (f *fakeProvisioningService) CreateUser(ctx context.Context, token string, req provisioning.CreateUserRequest) (provisioning.CreateUserResponse, error) {
	return f.CreateUserFn(ctx, token, req)
}
func (f *fakeProvisioningService) InviteStaff(ctx context.Context, token string, req provisioning.InviteStaffRequest) (provisioning.InviteStaffResponse, error) {
	return f.InviteStaffFn(ctx, token, req)
}
func (f *fakeProvisioningService) VerifyStaff(ctx context.Context, req provisioning.VerifyStaffRequest) (provisioning.VerifyStaffResponse, error) {
	return f.VerifyStaffFn(ctx, req)
}
func (f *fakeProvisioningService) DeleteUser(ctx context.Context, token, userID string) (provisioning.DeleteUserResponse, error) {
	return f.DeleteUserFn(ctx, token, userID)
}

func TestProvisioningHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeProvisioningService{
			CreateUserFn: func(ctx context.Context, token string, req provisioning.CreateUserRequest) (provisioning.CreateUserResponse, error) {
				assert.Equal(t, "admin-token", token)
				assert.Equal(t, "new@corp.test", req.Email)
				return provisioning.CreateUserResponse{
					Message: "User created successfully",
					User:    provisioning.ProvisionedUser{ID: "uid-1", Email: req.Email, Role: req.Role},
				}, nil
			},
		}

		h := provisioning.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"new@corp.test","password":"s3cret!","full_name":"New Person","role":"user"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("Authorization", "Bearer admin-token")

		h.CreateUser(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("missing bearer token", func(t *testing.T) {
		h := provisioning.NewHandler(&fakeProvisioningService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/users", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateUser(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("invalid role rejected by binding", func(t *testing.T) {
		h := provisioning.NewHandler(&fakeProvisioningService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"new@corp.test","password":"pw","full_name":"X","role":"superuser"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("Authorization", "Bearer admin-token")

		h.CreateUser(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := &fakeProvisioningService{
			CreateUserFn: func(ctx context.Context, token string, req provisioning.CreateUserRequest) (provisioning.CreateUserResponse, error) {
				return provisioning.CreateUserResponse{}, provisioningerrors.ErrAdminRequired
			},
		}

		h := provisioning.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"new@corp.test","password":"pw","full_name":"X","role":"user"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("Authorization", "Bearer user-token")

		h.CreateUser(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})
}

func TestProvisioningHandler_InviteStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeProvisioningService{
			InviteStaffFn: func(ctx context.Context, token string, req provisioning.InviteStaffRequest) (provisioning.InviteStaffResponse, error) {
				assert.Equal(t, "Invitee", req.Name)
				return provisioning.InviteStaffResponse{Message: "Invitation sent"}, nil
			},
		}

		h := provisioning.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Invitee","email":"invitee@corp.test"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/staff", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("Authorization", "Bearer admin-token")

		h.InviteStaff(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("malformed position id rejected", func(t *testing.T) {
		h := provisioning.NewHandler(&fakeProvisioningService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Invitee","email":"invitee@corp.test","position_id":"not-a-uuid"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/staff", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("Authorization", "Bearer admin-token")

		h.InviteStaff(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProvisioningHandler_VerifyStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success needs no token", func(t *testing.T) {
		svc := &fakeProvisioningService{
			VerifyStaffFn: func(ctx context.Context, req provisioning.VerifyStaffRequest) (provisioning.VerifyStaffResponse, error) {
				assert.Equal(t, "123456", req.Code)
				return provisioning.VerifyStaffResponse{
					Message: "Account activated",
					User:    provisioning.VerifiedUser{ID: "uid-1", Email: req.Email},
				}, nil
			},
		}

		h := provisioning.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"invitee@corp.test","code":"123456","password":"chosen-pw"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/staff/verify", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.VerifyStaff(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("expired code maps to gone", func(t *testing.T) {
		svc := &fakeProvisioningService{
			VerifyStaffFn: func(ctx context.Context, req provisioning.VerifyStaffRequest) (provisioning.VerifyStaffResponse, error) {
				return provisioning.VerifyStaffResponse{}, verificationerrors.ErrCodeInvalidOrExpired
			},
		}

		h := provisioning.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"invitee@corp.test","code":"000000","password":"chosen-pw"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/staff/verify", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.VerifyStaff(c)

		assert.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("short code rejected by binding", func(t *testing.T) {
		h := provisioning.NewHandler(&fakeProvisioningService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"invitee@corp.test","code":"123","password":"chosen-pw"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/provisioning/staff/verify", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.VerifyStaff(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProvisioningHandler_DeleteUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeProvisioningService{
			DeleteUserFn: func(ctx context.Context, token, userID string) (provisioning.DeleteUserResponse, error) {
				assert.Equal(t, "uid-9", userID)
				return provisioning.DeleteUserResponse{Message: "User deleted"}, nil
			},
		}

		h := provisioning.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/provisioning/users/uid-9", nil)
		c.Request.Header.Set("Authorization", "Bearer admin-token")
		c.Params = gin.Params{{Key: "id", Value: "uid-9"}}

		h.DeleteUser(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin target forbidden", func(t *testing.T) {
		svc := &fakeProvisioningService{
			DeleteUserFn: func(ctx context.Context, token, userID string) (provisioning.DeleteUserResponse, error) {
				return provisioning.DeleteUserResponse{}, provisioningerrors.ErrCannotDeleteAdmin
			},
		}

		h := provisioning.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/provisioning/users/uid-1", nil)
		c.Request.Header.Set("Authorization", "Bearer admin-token")
		c.Params = gin.Params{{Key: "id", Value: "uid-1"}}

		h.DeleteUser(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
