package api

import (
	"encoding/json"
	"testing"
	"time"

	"click/config"
	"click/middleware"
	"click/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setUserIDMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func authTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(cfg, service.NewEmailService(&cfg.Email))
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := authTestConfig()
	middleware.InitJWT(cfg)

	// get-or-create：设备还没有密码
	expectUserUpsert(mock, testDeviceUUID)

	// 写入昵称和密码哈希
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"device_uuid":"` + testDeviceUUID + `","nickname":"小明","password":"password123"}`
	w := postJSON(newAuthRouter(cfg), "/register", body)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "注册成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_AlreadyRegistered(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := authTestConfig()
	middleware.InitJWT(cfg)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nickname", "password", "grade"}).
			AddRow(testDeviceUUID, "已有用户", "some-bcrypt-hash", "general"))

	body := `{"device_uuid":"` + testDeviceUUID + `","nickname":"小明","password":"password123"}`
	w := postJSON(newAuthRouter(cfg), "/register", body)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := authTestConfig()
	middleware.InitJWT(cfg)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nickname", "password", "grade"}).
			AddRow(testDeviceUUID, "小明", string(hashed), "general"))

	// 更新最后登录时间
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"device_uuid":"` + testDeviceUUID + `","password":"password123"}`
	w := postJSON(newAuthRouter(cfg), "/login", body)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Code int           `json:"code"`
		Data LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "小明", resp.Data.User.Nickname)

	// 返回的令牌应能解析出用户
	claims, err := middleware.ParseToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, testDeviceUUID, claims.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := authTestConfig()
	middleware.InitJWT(cfg)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nickname", "password", "grade"}).
			AddRow(testDeviceUUID, "小明", string(hashed), "general"))

	body := `{"device_uuid":"` + testDeviceUUID + `","password":"wrong-password"}`
	w := postJSON(newAuthRouter(cfg), "/login", body)

	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_UnknownDevice(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := authTestConfig()
	middleware.InitJWT(cfg)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	body := `{"device_uuid":"` + testDeviceUUID + `","password":"password123"}`
	w := postJSON(newAuthRouter(cfg), "/login", body)

	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetProfile(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := authTestConfig()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nickname", "grade"}).
			AddRow(testDeviceUUID, "小明", "vip"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(testDeviceUUID))
	h := NewAuthHandler(cfg, service.NewEmailService(&cfg.Email))
	router.GET("/profile", h.GetProfile)

	w := getWithRouter(router, "/profile")

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			UserID string `json:"user_id"`
			Grade  string `json:"grade"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testDeviceUUID, resp.Data.UserID)
	assert.Equal(t, "vip", resp.Data.Grade)
	require.NoError(t, mock.ExpectationsWereMet())
}
