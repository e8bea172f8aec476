// Package integration exercises the storefront API end to end: real
// router, handlers, services and gorm repositories over an in-memory
// sqlite database.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	accountapp "github.com/storefront/backend/internal/application/account"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	orderingapp "github.com/storefront/backend/internal/application/ordering"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

// TestServer wires the full HTTP stack over a fresh database.
type TestServer struct {
	DB     *gorm.DB
	Engine *gin.Engine
	t      *testing.T
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.AutoMigrate(db))

	log := zap.NewNop()

	categoryRepo := persistence.NewGormCategoryRepository(db)
	itemRepo := persistence.NewGormItemRepository(db)
	tagRepo := persistence.NewGormTagRepository(db)
	supplierRepo := persistence.NewGormSupplierRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	accountRepo := persistence.NewGormAccountRepository(db)
	addressRepo := persistence.NewGormAddressRepository(db)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-test-secret-0123456789abcdef",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "storefront-test",
	})

	categoryService := catalogapp.NewCategoryService(categoryRepo)
	itemService := catalogapp.NewItemService(itemRepo, categoryRepo, tagRepo, supplierRepo, nil, log)
	orderService := orderingapp.NewOrderService(orderRepo, itemRepo, log)
	accountService := accountapp.NewAccountService(accountRepo, jwtService, log)
	addressService := accountapp.NewAddressService(addressRepo)

	engine := router.Setup(router.Config{
		Logger:     log,
		JWTService: jwtService,
		CORS:       middleware.DefaultCORSConfig(),
		System:     handler.NewSystemHandler(&persistence.Database{DB: db}),
		Auth:       handler.NewAuthHandler(accountService),
		Items:      handler.NewItemHandler(itemService),
		Categories: handler.NewCategoryHandler(categoryService),
		Orders:     handler.NewOrderHandler(orderService),
		Addresses:  handler.NewAddressHandler(addressService),
	})

	return &TestServer{DB: db, Engine: engine, t: t}
}

// envelope mirrors the API response shape with a raw data payload so
// callers can decode into whatever type the endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalPages int   `json:"total_pages"`
	} `json:"meta"`
}

// Request performs an HTTP request against the test server. An empty
// token leaves the request unauthenticated.
func (ts *TestServer) Request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	ts.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}

// decode unmarshals the response envelope and, when out is non-nil,
// the data payload into out.
func (ts *TestServer) decode(w *httptest.ResponseRecorder, out interface{}) envelope {
	ts.t.Helper()

	var env envelope
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil && len(env.Data) > 0 {
		require.NoError(ts.t, json.Unmarshal(env.Data, out))
	}
	return env
}

// registerAndLogin creates an account through the API and returns an
// access token for it.
func (ts *TestServer) registerAndLogin(email, password string) string {
	ts.t.Helper()

	w := ts.Request(http.MethodPost, "/api/register", "", map[string]string{
		"email":      email,
		"password":   password,
		"first_name": "Test",
		"last_name":  "Shopper",
	})
	require.Equal(ts.t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.Request(http.MethodPost, "/api/token", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(ts.t, http.StatusOK, w.Code, w.Body.String())

	var pair accountapp.TokenPair
	ts.decode(w, &pair)
	require.NotEmpty(ts.t, pair.AccessToken)
	return pair.AccessToken
}
