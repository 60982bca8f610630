package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wamisho-d/ecommerece/internal/auth"
	"github.com/wamisho-d/ecommerece/internal/db"
	"github.com/wamisho-d/ecommerece/internal/handlers"
	"github.com/wamisho-d/ecommerece/internal/store"
)

const testSecret = "test-secret-key"

type testServer struct {
	router *gin.Engine
	store  *store.Store
	tokens *auth.Manager
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	// A DSN per test keeps the shared-cache in-memory databases isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	st := store.New(testDB)
	tokens := auth.NewManager(testSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	handlers.Routes(r, st, tokens, nil)

	return &testServer{router: r, store: st, tokens: tokens, db: testDB}
}

func (ts *testServer) adminToken(t *testing.T) string {
	token, err := ts.tokens.Issue("root", "admin")
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	return token
}

func (ts *testServer) customerToken(t *testing.T) string {
	token, err := ts.tokens.Issue("shopper", "customer")
	if err != nil {
		t.Fatalf("failed to issue customer token: %v", err)
	}
	return token
}

func (ts *testServer) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	ts.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}
