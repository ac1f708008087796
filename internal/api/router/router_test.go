package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-console/config"
	"campus-console/internal/api/handler"
	"campus-console/internal/repository"
	"campus-console/internal/service"
	"campus-console/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupEngine 基于临时数据目录组装完整的 Repository → Service → Handler → Router
func setupEngine(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"users.csv": "username,password,full_name,email,role,status\n" +
			"admin,adminpw,Ada Admin,ada@campus.edu,admin,active\n" +
			"stu,stupw,Sam Student,sam@campus.edu,student,active\n",
		"routes.csv": "id,start_location,end_location,distance_m,accessible\n" +
			"1,Gym,Library,120,True\n2,Library,Gym,80,False\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{
		Storage: config.StorageConfig{DataDir: dir},
		Auth:    config.AuthConfig{JWTSecret: "router-test-secret-0123456789", AccessTokenTTL: time.Minute},
		Feature: config.FeatureConfig{NotifyLocationChanges: true, NotificationUserID: 1},
	}
	logger := zap.NewNop()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repository.NewRepository(dir), jwtMgr, nil, logger)
	return Setup(cfg, handler.NewHandler(svc), jwtMgr, nil, logger), dir
}

func call(r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w, env := call(r, "POST", "/api/v1/auth/login", "", map[string]string{"username": username, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", username, w.Code, env.Message)
	}
	var data struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(env.Data, &data)
	return data.AccessToken
}

func TestRouter_HealthAndAuthRequired(t *testing.T) {
	r, _ := setupEngine(t)

	if w, _ := call(r, "GET", "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", w.Code)
	}
	if w, _ := call(r, "GET", "/api/v1/routes", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("routes without token: expected 401, got %d", w.Code)
	}

	w, _ := call(r, "GET", "/metrics", "", nil)
	if !bytes.Contains(w.Body.Bytes(), []byte(`campus_http_requests_total{method="GET",route="/api/v1/routes",status="401"} 1`)) {
		t.Errorf("metrics should record the rejected request:\n%s", w.Body.String())
	}
}

func TestRouter_LoginMessages(t *testing.T) {
	r, _ := setupEngine(t)

	_, env := call(r, "POST", "/api/v1/auth/login", "", map[string]string{"username": "ghost", "password": "x"})
	if env.Message != "User not found" {
		t.Errorf("unexpected message %q", env.Message)
	}
	_, env = call(r, "POST", "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	if env.Message != "Incorrect password" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestRouter_ShortestRouteFlow(t *testing.T) {
	r, dir := setupEngine(t)
	admin := login(t, r, "admin", "adminpw")
	student := login(t, r, "stu", "stupw")

	// 学生可查询
	w, env := call(r, "GET", "/api/v1/routes/shortest?start=Gym&end=Library", student, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("shortest: expected 200, got %d", w.Code)
	}
	var best struct {
		ID int `json:"id"`
	}
	json.Unmarshal(env.Data, &best)
	if best.ID != 2 {
		t.Errorf("expected route 2, got %d", best.ID)
	}

	// 学生不可写
	newRoute := map[string]interface{}{"start_location": "Gym", "end_location": "Library", "distance_m": 50, "accessible": true}
	if w, _ := call(r, "POST", "/api/v1/routes", student, newRoute); w.Code != http.StatusForbidden {
		t.Errorf("student create: expected 403, got %d", w.Code)
	}

	// 管理员新增更短的路线后查询结果随之变化
	if w, _ := call(r, "POST", "/api/v1/routes", admin, newRoute); w.Code != http.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d", w.Code)
	}
	_, env = call(r, "GET", "/api/v1/routes/shortest?start=Library&end=Gym", student, nil)
	json.Unmarshal(env.Data, &best)
	if best.ID != 3 {
		t.Errorf("expected new route 3, got %d", best.ID)
	}

	// 通知已写入 notification.csv
	b, err := os.ReadFile(filepath.Join(dir, "notification.csv"))
	if err != nil {
		t.Fatalf("notification.csv should exist: %v", err)
	}
	if !bytes.Contains(b, []byte("New route 'Gym → Library' added")) {
		t.Errorf("unexpected notifications:\n%s", b)
	}

	// 无直达路线
	if w, _ := call(r, "GET", "/api/v1/routes/shortest?start=Gym&end=Pool", student, nil); w.Code != http.StatusNotFound {
		t.Errorf("missing route: expected 404, got %d", w.Code)
	}
}

func TestRouter_LocationValidation(t *testing.T) {
	r, _ := setupEngine(t)
	admin := login(t, r, "admin", "adminpw")

	w, env := call(r, "POST", "/api/v1/locations", admin, map[string]interface{}{"name": "Lab", "building": "C"})
	if w.Code != http.StatusBadRequest || env.Code != 10001 {
		t.Errorf("expected 400/10001, got %d/%d", w.Code, env.Code)
	}

	w, _ = call(r, "PUT", "/api/v1/locations/99", admin, map[string]interface{}{
		"name": "Lab", "building": "C", "floor": "2", "accessible": true,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("update missing: expected 404, got %d", w.Code)
	}
}

func TestRouter_LogoutWithoutRedis(t *testing.T) {
	r, _ := setupEngine(t)
	token := login(t, r, "stu", "stupw")

	if w, _ := call(r, "POST", "/api/v1/auth/logout", token, nil); w.Code != http.StatusOK {
		t.Errorf("logout: expected 200, got %d", w.Code)
	}
	if w, _ := call(r, "GET", "/api/v1/users", token, nil); w.Code != http.StatusForbidden {
		t.Errorf("student users list: expected 403, got %d", w.Code)
	}
}
