package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lost-and-found/backend/app/models"
	"lost-and-found/backend/config"
	"lost-and-found/backend/initialize"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type env struct {
	app *initialize.App
	srv *httptest.Server
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.LostItem{}, &models.FoundItem{}, &models.AdminLog{}, &models.LoginAttempt{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.ExpMin = 60
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxSizeMB = 5

	app, err := initialize.BuildWithDB(cfg, gdb, nil)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return &env{app: app, srv: srv}
}

// call issues a JSON request and decodes the JSON body into a generic map.
func (e *env) call(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, e.srv.URL+path, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	out := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func (e *env) register(t *testing.T, name, email, password string) {
	t.Helper()
	status, body := e.call(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"full_name": name, "email": email,
		"password": password, "confirm_password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("register %s: %d %v", email, status, body)
	}
}

func (e *env) login(t *testing.T, email, password string) string {
	t.Helper()
	status, body := e.call(t, "POST", "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login %s: %d %v", email, status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in %v", email, body)
	}
	return token
}

func (e *env) seedAdmin(t *testing.T, email string) {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.MinCost)
	u := models.User{FullName: "Admin " + email, Email: email, PasswordHash: string(hash), Role: models.RoleAdmin, IsActive: true}
	if err := e.app.DB.Create(&u).Error; err != nil {
		t.Fatal(err)
	}
}

func (e *env) userID(t *testing.T, email string) uint {
	t.Helper()
	var u models.User
	if err := e.app.DB.Where("email = ?", email).First(&u).Error; err != nil {
		t.Fatal(err)
	}
	return u.ID
}

func lostItemBody() map[string]interface{} {
	return map[string]interface{}{
		"item_name": "Wallet", "category": "accessories", "description": "black leather",
		"date_lost": "2026-01-10", "location_lost": "Library",
		"student_name": "A", "contact_number": "555", "email": "a@x.com", "student_id": "S1",
	}
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	status, body := e.call(t, "GET", "/api/health", "", nil)
	if status != http.StatusOK || body["status"] != "OK" {
		t.Errorf("health: %d %v", status, body)
	}
}

func TestLoginSetsCookie(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")

	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(map[string]string{"email": "a@x.com", "password": "secret1"})
	resp, err := http.Post(e.srv.URL+"/api/auth/login", "application/json", &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("expected http-only token cookie, got %+v", cookie)
	}

	// cookie alone authenticates
	req, _ := http.NewRequest("GET", e.srv.URL+"/api/auth/me", nil)
	req.AddCookie(cookie)
	meResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer meResp.Body.Close()
	if meResp.StatusCode != http.StatusOK {
		t.Errorf("me with cookie: %d", meResp.StatusCode)
	}
}

func TestLoginFailures(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")

	status, _ := e.call(t, "POST", "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "wrong"})
	if status != http.StatusUnauthorized {
		t.Errorf("wrong password: %d, want 401", status)
	}

	e.app.DB.Model(&models.User{}).Where("email = ?", "a@x.com").Update("is_active", false)
	status, _ = e.call(t, "POST", "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret1"})
	if status != http.StatusForbidden {
		t.Errorf("deactivated: %d, want 403", status)
	}
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t)
	status, _ := e.call(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"full_name": "A", "email": "a@x.com", "password": "secret1", "confirm_password": "different",
	})
	if status != http.StatusBadRequest {
		t.Errorf("password mismatch: %d, want 400", status)
	}
	status, _ = e.call(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"full_name": "A", "email": "a@x.com", "password": "abc", "confirm_password": "abc",
	})
	if status != http.StatusBadRequest {
		t.Errorf("short password: %d, want 400", status)
	}
	e.register(t, "A", "a@x.com", "secret1")
	status, _ = e.call(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"full_name": "B", "email": "a@x.com", "password": "secret2", "confirm_password": "secret2",
	})
	if status != http.StatusBadRequest {
		t.Errorf("duplicate email: %d, want 400", status)
	}
}

// Register A, login, create an item, watch B get 403, then delete as A and
// confirm the second delete is a 404.
func TestItemOwnershipScenario(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	e.register(t, "B", "b@x.com", "secret2")
	tokenA := e.login(t, "a@x.com", "secret1")
	tokenB := e.login(t, "b@x.com", "secret2")

	status, body := e.call(t, "POST", "/api/lost-items", tokenA, lostItemBody())
	if status != http.StatusOK {
		t.Fatalf("create: %d %v", status, body)
	}
	id := int(body["id"].(float64))

	status, _ = e.call(t, "DELETE", fmt.Sprintf("/api/lost-items/%d", id), tokenB, nil)
	if status != http.StatusForbidden {
		t.Fatalf("delete as B: %d, want 403", status)
	}
	status, _ = e.call(t, "GET", fmt.Sprintf("/api/lost-items/%d", id), "", nil)
	if status != http.StatusOK {
		t.Fatalf("item vanished after forbidden delete: %d", status)
	}

	status, _ = e.call(t, "DELETE", fmt.Sprintf("/api/lost-items/%d", id), tokenA, nil)
	if status != http.StatusOK {
		t.Fatalf("delete as A: %d, want 200", status)
	}
	status, _ = e.call(t, "DELETE", fmt.Sprintf("/api/lost-items/%d", id), tokenA, nil)
	if status != http.StatusNotFound {
		t.Fatalf("second delete: %d, want 404", status)
	}
}

func TestItemCreateRequiresAuth(t *testing.T) {
	e := newEnv(t)
	status, _ := e.call(t, "POST", "/api/lost-items", "", lostItemBody())
	if status != http.StatusUnauthorized {
		t.Errorf("unauthenticated create: %d, want 401", status)
	}
}

func TestItemUpdateRejectsUnknownFields(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	tokenA := e.login(t, "a@x.com", "secret1")

	status, body := e.call(t, "POST", "/api/lost-items", tokenA, lostItemBody())
	if status != http.StatusOK {
		t.Fatalf("create: %d %v", status, body)
	}
	id := int(body["id"].(float64))

	status, _ = e.call(t, "PUT", fmt.Sprintf("/api/lost-items/%d", id), tokenA, map[string]interface{}{
		"user_id": 999,
	})
	if status != http.StatusBadRequest {
		t.Errorf("user_id in update: %d, want 400", status)
	}
	status, _ = e.call(t, "PUT", fmt.Sprintf("/api/lost-items/%d", id), tokenA, map[string]interface{}{
		"status": "resolved",
	})
	if status != http.StatusOK {
		t.Errorf("allow-listed update: %d, want 200", status)
	}
}

func TestFoundItemsMirrorLost(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	e.register(t, "B", "b@x.com", "secret2")
	tokenA := e.login(t, "a@x.com", "secret1")
	tokenB := e.login(t, "b@x.com", "secret2")

	status, body := e.call(t, "POST", "/api/found-items", tokenA, map[string]interface{}{
		"item_name": "Keys", "category": "misc", "description": "ring of three",
		"date_found": "2026-01-12", "location_found": "Cafeteria",
		"finder_name": "A", "contact_number": "555",
	})
	if status != http.StatusOK {
		t.Fatalf("create found: %d %v", status, body)
	}
	id := int(body["id"].(float64))

	status, _ = e.call(t, "PUT", fmt.Sprintf("/api/found-items/%d", id), tokenB, map[string]interface{}{"status": "claimed"})
	if status != http.StatusForbidden {
		t.Errorf("update as B: %d, want 403", status)
	}
	status, _ = e.call(t, "DELETE", fmt.Sprintf("/api/found-items/%d", id), tokenA, nil)
	if status != http.StatusOK {
		t.Errorf("delete as owner: %d, want 200", status)
	}
}

func TestMyItems(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	e.register(t, "B", "b@x.com", "secret2")
	tokenA := e.login(t, "a@x.com", "secret1")
	tokenB := e.login(t, "b@x.com", "secret2")

	if status, body := e.call(t, "POST", "/api/lost-items", tokenA, lostItemBody()); status != http.StatusOK {
		t.Fatalf("create: %d %v", status, body)
	}

	status, body := e.call(t, "GET", "/api/my-items", tokenA, nil)
	if status != http.StatusOK {
		t.Fatalf("my-items A: %d", status)
	}
	if lost, _ := body["lost_items"].([]interface{}); len(lost) != 1 {
		t.Errorf("A lost_items = %v, want 1 entry", body["lost_items"])
	}

	status, body = e.call(t, "GET", "/api/my-items", tokenB, nil)
	if status != http.StatusOK {
		t.Fatalf("my-items B: %d", status)
	}
	if lost, _ := body["lost_items"].([]interface{}); len(lost) != 0 {
		t.Errorf("B lost_items = %v, want empty", body["lost_items"])
	}
}

// Two admins: the first demotion lands, the second trips the last-admin guard.
func TestAdminDemotionScenario(t *testing.T) {
	e := newEnv(t)
	e.seedAdmin(t, "root1@x.com")
	e.seedAdmin(t, "root2@x.com")
	e.register(t, "C", "c@x.com", "secret1")
	token2 := e.login(t, "root2@x.com", "adminpass")
	id1 := e.userID(t, "root1@x.com")
	id2 := e.userID(t, "root2@x.com")

	status, body := e.call(t, "PUT", fmt.Sprintf("/api/admin/users/%d/demote", id1), token2, nil)
	if status != http.StatusOK {
		t.Fatalf("first demote: %d %v", status, body)
	}

	// root1 is a student now, so root2 is the last admin standing
	token1 := e.login(t, "root1@x.com", "adminpass")
	status, _ = e.call(t, "PUT", fmt.Sprintf("/api/admin/users/%d/demote", id2), token1, nil)
	if status != http.StatusForbidden {
		t.Fatalf("demote by demoted admin: %d, want 403", status)
	}

	// and root2 cannot demote themselves either
	status, _ = e.call(t, "PUT", fmt.Sprintf("/api/admin/users/%d/demote", id2), token2, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("self demote: %d, want 400", status)
	}

	var admins int64
	e.app.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins)
	if admins != 1 {
		t.Errorf("admin count = %d, want 1", admins)
	}
}

func TestDemoteLastActiveAdmin(t *testing.T) {
	e := newEnv(t)
	e.seedAdmin(t, "root@x.com")
	e.seedAdmin(t, "banned@x.com")
	e.app.DB.Model(&models.User{}).Where("email = ?", "banned@x.com").Update("is_active", false)
	token := e.login(t, "root@x.com", "adminpass")
	id := e.userID(t, "banned@x.com")

	// root is the only active admin left, so even the banned one is protected
	status, body := e.call(t, "PUT", fmt.Sprintf("/api/admin/users/%d/demote", id), token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("demote with one active admin: %d %v, want 400", status, body)
	}
	var u models.User
	if err := e.app.DB.Where("email = ?", "banned@x.com").First(&u).Error; err != nil {
		t.Fatal(err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role changed to %q despite guard", u.Role)
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	tokenA := e.login(t, "a@x.com", "secret1")

	for _, path := range []string{"/api/admin/users", "/api/admin/statistics", "/api/admin/logs", "/api/admin/activity"} {
		if status, _ := e.call(t, "GET", path, tokenA, nil); status != http.StatusForbidden {
			t.Errorf("%s as student: %d, want 403", path, status)
		}
		if status, _ := e.call(t, "GET", path, "", nil); status != http.StatusUnauthorized {
			t.Errorf("%s unauthenticated: %d, want 401", path, status)
		}
	}
}

func TestAdminToggleStatusRoundtrip(t *testing.T) {
	e := newEnv(t)
	e.seedAdmin(t, "root@x.com")
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "root@x.com", "adminpass")
	id := e.userID(t, "a@x.com")

	status, body := e.call(t, "PUT", fmt.Sprintf("/api/admin/users/%d/toggle-status", id), token, nil)
	if status != http.StatusOK || body["is_active"] != false {
		t.Fatalf("first toggle: %d %v", status, body)
	}
	status, body = e.call(t, "PUT", fmt.Sprintf("/api/admin/users/%d/toggle-status", id), token, nil)
	if status != http.StatusOK || body["is_active"] != true {
		t.Fatalf("second toggle: %d %v", status, body)
	}
}

func TestAdminLogsRecordActions(t *testing.T) {
	e := newEnv(t)
	e.seedAdmin(t, "root@x.com")
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "root@x.com", "adminpass")
	id := e.userID(t, "a@x.com")

	if status, _ := e.call(t, "PUT", fmt.Sprintf("/api/admin/users/%d/promote", id), token, nil); status != http.StatusOK {
		t.Fatal("promote failed")
	}
	if status, _ := e.call(t, "DELETE", fmt.Sprintf("/api/admin/users/%d", id), token, nil); status != http.StatusOK {
		t.Fatal("delete failed")
	}

	status, body := e.call(t, "GET", "/api/admin/logs", token, nil)
	if status != http.StatusOK {
		t.Fatalf("logs: %d", status)
	}
	logs, _ := body["logs"].([]interface{})
	if len(logs) != 2 {
		t.Fatalf("logs len = %d, want 2", len(logs))
	}
	// newest first
	first, _ := logs[0].(map[string]interface{})
	if first["action"] != models.ActionDeleteUser {
		t.Errorf("newest log action = %v, want DELETE_USER", first["action"])
	}
}

func TestAdminUsersSearch(t *testing.T) {
	e := newEnv(t)
	e.seedAdmin(t, "root@x.com")
	e.register(t, "Alice Smith", "alice@x.com", "secret1")
	e.register(t, "Bob Jones", "bob@x.com", "secret1")
	token := e.login(t, "root@x.com", "adminpass")

	status, body := e.call(t, "GET", "/api/admin/users?search=alice", token, nil)
	if status != http.StatusOK {
		t.Fatalf("users: %d", status)
	}
	users, _ := body["users"].([]interface{})
	if len(users) != 1 {
		t.Errorf("search=alice returned %d users, want 1", len(users))
	}

	status, body = e.call(t, "GET", "/api/admin/users?role=admin", token, nil)
	if status != http.StatusOK {
		t.Fatalf("users by role: %d", status)
	}
	users, _ = body["users"].([]interface{})
	if len(users) != 1 {
		t.Errorf("role=admin returned %d users, want 1", len(users))
	}
}

func TestChangePasswordFlow(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "a@x.com", "secret1")

	status, _ := e.call(t, "PUT", "/api/auth/change-password", token, map[string]string{
		"current_password": "wrong", "new_password": "secret2", "confirm_password": "secret2",
	})
	if status != http.StatusUnauthorized {
		t.Errorf("wrong current password: %d, want 401", status)
	}

	status, _ = e.call(t, "PUT", "/api/auth/change-password", token, map[string]string{
		"current_password": "secret1", "new_password": "secret2", "confirm_password": "secret2",
	})
	if status != http.StatusOK {
		t.Errorf("change password: %d, want 200", status)
	}
	e.login(t, "a@x.com", "secret2")
}

func TestLogoutClearsCookie(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "a@x.com", "secret1")

	req, _ := http.NewRequest("POST", e.srv.URL+"/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: %d", resp.StatusCode)
	}
	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == "token" && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout did not clear the token cookie")
	}
}

// upload posts a multipart form with a single synthetic file of the given size.
func (e *env) upload(t *testing.T, token, filename string, size int) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(bytes.Repeat([]byte{0xAB}, size)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req, err := http.NewRequest("POST", e.srv.URL+"/api/upload", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	out := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestUploadStoresImage(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "a@x.com", "secret1")

	status, body := e.upload(t, token, "photo.png", 1024)
	if status != http.StatusOK {
		t.Fatalf("upload: %d %v", status, body)
	}
	url, _ := body["image_url"].(string)
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("image_url = %q, want /uploads/*.png", url)
	}
	// stored name carries a unique suffix, not the raw client filename
	if url == "/uploads/photo.png" {
		t.Error("stored name is the client filename verbatim")
	}
	stored := filepath.Join(e.app.Cfg.Upload.Dir, strings.TrimPrefix(url, "/uploads/"))
	info, err := os.Stat(stored)
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if info.Size() != 1024 {
		t.Errorf("stored size = %d, want 1024", info.Size())
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "a@x.com", "secret1")

	status, body := e.upload(t, token, "shell.php", 128)
	if status != http.StatusBadRequest {
		t.Errorf("php upload: %d %v, want 400", status, body)
	}
}

func TestUploadRejectsOversize(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "a@x.com", "secret1")

	// cap is 5 MB in newEnv
	status, body := e.upload(t, token, "big.png", 6<<20)
	if status != http.StatusBadRequest {
		t.Errorf("oversize upload: %d %v, want 400", status, body)
	}
}

func TestUploadRequiresAuth(t *testing.T) {
	e := newEnv(t)
	status, _ := e.upload(t, "", "photo.png", 128)
	if status != http.StatusUnauthorized {
		t.Errorf("unauthenticated upload: %d, want 401", status)
	}
}

func TestMalformedJSONRejected(t *testing.T) {
	e := newEnv(t)

	resp, err := http.Post(e.srv.URL+"/api/auth/register", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed register body: %d, want 400", resp.StatusCode)
	}

	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "a@x.com", "secret1")
	req, _ := http.NewRequest("POST", e.srv.URL+"/api/lost-items", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed create body: %d, want 400", resp.StatusCode)
	}
}

func TestMeAfterAccountDeleted(t *testing.T) {
	e := newEnv(t)
	e.register(t, "A", "a@x.com", "secret1")
	token := e.login(t, "a@x.com", "secret1")
	e.app.DB.Delete(&models.User{}, e.userID(t, "a@x.com"))

	status, body := e.call(t, "GET", "/api/auth/me", token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("me on deleted account: %d %v, want 404", status, body)
	}
	if body["error"] != "User not found" {
		t.Errorf("error = %v, want %q", body["error"], "User not found")
	}
}

func TestStatisticsCountsTodaysLogins(t *testing.T) {
	e := newEnv(t)
	e.seedAdmin(t, "root@x.com")
	token := e.login(t, "root@x.com", "adminpass")

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	seeded := []models.LoginAttempt{
		{EmailOrStudentID: "yesterday@x.com", Success: true, CreatedAt: midnight.Add(-time.Minute)},
		{EmailOrStudentID: "today@x.com", Success: true, CreatedAt: midnight.Add(time.Minute)},
		{EmailOrStudentID: "failed@x.com", Success: false, CreatedAt: midnight.Add(2 * time.Minute)},
	}
	if err := e.app.DB.Create(&seeded).Error; err != nil {
		t.Fatal(err)
	}

	status, body := e.call(t, "GET", "/api/admin/statistics", token, nil)
	if status != http.StatusOK {
		t.Fatalf("statistics: %d %v", status, body)
	}
	stats, _ := body["statistics"].(map[string]interface{})
	// admin login above plus the seeded success just after local midnight
	if got := stats["successful_logins_today"]; got != float64(2) {
		t.Errorf("successful_logins_today = %v, want 2", got)
	}
}
