package bootstrap

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edunexus/schoolrecords/internal/app/repositories/inmem"
	"github.com/edunexus/schoolrecords/internal/config"
	"github.com/edunexus/schoolrecords/internal/pkg/filestorage"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "integration-secret")
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	cfg.Server.MediaPath = t.TempDir()
	cfg.RateLimit.RequestsPerSecond = 0

	storage, err := filestorage.NewLocalStorage(cfg.Server.MediaPath, cfg.MediaURL())
	require.NoError(t, err)

	deps := NewDependencies(cfg, inmem.NewStore().Repositories(), storage, nil, zerolog.Nop())
	deps.Services.AuthService.WithPasswordCost(bcrypt.MinCost)

	return &apiClient{t: t, router: SetupRouter(cfg, deps, zerolog.Nop())}
}

func (a *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return a.send(req)
}

func (a *apiClient) send(req *http.Request) *httptest.ResponseRecorder {
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, w)
	detail, ok := body["error"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	return detail["code"].(string)
}

func (a *apiClient) login(username, password string) map[string]interface{} {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/token/", gin.H{"username": username, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	pair := decode(a.t, w)
	a.token = pair["access"].(string)
	return pair
}

func TestJuanScenario(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodPost, "/api/register/", gin.H{"username": "juan", "email": "juan@x.ph", "password": "pw123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	registered := decode(t, w)
	assert.Equal(t, "juan", registered["username"])
	assert.Equal(t, "juan@x.ph", registered["email"])
	assert.NotContains(t, registered, "password")

	w = api.do(http.MethodPost, "/api/register", gin.H{"username": "juan", "email": "other@x.ph", "password": "pw123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", errorCode(t, w))

	w = api.do(http.MethodPost, "/api/register/", gin.H{"username": "pedro", "email": "juan@x.ph", "password": "pw123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	detail := decode(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "email", detail["field"])

	pair := api.login("juan", "pw123")

	w = api.do(http.MethodGet, "/api/profile/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)
	assert.Equal(t, "juan", profile["username"])
	assert.Nil(t, profile["avatar"])

	api.token = ""
	w = api.do(http.MethodPost, "/api/token/refresh/", gin.H{"refresh": pair["refresh"]})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = api.do(http.MethodPost, "/api/token/refresh/", gin.H{"refresh": pair["refresh"]})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	api := newAPI(t)
	w := api.do(http.MethodPost, "/api/token/", gin.H{"username": "ghost", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", errorCode(t, w))
}

func TestResources_RequireToken(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/api/departments/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_008", errorCode(t, w))

	api.token = "garbage"
	w = api.do(http.MethodGet, "/api/departments", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_005", errorCode(t, w))
}

func TestDepartmentLifecycle(t *testing.T) {
	api := newAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/register/",
		gin.H{"username": "admin", "email": "admin@x.ph", "password": "pw"}).Code)
	api.login("admin", "pw")

	w := api.do(http.MethodPost, "/api/departments/", gin.H{
		"name": "Computer Science", "code": "CS101", "office_location": "Eng 201",
		"phone_contact": "0917-555-001", "established_date": "2005-06-15",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dept := decode(t, w)
	assert.Equal(t, "2005-06-15", dept["established_date"])
	deptID := int64(dept["id"].(float64))

	w = api.do(http.MethodPost, "/api/instructors/", gin.H{
		"first_name": "Maria", "last_name": "Santos", "email": "maria@edunexus.ph",
		"hire_date": "2018-08-01", "department": deptID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	instructorID := decode(t, w)["id"]

	w = api.do(http.MethodPost, "/api/courses/", gin.H{
		"title": "Data Structures", "course_code": "SUBJ-101", "credits": 3,
		"semester": "1st Sem 2025-2026", "instructor": instructorID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	course := decode(t, w)
	courseURL := "/api/courses/" + jsonID(course["id"])

	w = api.do(http.MethodPatch, courseURL+"/", gin.H{"credits": 4})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decode(t, w)
	assert.Equal(t, float64(4), patched["credits"])
	assert.Equal(t, instructorID, patched["instructor"])

	w = api.do(http.MethodDelete, "/api/instructors/"+jsonID(instructorID)+"/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, courseURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["instructor"])

	w = api.do(http.MethodGet, "/api/departments/abc/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodDelete, "/api/departments/"+jsonID(dept["id"]), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = api.do(http.MethodGet, "/api/departments/"+jsonID(dept["id"]), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RES_001", errorCode(t, w))
}

func TestValidationErrors(t *testing.T) {
	api := newAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/register/",
		gin.H{"username": "admin", "email": "admin@x.ph", "password": "pw"}).Code)
	api.login("admin", "pw")

	w := api.do(http.MethodPost, "/api/departments/", gin.H{"name": "No Code"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", errorCode(t, w))

	w = api.do(http.MethodPost, "/api/students/", gin.H{
		"first_name": "Jose", "last_name": "Reyes", "email": "jose@student.edunexus.ph",
		"dob": "2003-03-03", "department": 404,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RES_003", errorCode(t, w))

	w = api.do(http.MethodPost, "/api/enrollments/", gin.H{"student": 1, "course": 1, "status": "Graduated"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPatch, "/api/profile/", gin.H{"email": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", errorCode(t, w))
}

func TestProfileMultipartAvatar(t *testing.T) {
	api := newAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/register/",
		gin.H{"username": "juan", "email": "juan@x.ph", "password": "pw123"}).Code)
	api.login("juan", "pw123")

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 16, 16))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("last_name", "Dela Cruz"))
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/profile/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := api.send(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	profile := decode(t, w)
	assert.Equal(t, "juan", profile["username"])
	assert.Equal(t, "Dela Cruz", profile["last_name"])
	avatarURL, ok := profile["avatar"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(avatarURL, ".png"))

	path := strings.TrimPrefix(avatarURL, "http://localhost:8000")
	w = api.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/profile/", gin.H{"username": "pedro"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndPing(t *testing.T) {
	api := newAPI(t)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/health", nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/ping", nil).Code)
}

func jsonID(v interface{}) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}
