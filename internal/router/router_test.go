package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/jetistik-hub/internal/auth"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/database"
	"github.com/yukikurage/jetistik-hub/internal/dto"
	apierrors "github.com/yukikurage/jetistik-hub/internal/errors"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/repository"
	"github.com/yukikurage/jetistik-hub/internal/services"
	"github.com/yukikurage/jetistik-hub/internal/storage"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testSecret   = "router-test-secret"
	tokenMaxAge  = 7 * 24 * time.Hour
	testPassword = "pw1234"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

// memoryRevoker stands in for Redis.
type memoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (m *memoryRevoker) Revoke(_ context.Context, id string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[id] = true
	return nil
}

func (m *memoryRevoker) IsRevoked(_ context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[id]
}

// RouterTestSuite drives the full engine over HTTP against an in-memory
// database and upload directory.
type RouterTestSuite struct {
	suite.Suite
	db                *gorm.DB
	fs                afero.Fs
	router            *gin.Engine
	auth              *services.AuthService
	revoker           *memoryRevoker
	allowRegistration bool
}

func (suite *RouterTestSuite) SetupTest() {
	suite.allowRegistration = true
	suite.build()
}

func (suite *RouterTestSuite) build() {
	var err error
	gin.SetMode(gin.TestMode)

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.Require().NoError(database.Migrate(suite.db))

	suite.fs = afero.NewMemMapFs()
	pipeline := storage.NewPipeline(storage.NewLocalStoreFs(suite.fs))

	userRepo := repository.NewUserRepository(suite.db)
	achievementRepo := repository.NewAchievementRepository(suite.db)
	suite.auth = services.NewAuthService(userRepo)
	suite.revoker = &memoryRevoker{revoked: map[string]bool{}}

	suite.router, err = New(Dependencies{
		Logger:             zap.NewNop(),
		SessionStore:       cookie.NewStore([]byte(testSecret)),
		Issuer:             auth.NewTokenIssuer(testSecret, tokenMaxAge),
		Revoker:            suite.revoker,
		AuthService:        suite.auth,
		AchievementService: services.NewAchievementService(achievementRepo, pipeline, zap.NewNop()),
		UserService:        services.NewUserService(suite.auth, userRepo, achievementRepo, pipeline, zap.NewNop()),
		DefaultLocale:      i18n.Kazakh,
		AllowRegistration:  suite.allowRegistration,
	})
	suite.Require().NoError(err)
}

func (suite *RouterTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions

func (suite *RouterTestSuite) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return suite.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (suite *RouterTestSuite) getJSON(path string, out any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	w := suite.do(req, cookies...)
	if out != nil && w.Code == http.StatusOK {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func (suite *RouterTestSuite) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return suite.do(req, cookies...)
}

func (suite *RouterTestSuite) postMultipart(path string, fields map[string]string, fileName string, content []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		suite.Require().NoError(mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		suite.Require().NoError(err)
		_, err = io.Copy(fw, bytes.NewReader(content))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return suite.do(req, cookies...)
}

func (suite *RouterTestSuite) cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (suite *RouterTestSuite) register(username string) {
	_, err := suite.auth.Register(context.Background(), services.RegisterInput{
		Username:        username,
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	suite.Require().NoError(err)
}

func (suite *RouterTestSuite) login(username, password string) *http.Cookie {
	w := suite.postForm("/login", url.Values{"username": {username}, "password": {password}})
	suite.Require().Equal(http.StatusSeeOther, w.Code)
	suite.Require().Equal("/home", w.Header().Get("Location"))
	token := suite.cookie(w, constants.TokenCookieName)
	suite.Require().NotNil(token)
	return token
}

func (suite *RouterTestSuite) loginAdmin() *http.Cookie {
	suite.Require().NoError(suite.auth.EnsureAdmin(context.Background(), "admin", "adminpass", zap.NewNop()))
	return suite.login("admin", "adminpass")
}

func (suite *RouterTestSuite) submitAlice(token *http.Cookie, fileName string, content []byte) *httptest.ResponseRecorder {
	return suite.postMultipart("/add-achievement", map[string]string{
		"type":     "student",
		"level":    "regional",
		"place":    "2",
		"category": "olympiad",
		"points":   "1000",
	}, fileName, content, token)
}

func (suite *RouterTestSuite) cabinet(token *http.Cookie) dto.CabinetResponse {
	var body dto.CabinetResponse
	w := suite.getJSON("/home", &body, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	return body
}

func (suite *RouterTestSuite) assertRedirect(w *httptest.ResponseRecorder, location string) {
	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Equal(location, w.Header().Get("Location"))
}

// Tests

func (suite *RouterTestSuite) TestHealth() {
	w := suite.get("/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"ok"`)
}

func (suite *RouterTestSuite) TestRoot_Redirects() {
	suite.assertRedirect(suite.get("/"), "/login")

	suite.register("alice")
	token := suite.login("alice", testPassword)
	suite.assertRedirect(suite.get("/", token), "/home")
}

func (suite *RouterTestSuite) TestLoginPage_Renders() {
	w := suite.get("/login")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `action="/login"`)
	suite.Contains(w.Body.String(), i18n.T(i18n.Kazakh, i18n.KeyLogin))
}

func (suite *RouterTestSuite) TestLogin_InvalidCredentials() {
	suite.register("alice")

	w := suite.postForm("/login", url.Values{"username": {"alice"}, "password": {"wrong-password"}})
	suite.assertRedirect(w, "/login?error=invalid_credentials")
	suite.Nil(suite.cookie(w, constants.TokenCookieName))

	w = suite.postForm("/login", url.Values{"username": {"ghost"}, "password": {"whatever"}})
	suite.assertRedirect(w, "/login?error=invalid_credentials")

	page := suite.get("/login?error=invalid_credentials")
	suite.Contains(page.Body.String(), i18n.T(i18n.Kazakh, i18n.KeyErrInvalidCredentials))
}

func (suite *RouterTestSuite) TestLogin_SetsTokenCookie() {
	suite.register("alice")
	token := suite.login("alice", testPassword)

	suite.True(token.HttpOnly)
	suite.Equal(http.SameSiteLaxMode, token.SameSite)
	suite.Equal(int(tokenMaxAge.Seconds()), token.MaxAge)

	w := suite.get("/home", token)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "alice")
}

func (suite *RouterTestSuite) TestHome_RequiresValidToken() {
	suite.register("alice")
	suite.assertRedirect(suite.get("/home"), "/login")

	past := time.Now().Add(-8 * 24 * time.Hour)
	stale := auth.NewTokenIssuer(testSecret, tokenMaxAge, auth.WithClock(func() time.Time { return past }))
	expired, _, err := stale.Issue(1)
	suite.Require().NoError(err)
	suite.assertRedirect(suite.get("/home", &http.Cookie{Name: constants.TokenCookieName, Value: expired}), "/login")

	forged, _, err := auth.NewTokenIssuer("another-secret", tokenMaxAge).Issue(1)
	suite.Require().NoError(err)
	suite.assertRedirect(suite.get("/home", &http.Cookie{Name: constants.TokenCookieName, Value: forged}), "/login")
}

func (suite *RouterTestSuite) TestLogout_RevokesToken() {
	suite.register("alice")
	token := suite.login("alice", testPassword)

	w := suite.get("/logout", token)
	suite.assertRedirect(w, "/login")
	cleared := suite.cookie(w, constants.TokenCookieName)
	suite.Require().NotNil(cleared)
	suite.True(cleared.MaxAge < 0)

	suite.assertRedirect(suite.get("/home", token), "/login")
}

func (suite *RouterTestSuite) TestRegister() {
	w := suite.postForm("/register", url.Values{
		"username": {"teacher1"}, "password": {"secret1"}, "confirm_password": {"secret2"},
	})
	suite.assertRedirect(w, "/register?error=password_mismatch")

	w = suite.postForm("/register", url.Values{
		"username": {"teacher1"}, "password": {"secret1"}, "confirm_password": {"secret1"}, "experience": {"many"},
	})
	suite.assertRedirect(w, "/register?error=invalid_input")

	w = suite.postForm("/register", url.Values{
		"username": {"teacher1"}, "password": {"secret1"}, "confirm_password": {"secret1"},
		"full_name": {"Aigul S"}, "school": {"School 12"}, "experience": {"5"},
	})
	suite.assertRedirect(w, "/home")
	token := suite.cookie(w, constants.TokenCookieName)
	suite.Require().NotNil(token)

	body := suite.cabinet(token)
	suite.Equal("teacher1", body.User.Username)
	suite.Equal("School 12", body.User.School)
	suite.Equal(5, body.User.Experience)

	w = suite.postForm("/register", url.Values{
		"username": {"teacher1"}, "password": {"secret1"}, "confirm_password": {"secret1"},
	})
	suite.assertRedirect(w, "/register?error=username_taken")
}

func (suite *RouterTestSuite) TestRegister_Disabled() {
	suite.TearDownTest()
	suite.allowRegistration = false
	suite.build()

	suite.assertRedirect(suite.get("/register"), "/login?error=registration_closed")
	w := suite.postForm("/register", url.Values{
		"username": {"teacher1"}, "password": {"secret1"}, "confirm_password": {"secret1"},
	})
	suite.assertRedirect(w, "/login?error=registration_closed")
}

func (suite *RouterTestSuite) TestAddAchievement_AliceScenario() {
	suite.register("alice")
	token := suite.login("alice", testPassword)

	suite.assertRedirect(suite.submitAlice(token, "", nil), "/home")

	body := suite.cabinet(token)
	suite.Require().Len(body.Achievements, 1)
	suite.Equal(35, body.Achievements[0].Points)
	suite.Equal(models.StatusPending, body.Achievements[0].Status)
	suite.False(body.Achievements[0].HasFile)
	suite.Equal(0, body.TotalPoints)

	page := suite.get("/home", token)
	suite.Equal(http.StatusOK, page.Code)
	suite.Contains(page.Body.String(), i18n.T(i18n.Kazakh, i18n.KeyStatusPending))
}

func (suite *RouterTestSuite) TestAddAchievement_RejectsBadFiles() {
	suite.register("alice")
	token := suite.login("alice", testPassword)

	suite.assertRedirect(suite.submitAlice(token, "virus.exe", []byte("MZ")), "/home?error=unsupported_file_type")
	suite.assertRedirect(suite.submitAlice(token, "scan.pdf", make([]byte, constants.MaxUploadSize+1)), "/home?error=file_too_large")
	suite.assertRedirect(suite.submitAlice(token, "empty.pdf", []byte{}), "/home?error=empty_file")

	// the extension is judged before the size, even past the body limit
	huge := make([]byte, constants.MaxRequestBodySize+10)
	suite.assertRedirect(suite.submitAlice(token, "virus.exe", huge), "/home?error=unsupported_file_type")
	suite.assertRedirect(suite.submitAlice(token, "scan.pdf", huge), "/home?error=file_too_large")

	fields := map[string]string{"type": "student", "level": "galactic", "place": "1"}
	suite.assertRedirect(suite.postMultipart("/add-achievement", fields, "", nil, token), "/home?error=invalid_input")

	suite.Empty(suite.cabinet(token).Achievements)
}

func (suite *RouterTestSuite) TestAddAchievement_MalformedBody() {
	suite.register("alice")
	token := suite.login("alice", testPassword)

	req := httptest.NewRequest(http.MethodPost, "/add-achievement", strings.NewReader("garbage"))
	req.Header.Set("Content-Type", "multipart/form-data")
	req.Header.Set("Accept", "application/json")
	w := suite.do(req, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	var body apierrors.APIError
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(apierrors.ErrCodeInvalidInput, body.Code)
	suite.Empty(suite.cabinet(token).Achievements)
}

func (suite *RouterTestSuite) TestModerationFlow() {
	suite.register("alice")
	suite.register("bob")
	alice := suite.login("alice", testPassword)
	bob := suite.login("bob", testPassword)
	admin := suite.loginAdmin()

	suite.assertRedirect(suite.submitAlice(alice, "diploma.pdf", pdfBytes), "/home")
	id := suite.cabinet(alice).Achievements[0].ID
	idPath := "/achievement/" + itoa(id)

	// non-admins are rejected and nothing changes
	suite.Equal(http.StatusForbidden, suite.get("/moderate", bob).Code)
	suite.Equal(http.StatusForbidden, suite.postForm(idPath+"/approve", nil, bob).Code)
	suite.Equal(http.StatusForbidden, suite.postForm(idPath+"/reject", nil, alice).Code)
	suite.Equal(models.StatusPending, suite.cabinet(alice).Achievements[0].Status)

	var queue dto.AchievementListResponse
	suite.Require().Equal(http.StatusOK, suite.getJSON("/moderate", &queue, admin).Code)
	suite.Require().Len(queue.Achievements, 1)
	suite.Require().NotNil(queue.Achievements[0].Owner)
	suite.Equal("alice", queue.Achievements[0].Owner.Username)
	suite.Equal(int64(1), queue.Pagination.Total)

	page := suite.get("/moderate", admin)
	suite.Equal(http.StatusOK, page.Code)
	suite.Contains(page.Body.String(), idPath+"/approve")

	suite.assertRedirect(suite.postForm(idPath+"/approve", url.Values{"next": {"/moderate?status=pending"}}, admin), "/moderate?status=pending")
	cab := suite.cabinet(alice)
	suite.Equal(models.StatusApproved, cab.Achievements[0].Status)
	suite.Equal(35, cab.TotalPoints)

	suite.Require().Equal(http.StatusOK, suite.getJSON("/moderate", &queue, admin).Code)
	suite.Empty(queue.Achievements)
	suite.Require().Equal(http.StatusOK, suite.getJSON("/moderate?status=all", &queue, admin).Code)
	suite.Len(queue.Achievements, 1)

	// only the owner and admins may download
	suite.Equal(http.StatusForbidden, suite.get("/download/"+itoa(id), bob).Code)

	w := suite.get("/download/"+itoa(id), alice)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(pdfBytes, w.Body.Bytes())
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), `attachment; filename=diploma.pdf`)

	suite.Equal(http.StatusOK, suite.get("/download/"+itoa(id), admin).Code)

	suite.Equal(http.StatusNotFound, suite.postForm("/achievement/999/approve", nil, admin).Code)
}

func (suite *RouterTestSuite) TestDownload_Errors() {
	suite.register("alice")
	alice := suite.login("alice", testPassword)

	suite.Equal(http.StatusNotFound, suite.get("/download/abc", alice).Code)
	suite.Equal(http.StatusNotFound, suite.get("/download/42", alice).Code)

	suite.assertRedirect(suite.submitAlice(alice, "", nil), "/home")
	bare := suite.cabinet(alice).Achievements[0].ID
	suite.Equal(http.StatusNotFound, suite.get("/download/"+itoa(bare), alice).Code)

	suite.assertRedirect(suite.submitAlice(alice, "photo.png", []byte("\x89PNG\r\n\x1a\n")), "/home")
	var stored models.Achievement
	suite.Require().NoError(suite.db.Where("file_path <> ''").First(&stored).Error)
	suite.Require().NoError(suite.fs.Remove(stored.FilePath))
	suite.Equal(http.StatusGone, suite.get("/download/"+itoa(stored.ID), alice).Code)
}

func (suite *RouterTestSuite) TestDelete_RemovesFile() {
	suite.register("alice")
	suite.register("bob")
	alice := suite.login("alice", testPassword)
	bob := suite.login("bob", testPassword)

	suite.assertRedirect(suite.submitAlice(alice, "diploma.pdf", pdfBytes), "/home")
	var stored models.Achievement
	suite.Require().NoError(suite.db.First(&stored).Error)
	exists, err := afero.Exists(suite.fs, stored.FilePath)
	suite.Require().NoError(err)
	suite.True(exists)

	suite.Equal(http.StatusForbidden, suite.postForm("/achievement/"+itoa(stored.ID)+"/delete", nil, bob).Code)

	suite.assertRedirect(suite.postForm("/achievement/"+itoa(stored.ID)+"/delete", url.Values{"next": {"https://evil.example/"}}, alice), "/home")
	exists, err = afero.Exists(suite.fs, stored.FilePath)
	suite.Require().NoError(err)
	suite.False(exists)
	suite.Empty(suite.cabinet(alice).Achievements)
}

func (suite *RouterTestSuite) TestAdminUsers() {
	suite.register("alice")
	alice := suite.login("alice", testPassword)
	admin := suite.loginAdmin()

	suite.Equal(http.StatusForbidden, suite.get("/admin/users", alice).Code)
	suite.Equal(http.StatusForbidden, suite.postForm("/create-user", url.Values{"username": {"eve"}, "password": {"secret1"}}, alice).Code)

	w := suite.postForm("/create-user", url.Values{
		"username": {"teacher2"}, "password": {"secret1"}, "full_name": {"Marat"}, "is_admin": {"on"},
	}, admin)
	suite.assertRedirect(w, "/admin/users")

	suite.assertRedirect(suite.postForm("/create-user", url.Values{"username": {"teacher2"}, "password": {"secret1"}}, admin),
		"/admin/users?error=username_taken")

	var list dto.UserListResponse
	suite.Require().Equal(http.StatusOK, suite.getJSON("/admin/users", &list, admin).Code)
	suite.Equal(int64(3), list.Pagination.Total)

	var created dto.UserDTO
	for _, u := range list.Users {
		if u.Username == "teacher2" {
			created = u
		}
	}
	suite.True(created.IsAdmin)
	suite.Equal("Marat", created.FullName)

	page := suite.get("/admin/users", admin)
	suite.Equal(http.StatusOK, page.Code)
	suite.Contains(page.Body.String(), "teacher2")

	suite.assertRedirect(suite.postForm("/admin/users/"+itoa(created.ID)+"/delete", nil, admin), "/admin/users")
	suite.Require().Equal(http.StatusOK, suite.getJSON("/admin/users", &list, admin).Code)
	suite.Equal(int64(2), list.Pagination.Total)

	suite.Equal(http.StatusNotFound, suite.postForm("/admin/users/"+itoa(created.ID)+"/delete", nil, admin).Code)
}

func (suite *RouterTestSuite) TestLanguageSwitch() {
	req := httptest.NewRequest(http.MethodGet, "/lang/ru", nil)
	req.Header.Set("Referer", "http://example.com/register")
	w := suite.do(req)
	suite.assertRedirect(w, "/register")
	lang := suite.cookie(w, constants.LanguageCookieName)
	suite.Require().NotNil(lang)
	suite.Equal("ru", lang.Value)

	page := suite.get("/login", lang)
	suite.Contains(page.Body.String(), i18n.T(i18n.Russian, i18n.KeyLogin))

	w = suite.get("/lang/xx")
	suite.assertRedirect(w, "/")
	suite.Equal("kk", suite.cookie(w, constants.LanguageCookieName).Value)
}

func (suite *RouterTestSuite) TestErrors_NegotiateJSON() {
	suite.register("alice")
	alice := suite.login("alice", testPassword)

	req := httptest.NewRequest(http.MethodGet, "/moderate", nil)
	req.Header.Set("Accept", "application/json")
	w := suite.do(req, alice)
	suite.Equal(http.StatusForbidden, w.Code)

	var body apierrors.APIError
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(apierrors.ErrCodeForbidden, body.Code)

	html := suite.get("/moderate", alice)
	suite.Equal(http.StatusForbidden, html.Code)
	suite.Contains(html.Body.String(), i18n.T(i18n.Kazakh, i18n.KeyErrForbidden))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
