package webserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasmi00/yatrimap-frontend/pkg/config"
	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/log"
	"github.com/kasmi00/yatrimap-frontend/pkg/mail"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
)

type testEnv struct {
	server *Server
	db     *db.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 0
	cfg.Database.Driver = "sqlite"
	cfg.Database.Database = filepath.Join(t.TempDir(), "test.db")
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 1
	cfg.Security.JWTSecret = "test-secret-key-for-tests-only"
	cfg.Security.JWTExpirationHours = 1
	cfg.Security.ResetTokenMinutes = 30
	cfg.Security.BcryptCost = 4
	cfg.Security.SessionCookieName = "test_session"
	cfg.Security.RateLimitEnabled = false
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "text"
	cfg.Logging.Output = "stdout"
	cfg.Mail.RetryAttempts = 3
	cfg.Uploads.DestinationImageDir = t.TempDir()
	cfg.Uploads.AccommodationDir = t.TempDir()

	logger, err := log.New(&cfg.Logging)
	require.NoError(t, err)

	database, err := db.New(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate())

	mailer := mail.NewManager(cfg, database, logger)

	server, err := New(cfg, database, logger, mailer)
	require.NoError(t, err)

	return &testEnv{server: server, db: database}
}

// request runs one request through the router and returns the recorder
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.server.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

// registerAndLogin creates an account and returns its bearer token and id
func (e *testEnv) registerAndLogin(t *testing.T, username, email, password string) (string, uint) {
	t.Helper()

	rec := e.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		Token  string `json:"token"`
		UserID uint   `json:"userId"`
	}
	decodeData(t, rec, &data)
	require.NotEmpty(t, data.Token)
	return data.Token, data.UserID
}

func (e *testEnv) promoteToAdmin(t *testing.T, userID uint) {
	t.Helper()
	require.NoError(t, e.db.Model(&models.User{}).Where("id = ?", userID).Update("role", models.RoleAdmin).Error)
}

func (e *testEnv) seedDestination(t *testing.T, title, categoryName string) *models.Destination {
	t.Helper()
	dest := &models.Destination{
		Title:    title,
		Location: "Nepal",
		Category: categoryName,
	}
	require.NoError(t, e.db.Create(dest).Error)
	return dest
}

func (e *testEnv) seedAccommodation(t *testing.T, destinationID uint, price float64) *models.Accommodation {
	t.Helper()
	acc := &models.Accommodation{
		DestinationID: destinationID,
		Title:         "Lakeside Lodge",
		Price:         price,
	}
	require.NoError(t, e.db.Create(acc).Error)
	return acc
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	token, userID := env.registerAndLogin(t, "trekker", "trekker@example.com", "hunter2hunter2")
	assert.NotZero(t, userID)

	// duplicate registration is rejected
	rec := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "trekker2",
		"email":    "trekker@example.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// wrong password is rejected without detail
	rec = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "trekker@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// token works against a protected route
	rec = env.request(t, http.MethodGet, "/api/user/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var me models.User
	decodeData(t, rec, &me)
	assert.Equal(t, "trekker", me.Username)
	assert.Equal(t, models.RoleUser, me.Role)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/bucket-list", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/bucket-list", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerAndLogin(t, "trekker", "trekker@example.com", "hunter2hunter2")

	rec := env.request(t, http.MethodGet, "/api/booking", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateBookingRepricesStay(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.registerAndLogin(t, "trekker", "trekker@example.com", "hunter2hunter2")

	dest := env.seedDestination(t, "Pokhara", "Lake and River")
	acc := env.seedAccommodation(t, dest.ID, 100)

	// three nights at $100
	rec := env.request(t, http.MethodPost, "/api/booking/create", token, map[string]interface{}{
		"destinationId":   dest.ID,
		"accommodationId": acc.ID,
		"checkInDate":     "2030-06-01",
		"checkOutDate":    "2030-06-04",
		"totalPrice":      300.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created BookingResponse
	decodeData(t, rec, &created)
	assert.Equal(t, 300.0, created.TotalPrice)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "Upcoming", string(created.DerivedStatus))

	// a confirmation mail was queued
	var queued int64
	require.NoError(t, env.db.Model(&models.MailQueue{}).Where("kind = ?", models.MailKindBookingConfirmation).Count(&queued).Error)
	assert.Equal(t, int64(1), queued)
}

func TestCreateBookingRejectsMismatchedTotal(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerAndLogin(t, "trekker", "trekker@example.com", "hunter2hunter2")

	dest := env.seedDestination(t, "Pokhara", "Lake and River")
	acc := env.seedAccommodation(t, dest.ID, 100)

	rec := env.request(t, http.MethodPost, "/api/booking/create", token, map[string]interface{}{
		"destinationId":   dest.ID,
		"accommodationId": acc.ID,
		"checkInDate":     "2030-06-01",
		"checkOutDate":    "2030-06-04",
		"totalPrice":      250.0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingRejectsInvalidRange(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerAndLogin(t, "trekker", "trekker@example.com", "hunter2hunter2")

	dest := env.seedDestination(t, "Pokhara", "Lake and River")
	acc := env.seedAccommodation(t, dest.ID, 100)

	rec := env.request(t, http.MethodPost, "/api/booking/create", token, map[string]interface{}{
		"destinationId":   dest.ID,
		"accommodationId": acc.ID,
		"checkInDate":     "2030-06-04",
		"checkOutDate":    "2030-06-01",
		"totalPrice":      300.0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingsByUserDeniesOtherUsers(t *testing.T) {
	env := newTestEnv(t)
	tokenA, _ := env.registerAndLogin(t, "alice", "alice@example.com", "hunter2hunter2")
	_, userB := env.registerAndLogin(t, "bob", "bob@example.com", "hunter2hunter2")

	rec := env.request(t, http.MethodGet, fmt.Sprintf("/api/booking/user/%d", userB), tokenA, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBucketListAddRemoveReAdd(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerAndLogin(t, "trekker", "trekker@example.com", "hunter2hunter2")
	dest := env.seedDestination(t, "Gosaikunda", "Trekking")

	add := func() *httptest.ResponseRecorder {
		return env.request(t, http.MethodPost, "/api/bucket-list", token, map[string]interface{}{
			"destinationId": dest.ID,
		})
	}

	rec := add()
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item models.BucketListItem
	decodeData(t, rec, &item)
	assert.Equal(t, dest.ID, item.DestinationID)
	assert.Equal(t, "Gosaikunda", item.Title)

	// a second add is a conflict, not a duplicate row
	rec = add()
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/bucket-list", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.BucketListItem
	decodeData(t, rec, &items)
	assert.Len(t, items, 1)

	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/api/bucket-list/%d", dest.ID), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/api/bucket-list/%d", dest.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// removal frees the slot for a later re-add
	rec = add()
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestDestinationsByCategory(t *testing.T) {
	env := newTestEnv(t)
	env.seedDestination(t, "Everest Base Camp", "Trekking")
	env.seedDestination(t, "Annapurna Circuit", "Trekking")

	rec := env.request(t, http.MethodGet, "/api/destination/category/Trekking", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var destinations []models.Destination
	decodeData(t, rec, &destinations)
	assert.Len(t, destinations, 2)

	// a known category with no rows answers 404
	rec = env.request(t, http.MethodGet, "/api/destination/category/Camping", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no destinations available")

	// an unknown category is a bad request
	rec = env.request(t, http.MethodGet, "/api/destination/category/Skiing", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDestinationSections(t *testing.T) {
	env := newTestEnv(t)
	top := env.seedDestination(t, "Pokhara", "Lake and River")
	top.Section = models.SectionTopDestination
	require.NoError(t, env.db.Save(top).Error)
	env.seedDestination(t, "Bandipur", "Nature")

	rec := env.request(t, http.MethodGet, "/api/destination/section/TopDestination", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var destinations []models.Destination
	decodeData(t, rec, &destinations)
	require.Len(t, destinations, 1)
	assert.Equal(t, "Pokhara", destinations[0].Title)
}

func TestAdminUserManagement(t *testing.T) {
	env := newTestEnv(t)
	adminToken, adminID := env.registerAndLogin(t, "admin", "admin@example.com", "hunter2hunter2")
	env.promoteToAdmin(t, adminID)
	// re-login so the token carries the admin role claim
	rec := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &login)
	adminToken = login.Token

	_, userID := env.registerAndLogin(t, "bob", "bob@example.com", "hunter2hunter2")

	rec = env.request(t, http.MethodGet, "/api/user", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []models.User
	decodeData(t, rec, &users)
	assert.Len(t, users, 2)

	// admins cannot delete themselves
	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", adminID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", userID), adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "trekker", "trekker@example.com", "hunter2hunter2")

	rec := env.request(t, http.MethodPost, "/api/auth/forgetpassword", "", map[string]string{
		"email": "trekker@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// an unknown address gets the same answer
	rec = env.request(t, http.MethodPost, "/api/auth/forgetpassword", "", map[string]string{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var reset models.PasswordReset
	require.NoError(t, env.db.First(&reset).Error)

	rec = env.request(t, http.MethodPost, "/api/auth/resetpassword", "", map[string]string{
		"token":    reset.Token,
		"password": "newpassword123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// old password no longer works, new one does
	rec = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "trekker@example.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "trekker@example.com",
		"password": "newpassword123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// the token is single use
	rec = env.request(t, http.MethodPost, "/api/auth/resetpassword", "", map[string]string{
		"token":    reset.Token,
		"password": "anotherpassword",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
