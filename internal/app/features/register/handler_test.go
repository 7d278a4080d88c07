package register_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/taskhub/internal/app/features/register"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/indexes"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*register.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}
	return register.NewHandler(db, zap.NewNop()), db
}

func TestHandleRegister_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/register", map[string]string{
		"email": "a@test.com",
	})
	rec := testutil.NewRecorder()
	h.HandleRegister(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "all fields are required")
}

func TestHandleRegister_Success(t *testing.T) {
	h, db := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/register", map[string]string{
		"email":    "alice@test.com",
		"username": "alice",
		"password": "secret123",
	})
	rec := testutil.NewRecorder()
	h.HandleRegister(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Message string `json:"message"`
		UserID  string `json:"userId"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.UserID == "" {
		t.Fatal("response should carry the new userId")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	u, err := userstore.New(db).GetByEmail(ctx, "alice@test.com")
	if err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if u.Role != "user" {
		t.Errorf("role = %q, self-registration must always yield a plain user", u.Role)
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Error("password must be stored as a bcrypt hash")
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]string{
		"email":    "dup@test.com",
		"username": "first",
		"password": "secret123",
	}
	rec := testutil.NewRecorder()
	h.HandleRegister(rec.ResponseRecorder, testutil.NewJSONRequest(t, "POST", "/api/register", body))
	rec.AssertStatus(t, http.StatusCreated)

	body["username"] = "second"
	rec = testutil.NewRecorder()
	h.HandleRegister(rec.ResponseRecorder, testutil.NewJSONRequest(t, "POST", "/api/register", body))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "email is already registered")
}
