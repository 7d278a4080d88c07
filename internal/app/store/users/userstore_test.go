package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/indexes"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*userstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}
	return userstore.New(db), testutil.NewFixtures(t, db)
}

func TestCreate_Defaults(t *testing.T) {
	store, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{
		Email:        "  Alice@Example.COM ",
		Username:     " alice ",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized lowercase", u.Email)
	}
	if u.Username != "alice" {
		t.Errorf("username = %q, want trimmed", u.Username)
	}
	if u.Role != models.RoleUser {
		t.Errorf("role = %q, want default %q", u.Role, models.RoleUser)
	}
	if u.ID.IsZero() || u.CreatedAt.IsZero() {
		t.Error("ID and CreatedAt should be populated")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	store, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{Email: "dup@test.com", Username: "first", PasswordHash: "h"}); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}
	_, err := store.Create(ctx, models.User{Email: "DUP@test.com", Username: "second", PasswordHash: "h"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("second Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestCreate_InvalidRole(t *testing.T) {
	store, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{Email: "r@test.com", Username: "r", PasswordHash: "h", Role: "superuser"}); err == nil {
		t.Fatal("Create() with invalid role should fail")
	}
}

func TestGetByEmail_Normalizes(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "bob", "bob@test.com", models.RoleUser)

	u, err := store.GetByEmail(ctx, "  BOB@test.com ")
	if err != nil {
		t.Fatalf("GetByEmail() error: %v", err)
	}
	if u.Username != "bob" {
		t.Errorf("username = %q, want bob", u.Username)
	}
}

func TestList_ExcludesCaller(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	me := f.CreateUser(ctx, "me", "me@test.com", models.RoleUser)
	f.CreateUser(ctx, "other1", "o1@test.com", models.RoleUser)
	f.CreateUser(ctx, "other2", "o2@test.com", models.RoleAdmin)

	users, err := store.List(ctx, me.ID)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("List() returned %d users, want 2", len(users))
	}
	for _, u := range users {
		if u.ID == me.ID {
			t.Error("List() should exclude the caller")
		}
	}
}

func TestUpdateProfile_SkipsEmptyFields(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.CreateUser(ctx, "old", "old@test.com", models.RoleUser)

	if err := store.UpdateProfile(ctx, u.ID, "newname", ""); err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Username != "newname" {
		t.Errorf("username = %q, want newname", got.Username)
	}
	if got.Email != "old@test.com" {
		t.Errorf("email = %q, empty field should be left untouched", got.Email)
	}
}

func TestUpdateProfile_DuplicateEmail(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateUser(ctx, "taken", "taken@test.com", models.RoleUser)
	u := f.CreateUser(ctx, "mover", "mover@test.com", models.RoleUser)

	err := store.UpdateProfile(ctx, u.ID, "", "taken@test.com")
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("UpdateProfile() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUpdateRole(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.CreateUser(ctx, "promo", "promo@test.com", models.RoleUser)

	if err := store.UpdateRole(ctx, u.ID, models.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole() error: %v", err)
	}
	got, _ := store.GetByID(ctx, u.ID)
	if got.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", got.Role)
	}

	if err := store.UpdateRole(ctx, u.ID, "owner"); err == nil {
		t.Error("UpdateRole() with invalid role should fail")
	}
}

func TestDelete(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.CreateUser(ctx, "gone", "gone@test.com", models.RoleUser)

	n, err := store.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if n != 1 {
		t.Errorf("Delete() removed %d docs, want 1", n)
	}
	if _, err := store.GetByID(ctx, u.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByID() after delete = %v, want ErrNoDocuments", err)
	}

	n, err = store.Delete(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Delete() of missing user error: %v", err)
	}
	if n != 0 {
		t.Errorf("Delete() of missing user removed %d docs, want 0", n)
	}
}

func TestCountAdmins(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := store.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("CountAdmins() error: %v", err)
	}
	if n != 0 {
		t.Errorf("CountAdmins() = %d on empty db, want 0", n)
	}

	f.CreateAdmin(ctx, "root", "root@test.com")
	f.CreateUser(ctx, "plain", "plain@test.com", models.RoleUser)

	n, err = store.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("CountAdmins() error: %v", err)
	}
	if n != 1 {
		t.Errorf("CountAdmins() = %d, want 1", n)
	}
}
