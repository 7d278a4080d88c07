package bootstrap

import (
	"testing"

	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.uber.org/zap"
)

func TestSeedAdmin_CreatesAdminOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{TaskHubMongoClient: db.Client(), TaskHubMongoDatabase: db}
	cfg := AppConfig{
		AdminEmail:    "root@test.com",
		AdminUsername: "root",
		AdminPassword: "changeme",
	}

	if err := seedAdmin(ctx, cfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("seedAdmin() error: %v", err)
	}

	users := userstore.New(db)
	n, err := users.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("CountAdmins() error: %v", err)
	}
	if n != 1 {
		t.Fatalf("admin count = %d, want 1", n)
	}

	// Second run must not create a duplicate.
	if err := seedAdmin(ctx, cfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("second seedAdmin() error: %v", err)
	}
	n, _ = users.CountAdmins(ctx)
	if n != 1 {
		t.Errorf("admin count after re-seed = %d, want 1", n)
	}

	u, err := users.GetByEmail(ctx, "root@test.com")
	if err != nil {
		t.Fatalf("GetByEmail() error: %v", err)
	}
	if u.Username != "root" || !u.IsAdmin() {
		t.Errorf("seeded admin = %+v", u)
	}
}

func TestSeedAdmin_DisabledWithoutPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{TaskHubMongoClient: db.Client(), TaskHubMongoDatabase: db}

	if err := seedAdmin(ctx, AppConfig{}, deps, zap.NewNop()); err != nil {
		t.Fatalf("seedAdmin() error: %v", err)
	}

	n, err := userstore.New(db).CountAdmins(ctx)
	if err != nil {
		t.Fatalf("CountAdmins() error: %v", err)
	}
	if n != 0 {
		t.Errorf("admin count = %d, want 0 when seeding disabled", n)
	}
}
