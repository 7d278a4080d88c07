package hydrate_test

import (
	"testing"

	"github.com/dalemusser/taskhub/internal/app/store/queries/hydrate"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserSummaries_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := hydrate.UserSummaries(ctx, db, nil)
	if err != nil {
		t.Fatalf("UserSummaries() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map, got %d entries", len(got))
	}
}

func TestUserSummaries_SpansChunks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// 25 users forces three chunked queries.
	ids := make([]primitive.ObjectID, 0, 25)
	for i := 0; i < 25; i++ {
		u := f.CreateUser(ctx, "user", "user@test.com", "user")
		ids = append(ids, u.ID)
	}

	got, err := hydrate.UserSummaries(ctx, db, ids)
	if err != nil {
		t.Fatalf("UserSummaries() error: %v", err)
	}
	if len(got) != 25 {
		t.Fatalf("resolved %d users, want 25", len(got))
	}
	for _, id := range ids {
		s, ok := got[id]
		if !ok {
			t.Fatalf("id %s missing from result", id.Hex())
		}
		if s.Username != "user" || s.Email != "user@test.com" {
			t.Errorf("summary for %s = %+v", id.Hex(), s)
		}
	}
}

func TestUserSummaries_DuplicateAndMissingIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.CreateUser(ctx, "alice", "alice@test.com", "user")
	missing := primitive.NewObjectID()

	got, err := hydrate.UserSummaries(ctx, db, []primitive.ObjectID{u.ID, u.ID, missing, u.ID})
	if err != nil {
		t.Fatalf("UserSummaries() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("resolved %d users, want 1", len(got))
	}
	if _, ok := got[missing]; ok {
		t.Error("missing id should be absent from the result")
	}
	if got[u.ID].Username != "alice" {
		t.Errorf("username = %q, want alice", got[u.ID].Username)
	}
}

func TestGroupSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := f.CreateUser(ctx, "owner", "owner@test.com", "user")
	g1 := f.CreateGroup(ctx, "alpha", owner.ID)
	g2 := f.CreateGroup(ctx, "beta", owner.ID)
	missing := primitive.NewObjectID()

	got, err := hydrate.GroupSummaries(ctx, db, []primitive.ObjectID{g1.ID, g2.ID, missing})
	if err != nil {
		t.Fatalf("GroupSummaries() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("resolved %d groups, want 2", len(got))
	}
	if got[g1.ID].Name != "alpha" || got[g2.ID].Name != "beta" {
		t.Errorf("summaries = %+v", got)
	}
	if _, ok := got[missing]; ok {
		t.Error("missing id should be absent from the result")
	}
}
