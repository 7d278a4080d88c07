package groupstore_test

import (
	"errors"
	"testing"

	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func setup(t *testing.T) (*groupstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return groupstore.New(db), testutil.NewFixtures(t, db)
}

func TestCreate(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := f.CreateUser(ctx, "owner", "owner@test.com", models.RoleUser)
	member := f.CreateUser(ctx, "member", "member@test.com", models.RoleUser)

	g, err := store.Create(ctx, "team", owner.ID, []primitive.ObjectID{member.ID})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Name != "team" || g.OwnerID != owner.ID {
		t.Errorf("group = %+v", g)
	}
	if len(g.MemberIDs) != 1 || g.MemberIDs[0] != member.ID {
		t.Errorf("memberIDs = %v, want [member]", g.MemberIDs)
	}

	empty, err := store.Create(ctx, "solo", owner.ID, nil)
	if err != nil {
		t.Fatalf("Create() without members error: %v", err)
	}
	if empty.MemberIDs == nil || len(empty.MemberIDs) != 0 {
		t.Errorf("memberIDs = %v, want empty non-nil slice", empty.MemberIDs)
	}
}

func TestListForUser_OwnedAndJoined(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := f.CreateUser(ctx, "alice", "alice@test.com", models.RoleUser)
	bob := f.CreateUser(ctx, "bob", "bob@test.com", models.RoleUser)

	owned := f.CreateGroup(ctx, "owned by alice", alice.ID)
	joined := f.CreateGroup(ctx, "alice is member", bob.ID, alice.ID)
	// Owner listed in members too; must not be returned twice.
	both := f.CreateGroup(ctx, "owner and member", alice.ID, alice.ID)
	f.CreateGroup(ctx, "unrelated", bob.ID)

	groups, err := store.ListForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListForUser() error: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("ListForUser() returned %d groups, want 3", len(groups))
	}
	seen := map[primitive.ObjectID]bool{}
	for _, g := range groups {
		if seen[g.ID] {
			t.Fatalf("group %s returned twice", g.ID.Hex())
		}
		seen[g.ID] = true
	}
	for _, want := range []models.Group{owned, joined, both} {
		if !seen[want.ID] {
			t.Errorf("group %q missing from result", want.Name)
		}
	}
}

func TestUpdateInfo(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := f.CreateUser(ctx, "owner", "owner@test.com", models.RoleUser)
	member := f.CreateUser(ctx, "member", "member@test.com", models.RoleUser)
	g := f.CreateGroup(ctx, "old name", owner.ID)

	name := "new name"
	members := []primitive.ObjectID{member.ID}
	if err := store.UpdateInfo(ctx, g.ID, &name, &members); err != nil {
		t.Fatalf("UpdateInfo() error: %v", err)
	}

	got, err := store.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Name != "new name" {
		t.Errorf("name = %q, want new name", got.Name)
	}
	if len(got.MemberIDs) != 1 || got.MemberIDs[0] != member.ID {
		t.Errorf("memberIDs = %v, want [member]", got.MemberIDs)
	}

	// Empty name pointer leaves the name alone.
	blank := ""
	if err := store.UpdateInfo(ctx, g.ID, &blank, nil); err != nil {
		t.Fatalf("UpdateInfo() with blank name error: %v", err)
	}
	got, _ = store.GetByID(ctx, g.ID)
	if got.Name != "new name" {
		t.Errorf("blank name should be skipped, got %q", got.Name)
	}
}

func TestAddMember(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := f.CreateUser(ctx, "owner", "owner@test.com", models.RoleUser)
	joiner := f.CreateUser(ctx, "joiner", "joiner@test.com", models.RoleUser)
	g := f.CreateGroup(ctx, "team", owner.ID)

	if err := store.AddMember(ctx, g.ID, joiner.ID); err != nil {
		t.Fatalf("AddMember() error: %v", err)
	}
	got, _ := store.GetByID(ctx, g.ID)
	if !got.HasMember(joiner.ID) {
		t.Fatal("joiner should be a member after AddMember")
	}

	err := store.AddMember(ctx, g.ID, joiner.ID)
	if !errors.Is(err, groupstore.ErrAlreadyMember) {
		t.Fatalf("second AddMember() error = %v, want ErrAlreadyMember", err)
	}

	err = store.AddMember(ctx, primitive.NewObjectID(), joiner.ID)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("AddMember() on missing group error = %v, want ErrNoDocuments", err)
	}
}

func TestRemoveMember(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := f.CreateUser(ctx, "owner", "owner@test.com", models.RoleUser)
	member := f.CreateUser(ctx, "member", "member@test.com", models.RoleUser)
	g := f.CreateGroup(ctx, "team", owner.ID, member.ID)

	if err := store.RemoveMember(ctx, g.ID, member.ID); err != nil {
		t.Fatalf("RemoveMember() error: %v", err)
	}
	got, _ := store.GetByID(ctx, g.ID)
	if got.HasMember(member.ID) {
		t.Fatal("member should be gone after RemoveMember")
	}

	err := store.RemoveMember(ctx, g.ID, member.ID)
	if !errors.Is(err, groupstore.ErrNotMember) {
		t.Fatalf("second RemoveMember() error = %v, want ErrNotMember", err)
	}

	err = store.RemoveMember(ctx, primitive.NewObjectID(), member.ID)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("RemoveMember() on missing group error = %v, want ErrNoDocuments", err)
	}
}

func TestPullMemberFromAll(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := f.CreateUser(ctx, "owner", "owner@test.com", models.RoleUser)
	leaver := f.CreateUser(ctx, "leaver", "leaver@test.com", models.RoleUser)
	g1 := f.CreateGroup(ctx, "one", owner.ID, leaver.ID)
	g2 := f.CreateGroup(ctx, "two", owner.ID, leaver.ID, owner.ID)
	g3 := f.CreateGroup(ctx, "three", owner.ID)

	n, err := store.PullMemberFromAll(ctx, leaver.ID)
	if err != nil {
		t.Fatalf("PullMemberFromAll() error: %v", err)
	}
	if n != 2 {
		t.Errorf("PullMemberFromAll() modified %d groups, want 2", n)
	}
	for _, id := range []primitive.ObjectID{g1.ID, g2.ID, g3.ID} {
		got, err := store.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID() error: %v", err)
		}
		if got.HasMember(leaver.ID) {
			t.Errorf("group %q still lists the removed user", got.Name)
		}
	}
	got, _ := store.GetByID(ctx, g2.ID)
	if !got.HasMember(owner.ID) {
		t.Error("other members should survive the pull")
	}
}

func TestDelete(t *testing.T) {
	store, f := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := f.CreateUser(ctx, "owner", "owner@test.com", models.RoleUser)
	g := f.CreateGroup(ctx, "doomed", owner.ID)

	n, err := store.Delete(ctx, g.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if n != 1 {
		t.Errorf("Delete() removed %d docs, want 1", n)
	}
	if _, err := store.GetByID(ctx, g.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByID() after delete = %v, want ErrNoDocuments", err)
	}
}
