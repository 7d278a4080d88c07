package groupstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	// ErrAlreadyMember is returned when adding a user who is already in
	// the group's member list.
	ErrAlreadyMember = errors.New("the user is already in the group")
	// ErrNotMember is returned when removing a user who is not in the
	// group's member list.
	ErrNotMember = errors.New("the user is not in the group")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// GetByID loads a group. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a group owned by ownerID with an optional initial
// member list.
func (s *Store) Create(ctx context.Context, name string, ownerID primitive.ObjectID, memberIDs []primitive.ObjectID) (models.Group, error) {
	if memberIDs == nil {
		memberIDs = []primitive.ObjectID{}
	}
	g := models.Group{
		ID:        primitive.NewObjectID(),
		Name:      name,
		OwnerID:   ownerID,
		MemberIDs: memberIDs,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// ListForUser returns the union of groups the user owns or belongs to,
// de-duplicated by the $or query itself.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"owner_id": userID},
		bson.M{"member_ids": userID},
	}}
	return s.find(ctx, filter)
}

// ListAll returns every group, sorted by creation time.
func (s *Store) ListAll(ctx context.Context) ([]models.Group, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInfo applies a non-empty name and/or a replacement member list.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name *string, memberIDs *[]primitive.ObjectID) error {
	set := bson.M{}
	if name != nil && *name != "" {
		set["name"] = *name
	}
	if memberIDs != nil {
		set["member_ids"] = *memberIDs
	}
	if len(set) == 0 {
		return nil
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// AddMember adds userID to the group with a single conditional update:
// the filter only matches when the user is absent, so two concurrent
// adds cannot clobber each other. A zero-match result on an existing
// group means the user was already present.
func (s *Store) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": groupID, "member_ids": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"member_ids": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, err := s.GetByID(ctx, groupID); err != nil {
			return err // group itself is gone
		}
		return ErrAlreadyMember
	}
	return nil
}

// RemoveMember removes userID with the mirror-image conditional update;
// a zero-match result on an existing group means the user was not in it.
func (s *Store) RemoveMember(ctx context.Context, groupID, userID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": groupID, "member_ids": userID},
		bson.M{"$pull": bson.M{"member_ids": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, err := s.GetByID(ctx, groupID); err != nil {
			return err
		}
		return ErrNotMember
	}
	return nil
}

// PullMemberFromAll removes the user from every group's member list.
// Part of the delete-user cascade; run inside txn.WithTransaction.
func (s *Store) PullMemberFromAll(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateMany(ctx,
		bson.M{"member_ids": userID},
		bson.M{"$pull": bson.M{"member_ids": userID}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete removes a group by ID. Returns the number of documents deleted.
// Deleting the group's tasks is the caller's cascade (features/groups).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
