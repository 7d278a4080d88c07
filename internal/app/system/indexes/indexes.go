// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup fails fast.

The unique index on users.email is load-bearing: user creation relies on
the duplicate-key error as its uniqueness check instead of a racy
read-then-insert.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, log); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureTasks(ctx, db, log); err != nil {
		problems = append(problems, "tasks: "+err.Error())
	}
	if err := ensureGroups(ctx, db, log); err != nil {
		problems = append(problems, "groups: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	return ensure(ctx, db.Collection("users"), log, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("role"),
		},
	})
}

func ensureTasks(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	return ensure(ctx, db.Collection("tasks"), log, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("owner"),
		},
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}},
			Options: options.Index().SetName("group"),
		},
		{
			Keys:    bson.D{{Key: "assigned_to", Value: 1}},
			Options: options.Index().SetName("assignees"),
		},
	})
}

func ensureGroups(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	return ensure(ctx, db.Collection("groups"), log, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}},
			Options: options.Index().SetName("owner"),
		},
		{
			Keys:    bson.D{{Key: "member_ids", Value: 1}},
			Options: options.Index().SetName("members"),
		},
	})
}

func ensure(ctx context.Context, c *mongo.Collection, log *zap.Logger, models []mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	names, err := c.Indexes().CreateMany(ctx, models)
	if err != nil {
		// A same-keys index under a different name (or with different
		// options) shows up as an options conflict; report it rather
		// than guessing which side is right.
		if isOptionsConflictErr(err) {
			return errors.New("index options conflict, drop the stale index and restart: " + err.Error())
		}
		return err
	}
	log.Debug("ensured indexes",
		zap.String("collection", c.Name()),
		zap.Strings("indexes", names))
	return nil
}

func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict") ||
		strings.Contains(err.Error(), "IndexKeySpecsConflict")
}
