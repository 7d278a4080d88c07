// Package hydrate resolves foreign-key ID lists into summary objects for
// API responses. The store caps $in membership queries at
// limits.MaxInQueryIDs entries, so inputs are partitioned into chunks,
// the chunks are queried concurrently, and the results merged into one
// map. The merge is a commutative union keyed by ID, so chunk order and
// duplicate IDs across chunks are irrelevant, and hydrating the same
// list twice yields the same map.
//
// IDs that resolve to nothing (a deleted user or group) are simply
// absent from the map; response builders fall back to emitting the raw
// hex ID (models.UserRef / models.GroupRef).
package hydrate

import (
	"context"
	"sync"

	"github.com/dalemusser/taskhub/internal/app/system/limits"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// UserSummaries resolves ids against the users collection.
func UserSummaries(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	var mu sync.Mutex
	out := make(map[primitive.ObjectID]models.UserSummary)
	err := fanOut(ctx, ids, func(ctx context.Context, chunk []primitive.ObjectID) error {
		cur, err := db.Collection("users").Find(ctx,
			bson.M{"_id": bson.M{"$in": chunk}},
			options.Find().SetProjection(bson.M{"_id": 1, "username": 1, "email": 1}))
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var rows []models.UserSummary
		if err := cur.All(ctx, &rows); err != nil {
			return err
		}
		mu.Lock()
		for _, r := range rows {
			out[r.ID] = r
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GroupSummaries resolves ids against the groups collection.
func GroupSummaries(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]models.GroupSummary, error) {
	var mu sync.Mutex
	out := make(map[primitive.ObjectID]models.GroupSummary)
	err := fanOut(ctx, ids, func(ctx context.Context, chunk []primitive.ObjectID) error {
		cur, err := db.Collection("groups").Find(ctx,
			bson.M{"_id": bson.M{"$in": chunk}},
			options.Find().SetProjection(bson.M{"_id": 1, "name": 1}))
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var rows []models.GroupSummary
		if err := cur.All(ctx, &rows); err != nil {
			return err
		}
		mu.Lock()
		for _, r := range rows {
			out[r.ID] = r
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fanOut deduplicates ids, partitions them into chunks of at most
// limits.MaxInQueryIDs, and runs query once per chunk concurrently.
func fanOut(ctx context.Context, ids []primitive.ObjectID, query func(context.Context, []primitive.ObjectID) error) error {
	ids = dedup(ids)
	if len(ids) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks(ids, limits.MaxInQueryIDs) {
		g.Go(func() error { return query(ctx, chunk) })
	}
	return g.Wait()
}

func dedup(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func chunks(ids []primitive.ObjectID, size int) [][]primitive.ObjectID {
	var out [][]primitive.ObjectID
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}
