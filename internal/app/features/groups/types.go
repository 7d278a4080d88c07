// internal/app/features/groups/types.go
package groups

import (
	"context"
	"time"

	"github.com/dalemusser/taskhub/internal/app/store/queries/hydrate"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// groupView is the wire projection of a group. The member array keeps
// the original API's field name "user"; entries marshal as raw hex IDs
// or hydrated summaries depending on the supplied user map.
type groupView struct {
	ID        string           `json:"_id"`
	Name      string           `json:"name"`
	Owner     models.UserRef   `json:"ownerId"`
	Members   []models.UserRef `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
}

// groupResponse is the {message, group} body of the mutating routes.
type groupResponse struct {
	Message string    `json:"message"`
	Group   groupView `json:"group"`
}

func newGroupView(g models.Group, users map[primitive.ObjectID]models.UserSummary) groupView {
	v := groupView{
		ID:        g.ID.Hex(),
		Name:      g.Name,
		Owner:     userRef(g.OwnerID, users),
		Members:   make([]models.UserRef, 0, len(g.MemberIDs)),
		CreatedAt: g.CreatedAt,
	}
	for _, id := range g.MemberIDs {
		v.Members = append(v.Members, userRef(id, users))
	}
	return v
}

func userRef(id primitive.ObjectID, users map[primitive.ObjectID]models.UserSummary) models.UserRef {
	if s, ok := users[id]; ok {
		return models.ResolvedUserRef(s)
	}
	return models.RawUserRef(id.Hex())
}

// hydratedView resolves the group's member list and builds the view.
// The owner reference stays raw; only the admin list hydrates owners.
func (h *Handler) hydratedView(ctx context.Context, db *mongo.Database, g models.Group) (groupView, error) {
	users, err := hydrate.UserSummaries(ctx, db, g.MemberIDs)
	if err != nil {
		return groupView{}, err
	}
	return newGroupView(g, users), nil
}
