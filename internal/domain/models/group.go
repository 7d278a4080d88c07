// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a document in the groups collection.
//
// The owner is not required to appear in MemberIDs; owner-or-member
// queries must check both fields.
type Group struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	OwnerID   primitive.ObjectID   `bson:"owner_id" json:"owner_id"`
	MemberIDs []primitive.ObjectID `bson:"member_ids" json:"member_ids"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// HasMember reports whether userID appears in the group's member list.
func (g Group) HasMember(userID primitive.ObjectID) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Summary is the shape task documents hydrate group references into.
func (g Group) Summary() GroupSummary {
	return GroupSummary{ID: g.ID, Name: g.Name}
}

// GroupSummary is the public projection of a group embedded in hydrated
// task responses.
type GroupSummary struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}
