// internal/app/features/tasks/types.go
package tasks

import (
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// taskView is the wire projection of a task. Reference fields marshal
// either as the raw hex ID or as a hydrated summary object, depending on
// which lookups the serving route performs: a route that does not
// hydrate owners simply passes no user map entry for them.
type taskView struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name_task"`
	Description string           `json:"description"`
	DueDate     time.Time        `json:"dead_line"`
	Status      string           `json:"status"`
	Category    string           `json:"category,omitempty"`
	Owner       models.UserRef   `json:"userId"`
	Group       *models.GroupRef `json:"groupId,omitempty"`
	AssignedTo  []models.UserRef `json:"assignedTo"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// taskResponse is the {message, task} body of the mutating routes.
type taskResponse struct {
	Message string   `json:"message"`
	Task    taskView `json:"task"`
}

// newTaskView builds the wire shape, resolving each reference against
// the supplied summary maps and falling back to the raw hex ID for
// anything absent (or when a route passes a nil map on purpose).
func newTaskView(t models.Task, users map[primitive.ObjectID]models.UserSummary, groups map[primitive.ObjectID]models.GroupSummary) taskView {
	v := taskView{
		ID:          t.ID.Hex(),
		Name:        t.Name,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
		Category:    t.Category,
		Owner:       userRef(t.OwnerID, users),
		AssignedTo:  make([]models.UserRef, 0, len(t.AssignedTo)),
		CreatedAt:   t.CreatedAt,
	}
	if t.GroupID != nil {
		ref := groupRef(*t.GroupID, groups)
		v.Group = &ref
	}
	for _, id := range t.AssignedTo {
		v.AssignedTo = append(v.AssignedTo, userRef(id, users))
	}
	return v
}

func userRef(id primitive.ObjectID, users map[primitive.ObjectID]models.UserSummary) models.UserRef {
	if s, ok := users[id]; ok {
		return models.ResolvedUserRef(s)
	}
	return models.RawUserRef(id.Hex())
}

func groupRef(id primitive.ObjectID, groups map[primitive.ObjectID]models.GroupSummary) models.GroupRef {
	if s, ok := groups[id]; ok {
		return models.ResolvedGroupRef(s)
	}
	return models.RawGroupRef(id.Hex())
}

// assigneeIDs collects every assignee ID across tasks for hydration.
func assigneeIDs(list []models.Task) []primitive.ObjectID {
	var ids []primitive.ObjectID
	for _, t := range list {
		ids = append(ids, t.AssignedTo...)
	}
	return ids
}
