// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses. Free-form enum: any authorized caller may move a task
// between any two statuses, there is no enforced ordering.
const (
	StatusInProgress = "In Progress"
	StatusPaused     = "Paused"
	StatusReview     = "Review"
	StatusDone       = "Done"
)

// ValidStatus reports whether s is one of the recognized task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusPaused, StatusReview, StatusDone:
		return true
	}
	return false
}

// Task is a document in the tasks collection.
//
// OwnerID is the creating user. GroupID is set only for group tasks and
// must reference an existing group at creation time. AssignedTo entries
// should reference existing users but are not enforced referentially;
// an orphaned ID degrades to a raw-ID reference on read.
type Task struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name_task" json:"name_task"`
	Description string               `bson:"description" json:"description"`
	DueDate     time.Time            `bson:"dead_line" json:"dead_line"`
	Status      string               `bson:"status" json:"status"`
	Category    string               `bson:"category,omitempty" json:"category,omitempty"`
	OwnerID     primitive.ObjectID   `bson:"user_id" json:"user_id"`
	GroupID     *primitive.ObjectID  `bson:"group_id,omitempty" json:"group_id,omitempty"`
	AssignedTo  []primitive.ObjectID `bson:"assigned_to" json:"assigned_to"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsAssignee reports whether userID appears in the task's assignee list.
func (t Task) IsAssignee(userID primitive.ObjectID) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}
