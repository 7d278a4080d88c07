// Package authz holds the permission decisions for every mutating
// operation. Every function is total and side-effect-free: it takes the
// already-loaded requester and target documents and answers from plain
// data, so each rule is unit-testable without a store.
package authz

import (
	"github.com/dalemusser/taskhub/internal/domain/models"
)

// TaskField names a field of a task a caller may patch.
type TaskField string

const (
	TaskName        TaskField = "name_task"
	TaskDescription TaskField = "description"
	TaskDueDate     TaskField = "dead_line"
	TaskStatus      TaskField = "status"
	TaskCategory    TaskField = "category"
	TaskAssignedTo  TaskField = "assignedTo"
)

// AllTaskFields is the full patch allow-list for creators and admins.
var AllTaskFields = []TaskField{
	TaskName, TaskDescription, TaskDueDate, TaskStatus, TaskCategory, TaskAssignedTo,
}

// statusOnly is the field set an assignee-but-not-creator may touch.
var statusOnly = []TaskField{TaskStatus}

// CanManageUser reports whether requester may create, delete, or re-role
// the target user. Only admins can; the target is irrelevant.
func CanManageUser(requester models.User, _ models.User) bool {
	return requester.IsAdmin()
}

// CanUpdateUserProfile reports whether requester may change the target's
// username/email: the user themself or an admin.
func CanUpdateUserProfile(requester models.User, target models.User) bool {
	return requester.IsAdmin() || requester.ID == target.ID
}

// TaskEdit is the outcome of a task-edit permission check.
type TaskEdit struct {
	Allowed bool
	Fields  []TaskField // nil when Allowed is false
}

// Permits reports whether the decision allows patching the named field.
func (e TaskEdit) Permits(f TaskField) bool {
	for _, allowed := range e.Fields {
		if allowed == f {
			return true
		}
	}
	return false
}

// CanEditTask resolves the patchable field set for a task:
// creator or admin → all fields; assignee only → status alone.
// A requester who is both creator and assignee gets full access.
func CanEditTask(requester models.User, task models.Task) TaskEdit {
	if requester.IsAdmin() || task.OwnerID == requester.ID {
		return TaskEdit{Allowed: true, Fields: AllTaskFields}
	}
	if task.IsAssignee(requester.ID) {
		return TaskEdit{Allowed: true, Fields: statusOnly}
	}
	return TaskEdit{}
}

// CanDeleteTask reports whether requester may delete the task.
// Creator or admin only; assignees cannot delete.
func CanDeleteTask(requester models.User, task models.Task) bool {
	return requester.IsAdmin() || task.OwnerID == requester.ID
}

// CanCreateGroupTask reports whether requester may create a task in the
// group: group owner or group member. Admins get no bypass here — the
// original API omits it on this one path, and the omission is preserved
// for compatibility.
func CanCreateGroupTask(requester models.User, group models.Group) bool {
	return group.OwnerID == requester.ID || group.HasMember(requester.ID)
}

// CanManageGroup reports whether requester may update or delete the
// group, or add members: owner or admin.
func CanManageGroup(requester models.User, group models.Group) bool {
	return requester.IsAdmin() || group.OwnerID == requester.ID
}

// CanRemoveGroupMember reports whether requester may remove targetUserID
// from the group: owner, admin, or the member removing themself.
func CanRemoveGroupMember(requester models.User, group models.Group, targetUserID string) bool {
	if CanManageGroup(requester, group) {
		return true
	}
	return requester.ID.Hex() == targetUserID
}
