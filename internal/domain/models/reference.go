// internal/domain/models/reference.go
package models

import "encoding/json"

// UserRef is a user reference on the wire: either the raw hex ID (when
// the referenced user no longer exists) or the hydrated summary. Callers
// building responses pick one side; MarshalJSON emits whichever is set.
type UserRef struct {
	Raw      string
	Resolved *UserSummary
}

// RawUserRef returns an unresolved reference carrying only the hex ID.
func RawUserRef(id string) UserRef { return UserRef{Raw: id} }

// ResolvedUserRef returns a reference hydrated with the user's summary.
func ResolvedUserRef(s UserSummary) UserRef { return UserRef{Resolved: &s} }

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.Resolved != nil {
		return json.Marshal(r.Resolved)
	}
	return json.Marshal(r.Raw)
}

// GroupRef is the group counterpart of UserRef.
type GroupRef struct {
	Raw      string
	Resolved *GroupSummary
}

// RawGroupRef returns an unresolved reference carrying only the hex ID.
func RawGroupRef(id string) GroupRef { return GroupRef{Raw: id} }

// ResolvedGroupRef returns a reference hydrated with the group's summary.
func ResolvedGroupRef(s GroupSummary) GroupRef { return GroupRef{Resolved: &s} }

func (r GroupRef) MarshalJSON() ([]byte, error) {
	if r.Resolved != nil {
		return json.Marshal(r.Resolved)
	}
	return json.Marshal(r.Raw)
}
