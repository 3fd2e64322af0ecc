package models

import "time"

// ActivityAction is the closed set of audit-trail verbs. Status changes
// map onto it through an exhaustive table instead of storing the raw
// status string.
type ActivityAction string

const (
	ActionCreate  ActivityAction = "create"
	ActionUpdate  ActivityAction = "update"
	ActionApprove ActivityAction = "approve"
	ActionReject  ActivityAction = "reject"
	ActionCancel  ActivityAction = "cancel"
	ActionDelete  ActivityAction = "delete"
)

type ActivityLog struct {
	ID         int            `json:"id"`
	UserID     int            `json:"user_id"`
	EntityType string         `json:"entity_type"`
	EntityID   int            `json:"entity_id"`
	Action     ActivityAction `json:"action"`
	Details    string         `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}
