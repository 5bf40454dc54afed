package domain

import "time"

// ActivityKind identifies an auth-relevant event worth auditing.
type ActivityKind string

const (
	ActivitySignUp     ActivityKind = "sign_up"
	ActivityLogin      ActivityKind = "login"
	ActivityRefresh    ActivityKind = "refresh"
	ActivityRoleChange ActivityKind = "role_change"
)

// Activity is one entry in the auth activity trail. Entries are written
// asynchronously; losing one is logged but never fails the request.
type Activity struct {
	UserID string       `json:"user_id"`
	Email  string       `json:"email"`
	Kind   ActivityKind `json:"kind"`
	Detail string       `json:"detail,omitempty"`
	At     time.Time    `json:"at"`
}
