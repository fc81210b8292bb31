package domain

import "time"

// DeletionStatus is the state of an account deletion request.
type DeletionStatus string

const (
	DeletionPending   DeletionStatus = "pending"
	DeletionConfirmed DeletionStatus = "confirmed"
	DeletionCancelled DeletionStatus = "cancelled"
	DeletionCompleted DeletionStatus = "completed"
	DeletionExpired   DeletionStatus = "expired"
)

// AccountDeletionRequest tracks the deletion workflow:
// pending -> confirmed/completed on token confirmation,
// pending -> cancelled on user cancel,
// pending -> expired when the confirmation window lapses.
// UserID deliberately has no foreign key so the audit row outlives the user.
type AccountDeletionRequest struct {
	ID          string
	UserID      string
	TokenHash   string
	Reason      string
	Status      DeletionStatus
	RequestedAt time.Time
	ConfirmedAt *time.Time
	ExpiresAt   time.Time
}
