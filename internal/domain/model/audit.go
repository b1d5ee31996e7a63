package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditOutcome reports whether an audited action succeeded.
type AuditOutcome string

const (
	AuditOutcomeOK     AuditOutcome = "ok"
	AuditOutcomeFailed AuditOutcome = "failed"
)

// AuditEntry records one mutating action issued from the back-office.
type AuditEntry struct {
	ID       uuid.UUID
	Admin    string
	Action   string
	Entity   string
	EntityID string
	Outcome  AuditOutcome
	Detail   string
	At       time.Time
}
