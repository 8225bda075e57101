package domain

import (
	"fmt"
	"time"
)

// Account represents a tenant owning portals.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Locale    string    `json:"locale"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
)

// ValidAccountStatuses contains all valid account statuses.
var ValidAccountStatuses = []string{AccountStatusActive, AccountStatusSuspended}

// IsValidAccountStatus checks if an account status is valid.
func IsValidAccountStatus(status string) bool {
	for _, s := range ValidAccountStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DisplayName returns the operator-facing label for an account.
func (a Account) DisplayName() string {
	return fmt.Sprintf("#%s %s", a.ID, a.Name)
}

// AccountPatch carries a partial account update for the admin surface.
// Only dashboard form attributes are patchable.
type AccountPatch struct {
	Name   *string `json:"name,omitempty"`
	Locale *string `json:"locale,omitempty"`
	Status *string `json:"status,omitempty"`
}
