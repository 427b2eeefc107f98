package models

import "github.com/google/uuid"

// Tenant carries the organization foreign key shared by every
// organization-scoped model. The repository layer relies on it to keep
// reads and writes inside the caller's organization.
type Tenant struct {
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
}

// OwnerID returns the owning organization id.
func (t *Tenant) OwnerID() uuid.UUID {
	return t.OrganizationID
}

// SetOwnerID assigns the owning organization id.
func (t *Tenant) SetOwnerID(id uuid.UUID) {
	t.OrganizationID = id
}
