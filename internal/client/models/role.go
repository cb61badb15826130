package models

// Role is the capability set of the current identity: administrators
// manage other patients' schedules, patients manage their own schedule
// and report progress.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RolePatient       Role = "patient"
)

// AdminIdentity is the reserved identity granted the administrator role.
const AdminIdentity = "admin"

// RoleFor computes the role for an identity. It is called once when a
// session is established or restored; call sites branch on the resulting
// Role, never on the identity string.
func RoleFor(identity string) Role {
	if identity == AdminIdentity {
		return RoleAdministrator
	}
	return RolePatient
}

// Capability names a role-gated store operation.
type Capability string

const (
	CapAdd      Capability = "add"
	CapTake     Capability = "take"
	CapRemove   Capability = "remove"
	CapResetAll Capability = "reset_all"
	CapReport   Capability = "report"
)

// Can reports whether the role may exercise the capability.
// Administrators add (for a target patient) and remove any visible
// record; patients do everything else, scoped to their own records.
func (r Role) Can(c Capability) bool {
	switch r {
	case RoleAdministrator:
		return c == CapAdd || c == CapRemove
	case RolePatient:
		return c == CapAdd || c == CapTake || c == CapRemove ||
			c == CapResetAll || c == CapReport
	default:
		return false
	}
}
