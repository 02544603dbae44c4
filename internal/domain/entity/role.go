// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RolePatient indicates a patient account.
	RolePatient Role = "PATIENT"
	// RoleDoctor indicates a doctor account.
	RoleDoctor Role = "DOCTOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor:
		return true
	default:
		return false
	}
}

// Counterpart returns the role a user of r converses with.
func (r Role) Counterpart() Role {
	if r == RoleDoctor {
		return RolePatient
	}

	return RoleDoctor
}
