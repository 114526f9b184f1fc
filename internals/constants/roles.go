package constants

// Role names as stored on the donor record. Role governs administrative
// capability, not donation eligibility.
const (
	RoleDonor     = "Donor"
	RoleVolunteer = "Volunteer"
	RoleAdmin     = "Admin"
)

// Donor activity status.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleDonor,
		RoleVolunteer,
		RoleAdmin,
	}

	ElevatedRoles = []string{
		RoleVolunteer,
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
