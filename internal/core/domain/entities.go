package domain

// Role represents an officer's role in the system
type Role string

const (
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

// DefaultRole is assigned when registration omits a role
const DefaultRole = RoleOfficer

// ReportStatus represents the lifecycle state of a crime report
type ReportStatus string

const (
	StatusOpen    ReportStatus = "open"
	StatusClosed  ReportStatus = "closed"
	StatusPending ReportStatus = "pending"
)

// DefaultReportStatus is assigned when a report is filed without a status
const DefaultReportStatus = StatusOpen

// Principal is the caller identity resolved from a session.
// The zero value is an anonymous caller.
type Principal struct {
	OfficerID uint
	Role      Role
	SessionID uint
}

// Anonymous returns a principal with no session
func Anonymous() Principal {
	return Principal{}
}

// Authenticated reports whether the principal carries a recognized officer id
func (p Principal) Authenticated() bool {
	return p.OfficerID != 0
}

// IsAdmin reports whether the principal is an authenticated admin
func (p Principal) IsAdmin() bool {
	return p.Authenticated() && p.Role == RoleAdmin
}
