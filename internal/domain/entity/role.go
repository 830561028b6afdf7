package entity

// Roles reconocidos en el claim "role" del token.
const (
	RoleAdmin   = "admin"
	RoleITStaff = "it_staff" // soporte de TI: registra traslados y reparaciones
	RoleViewer  = "viewer"
)
