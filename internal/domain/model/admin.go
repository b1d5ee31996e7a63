package model

// AdminRole restricts what an admin account can do at the backend.
type AdminRole string

const (
	AdminRoleSuper AdminRole = "superadmin"
	AdminRoleAdmin AdminRole = "admin"
)

// Admin is a back-office account.
type Admin struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Company  string    `json:"company"`
	Role     AdminRole `json:"role"`
	Password string    `json:"password,omitempty"`
}
