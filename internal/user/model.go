package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID       uint
	Fullname string
	Email    string
	Password string
	Role     Role
	IsActive bool
}

// Filter carries the admin users console query parameters. Status is
// "active", "inactive" or empty for all.
type Filter struct {
	Search string
	Role   string
	Status string
}
