package constant

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
