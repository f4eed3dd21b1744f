package auth

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}

// Account is a demo sign-in: a user plus the bcrypt hash of its password.
type Account struct {
	User         User
	PasswordHash []byte
}

// DemoCredential is a plain-text demo sign-in, hashed once at start-up.
type DemoCredential struct {
	Password string
	User     User
}

// DemoCredentials are the two sign-ins the dashboard ships with.
var DemoCredentials = []DemoCredential{
	{
		Password: "admin123",
		User: User{
			ID:     "1",
			Email:  "admin@example.com",
			Name:   "Admin User",
			Role:   RoleAdmin,
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		},
	},
	{
		Password: "manager123",
		User: User{
			ID:     "2",
			Email:  "manager@example.com",
			Name:   "Manager User",
			Role:   RoleManager,
			Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		},
	},
}
