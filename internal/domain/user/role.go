package user

import "github.com/smartque/smartque-api/internal/httperr"

type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleBusiness Role = "business"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleBusiness:
		return Role(s), nil
	}
	return "", httperr.ErrValidation("Invalid role")
}
