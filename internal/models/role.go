package models

import "fmt"

// Role - закрытое перечисление ролей с полным порядком привилегий:
// USER < ADMIN < OWNER
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
)

var roleRank = map[Role]int{
	RoleUser:  0,
	RoleAdmin: 1,
	RoleOwner: 2,
}

// ParseRole - проверяет строку роли на границе системы; неизвестные роли отклоняются
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := roleRank[role]; !ok {
		return "", fmt.Errorf("неизвестная роль: %q", s)
	}
	return role, nil
}

// AtLeast - сравнение по порядку привилегий
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

func (r Role) IsModerator() bool {
	return r.AtLeast(RoleAdmin)
}

// Title - метка для текста активности USER_DELETED ('Owner', 'Admin')
func (r Role) Title() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleAdmin:
		return "Admin"
	default:
		return "User"
	}
}

func (r Role) String() string {
	return string(r)
}
