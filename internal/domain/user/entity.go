package user

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleScheduler Role = "scheduler"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleScheduler),
}
