package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role enumerates the access levels recognized by the application.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleEncargado  Role = "ENCARGADO"
	RoleOperario   Role = "OPERARIO"
)

// ValidRole reports whether the value is one of the recognized roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleEncargado, RoleOperario:
		return true
	}
	return false
}

// User represents an application account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"nombre" json:"nombre"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	Active       bool               `bson:"activo" json:"activo"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the admin-facing listing shape, including how many production
// records the account has submitted.
type UserSummary struct {
	User
	RecordCount int64 `json:"registros"`
}
