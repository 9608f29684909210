package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel holds every account kind: teachers, students, admins, clerks
// and the principal. The role tag decides what a session may do.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName  string    `gorm:"size:80;uniqueIndex;not null" json:"user_name" validate:"required,min=3,max=80"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=teacher student admin clerk principal"`
	FirstName string    `gorm:"size:80" json:"first_name"`
	LastName  string    `gorm:"size:80" json:"last_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

// BeforeCreate keeps uuid generation app-side so sqlite and postgres behave
// the same.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName is the display name returned on login.
func (u *UserModel) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.UserName
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	default:
		return u.FirstName + " " + u.LastName
	}
}
