package user

import (
	"time"
)

type Role struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;type:varchar(50);not null"`
}

func (Role) TableName() string {
	return "roles"
}

type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FullName  string    `gorm:"column:full_name;type:varchar(255);not null"`
	Username  string    `gorm:"column:username;type:varchar(100);not null;uniqueIndex"`
	Password  string    `gorm:"column:password;type:text;not null"`
	RoleID    int64     `gorm:"column:role_id;not null;index"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relasi ke Role (untuk nama role di login response)
	Role *Role `gorm:"foreignKey:RoleID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
