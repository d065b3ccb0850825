package models

import (
	"time"

	"gorm.io/gorm"
)

// 用户角色
type UserRole string

const (
	RoleCustomer      UserRole = "customer"
	RoleAdmin         UserRole = "admin"
	RolePropertyOwner UserRole = "property_owner"
)

// User 用户模型
type User struct {
	gorm.Model
	Name            string   `gorm:"size:100;not null" json:"name"`
	Phone           *string  `gorm:"size:20;unique" json:"phone"`
	Email           string   `gorm:"size:255;not null;unique" json:"email"`
	Password        string   `gorm:"size:255" json:"-"`
	Role            UserRole `gorm:"size:20;default:'customer';index" json:"role"`
	IsEmailVerified bool     `gorm:"default:false" json:"isEmailVerified"`
	IsActive        bool     `gorm:"default:true" json:"isActive"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse 转换为响应
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

