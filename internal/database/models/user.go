package models

const (
	RoleUser  = "user"
	RoleTeam  = "team"
	RoleAdmin = "admin"
)

type User struct {
	Base
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"` // empty for Google-only accounts
	Name         string `gorm:"not null" json:"name"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Picture      string `json:"picture,omitempty"`
	GoogleID     string `gorm:"index" json:"-"`
	Role         string `gorm:"default:'user'" json:"role"` // user, team, admin
	IsApproved   bool   `gorm:"default:true" json:"is_approved"`
}

func (User) TableName() string {
	return "users"
}
