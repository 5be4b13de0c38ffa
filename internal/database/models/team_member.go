package models

// TeamMember is a public profile shown on the agency's team page. Distinct
// from User: team members do not log in through this record.
type TeamMember struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Role     string `gorm:"not null" json:"role"`
	Photo    string `json:"photo,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
