package models

// SocialsIdentifier keys the single socials row. The table only ever holds
// one record; writes upsert against this identifier.
const SocialsIdentifier = "main_socials"

type Socials struct {
	Base
	Identifier string   `gorm:"uniqueIndex;not null" json:"-"`
	Instagram  []string `gorm:"serializer:json" json:"instagram"`
	YouTube    []string `gorm:"serializer:json" json:"youtube"`
	Facebook   []string `gorm:"serializer:json" json:"facebook"`
}

func (Socials) TableName() string {
	return "socials"
}
