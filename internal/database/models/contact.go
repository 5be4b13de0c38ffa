package models

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	Base
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `gorm:"not null" json:"message"`
	IPAddress string        `json:"-"`
	Status    ContactStatus `gorm:"not null;default:'new'" json:"status"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusResponded:
		return true
	}
	return false
}
