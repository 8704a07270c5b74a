package model

import "fmt"

// Member represents a registered library member
type Member struct {
	// Primary key - IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	FirstName string `gorm:"column:first_name;size:100;not null"`
	LastName  string `gorm:"column:last_name;size:100;not null"`
	Email     string `gorm:"column:email;size:255;not null;uniqueIndex:idx_member_email"` // unique

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance
func NewMember(firstName, lastName, email string) *Member {
	return &Member{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
}

// FullName returns "first last"
func (m *Member) FullName() string {
	return fmt.Sprintf("%s %s", m.FirstName, m.LastName)
}
