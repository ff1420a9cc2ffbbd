package model

import "time"

// Membership status values as shown on the member record.
const (
	MemberStatusActive   = "Active"
	MemberStatusInactive = "Inactive"
	MemberStatusPending  = "Pending"
)

// Organization roles printed on the ID card.
const (
	RoleMember      = "member"
	RoleStaff       = "staff"
	RoleExecutive   = "executive"
	RoleBoardMember = "board_member"
)

// Member represents a registered member of the organization.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// MembershipID is the human-readable serial (OMA-NNNNNN) assigned at registration.
	MembershipID string `gorm:"column:membership_id;type:varchar(20);not null;uniqueIndex:idx_member_membership_id"`

	FirstName string `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string `gorm:"column:last_name;type:varchar(100);not null"`
	Email     string `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_member_email"`
	Phone     string `gorm:"column:phone;type:varchar(50);not null"`
	Address   string `gorm:"column:address;type:varchar(255)"`
	Country   string `gorm:"column:country;type:varchar(100)"`

	Status string `gorm:"column:status;type:varchar(20);not null;default:Pending"`
	Role   string `gorm:"column:role;type:varchar(30);not null;default:member"`

	PhotoURL         string     `gorm:"column:photo_url;type:varchar(500)"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth"`
	Occupation       string     `gorm:"column:occupation;type:varchar(100)"`
	EmergencyContact string     `gorm:"column:emergency_contact;type:varchar(255)"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// FullName returns the display name used on cards and dispatch mails.
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
