package model

// AdminUser is a back-office account of the member hub.
type AdminUser struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Email    string `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_admin_user_email"`
	Name     string `gorm:"column:name;type:varchar(100);not null"`
	Password string `gorm:"column:password;type:varchar(60);not null"`

	BaseEntity
}

// TableName specifies the table name for AdminUser
func (*AdminUser) TableName() string {
	return "admin_user"
}

// NewAdminUser creates a new AdminUser instance.
// Password must already be hashed (handled in service layer).
func NewAdminUser(name, email, password string) *AdminUser {
	return &AdminUser{
		Name:     name,
		Email:    email,
		Password: password,
	}
}
