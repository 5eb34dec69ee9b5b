package model

// Member represents an adherent (registered customer) who can own orders
// Oracle IDENTITY column is used for ID generation
type Member struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	LastName  string `gorm:"column:last_name;type:VARCHAR2(100);not null"`                          // 성 (nom)
	FirstName string `gorm:"column:first_name;type:VARCHAR2(100);not null"`                         // 이름 (prénom)
	Email     string `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_member_email"` // 이메일 (unique)
	Password  string `gorm:"column:password;type:VARCHAR2(60);not null"`                            // 암호화된 비밀번호

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance
func NewMember(lastName, firstName, email, password string) *Member {
	// Note: password should be hashed before storing (handled in service layer)
	return &Member{
		LastName:  lastName,
		FirstName: firstName,
		Email:     email,
		Password:  password, // This should be hashed password
	}
}
