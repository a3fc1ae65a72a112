package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Account roles. A primary account creates the family group, member
// accounts join it through the shared family code.
const (
	RolePrimary = "primary"
	RoleMember  = "member"
)

// StringList stores a list of strings as a JSON column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// User represents a registered account
type User struct {
	BaseModel
	FullName  string `gorm:"type:varchar(100);not null" json:"fullName"`
	ChildName string `gorm:"type:varchar(100);not null;index" json:"childName"`
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	// UserID is the user-chosen handle, unique across all accounts
	UserID   string `gorm:"column:userid;type:varchar(50);uniqueIndex;not null" json:"userid"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // bcrypt hash, never exposed
	Role     string `gorm:"type:varchar(20);not null" json:"role"`
	// FamilyCode is shared by every account in the same family group
	FamilyCode    string     `gorm:"type:varchar(20);index" json:"familyCode,omitempty"`
	Notifications StringList `gorm:"type:json" json:"notifications"`
}
