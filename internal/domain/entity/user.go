package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the fixed set of staff roles. A user holds exactly one role;
// there is no role inheritance.
type UserRole string

const (
	RoleCarer       UserRole = "Carer"
	RoleOfficeStaff UserRole = "Office Staff"
	RoleNurse       UserRole = "Nurse"
	RoleSupervisor  UserRole = "Supervisor"
	RoleAdmin       UserRole = "Admin"
	RoleDriver      UserRole = "Driver"
)

// AllRoles lists every valid role, used for validation and catalog tagging.
var AllRoles = []UserRole{
	RoleCarer,
	RoleOfficeStaff,
	RoleNurse,
	RoleSupervisor,
	RoleAdmin,
	RoleDriver,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseUserRole converts an external string into a UserRole.
func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}

// User represents a member of staff. ManagerID is the single mutable
// back-reference to the direct manager; it is distinct from the many-to-many
// supervisor assignment relation. The manager is always resolved by ID via
// the repository, never embedded, to keep the self-reference acyclic.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(50);not null;index" json:"role"`
	Branch       string     `gorm:"type:varchar(255)" json:"branch,omitempty"`
	Avatar       string     `gorm:"type:varchar(512)" json:"avatar,omitempty"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	JoinDate     time.Time  `gorm:"autoCreateTime" json:"join_date"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
