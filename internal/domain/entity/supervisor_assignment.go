package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupervisorAssignment is the explicit many-to-many oversight relation:
// a member may be watched by several supervisors and a supervisor may watch
// many members. It is deliberately distinct from User.ManagerID, which is a
// single back-reference. The (supervisor, member) pair is unique, so
// re-assigning is idempotent.
type SupervisorAssignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_supervisor_member" json:"supervisor_id"`
	MemberID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_supervisor_member" json:"member_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SupervisorAssignment) TableName() string {
	return "assigned_supervisors"
}
