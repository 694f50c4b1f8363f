package model

import "time"

// WorkerRole enumerates the production roles a task can be assigned to.
type WorkerRole string

const (
	RoleDesigner      WorkerRole = "designer"
	RoleCarver        WorkerRole = "carver"
	RoleCaster        WorkerRole = "caster"
	RoleDiamondSetter WorkerRole = "diamondsetter"
	RoleFinisher      WorkerRole = "finisher"
)

// WorkerRoles lists every WorkerRole in seed order.
var WorkerRoles = []WorkerRole{RoleDesigner, RoleCarver, RoleCaster, RoleDiamondSetter, RoleFinisher}

// TaskStatus tracks a production task through the workshop checks.
type TaskStatus string

const (
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in-progress"
	TaskChecked    TaskStatus = "checked"
	TaskVerified   TaskStatus = "verified"
	TaskDone       TaskStatus = "done"
)

// TaskStatuses lists every TaskStatus in seed order.
var TaskStatuses = []TaskStatus{TaskAssigned, TaskInProgress, TaskChecked, TaskVerified, TaskDone}

// Task is a unit of production work. OrderCode is a weak back-reference to an
// order's display code, not an ownership link. Tasks are read-only in this
// service.
type Task struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Title     string     `gorm:"size:128;not null" json:"title"`
	OrderCode string     `gorm:"size:16;not null;index" json:"order_code"`
	Role      WorkerRole `gorm:"size:16;not null;index" json:"role"`
	Status    TaskStatus `gorm:"size:16;not null;index" json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }
