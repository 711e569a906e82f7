package model

import (
	"roomops/shared/capability"
	"roomops/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID          = "id"
	FieldRole        = "role"
	FieldDepartments = "departments"
	FieldCapacity    = "capacity"
	FieldActiveTasks = "active_tasks"
	FieldActive      = "active"
	FieldCreatedAt   = "created_at"
)

type Staff struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Role        string         `db:"role"`
	Departments pq.StringArray `db:"departments"`
	Capacity    int            `db:"capacity"`
	ActiveTasks int            `db:"active_tasks"`
	Active      bool           `db:"active"`
	model.Metadata
}

func (s Staff) Capability() capability.Capability {
	return capability.New(s.ID, s.Role, s.Departments)
}

func (s Staff) HasCapacity() bool {
	return s.ActiveTasks < s.Capacity
}
