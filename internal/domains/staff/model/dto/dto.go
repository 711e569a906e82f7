package dto

import (
	"roomops/internal/domains/staff/model"
)

type WorkloadResponse struct {
	StaffID     string   `json:"staff_id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Departments []string `json:"departments"`
	Capacity    int      `json:"capacity"`
	ActiveTasks int      `json:"active_tasks"`
	Available   bool     `json:"available"`
}

func (w *WorkloadResponse) FromModel(m model.Staff) {
	c := m.Capability()

	w.StaffID = m.ID
	w.Name = m.Name
	w.Role = c.Role
	w.Departments = c.Departments
	w.Capacity = m.Capacity
	w.ActiveTasks = m.ActiveTasks
	w.Available = m.Active && m.HasCapacity()
}

type GetWorkloadResponse struct {
	Staff []WorkloadResponse `json:"staff"`
}

func (g *GetWorkloadResponse) FromModels(models []model.Staff) {
	g.Staff = make([]WorkloadResponse, 0, len(models))

	for _, m := range models {
		var w WorkloadResponse

		w.FromModel(m)
		g.Staff = append(g.Staff, w)
	}
}
