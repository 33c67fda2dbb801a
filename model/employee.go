package model

// Employee is a roster entry shown on the dashboard. It is standalone;
// nothing else references it structurally.
type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// EmployeePatch carries a shallow partial update for an employee.
type EmployeePatch struct {
	Name        *string `json:"name,omitempty"`
	Title       *string `json:"title,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
}

func (p *EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.PhoneNumber != nil {
		e.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
}
