package dto

import "github.com/worklifedesks/model"

// RegisterRequest is the first onboarding step.
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

func (r RegisterRequest) ToUser() model.User {
	return model.User{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}

// CompanyRequest is the second onboarding step.
type CompanyRequest struct {
	CompanyName       string `json:"companyName" binding:"required"`
	NatureOfWork      string `json:"natureOfWork"`
	NumberOfEmployees string `json:"numberOfEmployees"`
}

func (r CompanyRequest) ToCompanyInfo() model.CompanyInfo {
	return model.CompanyInfo{
		CompanyName:       r.CompanyName,
		NatureOfWork:      r.NatureOfWork,
		NumberOfEmployees: r.NumberOfEmployees,
	}
}

// EmployeesRequest is the final onboarding step.
type EmployeesRequest struct {
	Employees []model.Employee `json:"employees" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token alongside the user.
type LoginResponse struct {
	Token     string     `json:"token"`
	SessionID string     `json:"sessionId"`
	User      model.User `json:"user"`
}
