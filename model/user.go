package model

// CompanyInfo is collected during the second onboarding step.
type CompanyInfo struct {
	CompanyName       string `json:"companyName"`
	NatureOfWork      string `json:"natureOfWork"`
	NumberOfEmployees string `json:"numberOfEmployees"`
}

// User is the account owner, persisted under the currentUser key. The
// password hash never leaves the server.
type User struct {
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	PhoneNumber  string       `json:"phoneNumber,omitempty"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"passwordHash,omitempty"`
	Company      *CompanyInfo `json:"company,omitempty"`
	Employees    []Employee   `json:"employees,omitempty"`
}

// Profile holds the profile-screen fields, persisted under userProfile.
type Profile struct {
	FirstName          string       `json:"firstName"`
	LastName           string       `json:"lastName"`
	Email              string       `json:"email"`
	Company            *CompanyInfo `json:"company,omitempty"`
	WorkMode           string       `json:"workMode"`
	CurrentMode        string       `json:"currentMode"`
	LoginTime          string       `json:"loginTime"`
	LogoutTime         string       `json:"logoutTime"`
	CurrentlyWorkingOn string       `json:"currentlyWorkingOn"`
}

// DefaultProfile mirrors the fields the profile screen starts out with
// before the user ever saves.
func DefaultProfile(u *User) Profile {
	p := Profile{
		WorkMode:           "Work From Home",
		CurrentMode:        "Focused Task",
		LoginTime:          "10 AM",
		LogoutTime:         "5 PM",
		CurrentlyWorkingOn: "I'm Currently working on Tyoharz Listing",
	}
	if u != nil {
		p.FirstName = u.FirstName
		p.LastName = u.LastName
		p.Email = u.Email
		p.Company = u.Company
	}
	return p
}
