package dto

// TextRequest carries one freeform text block (monthly objective,
// workflow audit, key metrics).
type TextRequest struct {
	Value string `json:"value"`
}

// EmployeeEntryRequest sets one per-employee map entry (mode, data or
// note).
type EmployeeEntryRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Value      string `json:"value"`
}

// StatusRequest flips the online flag.
type StatusRequest struct {
	Online bool `json:"online"`
}
