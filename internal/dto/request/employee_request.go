package request

// CreateEmployeeRequest is the body of POST /employees.
type CreateEmployeeRequest struct {
	FullName string `json:"fullName"`
	Position string `json:"position"`
}

// UpdateEmployeeRequest leaves omitted fields unchanged.
type UpdateEmployeeRequest struct {
	FullName *string `json:"fullName"`
	Position *string `json:"position"`
}
