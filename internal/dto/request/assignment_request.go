package request

// AddEntryRequest appends one priority to an employee.
type AddEntryRequest struct {
	PriorityID string `json:"priorityId" binding:"required"`
}

// SaveAssignmentRequest replaces the whole list, in order.
type SaveAssignmentRequest struct {
	PriorityIDs []string `json:"priorityIds"`
}

type ReportRequest struct {
	EmployeeID string `form:"employee_id"`
}
