package response

// AssignmentResponse lists an employee's priorities in ascending rank.
type AssignmentResponse struct {
	EmployeeID string                   `json:"employeeId"`
	Priorities []RankedPriorityResponse `json:"priorities"`
}

// RankedPriorityResponse carries the display rank and the stored order.
type RankedPriorityResponse struct {
	Rank     int              `json:"rank"`
	Order    int              `json:"order"`
	Priority PriorityResponse `json:"priority"`
}

type EmployeeRankingResponse struct {
	Employee   EmployeeResponse         `json:"employee"`
	Priorities []RankedPriorityResponse `json:"priorities"`
}

type ReportResponse struct {
	Selection string                    `json:"selection"`
	Rows      []EmployeeRankingResponse `json:"rows"`
}

type DashboardResponse struct {
	TotalEmployees             int `json:"totalEmployees"`
	TotalPriorities            int `json:"totalPriorities"`
	EmployeesWithPriorities    int `json:"employeesWithPriorities"`
	EmployeesWithoutPriorities int `json:"employeesWithoutPriorities"`
}
