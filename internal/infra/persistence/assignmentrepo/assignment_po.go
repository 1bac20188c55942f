package assignmentrepo

// AssignmentPo is one element of the assignments collection. Order is the
// externally visible name of an entry's rank.
type AssignmentPo struct {
	EmployeeID string    `json:"employeeId"`
	Priorities []EntryPo `json:"priorities"`
}

type EntryPo struct {
	PriorityID string `json:"priorityId"`
	Order      int    `json:"order"`
}
