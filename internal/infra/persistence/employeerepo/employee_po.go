package employeerepo

import "time"

// EmployeePo is one element of the employees collection.
type EmployeePo struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
