package response

import "time"

type EmployeeResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
