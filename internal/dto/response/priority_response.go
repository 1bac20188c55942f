package response

import "time"

type PriorityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	ColorName   string    `json:"colorName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ColorResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
