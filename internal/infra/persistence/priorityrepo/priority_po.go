package priorityrepo

import (
	"time"

	domain "github.com/notarydesk/priorities/internal/biz/priority"
)

// PriorityPo is one element of the priorities collection.
type PriorityPo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Color       domain.Color `json:"color"`
	CreatedAt   time.Time    `json:"createdAt"`
}
