package mapper

import (
	"github.com/notarydesk/priorities/internal/biz/employee"
	"github.com/notarydesk/priorities/internal/dto/response"
	"github.com/samber/lo"
)

// ToEmployeeResponse converts the entity to its response DTO.
func ToEmployeeResponse(e *employee.Employee) response.EmployeeResponse {
	return response.EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
	}
}

func ToEmployeeListResponse(list []*employee.Employee) []response.EmployeeResponse {
	return lo.Map(list, func(e *employee.Employee, _ int) response.EmployeeResponse {
		return ToEmployeeResponse(e)
	})
}
