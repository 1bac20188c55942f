package mapper

import (
	"github.com/notarydesk/priorities/internal/biz/assignment"
	"github.com/notarydesk/priorities/internal/biz/projection"
	"github.com/notarydesk/priorities/internal/dto/response"
	"github.com/samber/lo"
)

func ToRankedListResponse(list []assignment.RankedPriority) []response.RankedPriorityResponse {
	return lo.Map(list, func(rp assignment.RankedPriority, _ int) response.RankedPriorityResponse {
		return response.RankedPriorityResponse{
			Rank:     rp.Rank,
			Order:    rp.Order,
			Priority: ToPriorityResponse(rp.Priority),
		}
	})
}

func ToAssignmentResponse(employeeID string, list []assignment.RankedPriority) response.AssignmentResponse {
	return response.AssignmentResponse{
		EmployeeID: employeeID,
		Priorities: ToRankedListResponse(list),
	}
}

func ToEmployeeRankingResponse(r *projection.EmployeeRanking) response.EmployeeRankingResponse {
	return response.EmployeeRankingResponse{
		Employee:   ToEmployeeResponse(r.Employee),
		Priorities: ToRankedListResponse(r.Priorities),
	}
}

func ToReportResponse(r *projection.Report) response.ReportResponse {
	return response.ReportResponse{
		Selection: r.Selection,
		Rows: lo.Map(r.Rows, func(row projection.EmployeeRanking, _ int) response.EmployeeRankingResponse {
			return ToEmployeeRankingResponse(&row)
		}),
	}
}

func ToDashboardResponse(d projection.Dashboard) response.DashboardResponse {
	return response.DashboardResponse{
		TotalEmployees:             d.TotalEmployees,
		TotalPriorities:            d.TotalPriorities,
		EmployeesWithPriorities:    d.EmployeesWithPriorities,
		EmployeesWithoutPriorities: d.EmployeesWithoutPriorities,
	}
}
