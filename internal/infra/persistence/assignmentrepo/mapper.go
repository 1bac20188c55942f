package assignmentrepo

import (
	domain "github.com/notarydesk/priorities/internal/biz/assignment"
	"github.com/samber/lo"
)

func (po *AssignmentPo) FromDomain(in *domain.Assignment) *AssignmentPo {
	return &AssignmentPo{
		EmployeeID: in.EmployeeID,
		Priorities: lo.Map(in.Entries, func(e domain.Entry, _ int) EntryPo {
			return EntryPo{PriorityID: e.PriorityID, Order: e.Rank}
		}),
	}
}

func (po *AssignmentPo) ToDomain() *domain.Assignment {
	return domain.Restore(po.EmployeeID, lo.Map(po.Priorities, func(e EntryPo, _ int) domain.Entry {
		return domain.Entry{PriorityID: e.PriorityID, Rank: e.Order}
	}))
}
