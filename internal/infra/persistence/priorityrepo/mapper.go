package priorityrepo

import domain "github.com/notarydesk/priorities/internal/biz/priority"

func (po *PriorityPo) FromDomain(in *domain.Priority) *PriorityPo {
	return &PriorityPo{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   in.CreatedAt,
	}
}

func (po *PriorityPo) ToDomain() *domain.Priority {
	return &domain.Priority{
		ID:          po.ID,
		Name:        po.Name,
		Description: po.Description,
		Color:       po.Color,
		CreatedAt:   po.CreatedAt,
	}
}
