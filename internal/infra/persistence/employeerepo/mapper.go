package employeerepo

import domain "github.com/notarydesk/priorities/internal/biz/employee"

func (po *EmployeePo) FromDomain(in *domain.Employee) *EmployeePo {
	return &EmployeePo{
		ID:        in.ID,
		FullName:  in.FullName,
		Position:  in.Position,
		CreatedAt: in.CreatedAt,
	}
}

func (po *EmployeePo) ToDomain() *domain.Employee {
	return &domain.Employee{
		ID:        po.ID,
		FullName:  po.FullName,
		Position:  po.Position,
		CreatedAt: po.CreatedAt,
	}
}
