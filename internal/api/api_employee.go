package api

import (
	"github.com/gin-gonic/gin"
	"github.com/notarydesk/priorities/internal/biz/employee"
	"github.com/notarydesk/priorities/internal/biz/projection"
	"github.com/notarydesk/priorities/internal/dto/mapper"
	"github.com/notarydesk/priorities/internal/dto/request"
	"github.com/notarydesk/priorities/internal/dto/response"
	"github.com/samber/mo"
)

type IEmployeeAPI interface {
	// List returns employees in registration order.
	// @GET(api/v1/employees)
	List(ctx *gin.Context) ([]response.EmployeeResponse, error)

	// @POST(api/v1/employees)
	Create(ctx *gin.Context, req request.CreateEmployeeRequest) (response.MessageResponse, error)

	// @GET(api/v1/employees/{id})
	Get(ctx *gin.Context, id string) (response.EmployeeResponse, error)

	// @PUT(api/v1/employees/{id})
	Update(ctx *gin.Context, id string, req request.UpdateEmployeeRequest) (response.MessageResponse, error)

	// Delete keeps the employee's assignment; it is hidden from reads.
	// @DELETE(api/v1/employees/{id})
	Delete(ctx *gin.Context, id string) (response.MessageResponse, error)

	// Priorities is the employee's own ranked list.
	// @GET(api/v1/employees/{id}/priorities)
	Priorities(ctx *gin.Context, id string) (response.EmployeeRankingResponse, error)
}

var _ IEmployeeAPI = (*EmployeeAPI)(nil)

type EmployeeAPI struct {
	employees *employee.Usecase
	projector *projection.Projector
}

func NewEmployeeAPI(employees *employee.Usecase, projector *projection.Projector) *EmployeeAPI {
	return &EmployeeAPI{employees: employees, projector: projector}
}

func (a *EmployeeAPI) List(ctx *gin.Context) ([]response.EmployeeResponse, error) {
	list, err := a.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToEmployeeListResponse(list), nil
}

func (a *EmployeeAPI) Create(ctx *gin.Context, req request.CreateEmployeeRequest) (response.MessageResponse, error) {
	emp, err := a.employees.Create(ctx, employee.CreateRequest{
		FullName: req.FullName,
		Position: req.Position,
	})
	if err != nil {
		return response.MessageResponse{}, err
	}
	return message("Colaborador cadastrado com sucesso!", mapper.ToEmployeeResponse(emp)), nil
}

func (a *EmployeeAPI) Get(ctx *gin.Context, id string) (response.EmployeeResponse, error) {
	emp, err := a.employees.Get(ctx, id)
	if err != nil {
		return response.EmployeeResponse{}, err
	}
	return mapper.ToEmployeeResponse(emp), nil
}

func (a *EmployeeAPI) Update(ctx *gin.Context, id string, req request.UpdateEmployeeRequest) (response.MessageResponse, error) {
	emp, err := a.employees.Update(ctx, id, &employee.UpdateRequest{
		FullName: mo.PointerToOption(req.FullName),
		Position: mo.PointerToOption(req.Position),
	})
	if err != nil {
		return response.MessageResponse{}, err
	}
	return message("Colaborador atualizado com sucesso!", mapper.ToEmployeeResponse(emp)), nil
}

func (a *EmployeeAPI) Delete(ctx *gin.Context, id string) (response.MessageResponse, error) {
	if err := a.employees.Delete(ctx, id); err != nil {
		return response.MessageResponse{}, err
	}
	return message("Colaborador removido com sucesso!", nil), nil
}

func (a *EmployeeAPI) Priorities(ctx *gin.Context, id string) (response.EmployeeRankingResponse, error) {
	view, err := a.projector.EmployeeView(ctx, id)
	if err != nil {
		return response.EmployeeRankingResponse{}, err
	}
	return mapper.ToEmployeeRankingResponse(view), nil
}
