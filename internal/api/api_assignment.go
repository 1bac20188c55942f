package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/notarydesk/priorities/internal/biz/assignment"
	"github.com/notarydesk/priorities/internal/biz/projection"
	"github.com/notarydesk/priorities/internal/dto/mapper"
	"github.com/notarydesk/priorities/internal/dto/request"
	"github.com/notarydesk/priorities/internal/dto/response"
)

type IAssignmentAPI interface {
	// Get returns the ranked list; unknown priorities are left out.
	// @GET(api/v1/assignments/{employee_id})
	Get(ctx *gin.Context, employeeID string) (response.AssignmentResponse, error)

	// Available lists the priorities the employee does not have yet.
	// @GET(api/v1/assignments/{employee_id}/available)
	Available(ctx *gin.Context, employeeID string) ([]response.PriorityResponse, error)

	// Save replaces the whole list in the given order.
	// @PUT(api/v1/assignments/{employee_id})
	Save(ctx *gin.Context, employeeID string, req request.SaveAssignmentRequest) (response.MessageResponse, error)

	// @POST(api/v1/assignments/{employee_id}/entries)
	AddEntry(ctx *gin.Context, employeeID string, req request.AddEntryRequest) (response.MessageResponse, error)

	// @DELETE(api/v1/assignments/{employee_id}/entries/{priority_id})
	RemoveEntry(ctx *gin.Context, employeeID string, priorityID string) (response.MessageResponse, error)

	// @POST(api/v1/assignments/{employee_id}/entries/{priority_id}/up)
	MoveUp(ctx *gin.Context, employeeID string, priorityID string) (response.MessageResponse, error)

	// @POST(api/v1/assignments/{employee_id}/entries/{priority_id}/down)
	MoveDown(ctx *gin.Context, employeeID string, priorityID string) (response.MessageResponse, error)
}

var _ IAssignmentAPI = (*AssignmentAPI)(nil)

type AssignmentAPI struct {
	engine    *assignment.Engine
	projector *projection.Projector
}

func NewAssignmentAPI(engine *assignment.Engine, projector *projection.Projector) *AssignmentAPI {
	return &AssignmentAPI{engine: engine, projector: projector}
}

func (a *AssignmentAPI) Get(ctx *gin.Context, employeeID string) (response.AssignmentResponse, error) {
	list, err := a.engine.ListRanked(ctx, employeeID)
	if err != nil {
		return response.AssignmentResponse{}, err
	}
	return mapper.ToAssignmentResponse(employeeID, list), nil
}

func (a *AssignmentAPI) Available(ctx *gin.Context, employeeID string) ([]response.PriorityResponse, error) {
	list, err := a.projector.Available(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapper.ToPriorityListResponse(list), nil
}

func (a *AssignmentAPI) Save(ctx *gin.Context, employeeID string, req request.SaveAssignmentRequest) (response.MessageResponse, error) {
	return a.change(ctx, employeeID, "Prioridades salvas com sucesso!", func(ctx context.Context) error {
		_, err := a.engine.Save(ctx, employeeID, req.PriorityIDs)
		return err
	})
}

func (a *AssignmentAPI) AddEntry(ctx *gin.Context, employeeID string, req request.AddEntryRequest) (response.MessageResponse, error) {
	return a.change(ctx, employeeID, "Prioridade adicionada com sucesso!", func(ctx context.Context) error {
		_, err := a.engine.AddEntry(ctx, employeeID, req.PriorityID)
		return err
	})
}

func (a *AssignmentAPI) RemoveEntry(ctx *gin.Context, employeeID string, priorityID string) (response.MessageResponse, error) {
	return a.change(ctx, employeeID, "Prioridade removida com sucesso!", func(ctx context.Context) error {
		_, err := a.engine.RemoveEntry(ctx, employeeID, priorityID)
		return err
	})
}

func (a *AssignmentAPI) MoveUp(ctx *gin.Context, employeeID string, priorityID string) (response.MessageResponse, error) {
	return a.change(ctx, employeeID, "Prioridade reordenada com sucesso!", func(ctx context.Context) error {
		_, err := a.engine.MoveUp(ctx, employeeID, priorityID)
		return err
	})
}

func (a *AssignmentAPI) MoveDown(ctx *gin.Context, employeeID string, priorityID string) (response.MessageResponse, error) {
	return a.change(ctx, employeeID, "Prioridade reordenada com sucesso!", func(ctx context.Context) error {
		_, err := a.engine.MoveDown(ctx, employeeID, priorityID)
		return err
	})
}

// change runs fn and answers with the employee's ranked list after it.
func (a *AssignmentAPI) change(ctx context.Context, employeeID, text string, fn func(ctx context.Context) error) (response.MessageResponse, error) {
	if err := fn(ctx); err != nil {
		return response.MessageResponse{}, err
	}
	list, err := a.engine.ListRanked(ctx, employeeID)
	if err != nil {
		return response.MessageResponse{}, err
	}
	return message(text, mapper.ToAssignmentResponse(employeeID, list)), nil
}
