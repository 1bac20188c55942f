package api

import (
	"github.com/gin-gonic/gin"
	"github.com/notarydesk/priorities/internal/biz/priority"
	"github.com/notarydesk/priorities/internal/dto/mapper"
	"github.com/notarydesk/priorities/internal/dto/request"
	"github.com/notarydesk/priorities/internal/dto/response"
	"github.com/samber/mo"
)

type IPriorityAPI interface {
	// @GET(api/v1/priorities)
	List(ctx *gin.Context) ([]response.PriorityResponse, error)

	// Colors lists the palette in display order.
	// @GET(api/v1/priorities/colors)
	Colors(ctx *gin.Context) ([]response.ColorResponse, error)

	// @POST(api/v1/priorities)
	Create(ctx *gin.Context, req request.CreatePriorityRequest) (response.MessageResponse, error)

	// @GET(api/v1/priorities/{id})
	Get(ctx *gin.Context, id string) (response.PriorityResponse, error)

	// @PUT(api/v1/priorities/{id})
	Update(ctx *gin.Context, id string, req request.UpdatePriorityRequest) (response.MessageResponse, error)

	// @DELETE(api/v1/priorities/{id})
	Delete(ctx *gin.Context, id string) (response.MessageResponse, error)
}

var _ IPriorityAPI = (*PriorityAPI)(nil)

type PriorityAPI struct {
	priorities *priority.Usecase
}

func NewPriorityAPI(priorities *priority.Usecase) *PriorityAPI {
	return &PriorityAPI{priorities: priorities}
}

func (a *PriorityAPI) List(ctx *gin.Context) ([]response.PriorityResponse, error) {
	list, err := a.priorities.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToPriorityListResponse(list), nil
}

func (a *PriorityAPI) Colors(*gin.Context) ([]response.ColorResponse, error) {
	return mapper.ToPaletteResponse(priority.Palette), nil
}

func (a *PriorityAPI) Create(ctx *gin.Context, req request.CreatePriorityRequest) (response.MessageResponse, error) {
	p, err := a.priorities.Create(ctx, priority.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       priority.Color(req.Color),
	})
	if err != nil {
		return response.MessageResponse{}, err
	}
	return message("Prioridade cadastrada com sucesso!", mapper.ToPriorityResponse(p)), nil
}

func (a *PriorityAPI) Get(ctx *gin.Context, id string) (response.PriorityResponse, error) {
	p, err := a.priorities.Get(ctx, id)
	if err != nil {
		return response.PriorityResponse{}, err
	}
	return mapper.ToPriorityResponse(p), nil
}

func (a *PriorityAPI) Update(ctx *gin.Context, id string, req request.UpdatePriorityRequest) (response.MessageResponse, error) {
	color := mo.None[priority.Color]()
	if req.Color != nil {
		color = mo.Some(priority.Color(*req.Color))
	}
	p, err := a.priorities.Update(ctx, id, &priority.UpdateRequest{
		Name:        mo.PointerToOption(req.Name),
		Description: mo.PointerToOption(req.Description),
		Color:       color,
	})
	if err != nil {
		return response.MessageResponse{}, err
	}
	return message("Prioridade atualizada com sucesso!", mapper.ToPriorityResponse(p)), nil
}

func (a *PriorityAPI) Delete(ctx *gin.Context, id string) (response.MessageResponse, error) {
	if err := a.priorities.Delete(ctx, id); err != nil {
		return response.MessageResponse{}, err
	}
	return message("Prioridade removida com sucesso!", nil), nil
}
