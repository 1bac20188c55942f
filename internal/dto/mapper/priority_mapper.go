package mapper

import (
	"github.com/notarydesk/priorities/internal/biz/priority"
	"github.com/notarydesk/priorities/internal/dto/response"
	"github.com/samber/lo"
)

func ToPriorityResponse(p *priority.Priority) response.PriorityResponse {
	return response.PriorityResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Color:       string(p.Color),
		ColorName:   p.Color.Name(),
		CreatedAt:   p.CreatedAt,
	}
}

func ToPriorityListResponse(list []*priority.Priority) []response.PriorityResponse {
	return lo.Map(list, func(p *priority.Priority, _ int) response.PriorityResponse {
		return ToPriorityResponse(p)
	})
}

func ToPaletteResponse(palette []priority.Swatch) []response.ColorResponse {
	return lo.Map(palette, func(s priority.Swatch, _ int) response.ColorResponse {
		return response.ColorResponse{Name: s.Name, Value: string(s.Value)}
	})
}
