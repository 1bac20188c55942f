package priority

import (
	"strings"
	"time"

	domainerr "github.com/notarydesk/priorities/internal/domain/error"
)

type Priority struct {
	ID          string
	Name        string
	Description string
	Color       Color
	CreatedAt   time.Time
}

// Apply checks the palette only for a color the patch sets. A stored color
// outside the palette, e.g. from an imported backup, survives other edits.
func (p *Priority) Apply(patch *PriorityPatch) error {
	name, description, color := p.Name, p.Description, p.Color
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		description = strings.TrimSpace(*patch.Description)
	}
	if patch.Color != nil {
		color = normalizeColor(*patch.Color)
	}
	if err := validateName(name); err != nil {
		return err
	}
	if patch.Color != nil {
		if err := validateColor(color); err != nil {
			return err
		}
	}
	p.Name, p.Description, p.Color = name, description, color
	return nil
}

type PriorityPatch struct {
	Name        *string
	Description *string
	Color       *Color
}

func NewPriorityPatch() *PriorityPatch {
	return &PriorityPatch{}
}

func (p *PriorityPatch) WithName(name string) *PriorityPatch {
	p.Name = &name
	return p
}

func (p *PriorityPatch) WithDescription(description string) *PriorityPatch {
	p.Description = &description
	return p
}

func (p *PriorityPatch) WithColor(color Color) *PriorityPatch {
	p.Color = &color
	return p
}

func normalizeColor(c Color) Color {
	c = Color(strings.TrimSpace(string(c)))
	if c == "" {
		return DefaultColor
	}
	return c
}

func validate(name string, color Color) error {
	if err := validateName(name); err != nil {
		return err
	}
	return validateColor(color)
}

func validateName(name string) error {
	if name == "" {
		return domainerr.NewValidationError("Por favor, preencha o nome da prioridade.")
	}
	return nil
}

func validateColor(color Color) error {
	if !color.Valid() {
		return domainerr.NewValidationError("Cor inválida para a prioridade.")
	}
	return nil
}
