package employee

import (
	"strings"
	"time"

	domainerr "github.com/notarydesk/priorities/internal/domain/error"
)

type Employee struct {
	ID        string
	FullName  string
	Position  string
	CreatedAt time.Time
}

// Apply replaces the editable fields. ID and CreatedAt never change.
func (e *Employee) Apply(patch *EmployeePatch) error {
	fullName, position := e.FullName, e.Position
	if patch.FullName != nil {
		fullName = strings.TrimSpace(*patch.FullName)
	}
	if patch.Position != nil {
		position = strings.TrimSpace(*patch.Position)
	}
	if err := validate(fullName, position); err != nil {
		return err
	}
	e.FullName, e.Position = fullName, position
	return nil
}

type EmployeePatch struct {
	FullName *string
	Position *string
}

func NewEmployeePatch() *EmployeePatch {
	return &EmployeePatch{}
}

func (p *EmployeePatch) WithFullName(fullName string) *EmployeePatch {
	p.FullName = &fullName
	return p
}

func (p *EmployeePatch) WithPosition(position string) *EmployeePatch {
	p.Position = &position
	return p
}

func validate(fullName, position string) error {
	if fullName == "" || position == "" {
		return domainerr.NewValidationError("Por favor, preencha todos os campos.")
	}
	return nil
}
