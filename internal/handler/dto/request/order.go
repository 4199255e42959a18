package request

import (
	"cafe-kiosk/internal/domain/catalog"
	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/internal/usecase/commands"
)

// AddItemRequest selects a catalog kind with one 1-based choice per variation
// dimension, in menu order.
type AddItemRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Choices  []int  `json:"choices" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (r *AddItemRequest) ToCommand() (commands.AddItemRequest, error) {
	kind := catalog.Kind(r.Kind)
	if !kind.IsValid() {
		return commands.AddItemRequest{}, errs.Wrapf(catalog.ErrUnknownKind, "kind %q", r.Kind)
	}
	return commands.AddItemRequest{
		Kind:     kind,
		Choices:  r.Choices,
		Quantity: r.Quantity,
	}, nil
}
