package response

import (
	"cafe-kiosk/internal/usecase/queries"
)

type MenuCategoryResponse struct {
	Position int                `json:"position"`
	Category string             `json:"category"`
	Title    string             `json:"title"`
	Items    []MenuItemResponse `json:"items"`
}

type MenuItemResponse struct {
	Position   int                 `json:"position"`
	Kind       string              `json:"kind"`
	Name       string              `json:"name"`
	BasePrice  string              `json:"base_price"`
	Dimensions []DimensionResponse `json:"dimensions"`
}

type DimensionResponse struct {
	Name    string           `json:"name"`
	Options []OptionResponse `json:"options"`
}

type OptionResponse struct {
	Position   int    `json:"position"`
	Label      string `json:"label"`
	PriceDelta string `json:"price_delta"`
}

func FromMenu(menu []queries.MenuCategoryView) ([]MenuCategoryResponse, error) {
	res := make([]MenuCategoryResponse, 0, len(menu))
	if err := copyInto(&res, &menu); err != nil {
		return nil, err
	}
	return res, nil
}
