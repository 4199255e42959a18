package response

import (
	"cafe-kiosk/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// amounts leave the API as fixed two-decimal strings, never floats
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return formatAmount(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func copyInto(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(money.DisplayPlaces)
}
