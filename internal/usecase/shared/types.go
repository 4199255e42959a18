package shared

import (
	"cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/pkg/config"
)

// NewSurchargePolicy builds the stay surcharge from kiosk settings.
// Config.Validate has already rejected unparsable or negative fees.
func NewSurchargePolicy(cfg config.Config) (order.SurchargePolicy, error) {
	perBlock, err := cfg.Kiosk.PerBlock()
	if err != nil {
		return order.SurchargePolicy{}, err
	}
	return order.NewSurchargePolicy(cfg.Kiosk.SurchargeBlock, perBlock), nil
}
