package order

import (
	"time"

	"cafe-kiosk/internal/pkg/money"

	"github.com/shopspring/decimal"
)

const (
	DefaultSurchargeBlock = 30 * time.Minute
)

var DefaultSurchargePerBlock = money.FromInt(50)

// SurchargePolicy charges a flat fee for every complete block of stay.
// Elapsed time is floored to whole minutes first; partial blocks are free.
type SurchargePolicy struct {
	block    time.Duration
	perBlock decimal.Decimal
}

func NewSurchargePolicy(block time.Duration, perBlock decimal.Decimal) SurchargePolicy {
	if block < time.Minute {
		block = time.Minute
	}
	if perBlock.IsNegative() {
		perBlock = decimal.Zero
	}
	return SurchargePolicy{block: block, perBlock: perBlock}
}

func DefaultSurchargePolicy() SurchargePolicy {
	return NewSurchargePolicy(DefaultSurchargeBlock, DefaultSurchargePerBlock)
}

func (p SurchargePolicy) Block() time.Duration      { return p.block }
func (p SurchargePolicy) PerBlock() decimal.Decimal { return p.perBlock }

// Blocks returns the number of complete blocks in elapsed. Negative durations count as zero.
func (p SurchargePolicy) Blocks(elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	return int64(elapsed.Truncate(time.Minute) / p.block)
}

func (p SurchargePolicy) For(elapsed time.Duration) decimal.Decimal {
	return p.perBlock.Mul(decimal.NewFromInt(p.Blocks(elapsed)))
}
