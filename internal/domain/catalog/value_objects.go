package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Option struct {
	label      string
	priceDelta decimal.Decimal
}

func NewOption(label string, priceDelta decimal.Decimal) Option {
	return Option{label: label, priceDelta: priceDelta}
}

func (o Option) Label() string               { return o.label }
func (o Option) PriceDelta() decimal.Decimal { return o.priceDelta }

// Dimension is one independent choice axis of an entry, such as size or flavor.
type Dimension struct {
	name    string
	options []Option
}

func NewDimension(name string, options ...Option) Dimension {
	return Dimension{name: name, options: options}
}

func labelsOnly(name string, labels ...string) Dimension {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = NewOption(l, decimal.Zero)
	}
	return NewDimension(name, opts...)
}

func (d Dimension) Name() string { return d.name }

func (d Dimension) Options() []Option {
	out := make([]Option, len(d.options))
	copy(out, d.options)
	return out
}

func (d Dimension) Len() int { return len(d.options) }

// Pick returns the option at a 1-based menu choice.
func (d Dimension) Pick(choice int) (Option, bool) {
	if choice < 1 || choice > len(d.options) {
		return Option{}, false
	}
	return d.options[choice-1], true
}

// ConfiguredItem is a catalog entry resolved with concrete variation choices.
// Two items with the same DisplayIdentity are the same order line.
type ConfiguredItem struct {
	baseName       string
	resolvedPrice  decimal.Decimal
	variationLabel string
}

func NewConfiguredItem(baseName string, resolvedPrice decimal.Decimal, variationLabel string) ConfiguredItem {
	return ConfiguredItem{
		baseName:       baseName,
		resolvedPrice:  resolvedPrice,
		variationLabel: strings.TrimSpace(variationLabel),
	}
}

func (c ConfiguredItem) BaseName() string               { return c.baseName }
func (c ConfiguredItem) ResolvedPrice() decimal.Decimal { return c.resolvedPrice }
func (c ConfiguredItem) VariationLabel() string         { return c.variationLabel }
func (c ConfiguredItem) HasVariation() bool             { return c.variationLabel != "" }

func (c ConfiguredItem) DisplayIdentity() string {
	if !c.HasVariation() {
		return c.baseName
	}
	return c.baseName + " (" + c.variationLabel + ")"
}
