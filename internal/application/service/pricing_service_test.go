package service

import (
	"testing"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiGroup(id string, quantities ...int) entity.SelectedGroup {
	g := entity.SelectedGroup{OptionID: id, Kind: enum.OptionMulti}
	for i, q := range quantities {
		g.Choices = append(g.Choices, entity.Choice{ID: i + 1, Name: "choice", Quantity: q})
	}
	return g
}

func TestEffectiveQuantity_SumsMultiChoices(t *testing.T) {
	s := NewPricingService()

	selections := map[string]entity.SelectedGroup{
		"opt1": multiGroup("opt1", 2, 3),
		"opt2": multiGroup("opt2", 1),
	}

	assert.Equal(t, 6, s.EffectiveQuantity(selections))
}

func TestEffectiveQuantity_ZeroSumFallsBackToOne(t *testing.T) {
	s := NewPricingService()

	selections := map[string]entity.SelectedGroup{
		"opt1": multiGroup("opt1", 0, 0),
	}

	assert.Equal(t, 1, s.EffectiveQuantity(selections))
}

func TestEffectiveQuantity_SingleGroupsIgnoreStoredQuantity(t *testing.T) {
	s := NewPricingService()

	selections := map[string]entity.SelectedGroup{
		"cycle": {
			OptionID: "cycle",
			Kind:     enum.OptionSingle,
			Choices:  []entity.Choice{{ID: 1, Name: "Medio", Quantity: 4}},
		},
	}

	assert.Equal(t, 1, s.EffectiveQuantity(selections))
}

func TestEffectiveQuantity_EmptySelections(t *testing.T) {
	s := NewPricingService()

	assert.Equal(t, 1, s.EffectiveQuantity(nil))
	assert.Equal(t, 1, s.EffectiveQuantity(map[string]entity.SelectedGroup{}))
}

func TestPriceLine_ChoicePriceAddedOncePerChoice(t *testing.T) {
	s := NewPricingService()

	// A $20 choice with internal quantity 2 adds $20 once to the unit
	// price; the 2 only shows up through the extended price.
	selections := map[string]entity.SelectedGroup{
		"opt1": {
			OptionID: "opt1",
			Kind:     enum.OptionMulti,
			Choices: []entity.Choice{
				{ID: 1, Name: "Alto", UnitPrice: decimal.NewFromInt(20), Quantity: 2},
			},
		},
	}

	priced, err := s.PriceLine(decimal.NewFromInt(100), selections)
	require.NoError(t, err)

	assert.True(t, priced.UnitPrice.Equal(decimal.NewFromInt(120)), "unit price = %s", priced.UnitPrice)
	assert.Equal(t, 2, priced.Quantity)
	assert.True(t, priced.ExtendedPrice.Equal(decimal.NewFromInt(240)), "extended price = %s", priced.ExtendedPrice)
}

func TestPriceLine_SingleChoicesPriceButDoNotMultiply(t *testing.T) {
	s := NewPricingService()

	selections := map[string]entity.SelectedGroup{
		"cycle": {
			OptionID: "cycle",
			Kind:     enum.OptionSingle,
			Choices:  []entity.Choice{{ID: 1, Name: "Delicado", UnitPrice: decimal.NewFromInt(15), Quantity: 3}},
		},
	}

	priced, err := s.PriceLine(decimal.NewFromInt(50), selections)
	require.NoError(t, err)

	assert.True(t, priced.UnitPrice.Equal(decimal.NewFromInt(65)))
	assert.Equal(t, 1, priced.Quantity)
	assert.True(t, priced.ExtendedPrice.Equal(decimal.NewFromInt(65)))
}

func TestPriceLine_NoSelections(t *testing.T) {
	s := NewPricingService()

	priced, err := s.PriceLine(decimal.NewFromInt(80), nil)
	require.NoError(t, err)

	assert.True(t, priced.UnitPrice.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 1, priced.Quantity)
	assert.True(t, priced.ExtendedPrice.Equal(decimal.NewFromInt(80)))
}

func TestPriceLine_NegativeBasePrice(t *testing.T) {
	s := NewPricingService()

	_, err := s.PriceLine(decimal.NewFromInt(-1), nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestPriceLine_NegativeChoicePrice(t *testing.T) {
	s := NewPricingService()

	selections := map[string]entity.SelectedGroup{
		"opt1": {
			OptionID: "opt1",
			Kind:     enum.OptionMulti,
			Choices:  []entity.Choice{{ID: 1, Name: "Descuento", UnitPrice: decimal.NewFromInt(-5), Quantity: 1}},
		},
	}

	_, err := s.PriceLine(decimal.NewFromInt(100), selections)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
