package catalog

import (
	"github.com/letybo/ordering/internal/domain/pricing"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
)

const (
	referenceListPrice        = 400
	referenceStep             = 6
	referenceCommitmentMonths = 4
)

// Reference returns the built-in price book, already validated
func Reference() *Catalog {
	c, err := New(referenceData())
	if err != nil {
		// reference data is fixed; a failure here is a programming error
		panic(err)
	}
	return c
}

func referenceData() Catalog {
	list := decimal.NewFromInt(referenceListPrice)

	tier := func(minQuantity int, price int64, discount int) pricing.Tier {
		return pricing.Tier{
			MinQuantity:     minQuantity,
			PricePerUnit:    decimal.NewFromInt(price),
			DiscountPercent: discount,
		}
	}

	plan := func(quantity int, price int64, description string) pricing.CommitmentPlan {
		p := decimal.NewFromInt(price)
		return pricing.CommitmentPlan{
			PlanQuantity:           quantity,
			PricePerUnit:           p,
			Description:            description,
			Savings:                pricing.ComputeSavings(quantity, p, list),
			CommitmentPeriodMonths: referenceCommitmentMonths,
		}
	}

	return Catalog{
		Currency:        "usd",
		ListPrice:       list,
		Step:            referenceStep,
		MinimumQuantity: 6,
		MaximumQuantity: 102,
		PricingStrategy: types.PricingStrategyTiered,
		Tiers: []pricing.Tier{
			tier(6, 375, 6),
			tier(12, 350, 13),
			tier(24, 325, 19),
			tier(36, 290, 28),
			tier(54, 275, 31),
			tier(102, 250, 38),
		},
		Plans: []pricing.CommitmentPlan{
			plan(36, 290, "Best for growing practices"),
			plan(54, 275, "Perfect for established practices"),
			plan(102, 250, "Ideal for high-volume practices"),
		},
		PlanResetPolicy: types.PlanResetMinimum,
	}
}

// ReferenceLinearCurve is the curve used by the package slider variant
func ReferenceLinearCurve() pricing.LinearCurve {
	return pricing.LinearCurve{
		MinQuantity: 6,
		MaxQuantity: 60,
		MinPrice:    decimal.NewFromInt(225),
		MaxPrice:    decimal.NewFromInt(350),
	}
}
