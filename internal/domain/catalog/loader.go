package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/letybo/ordering/internal/domain/pricing"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// fileCatalog is the YAML shape of a catalog. Prices are strings so they
// reach decimal without passing through float64.
type fileCatalog struct {
	Currency        string     `yaml:"currency"`
	ListPrice       string     `yaml:"list_price"`
	Step            int        `yaml:"step"`
	MinimumQuantity int        `yaml:"minimum_quantity"`
	MaximumQuantity int        `yaml:"maximum_quantity"`
	PricingStrategy string     `yaml:"pricing_strategy"`
	PlanResetPolicy string     `yaml:"plan_reset_policy"`
	Tiers           []fileTier `yaml:"tiers"`
	Plans           []filePlan `yaml:"plans"`
	Linear          *fileCurve `yaml:"linear"`
}

type fileTier struct {
	MinQuantity     int    `yaml:"min_quantity"`
	PricePerUnit    string `yaml:"price_per_unit"`
	DiscountPercent *int   `yaml:"discount_percent"`
}

type filePlan struct {
	PlanQuantity           int    `yaml:"plan_quantity"`
	PricePerUnit           string `yaml:"price_per_unit"`
	Description            string `yaml:"description"`
	Savings                string `yaml:"savings"`
	CommitmentPeriodMonths int    `yaml:"commitment_period_months"`
}

type fileCurve struct {
	MinQuantity int    `yaml:"min_quantity"`
	MaxQuantity int    `yaml:"max_quantity"`
	MinPrice    string `yaml:"min_price"`
	MaxPrice    string `yaml:"max_price"`
}

// LoadFile reads a YAML catalog from path and validates it
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not read catalog file %s", path).
			Mark(ierr.ErrSystem)
	}
	return Parse(b)
}

// Parse decodes a YAML catalog and validates it. Tier discounts and plan
// savings left out of the file are derived from prices; when present they
// must agree with them.
func Parse(b []byte) (*Catalog, error) {
	var raw fileCatalog
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Catalog file is not valid YAML").
			Mark(ierr.ErrDataIntegrity)
	}

	data, problems := raw.toCatalog()
	if len(problems) > 0 {
		return nil, ierr.NewError(fmt.Sprintf("catalog file invalid: %s", strings.Join(problems, "; "))).
			WithHint("Catalog file contains malformed values").
			WithReportableDetails(map[string]any{
				"problems": problems,
			}).
			Mark(ierr.ErrDataIntegrity)
	}
	return New(data)
}

func (f fileCatalog) toCatalog() (Catalog, []string) {
	var errs []string

	parse := func(field, value string) decimal.Decimal {
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q is not a decimal", field, value))
			return decimal.Zero
		}
		return d
	}

	c := Catalog{
		Currency:        f.Currency,
		ListPrice:       parse("list_price", f.ListPrice),
		Step:            f.Step,
		MinimumQuantity: f.MinimumQuantity,
		MaximumQuantity: f.MaximumQuantity,
		PricingStrategy: types.PricingStrategy(strings.ToUpper(f.PricingStrategy)),
		PlanResetPolicy: types.PlanResetPolicy(strings.ToUpper(f.PlanResetPolicy)),
	}
	if c.PricingStrategy == "" {
		c.PricingStrategy = types.PricingStrategyTiered
	}

	for i, t := range f.Tiers {
		price := parse(fmt.Sprintf("tiers[%d].price_per_unit", i), t.PricePerUnit)
		discount := pricing.ComputeDiscountPercent(price, c.ListPrice)
		if t.DiscountPercent != nil {
			discount = *t.DiscountPercent
		}
		c.Tiers = append(c.Tiers, pricing.Tier{
			MinQuantity:     t.MinQuantity,
			PricePerUnit:    price,
			DiscountPercent: discount,
		})
	}

	for i, p := range f.Plans {
		price := parse(fmt.Sprintf("plans[%d].price_per_unit", i), p.PricePerUnit)
		savings := pricing.ComputeSavings(p.PlanQuantity, price, c.ListPrice)
		if strings.TrimSpace(p.Savings) != "" {
			savings = parse(fmt.Sprintf("plans[%d].savings", i), p.Savings)
		}
		c.Plans = append(c.Plans, pricing.CommitmentPlan{
			PlanQuantity:           p.PlanQuantity,
			PricePerUnit:           price,
			Description:            p.Description,
			Savings:                savings,
			CommitmentPeriodMonths: p.CommitmentPeriodMonths,
		})
	}

	if f.Linear != nil {
		c.Linear = &pricing.LinearCurve{
			MinQuantity: f.Linear.MinQuantity,
			MaxQuantity: f.Linear.MaxQuantity,
			MinPrice:    parse("linear.min_price", f.Linear.MinPrice),
			MaxPrice:    parse("linear.max_price", f.Linear.MaxPrice),
		}
	}

	return c, errs
}
