package commands

import (
	"rental-sales-api/internal/domain/pricelist"
	"rental-sales-api/internal/domain/product"
	"rental-sales-api/internal/domain/tax"
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/infra"
	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/readmodel"
)

// markRepoErr maps a repository failure onto the domain error taxonomy:
// not-found gets the given sentinel, everything else is a database
// failure.
func markRepoErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func toDomainProduct(rm *readmodel.ProductRM) (*product.RentalProduct, error) {
	granularities := map[timeunit.Kind]product.Granularity{
		timeunit.KindHour:     {Enabled: rm.RentableByHour, VariantID: rm.HourVariantID, ListPrice: rm.PricePerHour},
		timeunit.KindDay:      {Enabled: rm.RentableByDay, VariantID: rm.DayVariantID, ListPrice: rm.PricePerDay},
		timeunit.KindMonth:    {Enabled: rm.RentableByMonth, VariantID: rm.MonthVariantID, ListPrice: rm.PricePerMonth},
		timeunit.KindInterval: {Enabled: rm.RentableByInt, VariantID: rm.IntVariantID, ListPrice: rm.PricePerInt},
	}
	return product.NewRentalProduct(
		rm.ID,
		rm.Name,
		rm.Rentable,
		rm.SaleOK,
		granularities,
		rm.MaxIntervalDays,
		rm.DefPriceListID,
	)
}

func toDomainPriceList(rm *readmodel.PriceListRM) (*pricelist.PriceList, error) {
	policy, err := pricelist.NewDiscountPolicy(rm.DiscountPolicy)
	if err != nil {
		return nil, err
	}
	return pricelist.NewPriceList(rm.ID, rm.Name, rm.Currency, rm.IntervalPricing, policy)
}

func toDomainRule(rm *readmodel.PriceRuleRM) (pricelist.Rule, error) {
	var unit *timeunit.Kind
	if rm.Unit != nil {
		k, err := timeunit.NewKind(*rm.Unit)
		if err != nil {
			return pricelist.Rule{}, err
		}
		unit = &k
	}
	return pricelist.NewRule(
		rm.ID,
		rm.PriceListID,
		rm.VariantID,
		unit,
		rm.MinQuantity,
		rm.DateStart,
		rm.DateEnd,
		rm.Priority,
		pricelist.ComputeMode(rm.ComputeMode),
		rm.FixedPrice,
		rm.PercentOff,
	)
}

func toDomainTaxes(rms []*readmodel.TaxRM) []tax.Tax {
	taxes := make([]tax.Tax, 0, len(rms))
	for _, rm := range rms {
		taxes = append(taxes, tax.Tax{
			ID:           rm.ID,
			Name:         rm.Name,
			Percent:      rm.Percent,
			PriceInclude: rm.PriceInclude,
		})
	}
	return taxes
}
