package service

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hindsightlabs/mortgage-irr/internal/finance"
	"github.com/hindsightlabs/mortgage-irr/internal/models"
	"github.com/hindsightlabs/mortgage-irr/internal/repository"
)

var hundred = decimal.NewFromInt(100)

// Service evaluates investments and their scenario variants.
type Service struct {
	cache repository.Cache
	log   *logrus.Logger
}

// NewService initializes a new service.
func NewService(cache repository.Cache, log *logrus.Logger) *Service {
	return &Service{cache: cache, log: log}
}

// Evaluate runs the base case and the seven fixed scenario variants for
// one parameter set, serving repeated parameter sets from the cache.
func (s *Service) Evaluate(params models.Parameters) (*models.Report, error) {
	key := cacheKey(params)
	if cached, ok := s.cache.Get(key); ok {
		report := &models.Report{}
		if err := json.Unmarshal([]byte(cached), report); err != nil {
			s.log.Warnf("Discarding unreadable cache entry %s: %v", key, err)
		} else {
			return report, nil
		}
	}

	baseIRR, cashStream, payment, err := s.run(params)
	if err != nil {
		return nil, err
	}
	report := &models.Report{
		BaseIRR:         toPercents(baseIRR),
		CashStream:      toAmounts(cashStream),
		MortgagePayment: payment,
	}

	highIRR, _, _, err := s.run(withAppreciationShift(params, appreciationStep))
	if err != nil {
		return nil, fmt.Errorf("high appreciation scenario: %w", err)
	}
	report.HighIRR = toPercents(highIRR)

	lowIRR, _, _, err := s.run(withAppreciationShift(params, appreciationStep.Neg()))
	if err != nil {
		return nil, fmt.Errorf("low appreciation scenario: %w", err)
	}
	report.LowIRR = toPercents(lowIRR)

	for _, sc := range driverScenarios {
		scenarioIRR, _, _, err := s.run(sc.apply(params))
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.name, err)
		}
		sc.assign(report, irrDelta(baseIRR, scenarioIRR))
	}

	s.store(key, report)
	return report, nil
}

// run builds the House/Mortgage/Investment triple and executes the
// engine.
func (s *Service) run(p models.Parameters) ([]finance.Rate, []decimal.Decimal, int64, error) {
	house, err := finance.NewHouse(p.Price, p.AppreciationRate, p.PropertyTaxRate, p.MaintenanceRate, p.InsuranceRate)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("house: %w", err)
	}
	mortgage, err := finance.NewMortgage(house, p.InterestRate, p.TermYears, p.DownPaymentPercent)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("mortgage: %w", err)
	}
	investment, err := finance.NewInvestment(house, mortgage, p.ClosingCostRate, p.AlternativeRent, p.RealtorCostRate, p.FederalTaxRate, p.StateTaxRate)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("investment: %w", err)
	}
	irrs, flows := investment.CashFlowsAndIRR()
	return irrs, flows, mortgage.MonthlyPayment().Round(0).IntPart(), nil
}

// irrDelta subtracts the scenario IRR from the base IRR for every year
// past year 0, in percentage points. An undefined rate on either side
// makes that year's delta null rather than an error.
func irrDelta(base, scenario []finance.Rate) []models.Percent {
	deltas := make([]models.Percent, 0, len(base)-1)
	for year := 1; year < len(base); year++ {
		if !base[year].Valid || !scenario[year].Valid {
			deltas = append(deltas, models.Percent{})
			continue
		}
		diff := base[year].Value.Sub(scenario[year].Value).Mul(hundred)
		deltas = append(deltas, models.NewPercent(diff))
	}
	return deltas
}

func toPercents(rates []finance.Rate) []models.Percent {
	out := make([]models.Percent, len(rates))
	for i, r := range rates {
		if r.Valid {
			out[i] = models.NewPercent(r.Value.Mul(hundred))
		}
	}
	return out
}

func toAmounts(flows []decimal.Decimal) []models.Amount {
	out := make([]models.Amount, len(flows))
	for i, f := range flows {
		out[i] = models.Amount{Decimal: f}
	}
	return out
}

// cacheKey hashes the canonical JSON form of the parameters.
// Parameters holds only decimals and an int, so marshaling cannot fail.
func cacheKey(params models.Parameters) string {
	b, _ := json.Marshal(params)
	return fmt.Sprintf("investment:%016x", xxhash.Sum64(b))
}

// store caches the report; failures are logged, never fatal.
func (s *Service) store(key string, report *models.Report) {
	b, err := json.Marshal(report)
	if err != nil {
		s.log.Warnf("Failed to marshal report for caching: %v", err)
		return
	}
	if err := s.cache.Set(key, string(b)); err != nil {
		s.log.Warnf("Failed to cache report: %v", err)
	}
}
