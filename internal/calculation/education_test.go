package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/domain"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

func testEducationConfig() *domain.Configuration {
	return &domain.Configuration{
		StartYear: 2026,
		Beneficiaries: []domain.Beneficiary{
			{BirthYear: 2018, StartingBalance: decimal.NewFromInt(20000), AnnualContribution: decimal.NewFromInt(6000)},
			{BirthYear: 2021, StartingBalance: decimal.NewFromInt(10000), AnnualContribution: decimal.NewFromInt(3000)},
		},
		EducationGrowthRate:    decimal.NewFromFloat(0.05),
		CollegeCostAnnual:      decimal.NewFromInt(35000),
		CollegeStartAge:        18,
		EducationCutoffAge:     22,
		EducationInflationRate: decimal.NewFromFloat(0.04),
	}
}

func TestAdvanceEducationYear_GrowthAndContribution(t *testing.T) {
	cfg := testEducationConfig()
	balances := NewEducationBalances(cfg)
	bigCap := dec.NewMoneyFromInt(1000000)

	next, flows := AdvanceEducationYear(cfg, balances, 2026, bigCap)

	// Uncapped: each account grows 5% then takes its full contribution.
	first, _ := next[0].Float64()
	assert.InDelta(t, 20000*1.05+6000, first, 0.01)
	second, _ := next[1].Float64()
	assert.InDelta(t, 10000*1.05+3000, second, 0.01)

	contrib, _ := flows.Contributions.Float64()
	assert.InDelta(t, 9000, contrib, 0.01)
	assert.True(t, flows.Costs.IsZero(), "no beneficiary is college-age in 2026")
	assert.True(t, flows.Shortfall.IsZero())

	// Input slice untouched.
	orig, _ := balances[0].Float64()
	assert.InDelta(t, 20000, orig, 0.001)
}

func TestAdvanceEducationYear_ContributionCapSplitsProportionally(t *testing.T) {
	cfg := testEducationConfig()
	balances := NewEducationBalances(cfg)

	// Cap of 4500 against 9000 desired: each account gets half its ask.
	_, flows := AdvanceEducationYear(cfg, balances, 2026, dec.NewMoneyFromInt(4500))
	contrib, _ := flows.Contributions.Float64()
	assert.InDelta(t, 4500, contrib, 0.01)

	// A negative cap (deficit year) means no contributions at all.
	next, flows := AdvanceEducationYear(cfg, balances, 2026, dec.NewMoneyFromInt(-100))
	assert.True(t, flows.Contributions.IsZero())
	grown, _ := next[0].Float64()
	assert.InDelta(t, 20000*1.05, grown, 0.01, "growth still applies in deficit years")
}

func TestAdvanceEducationYear_CostDrawAndShortfall(t *testing.T) {
	cfg := testEducationConfig()
	// First beneficiary turns 18 in 2036.
	year := 2036
	cost, _ := CollegeCostForYear(cfg, year).Float64()
	assert.InDelta(t, 35000*1.480244, cost, 1) // (1.04)^10

	// Plenty of balance: the draw comes out of the account.
	rich := []dec.Money{dec.NewMoneyFromInt(200000), dec.NewMoneyFromInt(10000)}
	next, flows := AdvanceEducationYear(cfg, rich, year, dec.Zero())
	require.True(t, flows.Shortfall.IsZero())
	drawn, _ := next[0].Float64()
	assert.InDelta(t, 200000*1.05-cost, drawn, 1)

	// Nearly empty account: balance floors at zero, the rest is shortfall.
	poor := []dec.Money{dec.NewMoneyFromInt(1000), dec.NewMoneyFromInt(10000)}
	next, flows = AdvanceEducationYear(cfg, poor, year, dec.Zero())
	assert.True(t, next[0].IsZero(), "balance never goes negative")
	short, _ := flows.Shortfall.Float64()
	assert.InDelta(t, cost-1000*1.05, short, 1)
}

func TestAdvanceEducationYear_FreezesAtCutoff(t *testing.T) {
	cfg := testEducationConfig()
	// First beneficiary is 22 in 2040: frozen.
	balances := []dec.Money{dec.NewMoneyFromInt(5000), dec.NewMoneyFromInt(10000)}

	next, _ := AdvanceEducationYear(cfg, balances, 2040, dec.NewMoneyFromInt(1000000))
	assert.True(t, next[0].Equal(balances[0]), "frozen account must not grow or receive contributions")
	assert.True(t, next[1].GreaterThan(balances[1]), "younger sibling's account is still active")
}

func TestEducationShortfallReserve(t *testing.T) {
	cfg := testEducationConfig()

	// Fully funded accounts project no reserve.
	rich := []dec.Money{dec.NewMoneyFromInt(500000), dec.NewMoneyFromInt(500000)}
	assert.True(t, EducationShortfallReserve(cfg, rich, 2026).IsZero())

	// Empty accounts with zero contributions must reserve every cost year.
	noContrib := testEducationConfig()
	noContrib.Beneficiaries[0].AnnualContribution = decimal.Zero
	noContrib.Beneficiaries[1].AnnualContribution = decimal.Zero
	empty := []dec.Money{dec.Zero(), dec.Zero()}

	reserve := EducationShortfallReserve(noContrib, empty, 2026)
	assert.True(t, reserve.IsPositive())

	// Eight college years across the two beneficiaries, all unfunded.
	total := dec.Zero()
	for _, b := range noContrib.Beneficiaries {
		for age := noContrib.CollegeStartAge; age < noContrib.EducationCutoffAge; age++ {
			total = total.Add(CollegeCostForYear(noContrib, b.BirthYear+age))
		}
	}
	got, _ := reserve.Float64()
	want, _ := total.Float64()
	assert.InDelta(t, want, got, 0.01)

	// The reserve shrinks as the outer year advances past cost years.
	later := EducationShortfallReserve(noContrib, empty, 2038)
	assert.True(t, later.LessThan(reserve))
}

func TestEducationOverfunded(t *testing.T) {
	cfg := testEducationConfig()
	balances := []dec.Money{dec.NewMoneyFromInt(5000), dec.Zero()}

	assert.False(t, EducationOverfunded(cfg, balances, 2030), "still active in 2030")
	assert.True(t, EducationOverfunded(cfg, balances, 2045), "positive balance after cutoff")

	drained := []dec.Money{dec.Zero(), dec.Zero()}
	assert.False(t, EducationOverfunded(cfg, drained, 2045))
}
