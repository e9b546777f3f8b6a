package beefdesk

import (
	"math"
	"math/rand"
)

// ScenarioEvent is one discrete market event the desk can switch on in a
// stress run. Impacts are percentage shocks on the index price and on
// demand.
type ScenarioEvent struct {
	ID           string
	Name         string
	Description  string
	Probability  float64
	PriceImpact  float64 // percent
	DemandImpact float64 // percent
	Active       bool
	Category     string // POLICY, SUPPLY or MACRO
}

// ScenarioCatalog is the set of events a simulation can draw from.
type ScenarioCatalog []ScenarioEvent

// Toggle flips one event's active flag, reporting false for an unknown id.
func (c ScenarioCatalog) Toggle(id string) bool {
	for i := range c {
		if c[i].ID == id {
			c[i].Active = !c[i].Active
			return true
		}
	}
	return false
}

// Active returns the switched-on events.
func (c ScenarioCatalog) Active() []ScenarioEvent {
	var out []ScenarioEvent
	for _, e := range c {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// PriceImpact sums the price shock of the active events, in percent.
func (c ScenarioCatalog) PriceImpact() float64 {
	total := 0.0
	for _, e := range c.Active() {
		total += e.PriceImpact
	}
	return total
}

// DemoScenarios returns the event catalog of the demo desk.
func DemoScenarios() ScenarioCatalog {
	return ScenarioCatalog{
		{
			ID:           "EVT-01",
			Name:         "保障措施落地 (Safeguard Implemented)",
			Description:  "11/26 政策确认，对进口牛肉加征关税。成本激增，现货价格短期脉冲式上涨。",
			Probability:  0.85,
			PriceImpact:  12.5,
			DemandImpact: -5.0,
			Category:     "POLICY",
		},
		{
			ID:           "EVT-02",
			Name:         "国产恐慌性抛售 (Domestic Panic)",
			Description:  "母牛存栏出清加速，国产牛肉价格崩盘，拖累进口冻品价格。",
			Probability:  0.30,
			PriceImpact:  -15.0,
			DemandImpact: 2.0,
			Category:     "SUPPLY",
		},
		{
			ID:           "EVT-03",
			Name:         "人民币汇率破7.3 (CNY Devaluation)",
			Description:  "美元走强，进口成本大幅上升，压缩贸易利润空间。",
			Probability:  0.45,
			PriceImpact:  3.5,
			DemandImpact: -2.0,
			Category:     "MACRO",
		},
		{
			ID:           "EVT-04",
			Name:         "美国取消巴西关税 (US Demand)",
			Description:  "巴西货源分流至美国，中国到港量减少，支撑价格。",
			Probability:  1.0,
			PriceImpact:  4.0,
			DemandImpact: 0,
			Active:       true,
			Category:     "SUPPLY",
		},
	}
}

// ProjectionPoint is one simulated day: the drift-only baseline, the
// shocked scenario path and its confidence band, CNY per kilogram.
type ProjectionPoint struct {
	Day      int
	Baseline float64
	Scenario float64
	Upper    float64
	Lower    float64
}

// projectionDays is the simulation horizon.
const projectionDays = 90

// shock parameters of the projection. The market prices a shock in over
// about two weeks rather than instantly.
const (
	baseDrift      = 0.05
	baseVolatility = 0.15
	noiseVol       = 0.25
	rampDays       = 15
)

// Project walks the index forward from the current price under the active
// events of the catalog. A nil source produces the noise-free path, which is
// what the tests and the deterministic reports use.
func Project(currentPrice float64, catalog ScenarioCatalog, rnd *rand.Rand) []ProjectionPoint {
	impact := catalog.PriceImpact() / 100
	out := make([]ProjectionPoint, 0, projectionDays+1)
	for i := 0; i <= projectionDays; i++ {
		t := float64(i) / 365
		baseline := currentPrice * math.Exp((baseDrift-0.5*baseVolatility*baseVolatility)*t)
		ramp := math.Min(1, float64(i)/rampDays)
		scenario := baseline * (1 + impact*ramp)

		noise := 0.0
		if rnd != nil {
			noise = (rnd.Float64() - 0.5) * noiseVol * math.Sqrt(t) * currentPrice * 0.5
		}
		out = append(out, ProjectionPoint{
			Day:      i,
			Baseline: baseline,
			Scenario: scenario + noise,
			Upper:    scenario * 1.1,
			Lower:    scenario * 0.9,
		})
	}
	return out
}

// StressPL estimates the mark-to-market hit on a position book if the
// active events play out in full.
func StressPL(positions Positions, catalog ScenarioCatalog) Money {
	impact := catalog.PriceImpact() / 100
	return positions.MarketValue().Mul(Q(impact))
}
