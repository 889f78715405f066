package tenk

import (
	"math"
	"strings"
)

// KeyMetrics is the fixed metric taxonomy extracted per fiscal year. Fields
// are pointers: nil means the metric never matched a row in any table. All
// monetary values are in base currency units, never the "in thousands / in
// millions" scale the filing displays.
type KeyMetrics struct {
	Revenue             *float64 `json:"revenue"`
	CostOfRevenue       *float64 `json:"costOfRevenue"`
	GrossProfit         *float64 `json:"grossProfit"`
	OperatingExpenses   *float64 `json:"operatingExpenses"`
	ResearchDevelopment *float64 `json:"researchDevelopment"`
	SellingGeneralAdmin *float64 `json:"sellingGeneralAdmin"`
	OperatingIncome     *float64 `json:"operatingIncome"`
	NetIncome           *float64 `json:"netIncome"`
	TotalAssets         *float64 `json:"totalAssets"`
	TotalLiabilities    *float64 `json:"totalLiabilities"`
	StockholdersEquity  *float64 `json:"stockholdersEquity"`
	CashAndEquivalents  *float64 `json:"cashAndEquivalents"`
	OperatingCashFlow   *float64 `json:"operatingCashFlow"`
}

// metricField pairs a wire name with an accessor, so merge and provenance
// code can walk the taxonomy without reflection.
type metricField struct {
	name string
	get  func(*KeyMetrics) **float64
}

var metricFields = []metricField{
	{"revenue", func(m *KeyMetrics) **float64 { return &m.Revenue }},
	{"costOfRevenue", func(m *KeyMetrics) **float64 { return &m.CostOfRevenue }},
	{"grossProfit", func(m *KeyMetrics) **float64 { return &m.GrossProfit }},
	{"operatingExpenses", func(m *KeyMetrics) **float64 { return &m.OperatingExpenses }},
	{"researchDevelopment", func(m *KeyMetrics) **float64 { return &m.ResearchDevelopment }},
	{"sellingGeneralAdmin", func(m *KeyMetrics) **float64 { return &m.SellingGeneralAdmin }},
	{"operatingIncome", func(m *KeyMetrics) **float64 { return &m.OperatingIncome }},
	{"netIncome", func(m *KeyMetrics) **float64 { return &m.NetIncome }},
	{"totalAssets", func(m *KeyMetrics) **float64 { return &m.TotalAssets }},
	{"totalLiabilities", func(m *KeyMetrics) **float64 { return &m.TotalLiabilities }},
	{"stockholdersEquity", func(m *KeyMetrics) **float64 { return &m.StockholdersEquity }},
	{"cashAndEquivalents", func(m *KeyMetrics) **float64 { return &m.CashAndEquivalents }},
	{"operatingCashFlow", func(m *KeyMetrics) **float64 { return &m.OperatingCashFlow }},
}

// metricRule maps a row-label predicate to a taxonomy slot. Rules are
// evaluated in order; the first match wins for a row.
type metricRule struct {
	field string
	match func(label string) bool
}

func contains(label string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(label, s) {
			return true
		}
	}
	return false
}

// Rule tables per statement type. Labels arrive lowercased and trimmed.
// Negative conditions keep partial lines (per-segment "net sales" rows,
// "total liabilities and stockholders' equity") out of the wrong slot.
var incomeRules = []metricRule{
	{"revenue", func(l string) bool {
		return strings.Contains(l, "net sales") && !strings.Contains(l, "cost")
	}},
	{"costOfRevenue", func(l string) bool {
		return contains(l, "cost of sales", "cost of revenue", "cost of products and services")
	}},
	{"grossProfit", func(l string) bool {
		return contains(l, "gross margin", "gross profit")
	}},
	{"researchDevelopment", func(l string) bool {
		return contains(l, "research and development", "research & development")
	}},
	{"sellingGeneralAdmin", func(l string) bool {
		return contains(l, "selling, general and administrative", "sales, general and administrative")
	}},
	{"operatingExpenses", func(l string) bool {
		return strings.Contains(l, "total operating expenses") && !strings.Contains(l, "income")
	}},
	{"operatingIncome", func(l string) bool {
		return contains(l, "operating income", "income from operations") && !strings.Contains(l, "non-operating")
	}},
	{"netIncome", func(l string) bool {
		return strings.HasPrefix(l, "net income") && !contains(l, "basic", "diluted")
	}},
}

var balanceRules = []metricRule{
	{"totalAssets", func(l string) bool {
		return strings.Contains(l, "total assets") && !strings.Contains(l, "liabilities")
	}},
	{"totalLiabilities", func(l string) bool {
		return strings.Contains(l, "total liabilities")
	}},
	{"stockholdersEquity", func(l string) bool {
		return contains(l, "total stockholders", "total shareholders")
	}},
	{"cashAndEquivalents", func(l string) bool {
		return strings.Contains(l, "cash and cash equivalents") && !strings.Contains(l, "restricted")
	}},
}

var cashFlowRules = []metricRule{
	{"operatingCashFlow", func(l string) bool {
		return contains(l, "net cash provided by operating activities", "net cash from operating activities")
	}},
}

func rulesFor(stmt StatementType) []metricRule {
	switch stmt {
	case StatementIncome:
		return incomeRules
	case StatementBalance:
		return balanceRules
	case StatementCashFlow:
		return cashFlowRules
	}
	return nil
}

// classifyRow matches a row label against the statement's rule table and
// stores the value under the single-table precedence rule: an empty slot
// takes any value, a filled slot only yields to a strictly larger magnitude.
// Tables repeat keywords across partial and total lines ("net sales" per
// product category plus a total); larger-magnitude-wins favors the total.
// Returns the slot name when the value was stored.
func classifyRow(metrics *KeyMetrics, stmt StatementType, label string, value float64) (string, bool) {
	label = strings.TrimSpace(strings.ToLower(label))
	for _, rule := range rulesFor(stmt) {
		if !rule.match(label) {
			continue
		}
		slot := fieldByName(metrics, rule.field)
		if *slot == nil || math.Abs(value) > math.Abs(**slot) {
			v := value
			*slot = &v
			return rule.field, true
		}
		return rule.field, false
	}
	return "", false
}

func fieldByName(m *KeyMetrics, name string) **float64 {
	for _, f := range metricFields {
		if f.name == name {
			return f.get(m)
		}
	}
	return nil
}
