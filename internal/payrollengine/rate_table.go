package payrollengine

import "math"

// Statutory payroll rates for the Dominican Republic, per TSS (Tesoreria de la
// Seguridad Social). Tax law changes ship as a new deployment, so these are
// compiled in rather than configurable.
const (
	EmployeeSFSRate = 0.0304 // health insurance, employee share
	EmployeeAFPRate = 0.0287 // pension fund, employee share
	EmployerSFSRate = 0.0709
	EmployerAFPRate = 0.0710
	EmployerSRLRate = 0.0110 // occupational risk, 1.1% average category
	InfotepRate     = 0.0100 // technical training levy
)

// TaxBracket is one band of the DGII progressive ISR schedule. Base is the
// cumulative tax owed at Lower, which keeps the schedule continuous across
// bracket boundaries.
type TaxBracket struct {
	Lower    float64 // annual taxable income where the band starts
	Upper    float64 // inclusive end of the band, +Inf for the top band
	Base     float64
	Marginal float64
}

// ISRBrackets is the DGII 2024 annual schedule. The bands partition [0, inf)
// with strictly increasing bounds; checked by TestISRBracketsPartition.
var ISRBrackets = []TaxBracket{
	{Lower: 0, Upper: 416220.00, Base: 0, Marginal: 0},
	{Lower: 416220.01, Upper: 624329.00, Base: 0, Marginal: 0.15},
	{Lower: 624329.01, Upper: 867123.00, Base: 31216.00, Marginal: 0.20},
	{Lower: 867123.01, Upper: math.Inf(1), Base: 79776.00, Marginal: 0.25},
}
