// Package payrollengine converts a gross monthly salary into the statutory
// employee deductions and employer contributions mandated by TSS and DGII.
// Everything here is pure arithmetic over the compiled-in rate table.
package payrollengine

// Deductions is the full statutory breakdown for one gross monthly salary.
// Employee-side amounts reduce net pay; employer-side amounts are paid on top
// of gross and never netted against the employee.
type Deductions struct {
	SFS         float64 // employee health insurance
	AFP         float64 // employee pension
	ISR         float64 // monthly income tax
	EmployerSFS float64
	EmployerAFP float64
	EmployerSRL float64
	Infotep     float64
}

// TotalEmployee is the sum withheld from the employee's pay.
func (d Deductions) TotalEmployee() float64 {
	return d.SFS + d.AFP + d.ISR
}

// Compute calculates the statutory breakdown for a gross monthly salary.
// Callers validate the input upstream; any finite non-negative gross produces
// non-negative outputs.
func Compute(gross float64) Deductions {
	sfs := gross * EmployeeSFSRate
	afp := gross * EmployeeAFPRate

	// ISR is assessed on income net of TSS contributions, not on gross.
	// The ordering is mandated by DGII.
	taxableMonthly := gross - (sfs + afp)
	isr := AnnualISR(taxableMonthly*12) / 12

	return Deductions{
		SFS:         sfs,
		AFP:         afp,
		ISR:         isr,
		EmployerSFS: gross * EmployerSFSRate,
		EmployerAFP: gross * EmployerAFPRate,
		EmployerSRL: gross * EmployerSRLRate,
		Infotep:     gross * InfotepRate,
	}
}

// AnnualISR applies the progressive schedule to an annual taxable income.
// The band is the unique one whose Upper bound is not exceeded; tax is the
// band's cumulative base plus the marginal rate on the excess over its start.
func AnnualISR(taxableAnnual float64) float64 {
	for _, b := range ISRBrackets {
		if taxableAnnual <= b.Upper {
			tax := b.Base + (taxableAnnual-b.Lower)*b.Marginal
			// Incomes inside the one-cent gap between an Upper bound and the
			// next Lower bound would otherwise produce a negative excess.
			if tax < 0 {
				return 0
			}
			return tax
		}
	}
	return 0
}
