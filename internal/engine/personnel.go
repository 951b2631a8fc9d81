package engine

import (
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// settlePersonnel is stage 1: dismissals queued last quarter leave, then
// everyone who cleared the two-quarter recruitment or training delay joins
// the active headcount.
func (r *run) settlePersonnel() {
	c := r.c

	c.Salespeople = max(0, c.Salespeople-c.SalesToDismiss)
	c.AssemblyWorkers = max(0, c.AssemblyWorkers-c.AssemblyToDismiss)
	c.SalesToDismiss = 0
	c.AssemblyToDismiss = 0

	c.Salespeople += c.SalesRecruits.Mature() + c.SalesTrainees.Mature()
	c.AssemblyWorkers += c.AssemblyRecruits.Mature() + c.AssemblyTrainees.Mature()
}

// decidePersonnel is stage 7: pay updates take effect, recruitment succeeds
// probabilistically and enters the two-quarter arrival pipeline, training
// enters it up to the per-category cap, dismissals queue for next quarter's
// settlement. The dismissed still work this quarter.
func (r *run) decidePersonnel() {
	c, rec := r.c, r.rec

	c.SalesSalary = rec.SalesSalary
	c.SalesCommissionRate = rec.SalesCommission
	c.AssemblyWageRate = rec.AssemblyWageRate

	unemploymentFactor := r.eco.Unemployment / rules.BaseUnemployment

	if rec.RecruitSales > 0 {
		wageRatio := c.SalesSalary / rules.MinSalesSalaryPerQuarter
		rate := min(0.9, 0.3+0.3*unemploymentFactor+0.2*wageRatio)
		recruited := int(float64(rec.RecruitSales)*rate + r.rng.Float())
		r.salesRecruited = min(recruited, rec.RecruitSales)
		c.SalesRecruits.Queue(r.salesRecruited)
	}
	if rec.RecruitAssembly > 0 {
		wageRatio := c.AssemblyWageRate / rules.AssemblyMinWageRate
		rate := min(0.9, 0.4+0.3*unemploymentFactor+0.2*wageRatio)
		recruited := int(float64(rec.RecruitAssembly)*rate + r.rng.Float())
		r.assemblyRecruited = min(recruited, rec.RecruitAssembly)
		c.AssemblyRecruits.Queue(r.assemblyRecruited)
	}

	r.salesTrained = min(rec.TrainSales, rules.MaxTraineesPerCategory)
	r.assemblyTrained = min(rec.TrainAssembly, rules.MaxTraineesPerCategory)
	c.SalesTrainees.Queue(r.salesTrained)
	c.AssemblyTrainees.Queue(r.assemblyTrained)

	r.salesDismissed = min(rec.DismissSales, c.Salespeople)
	r.assemblyDismissed = min(rec.DismissAssembly, c.AssemblyWorkers)
	c.SalesToDismiss = r.salesDismissed
	c.AssemblyToDismiss = r.assemblyDismissed
}

// personnelCosts sums the personnel-department charges for stage 11.
func (r *run) personnelCosts() float64 {
	return float64(r.salesRecruited)*rules.RecruitmentCost[rules.RoleSalesperson] +
		float64(r.assemblyRecruited)*rules.RecruitmentCost[rules.RoleAssemblyWorker] +
		float64(r.salesDismissed)*rules.DismissalCost[rules.RoleSalesperson] +
		float64(r.assemblyDismissed)*rules.DismissalCost[rules.RoleAssemblyWorker] +
		float64(r.salesTrained)*rules.TrainingCost[rules.RoleSalesperson] +
		float64(r.assemblyTrained)*rules.TrainingCost[rules.RoleAssemblyWorker]
}
