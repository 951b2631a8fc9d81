package engine

import (
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// deliverMaterials is stage 3: every material order due this quarter delivers.
// Immediate and weekly suppliers deliver the whole quantity in one lump; the
// multiple-delivery suppliers deliver an even split per declared delivery.
// Cost uses the price locked in at order time, less the supplier discount,
// plus the delivery charge.
func (r *run) deliverMaterials() {
	c := r.c
	r.materialOpening = c.MaterialStock

	for _, mo := range c.MaterialOrders {
		if mo.Delivered || mo.DeliveryQuarter != r.eco.Quarter || mo.DeliveryYear != r.eco.Year {
			continue
		}
		sup := rules.Suppliers[mo.Supplier]

		qty := mo.Quantity
		if sup.Mode == rules.DeliverMultiple && mo.Deliveries > 0 {
			qty = mo.Quantity / float64(mo.Deliveries)
		}

		base := qty * mo.PricePer1000 / 1000
		r.materialCost += base*(1-sup.Discount) + sup.DeliveryCharge
		r.materialDelivered += qty
		mo.Delivered = true
	}

	c.MaterialStock += r.materialDelivered

	for _, mo := range c.MaterialOrders {
		if !mo.Delivered {
			r.materialOnOrder += mo.Quantity
		}
	}
}

// intakeOrders is stage 6: record this quarter's new material and machine
// orders. A material order below the supplier's minimum is dropped silently;
// a machine order is clamped to what creditworthiness can cover, with the
// deposit paid at order time.
func (r *run) intakeOrders() {
	c, rec, eco := r.c, r.rec, r.eco

	if rec.MaterialQuantity > 0 {
		sup := rules.Suppliers[rec.MaterialSupplier]
		if rec.MaterialQuantity >= sup.MinOrder {
			deliveries := rec.MaterialDeliveries
			switch sup.Mode {
			case rules.DeliverJustInTime:
				deliveries = 0
			case rules.DeliverWeekly:
				deliveries = rules.WeeklyDeliveries
			default:
				deliveries = max(deliveries, 1)
			}
			dq, dy := quartersAhead(eco.Quarter, eco.Year, 2)
			c.MaterialOrders = append(c.MaterialOrders, &company.MaterialOrder{
				Quantity:        rec.MaterialQuantity,
				Supplier:        rec.MaterialSupplier,
				Deliveries:      deliveries,
				OrderQuarter:    eco.Quarter,
				OrderYear:       eco.Year,
				DeliveryQuarter: dq,
				DeliveryYear:    dy,
				PricePer1000:    eco.MaterialPrice,
			})
			r.materialOrderMade = true
			r.materialOnOrder += rec.MaterialQuantity
		}
	}

	if rec.MachinesToOrder > 0 {
		affordable := int(c.Creditworthiness(eco.MaterialPrice) / rules.MachineDeposit)
		r.machinesOrdered = min(rec.MachinesToOrder, affordable)
		if r.machinesOrdered > 0 {
			iq, iy := quartersAhead(eco.Quarter, eco.Year, 2)
			aq, _ := quartersAhead(eco.Quarter, eco.Year, 3)
			c.MachineOrders = append(c.MachineOrders, &company.MachineOrder{
				Quantity:         r.machinesOrdered,
				OrderQuarter:     eco.Quarter,
				OrderYear:        eco.Year,
				InstallQuarter:   iq,
				InstallYear:      iy,
				AvailableQuarter: aq,
				DepositPaid:      true,
			})
			r.capitalPayments += float64(r.machinesOrdered) * rules.MachineDeposit
		}
	}
}

// consumeMaterials is stage 9: required material is the scheduled build
// scaled by the capacity ratio, consumption is capped at what is on hand.
func (r *run) consumeMaterials() {
	c, rec := r.c, r.rec

	required := 0.0
	for _, p := range rules.Products {
		required += float64(rec.Deliveries.ProductTotal(p)) * rules.MaterialPerUnit[p]
	}
	r.materialUsed = min(c.MaterialStock, required*r.capacityRatio)
	c.MaterialStock -= r.materialUsed
}

// quartersAhead advances a quarter/year pair by n quarters.
func quartersAhead(quarter, year, n int) (int, int) {
	quarter += n
	for quarter > 4 {
		quarter -= 4
		year++
	}
	return quarter, year
}
