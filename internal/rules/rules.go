// Package rules holds the immutable ruleset of the simulation: product and
// market definitions plus every parameter table consulted by the quarterly
// engine. Nothing in this package carries state.
package rules

// Product identifies one of the three manufactured product lines.
type Product int

const (
	Product1 Product = iota
	Product2
	Product3

	NumProducts = 3
)

// Products lists every product for range loops.
var Products = [NumProducts]Product{Product1, Product2, Product3}

func (p Product) String() string {
	names := [NumProducts]string{"Product 1", "Product 2", "Product 3"}
	if p < 0 || int(p) >= NumProducts {
		return "unknown product"
	}
	return names[p]
}

// Area identifies a sales territory. The three home areas share one price;
// Export carries its own.
type Area int

const (
	AreaSouth Area = iota
	AreaWest
	AreaNorth
	AreaExport

	NumAreas = 4
)

// Areas lists every sales area for range loops.
var Areas = [NumAreas]Area{AreaSouth, AreaWest, AreaNorth, AreaExport}

func (a Area) String() string {
	names := [NumAreas]string{"South", "West", "North", "Export"}
	if a < 0 || int(a) >= NumAreas {
		return "unknown area"
	}
	return names[a]
}

// Home reports whether the area sells at the home price.
func (a Area) Home() bool { return a != AreaExport }

// UnitGrid is a per-(product, area) matrix of unit counts: stock, backlog,
// schedules, sales and the like.
type UnitGrid [NumProducts][NumAreas]int

// Total sums every cell.
func (g UnitGrid) Total() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// ProductTotal sums one product's row across all areas.
func (g UnitGrid) ProductTotal(p Product) int {
	total := 0
	for _, v := range g[p] {
		total += v
	}
	return total
}

// AreaTotal sums one area's column across all products.
func (g UnitGrid) AreaTotal(a Area) int {
	total := 0
	for p := range g {
		total += g[p][a]
	}
	return total
}

// MoneyGrid is a per-(product, area) matrix of money amounts, used for the
// advertising channels.
type MoneyGrid [NumProducts][NumAreas]float64

// Total sums every cell.
func (g MoneyGrid) Total() float64 {
	total := 0.0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Role identifies an employee category for personnel-department cost tables.
type Role int

const (
	RoleSalesperson Role = iota
	RoleAssemblyWorker
	RoleMachinist

	NumRoles = 3
)

func (r Role) String() string {
	names := [NumRoles]string{"salesperson", "assembly worker", "machinist"}
	if r < 0 || int(r) >= NumRoles {
		return "unknown role"
	}
	return names[r]
}
