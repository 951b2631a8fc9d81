package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/report"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	gain    = color.New(color.FgGreen)
	loss    = color.New(color.FgRed)
)

func money(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

func signed(v float64) string {
	if v < 0 {
		return loss.Sprintf("%s", money(v))
	}
	return gain.Sprintf("%s", money(v))
}

// renderQuarter prints a one-line summary per company for the quarter.
func renderQuarter(year, quarter int, reports []*report.Report) {
	heading.Printf("Year %d Q%d\n", year, quarter)
	for _, r := range reports {
		fmt.Printf("  %-12s revenue %12s  net %12s  cash %12s  share %.2f\n",
			r.Company, money(r.Revenue), signed(r.NetProfit), money(r.Cash), r.SharePrice)
	}
}

// renderReport prints one company's headline quarterly figures.
func renderReport(r *report.Report) {
	heading.Printf("%s / Year %d Q%d\n", r.Company, r.Year, r.Quarter)
	fmt.Printf("  Revenue            %14s\n", money(r.Revenue))
	fmt.Printf("  Cost of sales      %14s\n", money(r.CostOfSales))
	fmt.Printf("  Gross profit       %14s\n", signed(r.GrossProfit))
	fmt.Printf("  Overheads          %14s\n", money(r.TotalOverheads))
	fmt.Printf("  Depreciation       %14s\n", money(r.Depreciation))
	fmt.Printf("  Tax                %14s\n", money(r.Tax))
	fmt.Printf("  Net profit         %14s\n", signed(r.NetProfit))
	fmt.Printf("  Dividends          %14s\n", money(r.Dividends))
	fmt.Printf("  Cash / OD / loan   %14s / %s / %s\n",
		money(r.Cash), money(r.Overdraft), money(r.Loan))
	fmt.Printf("  Net worth          %14s   Share price %.2f\n",
		money(r.NetWorth), r.SharePrice)
	fmt.Printf("  Units sold %d of %d ordered, %d rejected, capacity %.0f%%\n",
		r.Sales.Total(), r.Orders.Total(), r.Rejected.Total(), r.Usage.CapacityRatio*100)
	fmt.Println()
}
