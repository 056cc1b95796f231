// Package payslip renders approved payroll records as PDF documents.
package payslip

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type line struct {
	label  string
	amount decimal.Decimal
}

// Render returns the payslip of record as an A4 PDF
func Render(companyName string, record payroll.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %02d/%d", record.EmployeeName, record.Month, record.Year), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	title := "Payslip"
	if companyName != "" {
		title = companyName + " - Payslip"
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", record.EmployeeName, record.EmployeeID))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s %d", time.Month(record.Month), record.Year))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Tenure: %d years %d months %d days", record.Tenure.Years, record.Tenure.Months, record.Tenure.Days))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Working days: %d   Work hours: %s   Overtime hours: %s",
		record.WorkingDays, record.WorkHours.StringFixed(2), record.OvertimeHours.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Approved: %s", record.ApprovedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	section(pdf, "Earnings", []line{
		{"Base salary", record.Earnings.BaseSalary},
		{"Housing allowance", record.Earnings.HousingAllowance},
		{"Worker voucher", record.Earnings.WorkerVoucher},
		{"Child allowance", record.Earnings.ChildAllowance},
		{"Seniority pay", record.Earnings.SeniorityPay},
		{"Marriage allowance", record.Earnings.MarriageAllowance},
		{"Overtime pay", record.Earnings.OvertimePay},
	}, line{"Total earnings", record.TotalEarnings})

	section(pdf, "Deductions", []line{
		{"Tax", record.Deductions.Tax},
		{"Insurance", record.Deductions.Insurance},
		{"Deficits", record.Deductions.Deficits},
	}, line{"Total deductions", record.TotalDeductions})

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 9, "Net pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, record.NetPay.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, heading string, lines []line, total line) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		pdf.CellFormat(120, 7, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, l.amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 7, total.label, "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, total.amount.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(4)
}
