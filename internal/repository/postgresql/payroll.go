package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollRecordColumns = `
	id, employee_id, employee_name, month, year,
	work_hours, working_days, overtime_hours, status_counts,
	tenure_years, tenure_months, tenure_days, daily_base_salary,
	base_salary, housing_allowance, worker_voucher, child_allowance,
	seniority_pay, marriage_allowance, overtime_pay,
	tax_deduction, insurance_deduction, deficits_total,
	total_earnings, total_deductions, net_pay,
	status, approved_at, created_at`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var (
		r            payroll.Record
		statusCounts []byte
	)
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.EmployeeName, &r.Month, &r.Year,
		&r.WorkHours, &r.WorkingDays, &r.OvertimeHours, &statusCounts,
		&r.Tenure.Years, &r.Tenure.Months, &r.Tenure.Days, &r.DailyBaseSalary,
		&r.Earnings.BaseSalary, &r.Earnings.HousingAllowance, &r.Earnings.WorkerVoucher, &r.Earnings.ChildAllowance,
		&r.Earnings.SeniorityPay, &r.Earnings.MarriageAllowance, &r.Earnings.OvertimePay,
		&r.Deductions.Tax, &r.Deductions.Insurance, &r.Deductions.Deficits,
		&r.TotalEarnings, &r.TotalDeductions, &r.NetPay,
		&r.Status, &r.ApprovedAt, &r.CreatedAt,
	)
	if err != nil {
		return payroll.Record{}, err
	}

	r.StatusCounts = make(map[attendance.Status]int)
	if len(statusCounts) > 0 {
		if err := json.Unmarshal(statusCounts, &r.StatusCounts); err != nil {
			return payroll.Record{}, fmt.Errorf("failed to decode status counts: %w", err)
		}
	}
	return r, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	statusCounts, err := json.Marshal(record.StatusCounts)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to encode status counts: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, employee_name, month, year,
			work_hours, working_days, overtime_hours, status_counts,
			tenure_years, tenure_months, tenure_days, daily_base_salary,
			base_salary, housing_allowance, worker_voucher, child_allowance,
			seniority_pay, marriage_allowance, overtime_pay,
			tax_deduction, insurance_deduction, deficits_total,
			total_earnings, total_deductions, net_pay,
			status, approved_at
		)
		VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13,
			$14, $15, $16, $17,
			$18, $19, $20,
			$21, $22, $23,
			$24, $25, $26,
			$27, $28
		)
		RETURNING ` + payrollRecordColumns

	created, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.EmployeeName, record.Month, record.Year,
		record.WorkHours, record.WorkingDays, record.OvertimeHours, statusCounts,
		record.Tenure.Years, record.Tenure.Months, record.Tenure.Days, record.DailyBaseSalary,
		record.Earnings.BaseSalary, record.Earnings.HousingAllowance, record.Earnings.WorkerVoucher, record.Earnings.ChildAllowance,
		record.Earnings.SeniorityPay, record.Earnings.MarriageAllowance, record.Earnings.OvertimePay,
		record.Deductions.Tax, record.Deductions.Insurance, record.Deductions.Deficits,
		record.TotalEarnings, record.TotalDeductions, record.NetPay,
		record.Status, record.ApprovedAt,
	))
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to insert payroll record for employee %s: %w", record.EmployeeID, err)
	}
	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	record, err := scanPayrollRecord(q.QueryRow(ctx, `SELECT `+payrollRecordColumns+` FROM payroll_records WHERE id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return record, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	var (
		where []string
		args  []interface{}
	)
	if filter.Month != nil {
		args = append(args, *filter.Month)
		where = append(where, fmt.Sprintf("month = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		where = append(where, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("employee_id::text = $%d", len(args)))
	}

	query := `SELECT ` + payrollRecordColumns + ` FROM payroll_records`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY year DESC, month DESC, employee_name, approved_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		record, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
