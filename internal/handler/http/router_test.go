package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct{}

func (fakeEmployeeService) ListActive(context.Context) ([]employee.EmployeeResponse, error) {
	return []employee.EmployeeResponse{{ID: "e1"}, {ID: "e2"}}, nil
}

func (fakeEmployeeService) GetEmployee(_ context.Context, id string) (employee.EmployeeResponse, error) {
	if id != "e1" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.EmployeeResponse{ID: id, FullName: "Budi"}, nil
}

type fakeSalaryLawService struct {
	upserted salarylaw.UpsertSalaryLawRequest
}

func (f *fakeSalaryLawService) GetSalaryLaw(_ context.Context, year int) (salarylaw.SalaryLawResponse, error) {
	if year != 2024 {
		return salarylaw.SalaryLawResponse{}, fmt.Errorf("year %d: %w", year, salarylaw.ErrSalaryLawNotFound)
	}
	return salarylaw.SalaryLawResponse{Year: year}, nil
}

func (f *fakeSalaryLawService) ListSalaryLaws(context.Context) ([]salarylaw.SalaryLawResponse, error) {
	return nil, nil
}

func (f *fakeSalaryLawService) UpsertSalaryLaw(_ context.Context, req salarylaw.UpsertSalaryLawRequest) (salarylaw.SalaryLawResponse, error) {
	f.upserted = req
	return salarylaw.SalaryLawResponse{Year: req.Year, BaseSalary: req.BaseSalary}, nil
}

type fakeAttendanceService struct {
	upserted attendance.UpsertDayRequest
}

func (f *fakeAttendanceService) GetMonth(_ context.Context, employeeID string, year, month int) (attendance.MonthResponse, error) {
	if month > 12 {
		return attendance.MonthResponse{}, attendance.ErrInvalidPeriod
	}
	return attendance.MonthResponse{EmployeeID: employeeID, Year: year, Month: month}, nil
}

func (f *fakeAttendanceService) UpsertDay(_ context.Context, req attendance.UpsertDayRequest) (attendance.DayResponse, error) {
	f.upserted = req
	return attendance.DayResponse{Day: req.Day, Status: attendance.Status(req.Status), Recorded: true}, nil
}

type fakeLeaveService struct {
	upserted leave.UpsertEntitlementRequest
}

func (f *fakeLeaveService) GetAccrual(_ context.Context, employeeID string, year int) (leave.AccrualResponse, error) {
	return leave.AccrualResponse{EmployeeID: employeeID, Year: year}, nil
}

func (f *fakeLeaveService) GetAccrualTotals(_ context.Context, year int) (leave.AccrualTotalsResponse, error) {
	return leave.AccrualTotalsResponse{Year: year, Records: []leave.AccrualResponse{{EmployeeID: "e1"}}}, nil
}

func (f *fakeLeaveService) UpsertEntitlement(_ context.Context, req leave.UpsertEntitlementRequest) (leave.EntitlementResponse, error) {
	f.upserted = req
	return leave.EntitlementResponse{EmployeeID: req.EmployeeID, Year: req.Year}, nil
}

type fakeDeficitService struct {
	filter deficit.DeficitFilter
}

func (f *fakeDeficitService) Create(_ context.Context, req deficit.CreateDeficitRequest) (deficit.DeficitResponse, error) {
	if err := req.Validate(); err != nil {
		return deficit.DeficitResponse{}, err
	}
	return deficit.DeficitResponse{ID: "d1", EmployeeID: req.EmployeeID, Amount: req.Amount}, nil
}

func (f *fakeDeficitService) ListByEmployeePeriod(_ context.Context, filter deficit.DeficitFilter) ([]deficit.DeficitResponse, error) {
	f.filter = filter
	return []deficit.DeficitResponse{}, nil
}

func (f *fakeDeficitService) Delete(_ context.Context, id string) error {
	if id != "d1" {
		return deficit.ErrDeficitNotFound
	}
	return nil
}

type fakePayrollService struct {
	filter payroll.RecordFilter
}

func (f *fakePayrollService) Compute(_ context.Context, employeeID string, month, year int) (payroll.Result, error) {
	return payroll.Result{EmployeeID: employeeID, Month: month, Year: year, NetPay: decimal.NewFromInt(4814000)}, nil
}

func (f *fakePayrollService) ComputeBatch(_ context.Context, req payroll.ComputeRequest) (payroll.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}
	return payroll.BatchResult{
		Results:  []payroll.Result{{EmployeeID: "e1"}, {EmployeeID: "e3"}},
		Failures: []payroll.Failure{{EmployeeID: "e2", Code: payroll.FailureConfigurationMissing, Reason: "missing"}},
	}, nil
}

func (f *fakePayrollService) Approve(context.Context, []payroll.Result) (payroll.ApprovalReport, error) {
	return payroll.ApprovalReport{}, nil
}

func (f *fakePayrollService) ApprovePeriod(_ context.Context, req payroll.ComputeRequest) (payroll.ApprovalReport, error) {
	return payroll.ApprovalReport{
		Approved: []payroll.Record{{ID: "r1", Result: payroll.Result{EmployeeID: "e1"}, Status: payroll.RecordStatusApproved}},
		Failures: []payroll.Failure{{EmployeeID: "e2", Code: payroll.FailurePersistence, Reason: "db"}},
	}, nil
}

func (f *fakePayrollService) ListRecords(_ context.Context, filter payroll.RecordFilter) ([]payroll.RecordResponse, error) {
	f.filter = filter
	return []payroll.RecordResponse{}, nil
}

func (f *fakePayrollService) GetRecord(_ context.Context, id string) (payroll.RecordResponse, error) {
	if id != "r1" {
		return payroll.RecordResponse{}, payroll.ErrPayrollRecordNotFound
	}
	return payroll.RecordResponse{ID: id}, nil
}

func (f *fakePayrollService) RenderPayslip(_ context.Context, id string) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

func (f *fakePayrollService) GetSummary(_ context.Context, month, year int) (payroll.SummaryResponse, error) {
	return payroll.SummaryResponse{Month: month, Year: year}, nil
}

type testServer struct {
	handler    http.Handler
	salaryLaw  *fakeSalaryLawService
	attendance *fakeAttendanceService
	leave      *fakeLeaveService
	deficit    *fakeDeficitService
	payroll    *fakePayrollService
}

func newTestServer() *testServer {
	s := &testServer{
		salaryLaw:  &fakeSalaryLawService{},
		attendance: &fakeAttendanceService{},
		leave:      &fakeLeaveService{},
		deficit:    &fakeDeficitService{},
		payroll:    &fakePayrollService{},
	}
	s.handler = NewRouter(RouterConfig{AppName: "test", Env: "test", AllowedOrigins: []string{"*"}, LogLevel: slog.LevelError}, Handlers{
		Employee:   NewEmployeeHandler(fakeEmployeeService{}),
		SalaryLaw:  NewSalaryLawHandler(s.salaryLaw),
		Attendance: NewAttendanceHandler(s.attendance),
		Leave:      NewLeaveHandler(s.leave),
		Deficit:    NewDeficitHandler(s.deficit),
		Payroll:    NewPayrollHandler(s.payroll),
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var resp response.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestEmployeeRoutes(t *testing.T) {
	s := newTestServer()

	rec, resp := s.do(t, http.MethodGet, "/api/v1/employees", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.TotalItems)

	rec, resp = s.do(t, http.MethodGet, "/api/v1/employees/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestSalaryLawRoutes(t *testing.T) {
	s := newTestServer()

	rec, _ := s.do(t, http.MethodGet, "/api/v1/salary-laws/2024", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := s.do(t, http.MethodGet, "/api/v1/salary-laws/2031", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Salary law configuration not found for year", resp.Error.Message)

	rec, resp = s.do(t, http.MethodGet, "/api/v1/salary-laws/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "must be a number", resp.Error.Details["year"])

	rec, _ = s.do(t, http.MethodPut, "/api/v1/salary-laws/2025", `{"work_hours_per_day":"8","base_salary":"5000000"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, s.salaryLaw.upserted.Year)
	assert.True(t, s.salaryLaw.upserted.BaseSalary.Equal(decimal.NewFromInt(5000000)))

	rec, _ = s.do(t, http.MethodPut, "/api/v1/salary-laws/2025", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceRoutes(t *testing.T) {
	s := newTestServer()

	rec, _ := s.do(t, http.MethodGet, "/api/v1/attendance/e1/2024/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/attendance/e1/2024/13", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodPut, "/api/v1/attendance/e1/2024/3/15", `{"status":"present","entry_time":"08:00","exit_time":"17:00"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", s.attendance.upserted.EmployeeID)
	assert.Equal(t, 15, s.attendance.upserted.Day)
	require.NotNil(t, s.attendance.upserted.EntryTime)
	assert.Equal(t, "08:00", *s.attendance.upserted.EntryTime)
}

func TestLeaveRoutes(t *testing.T) {
	s := newTestServer()

	rec, resp := s.do(t, http.MethodGet, "/api/v1/leave/accrual/2024", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, resp.Meta.TotalItems)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/leave/accrual/e1/2024", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodPut, "/api/v1/leave/entitlements/e1/2024", `{"annual_leave_entitlement":"14"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", s.leave.upserted.EmployeeID)
	assert.True(t, s.leave.upserted.AnnualLeaveEntitlement.Equal(decimal.NewFromInt(14)))
}

func TestDeficitRoutes(t *testing.T) {
	s := newTestServer()

	rec, _ := s.do(t, http.MethodGet, "/api/v1/deficits?employee_id=e1&month=3&year=2024", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, deficit.DeficitFilter{EmployeeID: "e1", Month: 3, Year: 2024}, s.deficit.filter)

	rec, resp := s.do(t, http.MethodGet, "/api/v1/deficits?employee_id=e1&year=2024", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "is required", resp.Error.Details["month"])

	rec, _ = s.do(t, http.MethodPost, "/api/v1/deficits", `{"employee_id":"e1","type":"penalty","amount":"200000","day":1,"month":3,"year":2024}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/deficits", `{"employee_id":"e1","type":"penalty","amount":"0","day":1,"month":3,"year":2024}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = s.do(t, http.MethodDelete, "/api/v1/deficits/d1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodDelete, "/api/v1/deficits/d2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayrollRoutes(t *testing.T) {
	s := newTestServer()

	t.Run("batch compute reports failures beside results", func(t *testing.T) {
		rec, resp := s.do(t, http.MethodPost, "/api/v1/payroll/compute", `{"month":3,"year":2024}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, resp.Meta.TotalItems)
		assert.Equal(t, 1, resp.Meta.Failures)

		data := resp.Data.(map[string]interface{})
		failures := data["failures"].([]interface{})
		assert.Equal(t, "configuration_missing", failures[0].(map[string]interface{})["code"])
	})

	t.Run("batch compute validates the period", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPost, "/api/v1/payroll/compute", `{"month":0,"year":2024}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("single compute", func(t *testing.T) {
		rec, resp := s.do(t, http.MethodGet, "/api/v1/payroll/compute/e1?month=3&year=2024", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "4814000", resp.Data.(map[string]interface{})["net_pay"])
	})

	t.Run("approve", func(t *testing.T) {
		rec, resp := s.do(t, http.MethodPost, "/api/v1/payroll/approve", `{"month":3,"year":2024}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, resp.Meta.TotalItems)
		assert.Equal(t, 1, resp.Meta.Failures)
	})

	t.Run("records", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodGet, "/api/v1/payroll/records?month=3&employee_id=e1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, s.payroll.filter.Month)
		assert.Equal(t, 3, *s.payroll.filter.Month)
		assert.Nil(t, s.payroll.filter.Year)

		rec, _ = s.do(t, http.MethodGet, "/api/v1/payroll/records/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec, _ = s.do(t, http.MethodGet, "/api/v1/payroll/records?year=soon", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("payslip", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodGet, "/api/v1/payroll/records/r1/payslip.pdf", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
	})

	t.Run("summary requires period", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodGet, "/api/v1/payroll/summary?month=3", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		rec, _ = s.do(t, http.MethodGet, "/api/v1/payroll/summary?month=3&year=2024", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleError_Unexpected(t *testing.T) {
	rec := httptest.NewRecorder()
	response.HandleError(rec, fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	response.HandleError(rec, validator.ValidationErrors{{Field: "x", Message: "bad"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	response.HandleError(rec, fmt.Errorf("wrap: %w", employee.ErrHireDateInFuture))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleError_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{employee.ErrEmployeeNotFound, http.StatusNotFound},
		{salarylaw.ErrSalaryLawNotFound, http.StatusNotFound},
		{salarylaw.ErrInvalidYear, http.StatusBadRequest},
		{attendance.ErrInvalidPeriod, http.StatusBadRequest},
		{leave.ErrInvalidFormula, http.StatusUnprocessableEntity},
		{deficit.ErrDeficitNotFound, http.StatusNotFound},
		{payroll.ErrPayrollRecordNotFound, http.StatusNotFound},
		{payroll.ErrInvalidPeriod, http.StatusBadRequest},
	}
	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.HandleError(rec, fmt.Errorf("wrapped: %w", c.err))
			assert.Equal(t, c.code, rec.Code)
		})
	}
}
