package services

import (
	portsrepo "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/qahwatech/cafe_backoffice_app/internal/core/ports/services"
	"github.com/qahwatech/cafe_backoffice_app/pkg/config"
)

// NewContainer wires every service against the repository provider.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense:         NewExpenseService(repos.ExpenseRepo),
		ShiftClosure:    NewShiftClosureService(repos.ShiftClosureRepo, repos.ExpenseRepo),
		EmployeeFinance: NewEmployeeFinanceService(repos.AttendanceRepo, repos.WithdrawalRepo, repos.SalaryPaymentRepo),
		Withdrawal:      NewWithdrawalService(repos.WithdrawalRepo),
		SalaryPayment:   NewSalaryPaymentService(repos.SalaryPaymentRepo),
		Attendance:      NewAttendanceService(repos.AttendanceRepo),
		Reporting:       NewReportingService(repos.ReportingRepo, cfg.BrandName, cfg.BrandNameAr),
		Operator:        NewOperatorService(repos.OperatorRepo),
	}
}
