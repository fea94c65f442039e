package services

// ServiceContainer bundles every service facade handed to the handler layer.
type ServiceContainer struct {
	Expense         ExpenseSvcFacade
	ShiftClosure    ShiftClosureSvcFacade
	EmployeeFinance EmployeeFinanceSvcFacade
	Withdrawal      WithdrawalSvcFacade
	SalaryPayment   SalaryPaymentSvcFacade
	Attendance      AttendanceSvcFacade
	Reporting       ReportingSvcFacade
	Operator        OperatorSvcFacade
}
