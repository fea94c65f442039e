package repositories

// RepositoryProvider bundles every repository implementation handed to the service layer.
type RepositoryProvider struct {
	ExpenseRepo       ExpenseRepositoryFacade
	ShiftClosureRepo  ShiftClosureRepositoryFacade
	AttendanceRepo    AttendanceRepositoryFacade
	WithdrawalRepo    WithdrawalRepositoryFacade
	SalaryPaymentRepo SalaryPaymentRepositoryFacade
	OperatorRepo      OperatorRepositoryFacade
	ReportingRepo     ReportingReader
}
