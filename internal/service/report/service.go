package report

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/activity"
	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/domain/report"
	"github.com/stafftrack/stafftrack-go/internal/domain/settings"
)

const unknownEmployeeName = "Unknown Employee"

type service struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	punishmentRepo punishment.Repository
	settingsRepo   settings.Repository
	activityRepo   activity.Repository
	now            func() time.Time
}

func NewService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	punishmentRepo punishment.Repository,
	settingsRepo settings.Repository,
	activityRepo activity.Repository,
) report.Service {
	return &service{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		punishmentRepo: punishmentRepo,
		settingsRepo:   settingsRepo,
		activityRepo:   activityRepo,
		now:            time.Now,
	}
}

func (s *service) Generate(ctx context.Context, req report.Request) (report.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Type {
	case report.TypeAttendanceSummary:
		return s.AttendanceSummary(ctx, req)
	case report.TypeSalaryReport:
		return s.Salary(ctx, req)
	case report.TypePunishmentReport:
		return s.Punishments(ctx, req)
	case report.TypeDepartmentPerformance:
		return s.DepartmentPerformance(ctx, req)
	case report.TypeEmployeeActivity:
		return s.EmployeeActivity(ctx, req)
	}
	return nil, report.ErrUnknownReportType
}

func (s *service) AttendanceSummary(ctx context.Context, req report.Request) (report.AttendanceSummaryReport, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.AttendanceSummaryReport{}, err
	}
	records, err := s.attendanceRepo.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return report.AttendanceSummaryReport{}, err
	}

	doc := report.AttendanceSummaryReport{
		ReportType:  report.TypeAttendanceSummary,
		GeneratedAt: s.now(),
		Period:      buildPeriod(req.StartDate, req.EndDate),
	}
	doc.Overall.TotalEmployees = len(employees)
	doc.Overall.ExpectedAttendance = doc.Overall.TotalEmployees * doc.Period.WorkDays

	for _, rec := range records {
		doc.Overall.StatusCounts.Add(rec.Status)
	}
	doc.Overall.ActualAttendance = doc.Overall.StatusCounts.Attended()
	if doc.Overall.ExpectedAttendance > 0 {
		doc.Overall.AttendanceRate = round2(float64(doc.Overall.ActualAttendance) / float64(doc.Overall.ExpectedAttendance) * 100)
	}

	byEmployee := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	doc.EmployeeStats = make([]report.EmployeeAttendance, 0, len(employees))
	for _, emp := range employees {
		stat := report.EmployeeAttendance{
			EmployeeID: emp.ID,
			Name:       emp.FullName(),
			Department: emp.Department,
		}
		var hours float64
		for _, rec := range byEmployee[emp.ID] {
			stat.StatusCounts.Add(rec.Status)
			hours += rec.HoursWorked
		}
		stat.TotalHours = round2(hours)
		if doc.Period.WorkDays > 0 {
			stat.AttendanceRate = round2(float64(stat.StatusCounts.Attended()) / float64(doc.Period.WorkDays) * 100)
		}
		doc.EmployeeStats = append(doc.EmployeeStats, stat)
	}
	sort.SliceStable(doc.EmployeeStats, func(i, j int) bool {
		return doc.EmployeeStats[i].AttendanceRate > doc.EmployeeStats[j].AttendanceRate
	})

	byDate := make(map[string]attendance.StatusCounts)
	dateRecords := make(map[string]int)
	for _, rec := range records {
		c := byDate[rec.Date]
		c.Add(rec.Status)
		byDate[rec.Date] = c
		dateRecords[rec.Date]++
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	doc.DailyStats = make([]report.DailyAttendance, 0, len(dates))
	for _, date := range dates {
		daily := report.DailyAttendance{
			Date:         date,
			StatusCounts: byDate[date],
			TotalRecords: dateRecords[date],
		}
		if doc.Overall.TotalEmployees > 0 {
			daily.AttendanceRate = round2(float64(daily.StatusCounts.Attended()) / float64(doc.Overall.TotalEmployees) * 100)
		}
		doc.DailyStats = append(doc.DailyStats, daily)
	}

	return doc, nil
}

func (s *service) Salary(ctx context.Context, req report.Request) (report.SalaryReport, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.SalaryReport{}, err
	}
	punishments, err := s.punishmentRepo.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return report.SalaryReport{}, err
	}
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return report.SalaryReport{}, err
	}

	type empDeductions struct {
		total   decimal.Decimal
		details []report.SalaryDeduction
	}
	deductions := make(map[string]*empDeductions)
	for _, p := range punishments {
		d, ok := deductions[p.EmployeeID]
		if !ok {
			d = &empDeductions{total: decimal.Zero}
			deductions[p.EmployeeID] = d
		}
		d.total = d.total.Add(p.Amount)
		d.details = append(d.details, report.SalaryDeduction{
			Type:        p.Type,
			Date:        p.Date,
			Amount:      p.Amount,
			Description: p.Description,
		})
	}

	doc := report.SalaryReport{
		ReportType:  report.TypeSalaryReport,
		GeneratedAt: s.now(),
		Period:      buildPeriod(req.StartDate, req.EndDate),
		Currency:    cfg.Salary.Currency,
		Overall: report.SalaryOverall{
			TotalEmployees:  len(employees),
			TotalBaseSalary: decimal.Zero,
			TotalDeductions: decimal.Zero,
			TotalNetSalary:  decimal.Zero,
		},
		DepartmentSummary: make(map[string]report.DepartmentSalary),
	}

	type deptAgg struct {
		employees int
		base      decimal.Decimal
		deducted  decimal.Decimal
	}
	byDept := make(map[string]*deptAgg)

	doc.EmployeeSalaries = make([]report.EmployeeSalary, 0, len(employees))
	for _, emp := range employees {
		deducted := decimal.Zero
		row := report.EmployeeSalary{
			EmployeeID: emp.ID,
			Name:       emp.FullName(),
			Department: emp.Department,
			Position:   emp.Position,
			BaseSalary: emp.Salary,
		}
		if d, ok := deductions[emp.ID]; ok {
			deducted = d.total
			row.PunishmentCount = len(d.details)
			row.PunishmentDetails = d.details
		}
		row.Deductions = deducted
		row.NetSalary = emp.Salary.Sub(deducted)
		if emp.Salary.IsPositive() {
			row.DeductionPercentage = round2(deducted.Div(emp.Salary).InexactFloat64() * 100)
		}
		doc.EmployeeSalaries = append(doc.EmployeeSalaries, row)

		doc.Overall.TotalBaseSalary = doc.Overall.TotalBaseSalary.Add(emp.Salary)
		doc.Overall.TotalDeductions = doc.Overall.TotalDeductions.Add(deducted)
		doc.Overall.TotalNetSalary = doc.Overall.TotalNetSalary.Add(row.NetSalary)

		agg, ok := byDept[emp.Department]
		if !ok {
			agg = &deptAgg{base: decimal.Zero, deducted: decimal.Zero}
			byDept[emp.Department] = agg
		}
		agg.employees++
		agg.base = agg.base.Add(emp.Salary)
		agg.deducted = agg.deducted.Add(deducted)
	}

	if doc.Overall.TotalBaseSalary.IsPositive() {
		doc.Overall.OverallDeductionPercentage = round2(
			doc.Overall.TotalDeductions.Div(doc.Overall.TotalBaseSalary).InexactFloat64() * 100)
	}

	sort.SliceStable(doc.EmployeeSalaries, func(i, j int) bool {
		return doc.EmployeeSalaries[i].BaseSalary.GreaterThan(doc.EmployeeSalaries[j].BaseSalary)
	})

	for dept, agg := range byDept {
		headcount := decimal.NewFromInt(int64(agg.employees))
		net := agg.base.Sub(agg.deducted)
		row := report.DepartmentSalary{
			TotalEmployees:    agg.employees,
			TotalBaseSalary:   agg.base,
			TotalDeductions:   agg.deducted,
			TotalNetSalary:    net,
			AverageBaseSalary: agg.base.Div(headcount).Round(2),
			AverageDeductions: agg.deducted.Div(headcount).Round(2),
			AverageNetSalary:  net.Div(headcount).Round(2),
		}
		if agg.base.IsPositive() {
			row.AverageDeductionPercentage = round2(agg.deducted.Div(agg.base).InexactFloat64() * 100)
		}
		doc.DepartmentSummary[dept] = row
	}

	return doc, nil
}

func (s *service) Punishments(ctx context.Context, req report.Request) (report.PunishmentReport, error) {
	punishments, err := s.punishmentRepo.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return report.PunishmentReport{}, err
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.PunishmentReport{}, err
	}
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return report.PunishmentReport{}, err
	}

	names := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp
	}

	doc := report.PunishmentReport{
		ReportType:  report.TypePunishmentReport,
		GeneratedAt: s.now(),
		Period:      buildPeriod(req.StartDate, req.EndDate),
		Overall: report.PunishmentOverall{
			TotalCount:  len(punishments),
			TotalAmount: decimal.Zero,
			ByType:      make(map[string]report.TypeBucket),
		},
		DepartmentSummary: make(map[string]report.DepartmentPunishments),
	}

	// Seed catalog types plus "other" so empty buckets still appear.
	for _, rule := range cfg.PunishmentRules {
		doc.Overall.ByType[rule.ID] = report.TypeBucket{Amount: decimal.Zero, Name: rule.Name}
	}
	doc.Overall.ByType["other"] = report.TypeBucket{Amount: decimal.Zero, Name: "Other"}
	zero := report.AmountBucket{Amount: decimal.Zero}
	doc.Overall.ByStatus = report.StatusBuckets{Active: zero, Pending: zero, Completed: zero}

	addBucket := func(b report.AmountBucket, amount decimal.Decimal) report.AmountBucket {
		b.Count++
		b.Amount = b.Amount.Add(amount)
		return b
	}

	for _, p := range punishments {
		doc.Overall.TotalAmount = doc.Overall.TotalAmount.Add(p.Amount)

		key := p.Type
		if _, ok := doc.Overall.ByType[key]; !ok {
			key = "other"
		}
		bucket := doc.Overall.ByType[key]
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(p.Amount)
		doc.Overall.ByType[key] = bucket

		switch p.Status {
		case punishment.StatusActive:
			doc.Overall.ByStatus.Active = addBucket(doc.Overall.ByStatus.Active, p.Amount)
		case punishment.StatusPending:
			doc.Overall.ByStatus.Pending = addBucket(doc.Overall.ByStatus.Pending, p.Amount)
		case punishment.StatusCompleted:
			doc.Overall.ByStatus.Completed = addBucket(doc.Overall.ByStatus.Completed, p.Amount)
		}
	}

	// Rollups keyed by department and by employee, each with its own
	// type breakdown. Orphaned records are excluded here but stay in the
	// totals above and in the detail list below.
	empIndex := make(map[string]int)
	for _, p := range punishments {
		emp, ok := names[p.EmployeeID]
		if !ok {
			continue
		}

		dept, ok := doc.DepartmentSummary[emp.Department]
		if !ok {
			dept = report.DepartmentPunishments{
				Amount: decimal.Zero,
				ByType: make(map[string]report.AmountBucket),
			}
		}
		dept.Count++
		dept.Amount = dept.Amount.Add(p.Amount)
		dept.ByType[p.Type] = addBucket(dept.ByType[p.Type], p.Amount)
		doc.DepartmentSummary[emp.Department] = dept

		ei, ok := empIndex[emp.ID]
		if !ok {
			ei = len(doc.EmployeeSummary)
			empIndex[emp.ID] = ei
			doc.EmployeeSummary = append(doc.EmployeeSummary, report.EmployeePunishments{
				EmployeeID: emp.ID,
				Name:       emp.FullName(),
				Department: emp.Department,
				Amount:     decimal.Zero,
				ByType:     make(map[string]report.AmountBucket),
			})
		}
		row := &doc.EmployeeSummary[ei]
		row.Count++
		row.Amount = row.Amount.Add(p.Amount)
		row.ByType[p.Type] = addBucket(row.ByType[p.Type], p.Amount)
	}
	sort.SliceStable(doc.EmployeeSummary, func(i, j int) bool {
		return doc.EmployeeSummary[i].Count > doc.EmployeeSummary[j].Count
	})

	doc.DetailedRecords = make([]report.PunishmentDetail, 0, len(punishments))
	for _, p := range punishments {
		typeName := "Other"
		if bucket, ok := doc.Overall.ByType[p.Type]; ok {
			typeName = bucket.Name
		}
		detail := report.PunishmentDetail{
			ID:           p.ID,
			EmployeeID:   p.EmployeeID,
			EmployeeName: unknownEmployeeName,
			Department:   "Unknown",
			Type:         p.Type,
			TypeName:     typeName,
			Date:         p.Date,
			Amount:       p.Amount,
			Status:       string(p.Status),
			Description:  p.Description,
			CreatedAt:    p.CreatedAt,
		}
		if emp, ok := names[p.EmployeeID]; ok {
			detail.EmployeeName = emp.FullName()
			detail.Department = emp.Department
		}
		doc.DetailedRecords = append(doc.DetailedRecords, detail)
	}
	sort.SliceStable(doc.DetailedRecords, func(i, j int) bool {
		return doc.DetailedRecords[i].Date > doc.DetailedRecords[j].Date
	})

	return doc, nil
}

func (s *service) DepartmentPerformance(ctx context.Context, req report.Request) (report.DepartmentPerformanceReport, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.DepartmentPerformanceReport{}, err
	}
	records, err := s.attendanceRepo.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return report.DepartmentPerformanceReport{}, err
	}
	punishments, err := s.punishmentRepo.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return report.DepartmentPerformanceReport{}, err
	}

	deptOf := make(map[string]string, len(employees))
	var deptOrder []string
	deptEmployees := make(map[string]int)
	deptSalary := make(map[string]decimal.Decimal)
	for _, emp := range employees {
		deptOf[emp.ID] = emp.Department
		if deptEmployees[emp.Department] == 0 {
			deptOrder = append(deptOrder, emp.Department)
			deptSalary[emp.Department] = decimal.Zero
		}
		deptEmployees[emp.Department]++
		deptSalary[emp.Department] = deptSalary[emp.Department].Add(emp.Salary)
	}

	type deptAgg struct {
		records     int
		counts      attendance.StatusCounts
		punishments int
		amount      decimal.Decimal
	}
	agg := make(map[string]*deptAgg)
	for _, dept := range deptOrder {
		agg[dept] = &deptAgg{amount: decimal.Zero}
	}

	// Records and punishments whose employee no longer exists are left out
	// of every department rollup.
	for _, rec := range records {
		dept, ok := deptOf[rec.EmployeeID]
		if !ok {
			continue
		}
		agg[dept].records++
		agg[dept].counts.Add(rec.Status)
	}
	for _, p := range punishments {
		dept, ok := deptOf[p.EmployeeID]
		if !ok {
			continue
		}
		agg[dept].punishments++
		agg[dept].amount = agg[dept].amount.Add(p.Amount)
	}

	doc := report.DepartmentPerformanceReport{
		ReportType:  report.TypeDepartmentPerformance,
		GeneratedAt: s.now(),
		Period:      buildPeriod(req.StartDate, req.EndDate),
		Departments: make([]report.DepartmentPerformance, 0, len(deptOrder)),
	}
	for _, dept := range deptOrder {
		a := agg[dept]
		headcount := deptEmployees[dept]

		row := report.DepartmentPerformance{
			Name:          dept,
			EmployeeCount: headcount,
		}

		var rate float64
		if a.records > 0 {
			rate = float64(a.counts.Attended()) / float64(a.records) * 100
		}
		row.Attendance = report.DepartmentAttendance{
			Total:          a.records,
			StatusCounts:   a.counts,
			AttendanceRate: round2(rate),
		}

		perEmployee := float64(a.punishments) / float64(headcount)
		avgAmount := decimal.Zero
		if a.punishments > 0 {
			avgAmount = a.amount.Div(decimal.NewFromInt(int64(a.punishments))).Round(2)
		}
		row.Punishments = report.DepartmentDiscipline{
			Total:       a.punishments,
			Amount:      a.amount,
			PerEmployee: round2(perEmployee),
			AvgAmount:   avgAmount,
		}

		row.Salary = report.DepartmentSalaryTotals{
			Total:   deptSalary[dept],
			Average: deptSalary[dept].Div(decimal.NewFromInt(int64(headcount))).Round(2),
		}

		row.PerformanceScore = round2(rate*0.6 + (100-perEmployee*20)*0.4)

		doc.Departments = append(doc.Departments, row)
	}
	sort.SliceStable(doc.Departments, func(i, j int) bool {
		return doc.Departments[i].PerformanceScore > doc.Departments[j].PerformanceScore
	})

	return doc, nil
}

func (s *service) EmployeeActivity(ctx context.Context, req report.Request) (report.EmployeeActivityReport, error) {
	entries, err := s.activityRepo.List(ctx, 0)
	if err != nil {
		return report.EmployeeActivityReport{}, err
	}

	// Inclusive window, extended to end of day on the end date.
	start := midnight(req.StartDate)
	end := midnight(req.EndDate).AddDate(0, 0, 1).Add(-time.Millisecond)

	doc := report.EmployeeActivityReport{
		ReportType:  report.TypeEmployeeActivity,
		GeneratedAt: s.now(),
		Period:      buildPeriod(req.StartDate, req.EndDate),
	}

	// The repository returns entries newest first, which is the order both
	// the flat list and each type group keep.
	byDay := make(map[string]int)
	typeIndex := make(map[string]int)
	doc.Activities = make([]activity.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Timestamp.Before(start) || entry.Timestamp.After(end) {
			continue
		}
		doc.Activities = append(doc.Activities, entry)

		key := string(entry.Type)
		ti, ok := typeIndex[key]
		if !ok {
			ti = len(doc.Overall.ByType)
			typeIndex[key] = ti
			doc.Overall.ByType = append(doc.Overall.ByType, report.ActivityTypeGroup{Type: key})
		}
		group := &doc.Overall.ByType[ti]
		group.Count++
		group.Activities = append(group.Activities, entry)

		byDay[entry.Timestamp.Format("2006-01-02")]++
	}
	doc.Overall.TotalActivities = len(doc.Activities)

	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	doc.Timeline.Dates = dates
	doc.Timeline.Counts = make([]int, len(dates))
	for i, date := range dates {
		doc.Timeline.Counts[i] = byDay[date]
	}

	return doc, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func midnight(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// buildPeriod counts the inclusive calendar days of the window and how
// many of them fall on Monday through Friday.
func buildPeriod(startDate, endDate string) report.Period {
	p := report.Period{StartDate: startDate, EndDate: endDate}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return p
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil || end.Before(start) {
		return p
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		p.TotalDays++
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			p.WorkDays++
		}
	}
	return p
}
