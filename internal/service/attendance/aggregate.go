package attendance

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/stafftrack/stafftrack-go/internal/domain/attendance"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func dateStatistics(startDate, endDate string, records []attendance.Attendance, activeEmployees int) attendance.DateStatistics {
	stats := attendance.DateStatistics{
		StartDate:       startDate,
		EndDate:         endDate,
		ActiveEmployees: activeEmployees,
	}

	var workedHours float64
	var workedCount int
	for _, rec := range records {
		stats.Counts.Add(rec.Status)
		if rec.HoursWorked > 0 {
			workedHours += rec.HoursWorked
			workedCount++
		}
	}

	if activeEmployees > 0 {
		stats.AttendanceRate = round2(float64(stats.Counts.Attended()) / float64(activeEmployees) * 100)
	}
	if workedCount > 0 {
		stats.AverageHours = round2(workedHours / float64(workedCount))
	}

	return stats
}

// buildOverview buckets records into a chart series anchored at now:
// the trailing 7 days for week, the days of the current month for month,
// and the 12 months of the current year for year.
func buildOverview(period attendance.Period, records []attendance.Attendance, now time.Time) attendance.Overview {
	overview := attendance.Overview{Period: period}

	appendBucket := func(label string, c attendance.StatusCounts) {
		overview.Labels = append(overview.Labels, label)
		overview.Present = append(overview.Present, c.Present)
		overview.Absent = append(overview.Absent, c.Absent)
		overview.Late = append(overview.Late, c.Late)
		overview.Leave = append(overview.Leave, c.Leave)
	}

	byDate := make(map[string]attendance.StatusCounts)
	for _, rec := range records {
		c := byDate[rec.Date]
		c.Add(rec.Status)
		byDate[rec.Date] = c
	}

	switch period {
	case attendance.PeriodWeek:
		for i := 6; i >= 0; i-- {
			day := now.AddDate(0, 0, -i)
			appendBucket(day.Format("Mon"), byDate[day.Format("2006-01-02")])
		}

	case attendance.PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		daysInMonth := first.AddDate(0, 1, -1).Day()
		for d := 1; d <= daysInMonth; d++ {
			day := time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, now.Location())
			appendBucket(strconv.Itoa(d), byDate[day.Format("2006-01-02")])
		}

	case attendance.PeriodYear:
		for m := time.January; m <= time.December; m++ {
			prefix := fmt.Sprintf("%04d-%02d", now.Year(), int(m))
			var c attendance.StatusCounts
			for date, counts := range byDate {
				if len(date) >= 7 && date[:7] == prefix {
					c.Present += counts.Present
					c.Absent += counts.Absent
					c.Late += counts.Late
					c.Leave += counts.Leave
				}
			}
			appendBucket(time.Date(now.Year(), m, 1, 0, 0, 0, 0, time.UTC).Format("Jan"), c)
		}
	}

	return overview
}

func employeeSummary(employeeID string, records []attendance.Attendance) attendance.EmployeeSummary {
	summary := attendance.EmployeeSummary{
		EmployeeID:     employeeID,
		TotalRecords:   len(records),
		AverageCheckIn: "N/A",
	}

	var totalHours float64
	var checkInMinutes int
	var checkInCount int
	for _, rec := range records {
		summary.Counts.Add(rec.Status)
		totalHours += rec.HoursWorked
		if rec.CheckIn != nil {
			checkInMinutes += rec.CheckIn.Hour()*60 + rec.CheckIn.Minute()
			checkInCount++
		}
	}

	summary.TotalHours = round2(totalHours)
	if summary.TotalRecords > 0 {
		summary.AttendanceRate = round2(float64(summary.Counts.Attended()) / float64(summary.TotalRecords) * 100)
	}
	if checkInCount > 0 {
		avg := checkInMinutes / checkInCount
		summary.AverageCheckIn = fmt.Sprintf("%02d:%02d", avg/60, avg%60)
	}

	return summary
}
