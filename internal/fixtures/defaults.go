package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/employee"
	"github.com/stafftrack/stafftrack-go/internal/domain/settings"
)

// DefaultSettings returns the configuration a fresh installation starts
// with: the department catalog, punishment rules with their chart colors,
// and baseline salary defaults.
func DefaultSettings() settings.Settings {
	return settings.Settings{
		General: settings.General{
			CompanyName: "StaffTrack",
			Timezone:    "UTC",
		},
		Departments: []string{"engineering", "marketing", "sales", "hr", "finance"},
		Salary: settings.Salary{
			DefaultBase: decimal.NewFromInt(5000),
			PayDay:      1,
			Currency:    "USD",
		},
		PunishmentRules: []settings.PunishmentRule{
			{ID: "late", Name: "Late Arrival", DefaultAmount: decimal.NewFromInt(50), Color: "#FF9F0A"},
			{ID: "absence", Name: "Unexcused Absence", DefaultAmount: decimal.NewFromInt(200), Color: "#FF3B30"},
			{ID: "performance", Name: "Performance Issue", DefaultAmount: decimal.NewFromInt(100), Color: "#5E5CE6"},
			{ID: "conduct", Name: "Misconduct", DefaultAmount: decimal.NewFromInt(150), Color: "#FF2D55"},
		},
	}
}

// SampleEmployees returns the demo workforce used for first-run seeding.
func SampleEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:         "emp-001",
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@example.com",
			Phone:      "+1 555 0101",
			Department: "engineering",
			Position:   "Senior Developer",
			StartDate:  "2022-03-14",
			Salary:     decimal.NewFromInt(8500),
			Status:     employee.StatusActive,
		},
		{
			ID:         "emp-002",
			FirstName:  "Jane",
			LastName:   "Smith",
			Email:      "jane.smith@example.com",
			Phone:      "+1 555 0102",
			Department: "marketing",
			Position:   "Marketing Manager",
			StartDate:  "2021-09-01",
			Salary:     decimal.NewFromInt(7200),
			Status:     employee.StatusActive,
		},
		{
			ID:         "emp-003",
			FirstName:  "Mike",
			LastName:   "Johnson",
			Email:      "mike.johnson@example.com",
			Phone:      "+1 555 0103",
			Department: "sales",
			Position:   "Sales Representative",
			StartDate:  "2023-01-16",
			Salary:     decimal.NewFromInt(5500),
			Status:     employee.StatusActive,
		},
		{
			ID:         "emp-004",
			FirstName:  "Sarah",
			LastName:   "Williams",
			Email:      "sarah.williams@example.com",
			Phone:      "+1 555 0104",
			Department: "hr",
			Position:   "HR Specialist",
			StartDate:  "2022-11-07",
			Salary:     decimal.NewFromInt(6000),
			Status:     employee.StatusOnLeave,
		},
		{
			ID:         "emp-005",
			FirstName:  "Tom",
			LastName:   "Brown",
			Email:      "tom.brown@example.com",
			Phone:      "+1 555 0105",
			Department: "finance",
			Position:   "Accountant",
			StartDate:  "2020-06-22",
			Salary:     decimal.NewFromInt(6500),
			Status:     employee.StatusActive,
		},
	}
}
