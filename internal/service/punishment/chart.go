package punishment

import (
	"github.com/shopspring/decimal"

	"github.com/stafftrack/stafftrack-go/internal/domain/punishment"
	"github.com/stafftrack/stafftrack-go/internal/domain/settings"
)

// fallbackColor is used for punishment types outside the configured catalog.
const fallbackColor = "#64D2FF"

// buildChartData produces the pie series over punishment types. Catalog
// types come first in catalog order, then uncataloged types in first-seen
// order. Types with no records are skipped.
func buildChartData(punishments []punishment.Punishment, rules []settings.PunishmentRule) punishment.ChartData {
	counts := make(map[string]int)
	amounts := make(map[string]decimal.Decimal)
	var extraOrder []string

	known := make(map[string]bool, len(rules))
	for _, rule := range rules {
		known[rule.ID] = true
	}

	for _, p := range punishments {
		if counts[p.Type] == 0 && !known[p.Type] {
			extraOrder = append(extraOrder, p.Type)
		}
		counts[p.Type]++
		amounts[p.Type] = amounts[p.Type].Add(p.Amount)
	}

	var data punishment.ChartData
	add := func(label, color string, count int, amount decimal.Decimal) {
		if count == 0 {
			return
		}
		data.ByCount.Labels = append(data.ByCount.Labels, label)
		data.ByCount.Data = append(data.ByCount.Data, count)
		data.ByCount.Colors = append(data.ByCount.Colors, color)

		data.ByAmount.Labels = append(data.ByAmount.Labels, label)
		data.ByAmount.Data = append(data.ByAmount.Data, amount.InexactFloat64())
		data.ByAmount.Colors = append(data.ByAmount.Colors, color)
	}

	for _, rule := range rules {
		color := rule.Color
		if color == "" {
			color = fallbackColor
		}
		add(rule.Name, color, counts[rule.ID], amounts[rule.ID])
	}
	for _, typ := range extraOrder {
		add(typ, fallbackColor, counts[typ], amounts[typ])
	}

	return data
}
