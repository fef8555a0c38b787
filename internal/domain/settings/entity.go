package settings

import "github.com/shopspring/decimal"

type Settings struct {
	General         General          `json:"general"`
	Departments     []string         `json:"departments"`
	Salary          Salary           `json:"salary"`
	PunishmentRules []PunishmentRule `json:"punishmentRules"`
}

type General struct {
	CompanyName string `json:"companyName"`
	Timezone    string `json:"timezone"`
}

type Salary struct {
	DefaultBase decimal.Decimal `json:"defaultBase"`
	PayDay      int             `json:"payDay"`
	Currency    string          `json:"currency"`
}

// PunishmentRule is one entry of the punishment type catalog. Color is the
// hex used for that type's chart slices.
type PunishmentRule struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DefaultAmount decimal.Decimal `json:"defaultAmount"`
	Color         string          `json:"color"`
}

// RuleByID looks up a catalog rule. The second return is false when the
// type is not in the catalog.
func (s Settings) RuleByID(id string) (PunishmentRule, bool) {
	for _, r := range s.PunishmentRules {
		if r.ID == id {
			return r, true
		}
	}
	return PunishmentRule{}, false
}
