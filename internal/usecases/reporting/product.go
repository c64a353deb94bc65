package reporting

import "strings"

// ARRMultiplier converts monthly recurring revenue to annual.
// Line item TotalPrice is MRR; the multiplier is applied at aggregation time only.
const ARRMultiplier = 12

// DefaultSegment replaces an empty or whitespace-only account segment at read time
const DefaultSegment = "SMB/ MM"

// OtherProductColumn is the trailing bucket for products that match no canonical column
const OtherProductColumn = "Other"

// closedStages are the opportunity stages that count as closed (excluded from
// pipeline and from renewal ARR)
var closedStages = map[string]struct{}{
	"Closed Won":  {},
	"Closed Lost": {},
}

// ARRProductColumns are the canonical ARR product columns in display order.
// One-time products (Implementation, Data Migration, Kipu API Set Up, etc.)
// are not part of ARR and deliberately absent.
var ARRProductColumns = []string{
	"Dazos CRM Platform (Legacy)",
	"Dazos CRM Platform (Includes 5 Seats)",
	"Billing Company CRM Platform (Includes 5 Seats)",
	"Additional CRM Seats",
	"Marketing Reports Platform Fee (Includes 1 EIN)",
	"IQ Platform Fee (Includes 1 EIN)",
	"Additional IQ/MR EINs",
	"iCampaign Platform",
	"Premium Support",
}

// Products excluded from ARR entirely (not counted in totals, not shown as
// columns). Price book: "Verify Monthly Credits" in both spellings, "Kipu API".
var arrProductExclude = []string{
	"iverify monthly credits",
	"verify monthly credits",
	"kipu api",
}

// productAlias maps a folded lookup key to its canonical column. Matching
// iterates the slice in order, so match priority is insertion order.
type productAlias struct {
	key       string
	canonical string
}

var arrProductAliases = buildProductAliases()

func buildProductAliases() []productAlias {
	aliases := make([]productAlias, 0, len(ARRProductColumns)+1)
	for _, column := range ARRProductColumns {
		aliases = append(aliases, productAlias{
			key:       strings.ToLower(strings.TrimSpace(column)),
			canonical: column,
		})
	}
	// Price book alias: "Additional IQMR EINs" (no slash) folds into the same column
	aliases = append(aliases, productAlias{
		key:       "additional iqmr eins",
		canonical: "Additional IQ/MR EINs",
	})
	return aliases
}

// NormalizeProductName extracts the product part of a line item name.
// Names like "Account - Renewal - Date Kipu API" carry the product after the
// last " - " separator; whitespace is trimmed and collapsed.
func NormalizeProductName(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}
	if idx := strings.LastIndex(s, " - "); idx >= 0 {
		if tail := strings.TrimSpace(s[idx+3:]); tail != "" {
			s = tail
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

// IsExcludedProduct reports whether the product is excluded from ARR
// (e.g. iVerify Monthly Credits, Kipu API). The check folds case and
// whitespace and matches exactly or by containment in either direction.
func IsExcludedProduct(name string) bool {
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if key == "" {
		return false
	}
	for _, exc := range arrProductExclude {
		if key == exc || strings.Contains(key, exc) || strings.Contains(exc, key) {
			return true
		}
	}
	return false
}

// MatchProductColumn maps a Salesforce product name to its canonical ARR
// column. Exact folded match wins; otherwise containment in either direction,
// first alias in table order wins. ok=false means the caller buckets "Other".
func MatchProductColumn(name string) (string, bool) {
	raw := strings.TrimSpace(name)
	if raw == "" {
		return "", false
	}
	key := strings.ToLower(raw)
	for _, alias := range arrProductAliases {
		if alias.key == key {
			return alias.canonical, true
		}
	}
	for _, alias := range arrProductAliases {
		if strings.Contains(key, alias.key) || strings.Contains(alias.key, key) {
			return alias.canonical, true
		}
	}
	return "", false
}

// IsRenewalRecordType reports whether the opportunity record type is Renewal
// (case-insensitive, trimmed)
func IsRenewalRecordType(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == "renewal"
}

// IsClosedStage reports whether the stage counts as closed
func IsClosedStage(stage string) bool {
	_, closed := closedStages[stage]
	return closed
}

// IsOpenStage reports whether the opportunity counts as open: the stage must
// be set and not in the closed set
func IsOpenStage(stage string) bool {
	return stage != "" && !IsClosedStage(stage)
}
