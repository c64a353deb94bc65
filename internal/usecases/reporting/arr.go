package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/pkg/utils"
)

// UnknownAccountName is the display placeholder for opportunities whose
// account reference has no synced account row
const UnknownAccountName = "—"

// accountKey identifies the account an opportunity belongs to. The name is
// denormalized on the opportunity, so two opportunities of the same account
// always carry the same pair.
type accountKey struct {
	id   string
	name string
}

// ComputeARR builds the ARR-by-account-product table over open renewal
// opportunities. All inputs are in-memory collections (live rows or a decoded
// snapshot); the computation is pure and synchronous.
//
// Rounding is applied independently at every emission point: each cell is
// rounded after annualization, row totals are rounded sums of rounded cells,
// column totals sum the rounded cells. The resulting off-by-a-cent drift
// between levels is part of the established report contract.
func ComputeARR(
	accounts []*domain.Account,
	opportunities []*domain.Opportunity,
	lineItems []*domain.OpportunityLineItem,
) *domain.ARRReport {
	products := append(append([]string{}, ARRProductColumns...), OtherProductColumn)

	openRenewals := filterOpenRenewals(opportunities)

	oppToAccount := make(map[string]accountKey, len(openRenewals))
	endDateByAccount := make(map[accountKey]*time.Time)
	for _, o := range openRenewals {
		key := accountKey{id: o.AccountID, name: o.AccountName}
		oppToAccount[o.SFID] = key
		if o.CloseDate != nil {
			current := endDateByAccount[key]
			if current == nil || o.CloseDate.After(*current) {
				d := *o.CloseDate
				endDateByAccount[key] = &d
			}
		} else if _, seen := endDateByAccount[key]; !seen {
			endDateByAccount[key] = nil
		}
	}

	segmentBySFID := make(map[string]string, len(accounts))
	for _, a := range accounts {
		segmentBySFID[a.SFID] = a.Segment
	}

	// Accumulate MRR per account and product bucket, tracking first-seen
	// account order so that ties sort deterministically.
	mrrByAccount := make(map[accountKey]map[string]float64)
	var accountOrder []accountKey
	for _, li := range lineItems {
		key, ok := oppToAccount[li.OpportunitySFID]
		if !ok {
			continue // orphan or non-qualifying parent
		}
		raw := NormalizeProductName(li.ProductName)
		if IsExcludedProduct(raw) || IsExcludedProduct(li.ProductName) {
			continue
		}
		bucket := OtherProductColumn
		if canonical, matched := MatchProductColumn(raw); matched {
			bucket = canonical
		}
		cells, seen := mrrByAccount[key]
		if !seen {
			cells = make(map[string]float64, len(products))
			mrrByAccount[key] = cells
			accountOrder = append(accountOrder, key)
		}
		cells[bucket] += li.TotalPrice
	}

	totalByProduct := make(map[string]float64, len(products))
	for _, p := range products {
		totalByProduct[p] = 0
	}

	rows := make([]*domain.ARRAccountRow, 0, len(accountOrder))
	grandTotal := 0.0
	for _, key := range accountOrder {
		cells := mrrByAccount[key]

		byProduct := make(map[string]float64, len(products))
		totalARR := 0.0
		for _, p := range products {
			arr := utils.RoundWithTwoDecimalPlace(cells[p] * ARRMultiplier)
			byProduct[p] = arr
			totalByProduct[p] += arr
			totalARR += arr
		}
		totalARR = utils.RoundWithTwoDecimalPlace(totalARR)
		grandTotal += totalARR

		rows = append(rows, &domain.ARRAccountRow{
			AccountID:           key.id,
			AccountName:         displayAccountName(key.name),
			Segment:             EffectiveSegment(segmentBySFID[key.id]),
			SubscriptionEndDate: endDateByAccount[key],
			ByProduct:           byProduct,
			TotalARR:            totalARR,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalARR > rows[j].TotalARR
	})

	for _, p := range products {
		totalByProduct[p] = utils.RoundWithTwoDecimalPlace(totalByProduct[p])
	}

	return &domain.ARRReport{
		Products:       products,
		Rows:           rows,
		TotalByProduct: totalByProduct,
		GrandTotal:     utils.RoundWithTwoDecimalPlace(grandTotal),
	}
}

// ComputeDashboardKPI computes the headline numbers: ARR over open renewal
// line items (excluded products skipped) and pipeline over all open
// opportunity amounts
func ComputeDashboardKPI(
	opportunities []*domain.Opportunity,
	lineItems []*domain.OpportunityLineItem,
) (arr float64, pipeline float64) {
	renewalSFIDs := make(map[string]struct{})
	for _, o := range opportunities {
		if IsOpenStage(o.StageName) {
			pipeline += o.Amount
			if IsRenewalRecordType(o.RecordTypeName) {
				renewalSFIDs[o.SFID] = struct{}{}
			}
		}
	}

	mrr := 0.0
	for _, li := range lineItems {
		if _, ok := renewalSFIDs[li.OpportunitySFID]; !ok {
			continue
		}
		if IsExcludedProduct(NormalizeProductName(li.ProductName)) {
			continue
		}
		mrr += li.TotalPrice
	}

	return mrr * ARRMultiplier, pipeline
}

// ComputeARRByAccount lists every account owning at least one open renewal
// opportunity with its summed ARR, sorted descending
func ComputeARRByAccount(
	opportunities []*domain.Opportunity,
	lineItems []*domain.OpportunityLineItem,
) ([]*domain.ARRAccountSummary, float64) {
	openRenewals := filterOpenRenewals(opportunities)

	mrrByOpp := accumulateRenewalMRR(openRenewals, lineItems)

	type accountAgg struct {
		count int
		mrr   float64
	}
	byAccount := make(map[accountKey]*accountAgg)
	var order []accountKey
	for _, o := range openRenewals {
		key := accountKey{id: o.AccountID, name: o.AccountName}
		agg, ok := byAccount[key]
		if !ok {
			agg = &accountAgg{}
			byAccount[key] = agg
			order = append(order, key)
		}
		agg.count++
		agg.mrr += mrrByOpp[o.SFID]
	}

	summaries := make([]*domain.ARRAccountSummary, 0, len(order))
	total := 0.0
	for _, key := range order {
		agg := byAccount[key]
		arr := utils.RoundWithTwoDecimalPlace(agg.mrr * ARRMultiplier)
		total += arr
		summaries = append(summaries, &domain.ARRAccountSummary{
			AccountID:        key.id,
			AccountName:      displayAccountName(key.name),
			OpenRenewalCount: agg.count,
			ARR:              arr,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ARR > summaries[j].ARR
	})

	return summaries, utils.RoundWithTwoDecimalPlace(total)
}

// ComputeRenewalARRSplit breaks renewal ARR (any stage) into open vs
// closed-won buckets with up to limit example opportunities per bucket.
// Dashboard ARR shows the open bucket only; total contracted ARR usually
// means open plus closed won.
func ComputeRenewalARRSplit(
	opportunities []*domain.Opportunity,
	lineItems []*domain.OpportunityLineItem,
	limit int,
) *domain.RenewalARRSplit {
	var allRenewals []*domain.Opportunity
	for _, o := range opportunities {
		if IsRenewalRecordType(o.RecordTypeName) {
			allRenewals = append(allRenewals, o)
		}
	}

	mrrByOpp := accumulateRenewalMRR(allRenewals, lineItems)

	split := &domain.RenewalARRSplit{
		OpenExamples:      []*domain.RenewalExample{},
		ClosedWonExamples: []*domain.RenewalExample{},
		Note:              "Dashboard ARR shows open_renewal_arr only. total_renewal_arr (open + closed won) is the contracted ARR figure.",
	}

	openMRR := 0.0
	closedWonMRR := 0.0
	for _, o := range allRenewals {
		lineTotal := mrrByOpp[o.SFID]
		arrValue := utils.RoundWithTwoDecimalPlace(lineTotal * ARRMultiplier)
		example := &domain.RenewalExample{
			Name:          o.Name,
			StageName:     o.StageName,
			LineItemTotal: arrValue,
			SFID:          o.SFID,
		}
		if IsClosedStage(o.StageName) {
			if o.StageName == "Closed Won" {
				closedWonMRR += lineTotal
				if len(split.ClosedWonExamples) < limit {
					split.ClosedWonExamples = append(split.ClosedWonExamples, example)
				}
			}
		} else {
			openMRR += lineTotal
			if len(split.OpenExamples) < limit {
				split.OpenExamples = append(split.OpenExamples, example)
			}
		}
	}

	sort.SliceStable(split.OpenExamples, func(i, j int) bool {
		return split.OpenExamples[i].LineItemTotal > split.OpenExamples[j].LineItemTotal
	})
	sort.SliceStable(split.ClosedWonExamples, func(i, j int) bool {
		return split.ClosedWonExamples[i].LineItemTotal > split.ClosedWonExamples[j].LineItemTotal
	})

	split.OpenRenewalARR = utils.RoundWithTwoDecimalPlace(openMRR * ARRMultiplier)
	split.ClosedWonRenewalARR = utils.RoundWithTwoDecimalPlace(closedWonMRR * ARRMultiplier)
	split.TotalRenewalARR = utils.RoundWithTwoDecimalPlace(openMRR*ARRMultiplier + closedWonMRR*ARRMultiplier)

	return split
}

// CountRenewalOpportunities counts open opportunities classified as renewals
func CountRenewalOpportunities(opportunities []*domain.Opportunity) int {
	count := 0
	for _, o := range opportunities {
		if IsOpenStage(o.StageName) && IsRenewalRecordType(o.RecordTypeName) {
			count++
		}
	}
	return count
}

// EffectiveSegment trims the stored segment and falls back to the default
// label. Applied at every read, never at write time.
func EffectiveSegment(segment string) string {
	s := strings.TrimSpace(segment)
	if s == "" {
		return DefaultSegment
	}
	return s
}

func filterOpenRenewals(opportunities []*domain.Opportunity) []*domain.Opportunity {
	var renewals []*domain.Opportunity
	for _, o := range opportunities {
		if IsOpenStage(o.StageName) && IsRenewalRecordType(o.RecordTypeName) {
			renewals = append(renewals, o)
		}
	}
	return renewals
}

// accumulateRenewalMRR sums included line item MRR per opportunity for the
// given renewal set
func accumulateRenewalMRR(renewals []*domain.Opportunity, lineItems []*domain.OpportunityLineItem) map[string]float64 {
	renewalSFIDs := make(map[string]struct{}, len(renewals))
	for _, o := range renewals {
		renewalSFIDs[o.SFID] = struct{}{}
	}

	mrrByOpp := make(map[string]float64)
	for _, li := range lineItems {
		if _, ok := renewalSFIDs[li.OpportunitySFID]; !ok {
			continue
		}
		if IsExcludedProduct(NormalizeProductName(li.ProductName)) {
			continue
		}
		mrrByOpp[li.OpportunitySFID] += li.TotalPrice
	}
	return mrrByOpp
}

func displayAccountName(name string) string {
	if strings.TrimSpace(name) == "" {
		return UnknownAccountName
	}
	return name
}
