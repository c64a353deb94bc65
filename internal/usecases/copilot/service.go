package copilot

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dazos/cfo-copilot-api/infrastructure/repository"
	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/internal/usecases/snapshotting"
	"github.com/dazos/cfo-copilot-api/pkg/utils"
)

const liveSourceName = "Customer overview (open renewals)"

const maxRenewalNames = 10

const helpAnswer = "I can answer questions about total ARR/CARR (optionally as of a date, e.g. " +
	"'total ARR as of March 2025'), ARR change since the last snapshot, the largest customer, " +
	"and renewals in a given month (e.g. 'renewals in June 2025'). Try: 'What's our total ARR?'"

// Service answers recurring-revenue questions against live data or a dated
// end-of-day snapshot
type Service interface {
	Answer(question string) (*domain.CopilotResponse, error)
}

type service struct {
	accountRepo  repository.AccountRepository
	oppRepo      repository.OpportunityRepository
	lineItemRepo repository.OpportunityLineItemRepository
	eodRepo      repository.EODSnapshotRepository

	location *time.Location
	now      func() time.Time
}

func NewService(
	accountRepo repository.AccountRepository,
	oppRepo repository.OpportunityRepository,
	lineItemRepo repository.OpportunityLineItemRepository,
	eodRepo repository.EODSnapshotRepository,
	location *time.Location,
) Service {
	return &service{
		accountRepo:  accountRepo,
		oppRepo:      oppRepo,
		lineItemRepo: lineItemRepo,
		eodRepo:      eodRepo,
		location:     location,
		now:          time.Now,
	}
}

// Answer routes the question through a fixed list of intents; the first
// matching intent wins and an unrecognized question gets the help text.
func (s *service) Answer(question string) (*domain.CopilotResponse, error) {
	q := strings.ToLower(strings.TrimSpace(question))
	today := s.now().In(s.location)

	switch {
	case isARRDeltaQuestion(q):
		return s.answerARRDelta(today)
	case isTotalARRQuestion(q):
		return s.answerTotalARR(q, today)
	case isLargestCustomerQuestion(q):
		return s.answerLargestCustomer(q, today)
	case isRenewalMonthQuestion(q):
		return s.answerRenewalsInMonth(q, today)
	default:
		return &domain.CopilotResponse{Answer: helpAnswer, Sources: []string{}}, nil
	}
}

func isARRDeltaQuestion(q string) bool {
	if !strings.Contains(q, "arr") && !strings.Contains(q, "carr") {
		return false
	}
	for _, w := range []string{"change", "diff", "compared", "vs "} {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

var totalARRPhrasings = []string{
	"total arr",
	"total carr",
	"how much arr",
	"how much carr",
	"what's our arr",
	"what's our carr",
	"what is our arr",
	"what is our carr",
	"arr as of",
	"carr as of",
}

func isTotalARRQuestion(q string) bool {
	for _, phrase := range totalARRPhrasings {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

func isLargestCustomerQuestion(q string) bool {
	for _, phrase := range []string{"largest customer", "largest account", "biggest customer", "biggest account", "top customer", "top account"} {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

func isRenewalMonthQuestion(q string) bool {
	if !strings.Contains(q, "renewal") && !strings.Contains(q, "arr") && !strings.Contains(q, "carr") {
		return false
	}
	_, _, ok := ResolveMonthYear(q)
	return ok
}

func (s *service) answerARRDelta(today time.Time) (*domain.CopilotResponse, error) {
	live, err := s.liveReport()
	if err != nil {
		return nil, err
	}

	snapshot, err := s.eodRepo.GetLatestBefore(today)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return &domain.CopilotResponse{
			Answer: fmt.Sprintf(
				"Current total ARR is %s across %d accounts. No prior snapshot exists yet, so there is nothing to compare against.",
				utils.FormatUSD(live.GrandTotal), len(live.Rows),
			),
			Sources: []string{liveSourceName, "No prior snapshot available"},
		}, nil
	}

	historical, err := snapshotting.DecodeAndAggregate(snapshot.Data)
	if err != nil {
		return nil, err
	}

	snapshotDate := snapshot.SnapshotDate.Format("2006-01-02")
	delta := live.GrandTotal - historical.GrandTotal

	var answer string
	switch {
	case delta == 0:
		answer = fmt.Sprintf(
			"Total ARR is unchanged at %s since the %s snapshot.",
			utils.FormatUSD(live.GrandTotal), snapshotDate,
		)
	default:
		direction := "up"
		if delta < 0 {
			direction = "down"
		}
		pctPart := ""
		if historical.GrandTotal != 0 {
			pctPart = fmt.Sprintf(" (%.1f%%)", delta/historical.GrandTotal*100)
		}
		answer = fmt.Sprintf(
			"Total ARR is %s, %s %s%s since the %s snapshot.",
			utils.FormatUSD(live.GrandTotal), direction, utils.FormatUSD(math.Abs(delta)),
			pctPart, snapshotDate,
		)
	}

	return &domain.CopilotResponse{
		Answer:  answer,
		Sources: []string{liveSourceName, fmt.Sprintf("EOD snapshot %s", snapshotDate)},
	}, nil
}

func (s *service) answerTotalARR(q string, today time.Time) (*domain.CopilotResponse, error) {
	report, sources, err := s.reportFor(q, today)
	if err != nil {
		return nil, err
	}

	return &domain.CopilotResponse{
		Answer: fmt.Sprintf(
			"Total ARR is %s across %d accounts with open renewals.",
			utils.FormatUSD(report.GrandTotal), len(report.Rows),
		),
		Sources: sources,
	}, nil
}

func (s *service) answerLargestCustomer(q string, today time.Time) (*domain.CopilotResponse, error) {
	report, sources, err := s.reportFor(q, today)
	if err != nil {
		return nil, err
	}

	if len(report.Rows) == 0 {
		return &domain.CopilotResponse{
			Answer:  "No customer ARR data is available for that period.",
			Sources: sources,
		}, nil
	}

	top := report.Rows[0]
	return &domain.CopilotResponse{
		Answer: fmt.Sprintf(
			"The largest customer is %s with %s in ARR.",
			top.AccountName, utils.FormatUSD(top.TotalARR),
		),
		Sources: sources,
	}, nil
}

func (s *service) answerRenewalsInMonth(q string, today time.Time) (*domain.CopilotResponse, error) {
	year, month, _ := ResolveMonthYear(q)

	report, sources, err := s.reportFor(q, today)
	if err != nil {
		return nil, err
	}

	var total float64
	names := make([]string, 0)
	count := 0
	for _, row := range report.Rows {
		end := row.SubscriptionEndDate
		if end == nil || end.Year() != year || end.Month() != month {
			continue
		}
		count++
		total += row.TotalARR
		names = append(names, row.AccountName)
	}

	monthLabel := fmt.Sprintf("%s %d", month.String(), year)
	if count == 0 {
		return &domain.CopilotResponse{
			Answer:  fmt.Sprintf("No accounts have renewals in %s.", monthLabel),
			Sources: sources,
		}, nil
	}

	nameList := names
	suffix := ""
	if len(names) > maxRenewalNames {
		nameList = names[:maxRenewalNames]
		suffix = fmt.Sprintf(" (+%d more)", len(names)-maxRenewalNames)
	}

	return &domain.CopilotResponse{
		Answer: fmt.Sprintf(
			"%d accounts renew in %s, totaling %s in ARR: %s%s.",
			count, monthLabel, utils.FormatUSD(utils.RoundWithTwoDecimalPlace(total)),
			strings.Join(nameList, ", "), suffix,
		),
		Sources: sources,
	}, nil
}

// reportFor resolves the question's reference date and picks the aggregation
// basis: the exact-date snapshot when one exists, otherwise live data (with a
// note in sources when a requested snapshot is missing).
func (s *service) reportFor(q string, today time.Time) (*domain.ARRReport, []string, error) {
	refDate := ResolveReferenceDate(q, today)
	if refDate == nil {
		report, err := s.liveReport()
		if err != nil {
			return nil, nil, err
		}
		return report, []string{liveSourceName}, nil
	}

	snapshot, err := s.eodRepo.GetByDate(*refDate)
	if err != nil {
		return nil, nil, err
	}
	if snapshot != nil {
		report, err := snapshotting.DecodeAndAggregate(snapshot.Data)
		if err != nil {
			return nil, nil, err
		}
		return report, []string{fmt.Sprintf("EOD snapshot %s", snapshot.SnapshotDate.Format("2006-01-02"))}, nil
	}

	report, err := s.liveReport()
	if err != nil {
		return nil, nil, err
	}
	sources := []string{
		liveSourceName,
		fmt.Sprintf("No snapshot found for %s; using live data", refDate.Format("2006-01-02")),
	}
	return report, sources, nil
}

func (s *service) liveReport() (*domain.ARRReport, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, err
	}
	opportunities, err := s.oppRepo.GetAll()
	if err != nil {
		return nil, err
	}
	lineItems, err := s.lineItemRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return reporting.ComputeARR(accounts, opportunities, lineItems), nil
}
