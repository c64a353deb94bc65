package syncing

import (
	"fmt"

	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/internal/usecases/snapshotting"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

// TakeEODSnapshot captures the whole synced Salesforce state as one immutable
// payload, keyed to the business-timezone date. A second capture on the same
// date replaces the first.
func (s *service) TakeEODSnapshot() error {
	nowUTC := s.now().UTC()
	today := nowUTC.In(s.location)

	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return fmt.Errorf("loading accounts for snapshot: %w", err)
	}
	opportunities, err := s.oppRepo.GetAll()
	if err != nil {
		return fmt.Errorf("loading opportunities for snapshot: %w", err)
	}
	lineItems, err := s.lineItemRepo.GetAll()
	if err != nil {
		return fmt.Errorf("loading line items for snapshot: %w", err)
	}

	data, err := snapshotting.Encode(accounts, opportunities, lineItems)
	if err != nil {
		return err
	}

	snapshot := &domain.SalesforceEODSnapshot{
		SnapshotDate: today,
		SnapshotUTC:  nowUTC,
		Data:         data,
	}
	if err := s.eodRepo.SaveOrReplace(snapshot); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	log.L.WithFields(log.Fields{
		"snapshot_date":     today.Format("2006-01-02"),
		"snapshot_accounts": len(accounts),
	}).Info("eod snapshot stored")

	return nil
}
