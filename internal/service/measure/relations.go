package measure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// ReplaceRelations makes each given id list the exact member set of its
// relation. Relations not present in rels are left untouched; an empty list
// clears the relation. All sets are written in one transaction.
func (s *Service) ReplaceRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error {
	if len(rels) == 0 {
		return nil
	}

	if err := s.CheckRelations(ctx, measureID, rels); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.replaceRelations(txCtx, measureID, rels)
	})
	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "measure relations replaced",
		slog.Int64("measure_id", measureID),
		slog.Int("relations", len(rels)),
	)
	return nil
}

// CheckRelations reports what ReplaceRelations would reject without
// writing anything.
func (s *Service) CheckRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error {
	missing, err := s.measures.MissingIDs(ctx, []int64{measureID})
	if err != nil {
		return fmt.Errorf("check measure: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("measure %d: %w", measureID, domain.ErrNotFound)
	}
	return s.checkRelations(ctx, measureID, rels)
}

// replaceRelations must run inside a transaction.
func (s *Service) replaceRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error {
	for _, rel := range sortedRelations(rels) {
		if err := s.measures.ReplaceRelation(ctx, measureID, rel, rels[rel]); err != nil {
			return fmt.Errorf("replace %s: %w", rel, err)
		}
	}
	return nil
}
