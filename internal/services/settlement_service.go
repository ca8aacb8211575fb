package services

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"apextip/internal/docstore"
	"apextip/internal/repositories"
	"apextip/pkg/utils"
)

type SettlementExport struct {
	CreatorID string
	Rows      int
	CSV       []byte
}

type SettlementService interface {
	// ExportUnsettled renders the creator's unsettled tips for bulk payout. It never
	// changes the settled flag.
	ExportUnsettled(ctx context.Context, creatorID string) (*SettlementExport, error)
}

type settlementService struct {
	creators docstore.CreatorStore
	tipRepo  repositories.TipRepository
}

func NewSettlementService(creators docstore.CreatorStore, tipRepo repositories.TipRepository) SettlementService {
	return &settlementService{creators: creators, tipRepo: tipRepo}
}

func (s *settlementService) ExportUnsettled(ctx context.Context, creatorID string) (*SettlementExport, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, utils.ErrCreatorIDRequired
	}

	creator, err := s.creators.GetCreator(ctx, creatorID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, utils.ErrCreatorNotFound
		}
		return nil, utils.StorageFailure("get creator", err)
	}

	account := creator.PayoutAccount()
	if account == "" {
		return nil, utils.ErrPayoutAccountMissing
	}

	tips, err := s.tipRepo.ListUnsettled(ctx, creatorID)
	if err != nil {
		return nil, utils.StorageFailure("list unsettled tips", err)
	}
	if len(tips) == 0 {
		return nil, utils.ErrNothingToSettle
	}

	var buf bytes.Buffer
	if err := EncodeSettlementCSV(&buf, account, tips); err != nil {
		return nil, &utils.AppError{Kind: utils.KindInternal, Message: "encode settlement export", Err: err}
	}

	return &SettlementExport{
		CreatorID: creatorID,
		Rows:      len(tips),
		CSV:       buf.Bytes(),
	}, nil
}
