package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"apextip/internal/docstore"
	"apextip/internal/models/doc_models"
	"apextip/internal/models/response_models"
	"apextip/pkg/utils"
)

type ProvisioningService interface {
	// ApproveCreator approves a pending creator and creates its overlay, tip page and
	// link tree in one unit of work.
	ApproveCreator(ctx context.Context, creatorID string) (*response_models.ProvisionedCreator, error)
}

type provisioningService struct {
	uow       docstore.UnitOfWork
	starter   doc_models.StarterBlocks
	publisher EventPublisher
	log       *logrus.Logger
	now       func() time.Time
}

func NewProvisioningService(uow docstore.UnitOfWork, starter doc_models.StarterBlocks, publisher EventPublisher, log *logrus.Logger) ProvisioningService {
	return &provisioningService{
		uow:       uow,
		starter:   starter,
		publisher: publisher,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *provisioningService) ApproveCreator(ctx context.Context, creatorID string) (*response_models.ProvisionedCreator, error) {
	creatorID = strings.TrimSpace(creatorID)
	if creatorID == "" {
		return nil, utils.ErrCreatorIDRequired
	}

	var out response_models.ProvisionedCreator
	err := s.uow.Do(ctx, func(ctx context.Context, tx docstore.Tx) error {
		creator, err := tx.ApproveCreator(ctx, creatorID)
		if err != nil {
			return err
		}

		now := s.now()
		overlay := doc_models.Overlay{BlockDocument: doc_models.NewBlockDocument(creatorID, s.starter.Overlay, now)}
		if err := tx.CreateOverlay(ctx, &overlay); err != nil {
			return err
		}
		tipPage := doc_models.TipPage{BlockDocument: doc_models.NewBlockDocument(creatorID, s.starter.TipPage, now)}
		if err := tx.CreateTipPage(ctx, &tipPage); err != nil {
			return err
		}
		linkTree := doc_models.LinkTree{BlockDocument: doc_models.NewBlockDocument(creatorID, s.starter.LinkTree, now)}
		if err := tx.CreateLinkTree(ctx, &linkTree); err != nil {
			return err
		}

		out = response_models.ProvisionedCreator{
			Creator:  *creator,
			Overlay:  overlay,
			TipPage:  tipPage,
			LinkTree: linkTree,
		}
		return nil
	})
	if err != nil {
		return nil, mapProvisioningError(err)
	}

	s.log.WithFields(logrus.Fields{
		"creator_id":   creatorID,
		"overlay_id":   out.Overlay.ID,
		"tip_page_id":  out.TipPage.ID,
		"link_tree_id": out.LinkTree.ID,
	}).Info("creator approved and provisioned")

	if err := s.publisher.Publish(ctx, RoutingCreatorApproved, CreatorApprovedEvent{
		CreatorID:  creatorID,
		Username:   out.Creator.Username,
		OverlayID:  out.Overlay.ID,
		TipPageID:  out.TipPage.ID,
		LinkTreeID: out.LinkTree.ID,
		ApprovedAt: out.Creator.UpdatedAt.Unix(),
	}); err != nil {
		s.log.WithError(err).WithField("creator_id", creatorID).Warn("failed to publish creator approval")
	}

	return &out, nil
}

func mapProvisioningError(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return utils.ErrCreatorNotFound
	case errors.Is(err, docstore.ErrAlreadyApproved),
		errors.Is(err, docstore.ErrConflict):
		return utils.ErrAlreadyApproved
	case errors.Is(err, docstore.ErrAlreadyExists):
		return utils.InvalidState("Creator documents already exist")
	default:
		return utils.StorageFailure("provision creator", err)
	}
}
