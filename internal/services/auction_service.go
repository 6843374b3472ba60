package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"auctionBack/internal/auction"
	"auctionBack/internal/models"
	"auctionBack/internal/repositories"
)

// Notifier pushes auction events to a user's registered devices. Implemented
// by NotifyService; a nil Notifier disables push.
type Notifier interface {
	NotifyUser(ctx context.Context, userID int, title, body string)
}

type AuctionService struct {
	DB              *sql.DB
	ItemRepo        *repositories.ItemRepository
	BidRepo         *repositories.BidRepository
	ParticipantRepo *repositories.ParticipantRepository
	UserRepo        *repositories.UserRepository
	Notifier        Notifier
	InfoLog         *log.Logger
	ErrorLog        *log.Logger
}

func (s *AuctionService) JoinAuction(ctx context.Context, itemID int, user models.User) error {
	item, err := s.ItemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	joined, err := s.ParticipantRepo.ExistsByItemAndUser(ctx, itemID, user.ID)
	if err != nil {
		return err
	}

	if err := auction.ValidateJoin(item, user, joined, time.Now()); err != nil {
		return err
	}

	_, err = s.ParticipantRepo.CreateParticipant(ctx, models.Participant{
		ItemID: itemID,
		UserID: user.ID,
	})
	return err
}

func (s *AuctionService) LeaveAuction(ctx context.Context, itemID, userID int) error {
	return s.ParticipantRepo.DeleteByItemAndUser(ctx, itemID, userID)
}

func (s *AuctionService) GetParticipants(ctx context.Context, itemID int) ([]models.ParticipantInfo, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.ParticipantRepo.GetParticipantsByItemID(ctx, itemID)
}

// GetUserAuctions returns the items a user has joined, most recently joined first.
func (s *AuctionService) GetUserAuctions(ctx context.Context, userID int) ([]models.Item, error) {
	participants, err := s.ParticipantRepo.GetParticipantsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	var items []models.Item
	for _, p := range participants {
		item, err := s.ItemRepo.GetItemByID(ctx, p.ItemID)
		if err != nil {
			if err == models.ErrItemNotFound {
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *AuctionService) IsParticipant(ctx context.Context, itemID, userID int) (bool, error) {
	return s.ParticipantRepo.ExistsByItemAndUser(ctx, itemID, userID)
}

// PlaceBid validates and records a bid. The item row is locked for the whole
// transaction, so two concurrent bids on the same item serialize and the
// accepted order matches the rising current price.
func (s *AuctionService) PlaceBid(ctx context.Context, itemID int, user models.User, amount int64) (models.Bid, error) {
	joined, err := s.ParticipantRepo.ExistsByItemAndUser(ctx, itemID, user.ID)
	if err != nil {
		return models.Bid{}, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Bid{}, err
	}
	defer tx.Rollback()

	item, err := s.ItemRepo.GetItemForUpdateTx(ctx, tx, itemID)
	if err != nil {
		return models.Bid{}, err
	}

	if err := auction.ValidateBid(item, user, joined, amount, time.Now()); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		ItemID:    itemID,
		BidderID:  user.ID,
		BidAmount: amount,
		BidTime:   time.Now(),
	}
	bid, err = s.BidRepo.CreateBidTx(ctx, tx, bid)
	if err != nil {
		return models.Bid{}, err
	}

	if err := s.ItemRepo.RaiseCurrentPriceTx(ctx, tx, itemID, amount); err != nil {
		return models.Bid{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Bid{}, err
	}
	return bid, nil
}

func (s *AuctionService) GetAuctionBids(ctx context.Context, itemID int) ([]models.Bid, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.BidRepo.GetBidsByItemID(ctx, itemID)
}

func (s *AuctionService) GetUserBids(ctx context.Context, userID int) ([]models.Bid, error) {
	return s.BidRepo.GetBidsByBidderID(ctx, userID)
}

// SweepOnce advances every item whose time window has elapsed: recruiting
// items start their auction, started items past end time settle. Called from
// the sweeper goroutine on every tick.
func (s *AuctionService) SweepOnce(ctx context.Context, now time.Time) {
	recruiting, err := s.ItemRepo.GetItemsByStatus(ctx, auction.StatusRecruiting)
	if err != nil {
		s.ErrorLog.Printf("sweeper: failed to load recruiting items: %v", err)
	} else {
		for _, item := range recruiting {
			if auction.NextStatus(item, now) != auction.StatusAuctionStarted {
				continue
			}
			if err := s.startAuction(ctx, item); err != nil {
				s.ErrorLog.Printf("sweeper: failed to start auction for item %d: %v", item.ID, err)
			}
		}
	}

	started, err := s.ItemRepo.GetItemsByStatus(ctx, auction.StatusAuctionStarted)
	if err != nil {
		s.ErrorLog.Printf("sweeper: failed to load started items: %v", err)
		return
	}
	for _, item := range started {
		if auction.NextStatus(item, now) != auction.StatusAuctionEnded {
			continue
		}
		if err := s.endAuction(ctx, item); err != nil {
			s.ErrorLog.Printf("sweeper: failed to settle item %d: %v", item.ID, err)
		}
	}
}

func (s *AuctionService) startAuction(ctx context.Context, item models.Item) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = auction.Apply(ctx, tx, item.ID, auction.StatusRecruiting, auction.StatusAuctionStarted)
	if err == sql.ErrNoRows {
		// another run already advanced it
		return nil
	}
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.InfoLog.Printf("auction started: item %d (%s)", item.ID, item.Title)
	s.notifyParticipants(ctx, item, "Auction started", fmt.Sprintf("Bidding for %q is now open.", item.Title))
	return nil
}

// endAuction flips the item to AUCTION_ENDED and settles inside one
// transaction. The item row lock plus the status compare-and-set make the
// settlement read of the bid ledger atomic with the transition: a bid that
// commits after the flip can never be accepted, so none is missed.
func (s *AuctionService) endAuction(ctx context.Context, item models.Item) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	locked, err := s.ItemRepo.GetItemForUpdateTx(ctx, tx, item.ID)
	if err != nil {
		return err
	}
	if locked.Status != auction.StatusAuctionStarted {
		return nil
	}

	bids, err := s.BidRepo.GetBidsByItemIDTx(ctx, tx, item.ID)
	if err != nil {
		return err
	}

	var winnerBalance int64
	if len(bids) > 0 {
		winnerBalance, err = s.UserRepo.GetBalanceForUpdateTx(ctx, tx, bids[0].BidderID)
		if err != nil {
			return err
		}
	}

	settlement := auction.Settle(locked, bids, winnerBalance)
	if settlement.HasWinner {
		if err := s.ItemRepo.SetWinnerTx(ctx, tx, item.ID, settlement.WinnerID); err != nil {
			return err
		}
		if settlement.Debit {
			if err := s.UserRepo.DebitBalanceTx(ctx, tx, settlement.WinnerID, settlement.Price); err != nil {
				return err
			}
		} else {
			s.ErrorLog.Printf("sweeper: winner %d balance below price %d for item %d, debit skipped",
				settlement.WinnerID, settlement.Price, item.ID)
		}
	}

	if err := auction.Apply(ctx, tx, item.ID, auction.StatusAuctionStarted, auction.StatusAuctionEnded); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	if settlement.HasWinner {
		s.InfoLog.Printf("auction ended: item %d (%s), winner %d at %d", item.ID, item.Title, settlement.WinnerID, settlement.Price)
		if s.Notifier != nil {
			s.Notifier.NotifyUser(ctx, settlement.WinnerID, "Auction won",
				fmt.Sprintf("You won %q for %d.", item.Title, settlement.Price))
			s.Notifier.NotifyUser(ctx, item.SellerID, "Auction ended",
				fmt.Sprintf("Your item %q sold for %d.", item.Title, settlement.Price))
		}
	} else {
		s.InfoLog.Printf("auction ended: item %d (%s), no bids", item.ID, item.Title)
	}
	return nil
}

func (s *AuctionService) notifyParticipants(ctx context.Context, item models.Item, title, body string) {
	if s.Notifier == nil {
		return
	}
	userIDs, err := s.ParticipantRepo.GetUserIDsByItemID(ctx, item.ID)
	if err != nil {
		s.ErrorLog.Printf("failed to load participants for item %d: %v", item.ID, err)
		return
	}
	for _, id := range userIDs {
		s.Notifier.NotifyUser(ctx, id, title, body)
	}
}
