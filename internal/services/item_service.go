package services

import (
	"context"
	"time"

	"auctionBack/internal/auction"
	"auctionBack/internal/models"
	"auctionBack/internal/repositories"
)

// defaultRecruitment is applied when a registration omits the recruitment
// window end.
const defaultRecruitment = 10 * time.Minute

type ItemService struct {
	ItemRepo *repositories.ItemRepository
	UserRepo *repositories.UserRepository
}

func (s *ItemService) RegisterItem(ctx context.Context, req models.ItemRequest, sellerID int) (models.Item, error) {
	seller, err := s.UserRepo.GetUserByID(ctx, sellerID)
	if err != nil {
		return models.Item{}, err
	}

	now := time.Now()
	recruitmentEnd := now.Add(defaultRecruitment)
	if req.RecruitmentEndTime != nil {
		recruitmentEnd = *req.RecruitmentEndTime
	}
	if err := auction.ValidateWindow(recruitmentEnd, req.EndTime); err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		Title:              req.Title,
		Description:        req.Description,
		StartPrice:         req.StartPrice,
		CurrentPrice:       req.StartPrice,
		ImageURL:           req.ImageURL,
		Status:             auction.StatusRecruiting,
		RecruitmentEndTime: recruitmentEnd,
		AuctionStartTime:   recruitmentEnd,
		EndTime:            req.EndTime,
		SellerID:           seller.ID,
	}
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.GetAllItems(ctx)
}

func (s *ItemService) GetActiveItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.GetActiveItems(ctx)
}

func (s *ItemService) GetItem(ctx context.Context, id int) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) GetMyItems(ctx context.Context, sellerID int) ([]models.Item, error) {
	return s.ItemRepo.GetItemsBySellerID(ctx, sellerID)
}

// UpdateItem lets the owner edit a listing while it is still recruiting.
// A start-price change re-derives the current price, since no bid exists yet.
func (s *ItemService) UpdateItem(ctx context.Context, id, userID int, req models.ItemRequest) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if err := auction.ValidateUpdate(item, userID); err != nil {
		return models.Item{}, err
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.StartPrice > 0 {
		item.StartPrice = req.StartPrice
		item.CurrentPrice = req.StartPrice
	}
	if req.RecruitmentEndTime != nil {
		item.RecruitmentEndTime = *req.RecruitmentEndTime
		item.AuctionStartTime = *req.RecruitmentEndTime
	}
	if !req.EndTime.IsZero() {
		item.EndTime = req.EndTime
	}
	if err := auction.ValidateWindow(item.RecruitmentEndTime, item.EndTime); err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.UpdateItem(ctx, item)
}

func (s *ItemService) DeleteItem(ctx context.Context, id, userID int) error {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item.SellerID != userID {
		return models.ErrNotOwner
	}
	return s.ItemRepo.SoftDelete(ctx, id)
}

// MarkSold confirms the hand-off of an ended auction.
func (s *ItemService) MarkSold(ctx context.Context, id, userID int) error {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item.SellerID != userID {
		return models.ErrNotOwner
	}
	if !auction.CanTransition(item.Status, auction.StatusSold) {
		return models.ErrItemNotEditable
	}
	return s.ItemRepo.MarkSold(ctx, id)
}

func (s *ItemService) SetImageURL(ctx context.Context, id, userID int, imageURL string) error {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item.SellerID != userID {
		return models.ErrNotOwner
	}
	return s.ItemRepo.SetImageURL(ctx, id, imageURL)
}
