package handlers

import (
	"encoding/json"
	"net/http"

	"auctionBack/internal/models"
	"auctionBack/internal/services"
)

// BidBroadcaster pushes accepted bids to websocket subscribers of an item.
type BidBroadcaster interface {
	BroadcastBid(itemID int, msg models.BidMessage)
}

type AuctionHandler struct {
	Service     *services.AuctionService
	UserService *services.UserService
	Broadcaster BidBroadcaster
}

func (h *AuctionHandler) JoinAuction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	itemID, err := itemIDFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.JoinAuction(r.Context(), itemID, user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "joined"})
}

func (h *AuctionHandler) LeaveAuction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	itemID, err := itemIDFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.LeaveAuction(r.Context(), itemID, userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuctionHandler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	participants, err := h.Service.GetParticipants(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, participants)
}

// GetMyAuctions lists the items the authenticated user has joined.
func (h *AuctionHandler) GetMyAuctions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.Service.GetUserAuctions(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	itemID, err := itemIDFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	bid, err := h.Service.PlaceBid(r.Context(), itemID, user, req.BidAmount)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.Broadcaster != nil {
		h.Broadcaster.BroadcastBid(itemID, models.BidMessage{
			ItemID:         itemID,
			BidAmount:      bid.BidAmount,
			BidderUsername: user.Username,
			BidderName:     user.Name,
			BidTime:        bid.BidTime.Format("2006-01-02 15:04:05"),
			Success:        true,
		})
	}
	writeJSON(w, http.StatusCreated, bid)
}

// GetMyBids lists every bid the authenticated user has placed, newest first.
func (h *AuctionHandler) GetMyBids(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bids, err := h.Service.GetUserBids(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bids)
}

func (h *AuctionHandler) GetBids(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDFromPath(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bids, err := h.Service.GetAuctionBids(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bids)
}
