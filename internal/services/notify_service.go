package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"auctionBack/internal/repositories"
)

// NotifyService sends FCM pushes to every device a user registered. A nil
// messaging client turns the service into a no-op, so deployments without
// firebase credentials still run.
type NotifyService struct {
	Client    *messaging.Client
	TokenRepo *repositories.NotifyTokenRepository
	ErrorLog  *log.Logger
}

func (s *NotifyService) RegisterToken(ctx context.Context, userID int, token string) error {
	return s.TokenRepo.InsertToken(ctx, userID, token)
}

func (s *NotifyService) RemoveToken(ctx context.Context, token string) error {
	return s.TokenRepo.DeleteToken(ctx, token)
}

func (s *NotifyService) NotifyUser(ctx context.Context, userID int, title, body string) {
	if s.Client == nil {
		return
	}

	tokens, err := s.TokenRepo.GetTokensByUserID(ctx, userID)
	if err != nil {
		s.ErrorLog.Printf("failed to load notify tokens for user %d: %v", userID, err)
		return
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
		}
		if _, err := s.Client.Send(ctx, message); err != nil {
			s.ErrorLog.Printf("failed to send push to user %d: %v", userID, err)
			// stale registration, drop it
			if messaging.IsRegistrationTokenNotRegistered(err) {
				if delErr := s.TokenRepo.DeleteToken(ctx, token); delErr != nil {
					s.ErrorLog.Printf("failed to delete stale token: %v", delErr)
				}
			}
		}
	}
}
