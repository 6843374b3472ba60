package services

import (
	"testing"

	"auctionBack/internal/models"
)

func TestSanitizeProfileUpdate(t *testing.T) {
	current := models.User{
		ID:      1,
		Email:   "stored@example.com",
		Name:    "Stored Name",
		Balance: 5000,
	}

	t.Run("regular user cannot change balance", func(t *testing.T) {
		got := sanitizeProfileUpdate(current, models.User{ID: 1, Balance: 999999}, "user")
		if got.Balance != 5000 {
			t.Fatalf("balance = %d, want stored 5000", got.Balance)
		}
	})

	t.Run("admin may change balance", func(t *testing.T) {
		got := sanitizeProfileUpdate(current, models.User{ID: 1, Balance: 7000}, "admin")
		if got.Balance != 7000 {
			t.Fatalf("balance = %d, want 7000", got.Balance)
		}
	})

	t.Run("negative balance keeps stored value even for admin", func(t *testing.T) {
		got := sanitizeProfileUpdate(current, models.User{ID: 1, Balance: -1}, "admin")
		if got.Balance != 5000 {
			t.Fatalf("balance = %d, want stored 5000", got.Balance)
		}
	})

	t.Run("empty fields merge from stored profile", func(t *testing.T) {
		got := sanitizeProfileUpdate(current, models.User{ID: 1, Name: "New Name"}, "user")
		if got.Email != "stored@example.com" {
			t.Fatalf("email = %q, want stored", got.Email)
		}
		if got.Name != "New Name" {
			t.Fatalf("name = %q, want New Name", got.Name)
		}
	})
}
