package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Put("/user/me", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))

	// Items
	mux.Post("/item", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/item", standardMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Get("/item/active", standardMiddleware.ThenFunc(app.itemHandler.GetActiveItems))
	mux.Get("/item/mine", authMiddleware.ThenFunc(app.itemHandler.GetMyItems))
	mux.Get("/item/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Put("/item/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/item/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))
	mux.Post("/item/:id/sold", authMiddleware.ThenFunc(app.itemHandler.MarkSold))
	mux.Post("/item/:id/image", authMiddleware.ThenFunc(app.itemHandler.UploadImage))
	mux.Post("/item/price_suggest", authMiddleware.ThenFunc(app.itemHandler.SuggestPrice))

	// Auctions
	mux.Post("/auction/:id/join", authMiddleware.ThenFunc(app.auctionHandler.JoinAuction))
	mux.Del("/auction/:id/leave", authMiddleware.ThenFunc(app.auctionHandler.LeaveAuction))
	mux.Get("/auction/:id/participants", authMiddleware.ThenFunc(app.auctionHandler.GetParticipants))
	mux.Get("/auction/mine", authMiddleware.ThenFunc(app.auctionHandler.GetMyAuctions))
	mux.Get("/auction/my_bids", authMiddleware.ThenFunc(app.auctionHandler.GetMyBids))
	mux.Post("/auction/:id/bid", authMiddleware.ThenFunc(app.auctionHandler.PlaceBid))
	mux.Get("/auction/:id/bids", authMiddleware.ThenFunc(app.auctionHandler.GetBids))

	// Live bidding
	mux.Get("/ws", http.HandlerFunc(app.AuctionWebSocketHandler))

	// Push tokens
	mux.Post("/notify/token", authMiddleware.ThenFunc(app.fcmHandler.CreateToken))
	mux.Del("/notify/token/:token", authMiddleware.ThenFunc(app.fcmHandler.DeleteToken))

	return mux
}
