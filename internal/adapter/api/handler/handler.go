package handler

import (
	"charlygames/internal/usecase"
)

var (
	authHandler       *AuthHandler
	gameHandler       *GameHandler
	priceBandHandler  *PriceBandHandler
	ratingHandler     *RatingHandler
	subscriberHandler *SubscriberHandler
	contactHandler    *ContactHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	pricingUseCase *usecase.PricingUseCase,
	ratingUseCase *usecase.RatingUseCase,
	subscriberUseCase *usecase.SubscriberUseCase,
	contactUseCase *usecase.ContactUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	gameHandler = NewGameHandler(catalogUseCase)
	priceBandHandler = NewPriceBandHandler(pricingUseCase)
	ratingHandler = NewRatingHandler(ratingUseCase)
	subscriberHandler = NewSubscriberHandler(subscriberUseCase)
	contactHandler = NewContactHandler(contactUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetGameHandler() *GameHandler {
	return gameHandler
}

func GetPriceBandHandler() *PriceBandHandler {
	return priceBandHandler
}

func GetRatingHandler() *RatingHandler {
	return ratingHandler
}

func GetSubscriberHandler() *SubscriberHandler {
	return subscriberHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}
