package domain

// CashbackRates holds the percentage rates extracted from a card's
// free-text perk fields, by spend bucket. Zero means no published rate.
type CashbackRates struct {
	Travel     float64
	OtherSpend float64
	General    float64
}

// Feature is a qualitative perk detected via keyword presence.
type Feature string

const (
	FeatureCinemaOffers        Feature = "Cinema Offers"
	FeatureAirportLoungeAccess Feature = "Airport Lounge Access"
	FeatureValetParking        Feature = "Valet Parking"
	FeatureComplementaryGolf   Feature = "Complementary Golf"
	FeatureMetalCard           Feature = "Metal Card"
	FeatureAirportTransfers    Feature = "Airport Transfers"
)

var AllFeatures = []Feature{
	FeatureCinemaOffers,
	FeatureAirportLoungeAccess,
	FeatureValetParking,
	FeatureComplementaryGolf,
	FeatureMetalCard,
	FeatureAirportTransfers,
}
