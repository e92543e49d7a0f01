package models

// BaseCurrency is the currency spot prices are stored in.
const BaseCurrency = "USD"

// PriceQuote is a spot's nightly price converted to another currency.
// swagger:model PriceQuote
type PriceQuote struct {
	SpotID    int64   `json:"spotId"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Rate      float32 `json:"rate"`
	Converted float64 `json:"convertedPrice"`
}
