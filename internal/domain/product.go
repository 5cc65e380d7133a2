package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Product is a catalog item shown in collections and, when Featured, on the home page.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"image_url"`
	BlockchainURL string    `json:"blockchain_url"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
}

// MaxPrice is the largest amount the catalog stores.
const MaxPrice = 9999999999.99

var (
	errPriceNegative  = errors.New("must be a non-negative number")
	errPriceTooLarge  = errors.New("must not exceed 9999999999.99")
	errPricePrecision = errors.New("must have at most 2 decimal places")
)

// CheckPrice reports why v cannot be stored as a product price.
func CheckPrice(v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0) || v < 0:
		return errPriceNegative
	case v > MaxPrice:
		return errPriceTooLarge
	}
	digits := strconv.FormatFloat(v, 'f', -1, 64)
	if _, frac, ok := strings.Cut(digits, "."); ok && len(frac) > 2 {
		return errPricePrecision
	}
	return nil
}
