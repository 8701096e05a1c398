package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SpendBucket is one category of the user's stated monthly spend.
// The set is closed - unknown bucket names are rejected at the API
// boundary instead of silently counting as zero.
type SpendBucket string

const (
	SpendBucketTravel         SpendBucket = "travel"
	SpendBucketRetail         SpendBucket = "retail"
	SpendBucketUtilities      SpendBucket = "utilities"
	SpendBucketFoodGroceries  SpendBucket = "food_groceries"
	SpendBucketFuel           SpendBucket = "fuel"
	SpendBucketTransportation SpendBucket = "transportation"
	SpendBucketRealEstate     SpendBucket = "real_estate"
	SpendBucketForeign        SpendBucket = "foreign"
)

var AllSpendBuckets = []SpendBucket{
	SpendBucketTravel,
	SpendBucketRetail,
	SpendBucketUtilities,
	SpendBucketFoodGroceries,
	SpendBucketFuel,
	SpendBucketTransportation,
	SpendBucketRealEstate,
	SpendBucketForeign,
}

func ParseSpendBucket(s string) (SpendBucket, error) {
	for _, bucket := range AllSpendBuckets {
		if string(bucket) == s {
			return bucket, nil
		}
	}
	return "", fmt.Errorf("unknown spend bucket %q", s)
}

// SpendProfile maps spend buckets to monthly amounts. Missing buckets
// count as zero.
type SpendProfile map[SpendBucket]decimal.Decimal

func (p SpendProfile) Get(bucket SpendBucket) decimal.Decimal {
	if amount, ok := p[bucket]; ok {
		return amount
	}
	return decimal.Zero
}

func (p SpendProfile) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range p {
		total = total.Add(amount)
	}
	return total
}
