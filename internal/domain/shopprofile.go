package domain

import (
	"fmt"
	"time"
)

// ShopProfile is the singleton configuration row for the shop. The
// reporting timezone buckets punch events into calendar days regardless
// of where the report is viewed from; the locale drives the report's
// clock and duration formatting.
type ShopProfile struct {
	ID       string
	Name     string
	Timezone string
	Locale   string
}

// Location resolves the profile's reporting timezone, defaulting to UTC
// when unset.
func (p *ShopProfile) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reporting timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}
