package service

import (
	"context"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/i18n"
	"github.com/averylane/shiftwise/internal/repository"
)

type shopService struct {
	profiles repository.ShopProfileRepo
}

func NewShopService(profiles repository.ShopProfileRepo) ShopService {
	return &shopService{profiles: profiles}
}

func (s *shopService) Get(ctx context.Context) (*domain.ShopProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *shopService) Update(ctx context.Context, p *domain.ShopProfile) error {
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q", p.Timezone)
		}
	}
	if p.Locale != "" && !i18n.Supported(p.Locale) {
		return fmt.Errorf("unsupported locale %q (supported: %v)", p.Locale, i18n.SupportedLocales())
	}
	return s.profiles.Upsert(ctx, p)
}
