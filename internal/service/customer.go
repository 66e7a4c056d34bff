package service

import (
	"context"

	"github.com/invoicesystem/invoicesystem/internal/api/dto"
	"github.com/invoicesystem/invoicesystem/internal/cache"
	"github.com/invoicesystem/invoicesystem/internal/domain/customer"
	"github.com/invoicesystem/invoicesystem/internal/interfaces"
	"github.com/invoicesystem/invoicesystem/internal/sentry"
	"github.com/invoicesystem/invoicesystem/internal/types"
	"github.com/samber/lo"
)

type CustomerService = interfaces.CustomerService

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		ServiceParams: params,
	}
}

func (s *customerService) GetCustomer(ctx context.Context, id int) (*dto.CustomerResponse, error) {
	cust, err := s.getCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(cust), nil
}

func (s *customerService) GetCustomers(ctx context.Context) (*dto.ListCustomersResponse, error) {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := types.NewListResponse(lo.Map(customers, func(c *customer.Customer, _ int) *dto.CustomerResponse {
		return dto.NewCustomerResponse(c)
	}))
	return &resp, nil
}

// getCustomer reads through the cache. Cached values are copies so callers
// may mutate what they get back.
func (s *customerService) getCustomer(ctx context.Context, id int) (*customer.Customer, error) {
	key := cache.GenerateKey(cache.PrefixCustomer, id)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if c, ok := cached.(*customer.Customer); ok {
			cp := *c
			return &cp, nil
		}
	}

	span, spanCtx := s.Sentry.StartRepositorySpan(ctx, "customer.get", map[string]interface{}{"customer_id": id})
	cust, err := s.CustomerRepo.Get(spanCtx, id)
	sentry.FinishSpan(span, err)
	if err != nil {
		s.Logger.Debugw("customer lookup failed", "customer_id", id, "error", err)
		return nil, err
	}

	cp := *cust
	s.Cache.Set(ctx, key, &cp, cache.DefaultExpiration)
	return cust, nil
}
