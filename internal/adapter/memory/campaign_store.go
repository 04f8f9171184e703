package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.CampaignStore = (*CampaignStore)(nil)

// CampaignStore keeps campaigns in a map keyed by id.
type CampaignStore struct {
	currency string

	mu        sync.RWMutex
	nextID    int64
	campaigns map[int64]domain.Campaign
}

// NewCampaignStore returns an empty store validating amounts against currency.
func NewCampaignStore(currency string) *CampaignStore {
	return &CampaignStore{currency: currency, campaigns: make(map[int64]domain.Campaign)}
}

// Create validates the draft and stores it under the next id.
func (s *CampaignStore) Create(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := draft.Campaign()
	if err := c.Validate(s.currency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now().UTC()
	c.ID = s.nextID
	c.CreatedAt, c.UpdatedAt = now, now
	s.campaigns[c.ID] = c
	return clone(c), nil
}

// Get returns a copy of the campaign with the given id.
func (s *CampaignStore) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.CampaignNotFound(id)
	}
	return clone(c), nil
}

// List returns copies of all campaigns ordered by id.
func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, *clone(c))
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Update applies a patch. Patches that change the fund are rejected.
func (s *CampaignStore) Update(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	return s.write(ctx, id, func(cur domain.Campaign) (domain.Campaign, error) {
		if patch.ChangesFund(cur.CampaignFund) {
			return cur, domain.Invalid("campaignFund", "can only be changed through a funding operation")
		}
		return cur.Apply(patch.WithoutFund()), nil
	})
}

// Reserve applies patch and sets the fund to to if it still equals from.
func (s *CampaignStore) Reserve(ctx context.Context, id int64, patch domain.CampaignPatch, from, to decimal.Decimal) (*domain.Campaign, error) {
	return s.write(ctx, id, func(cur domain.Campaign) (domain.Campaign, error) {
		if !cur.CampaignFund.Equal(from) {
			return cur, domain.ErrFundConflict
		}
		next := cur.Apply(patch.WithoutFund())
		next.CampaignFund = to
		return next, nil
	})
}

// Delete removes the campaign if its fund still equals fund.
func (s *CampaignStore) Delete(ctx context.Context, id int64, fund decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.campaigns[id]
	if !ok {
		return domain.CampaignNotFound(id)
	}
	if !cur.CampaignFund.Equal(fund) {
		return domain.ErrFundConflict
	}
	delete(s.campaigns, id)
	return nil
}

// write runs a read-modify-write on one record under the store lock and
// validates the result before saving it.
func (s *CampaignStore) write(ctx context.Context, id int64, fn func(domain.Campaign) (domain.Campaign, error)) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.campaigns[id]
	if !ok {
		return nil, domain.CampaignNotFound(id)
	}
	next, err := fn(cur)
	if err != nil {
		return nil, err
	}
	if err = next.Validate(s.currency); err != nil {
		return nil, err
	}
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	next.UpdatedAt = time.Now().UTC()
	s.campaigns[id] = next
	return clone(next), nil
}

func clone(c domain.Campaign) *domain.Campaign {
	c.Keywords = slices.Clone(c.Keywords)
	return &c
}
