package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"adwallet/internal/core/domain"
)

// refKind selects which catalog references a check covers.
type refKind uint8

const (
	refTown refKind = 1 << iota
	refProduct
	refKeywords

	allRefs = refTown | refProduct | refKeywords
)

// patchedRefs reports which references a patch touches.
func patchedRefs(p domain.CampaignPatch) refKind {
	var k refKind
	if p.Town != nil {
		k |= refTown
	}
	if p.ProductID != nil {
		k |= refProduct
	}
	if p.Keywords != nil {
		k |= refKeywords
	}
	return k
}

type references struct {
	towns    []domain.Town
	products []domain.Product
	keywords []domain.Keyword
}

// loadReferences fetches the three catalogs concurrently.
func (u *FundingUseCase) loadReferences(ctx context.Context) (references, error) {
	var refs references
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		refs.towns, err = u.catalog.Towns(ctx)
		return err
	})
	g.Go(func() (err error) {
		refs.products, err = u.catalog.Products(ctx)
		return err
	})
	g.Go(func() (err error) {
		refs.keywords, err = u.catalog.Keywords(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return references{}, fmt.Errorf("load catalog: %w", err)
	}
	return refs, nil
}

// check verifies that the selected references of c exist in the catalog.
// It returns c's keywords with their catalog names.
func (r references) check(c domain.Campaign, which refKind) ([]domain.Keyword, error) {
	if which&refTown != 0 && !r.hasTown(c.Town) {
		return nil, domain.Invalid("town", fmt.Sprintf("unknown town %q", c.Town))
	}
	if which&refProduct != 0 && !r.hasProduct(c.ProductID) {
		return nil, domain.Invalid("productId", fmt.Sprintf("unknown product %d", c.ProductID))
	}
	if which&refKeywords == 0 {
		return c.Keywords, nil
	}
	known := make(map[int64]domain.Keyword, len(r.keywords))
	for _, k := range r.keywords {
		known[k.ID] = k
	}
	out := make([]domain.Keyword, 0, len(c.Keywords))
	for _, k := range c.Keywords {
		ref, ok := known[k.ID]
		if !ok {
			return nil, domain.Invalid("keywords", fmt.Sprintf("unknown keyword %d", k.ID))
		}
		out = append(out, ref)
	}
	return out, nil
}

func (r references) hasTown(name string) bool {
	for _, t := range r.towns {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

func (r references) hasProduct(id int64) bool {
	for _, p := range r.products {
		if p.ID == id {
			return true
		}
	}
	return false
}
