package pages

import (
	"sort"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/pages"
)

// ComparePages reports whether a sorts before b under the given order type.
// CREATION_DATE and UPDATE_DATE order ascending by timestamp; DEFAULT orders
// ascending by order_num. Missing order_num values sort first so malformed
// rows surface at the top rather than disappearing; population is enforced at
// write time.
func ComparePages(a, b *pages.Page, orderType domain.OrderType) bool {
	switch orderType {
	case domain.OrderByCreationDate:
		return a.CreatedAt.Before(b.CreatedAt)
	case domain.OrderByUpdateDate:
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		return orderNum(a) < orderNum(b)
	}
}

// SortSiblings orders the slice in place using the parent's effective order
// type. The sort is stable, so equal keys keep their incoming order and
// sorting twice yields the same sequence.
func SortSiblings(siblings []*pages.Page, orderType domain.OrderType) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return ComparePages(siblings[i], siblings[j], orderType)
	})
}

func orderNum(p *pages.Page) int {
	if p.OrderNum == nil {
		return 0
	}
	return *p.OrderNum
}
