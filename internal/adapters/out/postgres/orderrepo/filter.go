package orderrepo

import (
	"strings"

	"fulfillment/internal/core/domain/model/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// predicate renders the store-side part of a listing filter as a WHERE clause
// with '?' placeholders, ready for gorm's Where.
func predicate(f order.Filter) (string, []any, error) {
	where := sq.And{}

	// An empty non-nil set renders ANY('{}') and matches nothing.
	if states := f.EffectiveStates(); states != nil {
		where = append(where, sq.Expr("shop_orders.state = ANY(?)", pq.Array(stateNames(states))))
	}
	if f.ItemID != nil {
		where = append(where, sq.Eq{"shop_orders.item_id": *f.ItemID})
	}
	if f.CreatedFrom != nil {
		where = append(where, sq.GtOrEq{"shop_orders.created_at": *f.CreatedFrom})
	}
	if f.CreatedTo != nil {
		where = append(where, sq.LtOrEq{"shop_orders.created_at": *f.CreatedTo})
	}
	if search := strings.TrimSpace(f.UserSearch); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM users WHERE users.id = shop_orders.user_id AND (users.display_name ILIKE ? OR users.email ILIKE ?))",
			pattern, pattern,
		))
	}

	return where.ToSql()
}

// orderBy maps a sort key to an ORDER BY clause. Ties break on id so that paging
// through equal timestamps or prices stays stable.
func orderBy(key order.SortKey) string {
	switch key {
	case order.SortIDAsc:
		return "shop_orders.id ASC"
	case order.SortIDDesc:
		return "shop_orders.id DESC"
	case order.SortCreatedAtAsc:
		return "shop_orders.created_at ASC, shop_orders.id ASC"
	case order.SortPriceAsc:
		return "shop_orders.frozen_price ASC NULLS LAST, shop_orders.id ASC"
	case order.SortPriceDesc:
		return "shop_orders.frozen_price DESC NULLS LAST, shop_orders.id DESC"
	default:
		return "shop_orders.created_at DESC, shop_orders.id DESC"
	}
}

func stateNames(states []order.State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return names
}
