// Package persistence implements repository interfaces for orders.
package persistence

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	platformspanner "github.com/Ron9508/bookstore-backend/internal/platform/spanner"
	"github.com/Ron9508/bookstore-backend/modules/orders/application/queries"
	"github.com/Ron9508/bookstore-backend/modules/orders/domain"
	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

var (
	orderColumns     = []string{"OrderID", "UserID", "Status", "TotalCents", "CreatedAt"}
	orderItemColumns = []string{"OrderID", "LineNumber", "BookID", "Quantity", "UnitPriceCents"}
)

// SpannerRepository implements OrderRepository and OrderReader using
// Cloud Spanner. OrderItems is interleaved in Orders, so the header and
// its lines live in the same split and commit as one unit.
type SpannerRepository struct {
	client *spanner.Client
}

func NewSpannerRepository(client *spanner.Client) *SpannerRepository {
	return &SpannerRepository{client: client}
}

// Compile-time interface checks.
var (
	_ domain.OrderRepository = (*SpannerRepository)(nil)
	_ queries.OrderReader    = (*SpannerRepository)(nil)
)

// Save persists the order header and all line items in one commit.
func (r *SpannerRepository) Save(ctx context.Context, order *domain.Order) error {
	mutations := make([]*spanner.Mutation, 0, len(order.Items())+1)
	mutations = append(mutations, spanner.Insert("Orders", orderColumns, []interface{}{
		order.ID().String(),
		order.UserRef().String(),
		order.Status().String(),
		order.Total().Cents(),
		order.CreatedAt(),
	}))

	// LineNumber is part of the primary key, so the same book id can
	// appear on more than one line.
	for i, item := range order.Items() {
		mutations = append(mutations, spanner.Insert("OrderItems", orderItemColumns, []interface{}{
			order.ID().String(),
			int64(i + 1),
			item.BookID,
			item.Quantity,
			item.UnitPrice.Cents(),
		}))
	}

	if txn, ok := platformspanner.ReadWriteTxFromContext(ctx); ok {
		return txn.BufferWrite(mutations)
	}

	if _, err := r.client.Apply(ctx, mutations); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// ListByUser returns the user's orders with their lines, newest first.
// Book titles come from a LEFT JOIN so orders referencing since-deleted
// books still render from the price snapshot.
func (r *SpannerRepository) ListByUser(ctx context.Context, userID string) ([]queries.OrderDTO, error) {
	rtx, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		rtx = r.client.Single()
	}

	stmt := spanner.Statement{
		SQL: `SELECT o.OrderID, o.Status, o.TotalCents, o.CreatedAt,
		             i.BookID, i.Quantity, i.UnitPriceCents, i.LineNumber,
		             b.Title, b.Author, b.ISBN13
		      FROM Orders@{FORCE_INDEX=OrdersByUserID} o
		      JOIN OrderItems i ON o.OrderID = i.OrderID
		      LEFT JOIN Books b ON i.BookID = b.BookID
		      WHERE o.UserID = @userID
		      ORDER BY o.CreatedAt DESC, o.OrderID DESC, i.LineNumber`,
		Params: map[string]interface{}{
			"userID": userID,
		},
	}

	iter := rtx.Query(ctx, stmt)
	defer iter.Stop()

	var result []queries.OrderDTO
	index := make(map[string]int)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query orders: %w", err)
		}

		var (
			orderID, status              string
			totalCents                   int64
			createdAt                    time.Time
			bookID                       string
			quantity, unitCents, lineNum int64
			title, author, isbn          spanner.NullString
		)
		if err := row.Columns(&orderID, &status, &totalCents, &createdAt,
			&bookID, &quantity, &unitCents, &lineNum, &title, &author, &isbn); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		pos, ok := index[orderID]
		if !ok {
			pos = len(result)
			index[orderID] = pos
			result = append(result, queries.OrderDTO{
				ID:        orderID,
				Status:    status,
				Total:     types.MustNewMoney(totalCents),
				CreatedAt: createdAt,
			})
		}

		unitPrice := types.MustNewMoney(unitCents)
		result[pos].Items = append(result[pos].Items, queries.OrderItemDTO{
			BookID:      bookID,
			Title:       title.StringVal,
			Author:      author.StringVal,
			ISBN13:      isbn.StringVal,
			BookDeleted: !title.Valid,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Subtotal:    unitPrice.Multiply(quantity),
		})
	}

	return result, nil
}
