package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/pkg/errors"
)

type firestoreShopRepository struct {
	client *firestore.Client
}

func NewFirestoreShopRepository(client *firestore.Client) repository.ShopRepository {
	return &firestoreShopRepository{
		client: client,
	}
}

func (r *firestoreShopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == "" {
		shop.ID = r.client.Collection("shops").NewDoc().ID
	}

	now := time.Now()
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = now
	}
	shop.UpdatedAt = now

	_, err := r.client.Collection("shops").Doc(shop.ID).Set(ctx, shop)
	if err != nil {
		return errors.Internal("Failed to create shop", err)
	}

	return nil
}

func (r *firestoreShopRepository) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	doc, err := r.client.Collection("shops").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Shop", err)
		}
		return nil, errors.Internal("Failed to get shop", err)
	}

	var shop entity.Shop
	if err := doc.DataTo(&shop); err != nil {
		return nil, errors.Internal("Failed to parse shop data", err)
	}

	return &shop, nil
}

// GetByOwner looks up by owner id first and falls back to the owner email;
// seed/test accounts carry an email string in place of a document id.
// Soft-deleted shops are not considered owned.
func (r *firestoreShopRepository) GetByOwner(ctx context.Context, ownerID, ownerEmail string) (*entity.Shop, error) {
	keys := []struct {
		field string
		value string
	}{
		{"ownerId", ownerID},
		{"ownerEmail", ownerEmail},
	}

	for _, key := range keys {
		if key.value == "" {
			continue
		}

		iter := r.client.Collection("shops").
			Where(key.field, "==", key.value).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errors.Internal("Failed to query shop by owner", err)
			}

			var shop entity.Shop
			if err := doc.DataTo(&shop); err != nil {
				return nil, errors.Internal("Failed to parse shop data", err)
			}
			if shop.Status == entity.ShopStatusDeleted {
				continue
			}
			return &shop, nil
		}
	}

	return nil, errors.NotFound("Shop", nil)
}

func (r *firestoreShopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shop.UpdatedAt = time.Now()

	_, err := r.client.Collection("shops").Doc(shop.ID).Set(ctx, shop)
	if err != nil {
		return errors.Internal("Failed to update shop", err)
	}

	return nil
}

func (r *firestoreShopRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.Shop, int64, error) {
	query := r.client.Collection("shops").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count shops", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var shops []*entity.Shop

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate shops", err)
		}

		var shop entity.Shop
		if err := doc.DataTo(&shop); err != nil {
			return nil, 0, errors.Internal("Failed to parse shop data", err)
		}
		shops = append(shops, &shop)
	}

	return shops, total, nil
}

func (r *firestoreShopRepository) IncrementStatistics(ctx context.Context, id string, orders int, sales float64, products int) error {
	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}
	if orders != 0 {
		updates = append(updates, firestore.Update{Path: "statistics.totalOrders", Value: firestore.Increment(orders)})
	}
	if sales != 0 {
		updates = append(updates, firestore.Update{Path: "statistics.totalSales", Value: firestore.Increment(sales)})
	}
	if products != 0 {
		updates = append(updates, firestore.Update{Path: "statistics.totalProducts", Value: firestore.Increment(products)})
	}

	_, err := r.client.Collection("shops").Doc(id).Update(ctx, updates)
	if err != nil {
		return errors.Internal("Failed to update shop statistics", err)
	}

	return nil
}
