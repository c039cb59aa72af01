package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shreeji/models"
	"shreeji/utils"

	"go.uber.org/zap"
)

// Cached tracker entries expire quickly; status changes also invalidate them.
const trackCacheTTL = 60 * time.Second

func trackCacheKey(orderID string) string {
	return "track:" + orderID
}

// TrackOrder looks up a booking by its customer-facing order code. The input
// is trimmed; empty input is rejected before any repository call. The code is
// matched exactly and case-sensitively.
func (s *DefaultBookingService) TrackOrder(ctx context.Context, orderID string) (*models.BookingDocument, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrEmptyOrderID
	}

	if doc := s.trackCacheGet(ctx, orderID); doc != nil {
		return doc, nil
	}

	doc, err := s.Repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	if doc == nil {
		return nil, ErrOrderNotFound
	}

	s.trackCacheSet(ctx, orderID, doc)
	return doc, nil
}

func (s *DefaultBookingService) trackCacheGet(ctx context.Context, orderID string) *models.BookingDocument {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, trackCacheKey(orderID)).Result()
	if err != nil {
		return nil
	}
	var doc models.BookingDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}
	return &doc
}

func (s *DefaultBookingService) trackCacheSet(ctx context.Context, orderID string, doc *models.BookingDocument) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, trackCacheKey(orderID), raw, trackCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache tracked order", zap.String("orderId", orderID), zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateTrackCache(ctx context.Context, orderID string) {
	if s.Cache == nil || orderID == "" {
		return
	}
	if err := s.Cache.Del(ctx, trackCacheKey(orderID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate tracked order cache", zap.String("orderId", orderID), zap.Error(err))
	}
}
