package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"leadhub-backend/internal/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidID     = errors.New("invalid request id")
	ErrInvalidStatus = errors.New("invalid status: must be one of " + strings.Join(ValidStatuses, ", "))
	ErrNotFound      = errors.New("request not found")
)

// Payload is a submitted form body that knows how to become its stored
// document, with trims and field defaults applied.
type Payload[D any] interface {
	Document(id string, now time.Time) D
}

// Entity recomputes derived attributes on a read. Value semantics keep the
// stored fields untouched. LeadInfo is promoted from the embedded Lead.
type Entity[D any] interface {
	WithDerived() D
	LeadInfo() Lead
}

type Service[P Payload[D], D Entity[D]] struct {
	def      Definition
	repo     Repository[D]
	cache    cache.Cache
	location *time.Location
	statsTTL time.Duration
}

func NewService[P Payload[D], D Entity[D]](def Definition, repo Repository[D], c cache.Cache, location *time.Location, statsTTL time.Duration) *Service[P, D] {
	return &Service[P, D]{
		def:      def,
		repo:     repo,
		cache:    c,
		location: location,
		statsTTL: statsTTL,
	}
}

func (s *Service[P, D]) Definition() Definition {
	return s.def
}

func (s *Service[P, D]) Create(ctx context.Context, payload P) (D, error) {
	var zero D
	now := time.Now().In(s.location)
	doc := payload.Document(primitive.NewObjectID().Hex(), now)

	if err := s.repo.Insert(ctx, doc); err != nil {
		return zero, err
	}
	s.invalidateStats(ctx)

	return doc.WithDerived(), nil
}

func (s *Service[P, D]) List(ctx context.Context, values url.Values, page, limit int64) ([]D, Pagination, error) {
	filter := s.def.buildFilter(values)
	sort := s.def.buildSort(values.Get("sortBy"), values.Get("sortOrder"))

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	items, err := s.repo.Find(ctx, filter, sort, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	for i := range items {
		items[i] = items[i].WithDerived()
	}

	totalPages := (total + limit - 1) / limit
	pagination := Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalRequests: total,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
	return items, pagination, nil
}

func (s *Service[P, D]) GetByID(ctx context.Context, id string) (D, error) {
	var zero D
	id = strings.TrimSpace(id)
	if !isValidID(id) {
		return zero, ErrInvalidID
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return doc.WithDerived(), nil
}

func (s *Service[P, D]) UpdateStatus(ctx context.Context, id, status string) (StatusUpdate, error) {
	id = strings.TrimSpace(id)
	if !isValidID(id) {
		return StatusUpdate{}, ErrInvalidID
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return StatusUpdate{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return StatusUpdate{}, ErrNotFound
		}
		return StatusUpdate{}, err
	}
	s.invalidateStats(ctx)
	return updated, nil
}

func (s *Service[P, D]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if !isValidID(id) {
		return ErrInvalidID
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateStats(ctx)
	return nil
}

// Stats serves the dashboard aggregate, short-lived cached since the admin
// overview polls it.
func (s *Service[P, D]) Stats(ctx context.Context) (Stats, error) {
	key := s.statsKey()
	if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var stats Stats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return stats, nil
		}
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Pending:    counts[StatusPending],
		Reviewed:   counts[StatusReviewed],
		InProgress: counts[StatusInProgress],
		Completed:  counts[StatusCompleted],
	}
	stats.Total = stats.Pending + stats.Reviewed + stats.InProgress + stats.Completed

	if raw, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, key, raw, s.statsTTL)
	}
	return stats, nil
}

func (s *Service[P, D]) statsKey() string {
	return "stats:" + s.def.Slug
}

func (s *Service[P, D]) invalidateStats(ctx context.Context) {
	_ = s.cache.Delete(ctx, s.statsKey())
}

// isValidID checks the 24-hex identifier shape before any storage access.
func isValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
