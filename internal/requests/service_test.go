package requests

import (
	"context"
	"net/url"
	"testing"
	"time"

	"leadhub-backend/internal/cache"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeRepo is an in-memory Repository used to exercise the service without a
// database. It keeps documents ordered by insertion and ignores sort options.
type fakeRepo struct {
	docs       []BrandingRequest
	insertErr  error
	lastFilter bson.M
}

func (f *fakeRepo) Insert(ctx context.Context, doc BrandingRequest) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeRepo) Find(ctx context.Context, filter bson.M, sortSpec bson.D, limit, skip int64) ([]BrandingRequest, error) {
	f.lastFilter = filter
	matched := f.matching(filter)
	if skip >= int64(len(matched)) {
		return []BrandingRequest{}, nil
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (BrandingRequest, error) {
	for _, doc := range f.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return BrandingRequest{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id, status string, now time.Time) (StatusUpdate, error) {
	for i, doc := range f.docs {
		if doc.ID == id {
			f.docs[i].Status = status
			f.docs[i].UpdatedAt = now
			return StatusUpdate{ID: id, Status: status, UpdatedAt: now}, nil
		}
	}
	return StatusUpdate{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i, doc := range f.docs {
		if doc.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, doc := range f.docs {
		counts[doc.Status]++
	}
	return counts, nil
}

func (f *fakeRepo) matching(filter bson.M) []BrandingRequest {
	if len(filter) == 0 {
		return append([]BrandingRequest(nil), f.docs...)
	}
	matched := make([]BrandingRequest, 0, len(f.docs))
	for _, doc := range f.docs {
		if status, ok := filter["status"].(string); ok && doc.Status != status {
			continue
		}
		matched = append(matched, doc)
	}
	return matched
}

func brandingDef() Definition {
	return Definition{
		Slug:  "branding-requests",
		Label: "Branding",
		Filters: baseFilters(map[string]FilterKind{
			"designType":  FilterSet,
			"budgetRange": FilterExact,
		}),
		Sortable: baseSortable("budgetRange"),
	}
}

func newTestService(repo Repository[BrandingRequest]) *Service[BrandingPayload, BrandingRequest] {
	return NewService[BrandingPayload, BrandingRequest](brandingDef(), repo, cache.NewNoop(), time.UTC, 30*time.Second)
}

func validBrandingPayload() BrandingPayload {
	return BrandingPayload{
		ContactPayload: ContactPayload{
			FullName: "Jane Doe",
			Email:    "Jane.Doe@Example.com",
			Phone:    "+1 555 010 0000",
		},
		BusinessName:         "Acme",
		BrandDescription:     "A full rebrand.",
		DesignType:           []string{"Logo Design"},
		DeliverablesRequired: []string{"Logo Pack (PNG, JPG, SVG)"},
		BrandStyle:           "Modern",
		BudgetRange:          "$5,000 - $10,000",
		Timeline:             "1 Month",
	}
}

func TestCreateStampsSystemFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	doc, err := svc.Create(context.Background(), validBrandingPayload())
	require.NoError(t, err)

	require.Len(t, doc.ID, 24)
	require.Equal(t, StatusPending, doc.Status)
	require.Equal(t, "jane.doe@example.com", doc.Email)
	require.False(t, doc.SubmittedAt.IsZero())
	require.Equal(t, doc.SubmittedAt, doc.UpdatedAt)
	require.Equal(t, UrgencyMedium, doc.UrgencyLevel)

	// Derived attributes are present on the response but never persisted.
	require.True(t, doc.IsHighValueProject)
	require.Len(t, repo.docs, 1)
	require.False(t, repo.docs[0].IsHighValueProject)
}

func TestListPaginationLaw(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	for i := 0; i < 25; i++ {
		_, err := svc.Create(context.Background(), validBrandingPayload())
		require.NoError(t, err)
	}

	items, p, err := svc.List(context.Background(), url.Values{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 10)
	require.Equal(t, int64(3), p.TotalPages)
	require.Equal(t, int64(25), p.TotalRequests)
	require.True(t, p.HasNextPage)
	require.False(t, p.HasPrevPage)

	items, p, err = svc.List(context.Background(), url.Values{}, 3, 10)
	require.NoError(t, err)
	require.Len(t, items, 5)
	require.False(t, p.HasNextPage)
	require.True(t, p.HasPrevPage)
}

func TestListPastLastPageIsEmpty(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), validBrandingPayload())
		require.NoError(t, err)
	}

	items, p, err := svc.List(context.Background(), url.Values{}, 4, 10)
	require.NoError(t, err)
	require.Empty(t, items)
	require.False(t, p.HasNextPage)
	require.Equal(t, int64(1), p.TotalPages)
}

func TestListFilterAllowList(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	_, err := svc.Create(context.Background(), validBrandingPayload())
	require.NoError(t, err)

	values := url.Values{}
	values.Set("status", StatusPending)
	values.Set("unknownField", "x")
	values.Set("designType", "Logo Design, Banner Design")

	_, _, err = svc.List(context.Background(), values, 1, 10)
	require.NoError(t, err)

	require.Contains(t, repo.lastFilter, "status")
	require.NotContains(t, repo.lastFilter, "unknownField")
	set, ok := repo.lastFilter["designType"].(bson.M)
	require.True(t, ok, "comma-separated set filter should become $in")
	require.ElementsMatch(t, []string{"Logo Design", "Banner Design"}, set["$in"])
}

func TestGetByIDMalformedIDNeverTouchesStorage(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), "abc")
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.GetByID(context.Background(), "64b2f0c8e4b0a1d2c3e4f5a6")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	doc, err := svc.Create(context.Background(), validBrandingPayload())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "abc", StatusReviewed)
	require.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.UpdateStatus(context.Background(), doc.ID, "archived")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "64b2f0c8e4b0a1d2c3e4f5a6", StatusReviewed)
	require.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.UpdateStatus(context.Background(), doc.ID, "  Reviewed ")
	require.NoError(t, err)
	require.Equal(t, StatusReviewed, updated.Status)

	// No workflow ordering: any valid status can follow any other.
	updated, err = svc.UpdateStatus(context.Background(), doc.ID, StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, updated.Status)
	updated, err = svc.UpdateStatus(context.Background(), doc.ID, StatusPending)
	require.NoError(t, err)
	require.Equal(t, StatusPending, updated.Status)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	doc, err := svc.Create(context.Background(), validBrandingPayload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), doc.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), doc.ID), ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), "abc"), ErrInvalidID)
}

func TestStatsZeroFill(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	doc, err := svc.Create(context.Background(), validBrandingPayload())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validBrandingPayload())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), doc.ID, StatusInProgress)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, Stats{
		Pending:    1,
		Reviewed:   0,
		InProgress: 1,
		Completed:  0,
		Total:      2,
	}, stats)
}

func TestBuildSortFallsBackToDefault(t *testing.T) {
	def := brandingDef()

	sortSpec := def.buildSort("nope", "asc")
	require.Equal(t, defaultSort, sortSpec)

	sortSpec = def.buildSort("budgetRange", "asc")
	require.Equal(t, bson.D{{Key: "budgetRange", Value: 1}}, sortSpec)

	sortSpec = def.buildSort("fullName", "desc")
	require.Equal(t, bson.D{{Key: "fullName", Value: -1}}, sortSpec)
}
