package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	bookingRepo "shreeji/database/repository/booking"
	"shreeji/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	docs              []models.BookingDocument
	createCalls       int
	getByOrderIDCalls int
	failCreate        bool
}

func (r *fakeBookingRepo) Create(_ context.Context, doc models.BookingDocument) (string, error) {
	r.createCalls++
	if r.failCreate {
		return "", errors.New("write failed")
	}
	doc.ID = fmt.Sprintf("doc-%d", len(r.docs)+1)
	doc.CreatedAt = time.Now().UTC()
	r.docs = append(r.docs, doc)
	return doc.ID, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.BookingDocument, error) {
	for i := range r.docs {
		if r.docs[i].ID == id {
			doc := r.docs[i]
			return &doc, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeBookingRepo) GetByOrderID(_ context.Context, orderID string) (*models.BookingDocument, error) {
	r.getByOrderIDCalls++
	for i := range r.docs {
		if r.docs[i].OrderID == orderID {
			doc := r.docs[i]
			return &doc, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetAll(_ context.Context) ([]models.BookingDocument, error) {
	out := make([]models.BookingDocument, 0, len(r.docs))
	for i := len(r.docs) - 1; i >= 0; i-- {
		out = append(out, r.docs[i])
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus) error {
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs[i].Status = status
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

// fakeStorage records uploads and returns deterministic URLs.
type fakeStorage struct {
	uploads []string
	fail    bool
}

func (s *fakeStorage) UploadPhoto(_ context.Context, orderID, filename string, _ []byte) (string, error) {
	if s.fail {
		return "", errors.New("bucket unavailable")
	}
	url := fmt.Sprintf("https://storage.example.com/bookings/%s/%s", orderID, filename)
	s.uploads = append(s.uploads, url)
	return url, nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeStorage) {
	repo := &fakeBookingRepo{}
	store := &fakeStorage{}
	return &DefaultBookingService{Repo: repo, Storage: store}, repo, store
}

func submitInput() BookingInput {
	return BookingInput{
		Name:           "Asha Verma",
		Phone:          "9876543210",
		DeliveryOption: "Delivery",
		Address:        "36/156 Shivala Road, Kanpur",
		PreferredDate:  "2026-09-15",
		OrderItems: []OrderItemInput{
			{Service: "Album Printing", Size: "12x9", Variant: "Premium", Quantity: "1"},
		},
	}
}

func TestSubmitCreatesPendingDocument(t *testing.T) {
	svc, repo, _ := newTestService()

	result, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)
	assert.Regexp(t, orderIDPattern, result.OrderID)

	require.Len(t, repo.docs, 1)
	doc := repo.docs[0]
	assert.Equal(t, result.OrderID, doc.OrderID)
	assert.Equal(t, models.StatusPending, doc.Status)
	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Empty(t, doc.PhotoURLs)
}

func TestSubmitSkipsEmptyPhotos(t *testing.T) {
	svc, repo, store := newTestService()

	input := submitInput()
	input.Photos = []models.PhotoFile{
		{Filename: "empty.jpg", Content: nil},
		{Filename: "wedding.jpg", Content: []byte("jpeg-bytes")},
	}

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	require.Len(t, repo.docs[0].PhotoURLs, 1)
	assert.Equal(t,
		fmt.Sprintf("https://storage.example.com/bookings/%s/wedding.jpg", result.OrderID),
		repo.docs[0].PhotoURLs[0])
}

func TestSubmitKeepsPhotoOrder(t *testing.T) {
	svc, repo, _ := newTestService()

	input := submitInput()
	input.Photos = []models.PhotoFile{
		{Filename: "a.jpg", Content: []byte("a")},
		{Filename: "b.jpg", Content: []byte("b")},
		{Filename: "c.jpg", Content: []byte("c")},
	}

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	urls := repo.docs[0].PhotoURLs
	require.Len(t, urls, 3)
	for i, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		assert.Equal(t, fmt.Sprintf("https://storage.example.com/bookings/%s/%s", result.OrderID, name), urls[i])
	}
}

func TestSubmitValidationFailureHasNoSideEffects(t *testing.T) {
	svc, repo, store := newTestService()

	input := submitInput()
	input.Name = "A"
	input.Photos = []models.PhotoFile{{Filename: "x.jpg", Content: []byte("x")}}

	result, err := svc.Submit(context.Background(), input)
	assert.Nil(t, result)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "name")

	assert.Zero(t, repo.createCalls)
	assert.Empty(t, store.uploads)
}

func TestSubmitUploadFailure(t *testing.T) {
	svc, repo, store := newTestService()
	store.fail = true

	input := submitInput()
	input.Photos = []models.PhotoFile{{Filename: "x.jpg", Content: []byte("x")}}

	result, err := svc.Submit(context.Background(), input)
	assert.Nil(t, result)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Zero(t, repo.createCalls)
}

func TestSubmitPersistFailureLeavesUploads(t *testing.T) {
	svc, repo, store := newTestService()
	repo.failCreate = true

	input := submitInput()
	input.Photos = []models.PhotoFile{{Filename: "x.jpg", Content: []byte("x")}}

	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)
	// Already-uploaded photos are not cleaned up on a later persistence
	// failure; the orphaned files are an accepted cost.
	assert.Len(t, store.uploads, 1)
	assert.Empty(t, repo.docs)
}

func TestUpdateStatusThenTrack(t *testing.T) {
	svc, repo, _ := newTestService()

	result, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)
	bookingID := repo.docs[0].ID

	require.NoError(t, svc.UpdateStatus(context.Background(), bookingID, models.StatusReady))

	doc, err := svc.TrackOrder(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, doc.Status)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)
	bookingID := repo.docs[0].ID

	// No transition graph: every value may follow every other, including
	// moving backwards from Delivered to Pending.
	sequence := []models.BookingStatus{
		models.StatusDelivered,
		models.StatusPending,
		models.StatusPrinting,
		models.StatusReady,
		models.StatusPrinting,
	}
	for _, status := range sequence {
		require.NoError(t, svc.UpdateStatus(context.Background(), bookingID, status))
		assert.Equal(t, status, repo.docs[0].Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), repo.docs[0].ID, "Shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), "missing", models.StatusReady)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestTrackOrderWhitespaceInputSkipsRepository(t *testing.T) {
	svc, repo, _ := newTestService()

	doc, err := svc.TrackOrder(context.Background(), "   ")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrEmptyOrderID)
	assert.Zero(t, repo.getByOrderIDCalls)
}

func TestTrackOrderNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	doc, err := svc.TrackOrder(context.Background(), "SHP-DOESNOT1")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSubmitTrackRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	input := submitInput()
	input.OrderItems = []OrderItemInput{
		{Service: "Acrylic Printing", Size: "16x12", Variant: "8mm", FrameColor: "Brown", Quantity: "2"},
		{Service: "Photo Printing", Size: "4R", Variant: "Matte", Quantity: "30", ItemNotes: "Use photos img_001 to img_030"},
	}

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	doc, err := svc.TrackOrder(context.Background(), result.OrderID)
	require.NoError(t, err)

	validated, fieldErrs := DecodeBookingInput(input)
	require.Empty(t, fieldErrs)
	assert.Equal(t, validated.OrderItems, doc.OrderItems)
	assert.Equal(t, validated.DeliveryOption, doc.DeliveryOption)
	assert.Equal(t, validated.Address, doc.Address)
}

func TestListBookingsNewestFirst(t *testing.T) {
	svc, repo, _ := newTestService()

	first, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	docs, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, second.OrderID, docs[0].OrderID)
	assert.Equal(t, first.OrderID, docs[1].OrderID)
	assert.Len(t, repo.docs, 2)
}
