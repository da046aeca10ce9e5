package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"video-analytics-service/internal/events/core/domain"
	"video-analytics-service/internal/events/core/usecase"
)

// fakeEventRepo fakes the EventRepositoryPort.
type fakeEventRepo struct {
	InsertFn  func(ctx context.Context, e *domain.Event) (bool, error)
	lastEvent *domain.Event
	calls     int
}

func (f *fakeEventRepo) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	f.calls++
	f.lastEvent = e
	if f.InsertFn != nil {
		return f.InsertFn(ctx, e)
	}
	return true, nil
}

func validInput() usecase.StoreEventInput {
	return usecase.StoreEventInput{
		Type:      "product_click",
		Timestamp: "2026-01-15T09:00:50Z",
		UserID:    "user_001",
		SessionID: "session_001",
		VideoID:   "vid_fashion_summer",
		ProductID: "prod_001",
		Metadata: domain.Metadata{
			VideoTimestamp:  50,
			VideoDuration:   180,
			ProductPrice:    79.99,
			ProductName:     "Summer Dress",
			ProductCategory: "Fashion",
			DeviceType:      "mobile",
		},
	}
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestStoreEvent_Success(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	created, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}

	e := repo.lastEvent
	if e == nil {
		t.Fatalf("expected event to reach repository")
	}
	if e.ID == "" {
		t.Fatalf("expected a server-assigned id")
	}
	if e.Type != domain.EventProductClick {
		t.Fatalf("unexpected type: %s", e.Type)
	}
	if !strings.Contains(e.DedupeKey, "product_click|user_001|session_001") {
		t.Fatalf("unexpected dedupe key: %s", e.DedupeKey)
	}
}

func TestStoreEvent_KeepsClientID(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	in := validInput()
	in.ID = "evt_client_42"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastEvent.ID != "evt_client_42" {
		t.Fatalf("expected client id kept, got %s", repo.lastEvent.ID)
	}
}

// ------------------------------------------------------------
// DUPLICATE
// ------------------------------------------------------------

func TestStoreEvent_Duplicate(t *testing.T) {
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			return false, nil
		},
	}
	uc := usecase.NewStoreEventUseCase(repo)

	created, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestStoreEvent_MissingIdentifiers(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	in := validInput()
	in.UserID = ""

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repository should not be called on invalid input")
	}
}

func TestStoreEvent_UnknownType(t *testing.T) {
	uc := usecase.NewStoreEventUseCase(&fakeEventRepo{})

	in := validInput()
	in.Type = "video_like"

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrUnknownEventType) {
		t.Fatalf("expected ErrUnknownEventType, got %v", err)
	}
}

func TestStoreEvent_UnknownDevice(t *testing.T) {
	uc := usecase.NewStoreEventUseCase(&fakeEventRepo{})

	in := validInput()
	in.Metadata.DeviceType = "smartfridge"

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrUnknownDevice) {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
}

func TestStoreEvent_ProductEventWithoutProductID(t *testing.T) {
	uc := usecase.NewStoreEventUseCase(&fakeEventRepo{})

	in := validInput()
	in.ProductID = ""

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrMissingProductID) {
		t.Fatalf("expected ErrMissingProductID, got %v", err)
	}
}

func TestStoreEvent_BadTimestamp(t *testing.T) {
	uc := usecase.NewStoreEventUseCase(&fakeEventRepo{})

	in := validInput()
	in.Timestamp = "15/01/2026 09:00"

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestStoreEvent_FutureTimestamp(t *testing.T) {
	uc := usecase.NewStoreEventUseCase(&fakeEventRepo{})

	in := validInput()
	in.Timestamp = "2099-01-01T00:00:00Z"

	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrFutureTime) {
		t.Fatalf("expected ErrFutureTime, got %v", err)
	}
}

// ------------------------------------------------------------
// BULK
// ------------------------------------------------------------

func TestBulkCreateEvents_CountsCreatedAndDuplicates(t *testing.T) {
	calls := 0
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			calls++
			// Second insert is a duplicate.
			return calls != 2, nil
		},
	}
	uc := usecase.NewStoreEventUseCase(repo)

	res, err := uc.BulkCreateEvents(context.Background(), usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{validInput(), validInput(), validInput()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 2 || res.Duplicates != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBulkCreateEvents_RejectsBatchWithInvalidEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewStoreEventUseCase(repo)

	bad := validInput()
	bad.VideoID = ""

	_, err := uc.BulkCreateEvents(context.Background(), usecase.BulkCreateEventsInput{
		Events: []usecase.StoreEventInput{validInput(), bad},
	})
	if !errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("no event should be stored when the batch fails validation")
	}
}
