package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/piresc/barengan/services/matching/mocks"
	"github.com/piresc/barengan/services/matching/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleOfferedRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMatchingRepo(ctrl)
	uc := usecase.NewMatchingUC(testConfig(), repo, mocks.NewMockMatchingGW(ctrl))

	t.Run("available seats default to total seats", func(t *testing.T) {
		offer := scenarioOffer()
		offer.AvailableSeats = 0
		offer.Status = ""

		repo.EXPECT().UpsertOfferedRide(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *models.OfferedRide) (*models.OfferedRide, error) {
				assert.Equal(t, 3, o.AvailableSeats)
				assert.Equal(t, models.OfferStatusCreated, o.Status)
				assert.False(t, o.UpdatedAt.IsZero())
				return o, nil
			})

		require.NoError(t, uc.HandleOfferedRide(context.Background(), offer))
	})

	t.Run("invalid offer is rejected before the store", func(t *testing.T) {
		offer := scenarioOffer()
		offer.TotalSeats = 0
		offer.AvailableSeats = 0

		err := uc.HandleOfferedRide(context.Background(), offer)

		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestHandleTripRequest(t *testing.T) {
	cfg := testConfig()

	t.Run("fans out to candidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMatchingRepo(ctrl)
		gw := mocks.NewMockMatchingGW(ctrl)
		uc := usecase.NewMatchingUC(cfg, repo, gw)
		trip := scenarioTrip()

		gomock.InOrder(
			repo.EXPECT().UpsertTripRequest(gomock.Any(), trip).Return(trip, nil),
			repo.EXPECT().AcquireFanoutLock(gomock.Any(), "trip-1", cfg.Match.FanoutLockTTL).Return(true, nil),
			repo.EXPECT().FindCandidateOffers(gomock.Any(), gomock.Any()).Return([]*models.OfferedRide{scenarioOffer()}, nil),
			repo.EXPECT().CreatePairings(gomock.Any(), "trip-1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, pairings []*models.DriverPairing) (int64, error) {
					require.Len(t, pairings, 1)
					p := pairings[0]
					assert.Equal(t, "offer-1", p.OfferedRideID)
					assert.Equal(t, "driver-1", p.DriverID)
					assert.Equal(t, "rider-1", p.RiderID)
					assert.Equal(t, models.DriverAwaitingDriverPrice, p.Status)
					assert.True(t, p.ShouldGivePrice)
					return 1, nil
				}),
			repo.EXPECT().ReleaseFanoutLock(gomock.Any(), "trip-1").Return(nil),
		)

		require.NoError(t, uc.HandleTripRequest(context.Background(), trip, 0))
	})

	t.Run("no candidates requeues exactly once and keeps the trip created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMatchingRepo(ctrl)
		gw := mocks.NewMockMatchingGW(ctrl)
		uc := usecase.NewMatchingUC(cfg, repo, gw)
		trip := scenarioTrip()
		before := models.Now()

		repo.EXPECT().UpsertTripRequest(gomock.Any(), trip).Return(trip, nil)
		repo.EXPECT().AcquireFanoutLock(gomock.Any(), "trip-1", gomock.Any()).Return(true, nil)
		repo.EXPECT().FindCandidateOffers(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().IncrRequeueAttempt(gomock.Any(), "trip-1", gomock.Any()).Return(int64(3), nil)
		repo.EXPECT().ReleaseFanoutLock(gomock.Any(), "trip-1").Return(nil)
		repo.EXPECT().CreatePairings(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		gw.EXPECT().PublishRequeue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, envelope *models.EventEnvelope) error {
				assert.Equal(t, models.EventNewRiderRideCreated, envelope.EventType)
				assert.Equal(t, 3, envelope.RetryAttempt)
				assert.Equal(t, models.TripStatusCreated, envelope.RiderRide.Status)
				require.NotNil(t, envelope.NotBefore)
				assert.True(t, envelope.NotBefore.After(before.Add(39*time.Second)))
				return nil
			}).Times(1)

		require.NoError(t, uc.HandleTripRequest(context.Background(), trip, 2))
	})

	t.Run("trip already searching is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMatchingRepo(ctrl)
		uc := usecase.NewMatchingUC(cfg, repo, mocks.NewMockMatchingGW(ctrl))

		stored := scenarioTrip()
		stored.Status = models.TripStatusSearching
		repo.EXPECT().UpsertTripRequest(gomock.Any(), gomock.Any()).Return(stored, nil)

		assert.NoError(t, uc.HandleTripRequest(context.Background(), scenarioTrip(), 0))
	})

	t.Run("fan-out lock held elsewhere is transient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMatchingRepo(ctrl)
		uc := usecase.NewMatchingUC(cfg, repo, mocks.NewMockMatchingGW(ctrl))
		trip := scenarioTrip()

		repo.EXPECT().UpsertTripRequest(gomock.Any(), trip).Return(trip, nil)
		repo.EXPECT().AcquireFanoutLock(gomock.Any(), "trip-1", gomock.Any()).Return(false, nil)

		err := uc.HandleTripRequest(context.Background(), trip, 0)

		assert.True(t, models.IsRetryable(err))
	})

	t.Run("requeue publish failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockMatchingRepo(ctrl)
		gw := mocks.NewMockMatchingGW(ctrl)
		uc := usecase.NewMatchingUC(cfg, repo, gw)
		trip := scenarioTrip()

		repo.EXPECT().UpsertTripRequest(gomock.Any(), trip).Return(trip, nil)
		repo.EXPECT().AcquireFanoutLock(gomock.Any(), "trip-1", gomock.Any()).Return(true, nil)
		repo.EXPECT().FindCandidateOffers(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().IncrRequeueAttempt(gomock.Any(), "trip-1", gomock.Any()).Return(int64(0), models.Transient(assert.AnError))
		repo.EXPECT().ReleaseFanoutLock(gomock.Any(), "trip-1").Return(nil)
		gw.EXPECT().PublishRequeue(gomock.Any(), gomock.Any()).Return(models.Transient(assert.AnError))

		err := uc.HandleTripRequest(context.Background(), trip, 0)

		assert.True(t, models.IsRetryable(err))
	})

	t.Run("invalid trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := usecase.NewMatchingUC(cfg, mocks.NewMockMatchingRepo(ctrl), mocks.NewMockMatchingGW(ctrl))
		trip := scenarioTrip()
		trip.Seats = 0

		err := uc.HandleTripRequest(context.Background(), trip, 0)

		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestHandleCancellations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMatchingRepo(ctrl)
	uc := usecase.NewMatchingUC(testConfig(), repo, mocks.NewMockMatchingGW(ctrl))

	repo.EXPECT().CancelOfferedRide(gomock.Any(), "offer-1").Return(int64(2), nil)
	assert.NoError(t, uc.HandleOfferCancelled(context.Background(), "offer-1"))

	repo.EXPECT().CancelTripRequest(gomock.Any(), "trip-1").
		Return(int64(0), models.ErrInvalidTransition)
	assert.ErrorIs(t, uc.HandleTripCancelled(context.Background(), "trip-1"), models.ErrInvalidTransition)

	assert.ErrorIs(t, uc.HandleOfferCancelled(context.Background(), ""), models.ErrInvalidInput)
}

func TestExpireStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMatchingRepo(ctrl)
	uc := usecase.NewMatchingUC(testConfig(), repo, mocks.NewMockMatchingGW(ctrl))
	now := models.Now()

	repo.EXPECT().ExpireStalePairings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, idleSince time.Time) (models.ExpirySummary, error) {
			assert.WithinDuration(t, now.Add(-30*time.Minute), idleSince, 5*time.Second)
			return models.ExpirySummary{DriverPairings: 2, RiderPairings: 1}, nil
		})
	repo.EXPECT().ExpireStaleTrips(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, departedBefore time.Time) (models.ExpirySummary, error) {
			assert.WithinDuration(t, now.Add(-20*time.Minute), departedBefore, 5*time.Second)
			return models.ExpirySummary{DriverPairings: 1, Trips: 1}, nil
		})

	summary, err := uc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ExpirySummary{DriverPairings: 3, RiderPairings: 1, Trips: 1}, summary)
}

func TestListRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMatchingRepo(ctrl)
	uc := usecase.NewMatchingUC(testConfig(), repo, mocks.NewMockMatchingGW(ctrl))
	ctx := context.Background()

	repo.EXPECT().ListDriverPairings(ctx, "user-1").Return([]*models.DriverPairing{{ID: "dp-1"}}, nil)
	result, err := uc.ListRequests(ctx, "user-1", models.RequestTypeDriver)
	require.NoError(t, err)
	assert.Len(t, result.DriverRequests, 1)
	assert.Nil(t, result.RiderRequests)

	repo.EXPECT().ListDriverPairings(ctx, "user-1").Return(nil, nil)
	repo.EXPECT().ListRiderPairings(ctx, "user-1").Return([]*models.RiderPairing{{ID: "rp-1"}}, nil)
	result, err = uc.ListRequests(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Len(t, result.RiderRequests, 1)

	_, err = uc.ListRequests(ctx, "user-1", "passenger")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
