package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/barengan/internal/pkg/database"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	offerColumnNames = []string{
		"id", "driver_id", "origin_lat", "origin_lng", "destination_lat", "destination_lng",
		"stops", "departure_time", "total_seats", "available_seats", "status", "version", "created_at", "updated_at",
	}
	tripColumnNames = []string{
		"id", "rider_id", "origin_lat", "origin_lng", "destination_lat", "destination_lng",
		"departure_time", "seats", "status", "confirmed_pairing_id", "created_at", "updated_at",
	}
	testTime = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, mr
}

func newTestRepo(t *testing.T) (*MatchingRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	cfg := &models.Config{Match: models.MatchConfig{CellPrecision: 4, SeatCASAttempts: 3}}
	return NewMatchingRepository(cfg, db, redisClient), mock, mr
}

func testOffer() *models.OfferedRide {
	return &models.OfferedRide{
		ID:             "offer-1",
		DriverID:       "driver-1",
		Origin:         models.Location{Latitude: 0, Longitude: 0},
		Destination:    models.Location{Latitude: 1, Longitude: 1},
		DepartureTime:  testTime,
		TotalSeats:     3,
		AvailableSeats: 3,
		Status:         models.OfferStatusCreated,
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
	}
}

func offerRow(rows *sqlmock.Rows, o *models.OfferedRide) *sqlmock.Rows {
	return rows.AddRow(o.ID, o.DriverID, o.Origin.Latitude, o.Origin.Longitude, o.Destination.Latitude, o.Destination.Longitude,
		[]byte("[]"), o.DepartureTime, o.TotalSeats, o.AvailableSeats, string(o.Status), o.Version, o.CreatedAt, o.UpdatedAt)
}

func acceptedPair() (*models.DriverPairing, *models.RiderPairing) {
	d := &models.DriverPairing{
		ID:                  "dp-1",
		OfferedRideID:       "offer-1",
		TripRequestID:       "trip-1",
		DriverID:            "driver-1",
		RiderID:             "rider-1",
		MirrorID:            "rp-1",
		Status:              models.DriverAcceptedByDriver,
		DriverStartingPrice: models.Price(500),
		RiderCounterPrice:   models.Price(400),
		AcceptedPrice:       models.Price(400),
		UpdatedAt:           testTime,
	}
	r := &models.RiderPairing{
		ID:            "rp-1",
		TripRequestID: "trip-1",
		OfferedRideID: "offer-1",
		RiderID:       "rider-1",
		DriverID:      "driver-1",
		MirrorID:      "dp-1",
		Status:        models.RiderAcceptedByDriver,
		PriceOffered:  500,
		CounterPrice:  models.Price(400),
		AcceptedPrice: models.Price(400),
		UpdatedAt:     testTime,
	}
	return d, r
}

func TestUpsertOfferedRide(t *testing.T) {
	repo, mock, _ := newTestRepo(t)
	offer := testOffer()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO offered_rides")).
		WithArgs(
			offer.ID, offer.DriverID,
			offer.Origin.Latitude, offer.Origin.Longitude,
			offer.Destination.Latitude, offer.Destination.Longitude,
			"[]", offer.DepartureTime,
			offer.TotalSeats, offer.AvailableSeats,
			offer.Status, offer.Version,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
			offer.CreatedAt, offer.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM offered_rides WHERE id = $1")).
		WithArgs(offer.ID).
		WillReturnRows(offerRow(sqlmock.NewRows(offerColumnNames), offer))

	stored, err := repo.UpsertOfferedRide(context.Background(), offer)

	require.NoError(t, err)
	assert.Equal(t, offer.ID, stored.ID)
	assert.Equal(t, 3, stored.AvailableSeats)
	assert.Empty(t, stored.Stops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTripRequest_NotFound(t *testing.T) {
	repo, mock, _ := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trip_requests WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTripRequest(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, models.IsRetryable(err))
}

func TestGetTripRequest_StoreErrorIsTransient(t *testing.T) {
	repo, mock, _ := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trip_requests WHERE id = $1")).
		WithArgs("trip-1").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.GetTripRequest(context.Background(), "trip-1")

	assert.ErrorIs(t, err, models.ErrTransientDependency)
	assert.True(t, models.IsRetryable(err))
}

func TestUpsertTripRequest_ReturnsStoredRow(t *testing.T) {
	repo, mock, _ := newTestRepo(t)
	trip := &models.TripRequest{
		ID:            "trip-1",
		RiderID:       "rider-1",
		Origin:        models.Location{Latitude: 0.01, Longitude: 0.01},
		Destination:   models.Location{Latitude: 1.01, Longitude: 1.01},
		DepartureTime: testTime.Add(10 * time.Minute),
		Seats:         1,
		Status:        models.TripStatusCreated,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trip_requests")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM trip_requests WHERE id = $1")).
		WithArgs(trip.ID).
		WillReturnRows(sqlmock.NewRows(tripColumnNames).AddRow(
			trip.ID, trip.RiderID, 0.01, 0.01, 1.01, 1.01, trip.DepartureTime, 1,
			string(models.TripStatusSearching), nil, testTime, testTime,
		))

	stored, err := repo.UpsertTripRequest(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusSearching, stored.Status)
	assert.Empty(t, stored.ConfirmedPairingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCandidateOffers(t *testing.T) {
	departsBy := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	filter := models.CandidateFilter{
		PickupCells:  []string{"s000"},
		DropoffCells: []string{"s00t"},
		Seats:        2,
		RiderID:      "rider-1",
		DepartsBy:    departsBy,
		Limit:        200,
	}

	t.Run("first page", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("AND dropoff_cells && $5 AND departure_time <= $6 ORDER BY created_at DESC, id DESC LIMIT $7")).
			WithArgs(models.OfferStatusCreated, 2, "rider-1", sqlmock.AnyArg(), sqlmock.AnyArg(), departsBy, 200).
			WillReturnRows(offerRow(sqlmock.NewRows(offerColumnNames), testOffer()))

		offers, err := repo.FindCandidateOffers(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, "offer-1", offers[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("continues below cursor", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		cursor := &models.CandidateCursor{CreatedAt: departsBy.Add(-2 * time.Hour), ID: "offer-9"}
		next := filter
		next.After = cursor

		mock.ExpectQuery(regexp.QuoteMeta("AND departure_time <= $6 AND (created_at, id) < ($7, $8) ORDER BY created_at DESC, id DESC LIMIT $9")).
			WithArgs(models.OfferStatusCreated, 2, "rider-1", sqlmock.AnyArg(), sqlmock.AnyArg(), departsBy, cursor.CreatedAt, "offer-9", 200).
			WillReturnRows(sqlmock.NewRows(offerColumnNames))

		offers, err := repo.FindCandidateOffers(context.Background(), next)

		require.NoError(t, err)
		assert.Empty(t, offers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreatePairings(t *testing.T) {
	pairings := []*models.DriverPairing{
		{ID: "dp-1", OfferedRideID: "offer-1", TripRequestID: "trip-1", Status: models.DriverAwaitingDriverPrice},
		{ID: "dp-2", OfferedRideID: "offer-2", TripRequestID: "trip-1", Status: models.DriverAwaitingDriverPrice},
	}

	t.Run("inserts and marks trip searching", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_pairings")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_pairings")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $1")).
			WithArgs(models.TripStatusSearching, sqlmock.AnyArg(), "trip-1", models.TripStatusCreated).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.CreatePairings(context.Background(), "trip-1", pairings)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trip no longer created", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_pairings")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_pairings")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $1")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.CreatePairings(context.Background(), "trip-1", pairings)

		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaveStartingPrice_LostRace(t *testing.T) {
	repo, mock, _ := newTestRepo(t)
	d := &models.DriverPairing{ID: "dp-1", Status: models.DriverAwaitingRiderResp, MirrorID: "rp-1"}
	r := &models.RiderPairing{ID: "rp-1", MirrorID: "dp-1", Status: models.RiderAwaitingRiderResp}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE driver_pairings SET status = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SaveStartingPrice(context.Background(), d, r)

	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePairings_DriverOnly(t *testing.T) {
	repo, mock, _ := newTestRepo(t)
	d := &models.DriverPairing{ID: "dp-1", Status: models.DriverDeclinedByDriver}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE driver_pairings SET status = $1")).
		WithArgs(models.DriverDeclinedByDriver, nil, nil, nil, nil, false, false, false, sqlmock.AnyArg(), "dp-1", models.DriverAwaitingDriverPrice).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdatePairings(context.Background(), d, models.DriverAwaitingDriverPrice, nil, "")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func expectClaimAndMirrors(mock sqlmock.Sqlmock, d *models.DriverPairing) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $1, confirmed_pairing_id = $2")).
		WithArgs(models.TripStatusBooked, d.ID, sqlmock.AnyArg(), d.TripRequestID, models.TripStatusCreated, models.TripStatusSearching).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE driver_pairings SET status = $1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rider_pairings SET status = $1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestFinalizeAcceptance(t *testing.T) {
	seatQuery := regexp.QuoteMeta("SELECT available_seats, version, status FROM offered_rides WHERE id = $1")
	seatUpdate := regexp.QuoteMeta("UPDATE offered_rides SET available_seats = $1, status = $2, version = version + 1")

	t.Run("books trip and takes a seat", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		d, r := acceptedPair()

		expectClaimAndMirrors(mock, d)
		mock.ExpectQuery(seatQuery).WithArgs("offer-1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "version", "status"}).AddRow(3, 7, "created"))
		mock.ExpectExec(seatUpdate).
			WithArgs(2, models.OfferStatusCreated, sqlmock.AnyArg(), "offer-1", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.FinalizeAcceptance(context.Background(), d, models.DriverNegotiatedByRider, r, models.RiderAwaitingDriverResp)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("last seat marks offer full", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		d, r := acceptedPair()

		expectClaimAndMirrors(mock, d)
		mock.ExpectQuery(seatQuery).WithArgs("offer-1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "version", "status"}).AddRow(1, 2, "created"))
		mock.ExpectExec(seatUpdate).
			WithArgs(0, models.OfferStatusFull, sqlmock.AnyArg(), "offer-1", int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.FinalizeAcceptance(context.Background(), d, models.DriverNegotiatedByRider, r, models.RiderAwaitingDriverResp)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("version conflict is retried", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		d, r := acceptedPair()

		expectClaimAndMirrors(mock, d)
		mock.ExpectQuery(seatQuery).WithArgs("offer-1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "version", "status"}).AddRow(2, 4, "created"))
		mock.ExpectExec(seatUpdate).
			WithArgs(1, models.OfferStatusCreated, sqlmock.AnyArg(), "offer-1", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(seatQuery).WithArgs("offer-1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "version", "status"}).AddRow(1, 5, "created"))
		mock.ExpectExec(seatUpdate).
			WithArgs(0, models.OfferStatusFull, sqlmock.AnyArg(), "offer-1", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.FinalizeAcceptance(context.Background(), d, models.DriverNegotiatedByRider, r, models.RiderAwaitingDriverResp)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no seats left rolls back", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		d, r := acceptedPair()

		expectClaimAndMirrors(mock, d)
		mock.ExpectQuery(seatQuery).WithArgs("offer-1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "version", "status"}).AddRow(0, 9, "full"))
		mock.ExpectRollback()

		err := repo.FinalizeAcceptance(context.Background(), d, models.DriverNegotiatedByRider, r, models.RiderAwaitingDriverResp)

		assert.ErrorIs(t, err, models.ErrCapacityExhausted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trip booked by another pairing", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		d, r := acceptedPair()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $1, confirmed_pairing_id = $2")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status, confirmed_pairing_id FROM trip_requests")).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows([]string{"status", "confirmed_pairing_id"}).AddRow("booked", "dp-other"))
		mock.ExpectRollback()

		err := repo.FinalizeAcceptance(context.Background(), d, models.DriverNegotiatedByRider, r, models.RiderAwaitingDriverResp)

		assert.ErrorIs(t, err, models.ErrAlreadyBooked)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trip already booked by this pairing", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		d, r := acceptedPair()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $1, confirmed_pairing_id = $2")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status, confirmed_pairing_id FROM trip_requests")).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows([]string{"status", "confirmed_pairing_id"}).AddRow("booked", "dp-1"))
		mock.ExpectRollback()

		err := repo.FinalizeAcceptance(context.Background(), d, models.DriverNegotiatedByRider, r, models.RiderAwaitingDriverResp)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trip cancelled", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)
		d, r := acceptedPair()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $1, confirmed_pairing_id = $2")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT status, confirmed_pairing_id FROM trip_requests")).
			WillReturnRows(sqlmock.NewRows([]string{"status", "confirmed_pairing_id"}).AddRow("cancelled", nil))
		mock.ExpectRollback()

		err := repo.FinalizeAcceptance(context.Background(), d, models.DriverNegotiatedByRider, r, models.RiderAwaitingDriverResp)

		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		assert.NotErrorIs(t, err, models.ErrAlreadyBooked)
	})
}

func TestInvalidateSiblings(t *testing.T) {
	repo, mock, _ := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE driver_pairings SET status = $1, can_accept = FALSE")).
		WithArgs(models.DriverOtherDriverAccepted, sqlmock.AnyArg(), "trip-1", "dp-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rider_pairings SET status = $1, can_accept = FALSE")).
		WithArgs(models.RiderOtherRequestAccepted, sqlmock.AnyArg(), "trip-1", "dp-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.InvalidateSiblings(context.Background(), "trip-1", "dp-1")

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOfferedRide(t *testing.T) {
	t.Run("cancels offer and open pairings", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE offered_rides SET status = $1")).
			WithArgs(models.OfferStatusCancelled, sqlmock.AnyArg(), "offer-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE driver_pairings SET status = $1")).
			WithArgs(models.DriverPairingCancelled, sqlmock.AnyArg(), "offer-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE rider_pairings SET status = $1")).
			WithArgs(models.RiderPairingCancelled, sqlmock.AnyArg(), "offer-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		n, err := repo.CancelOfferedRide(context.Background(), "offer-1")

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown offer", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE offered_rides SET status = $1")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs("offer-x").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, err := repo.CancelOfferedRide(context.Background(), "offer-x")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestCancelTripRequest_Booked(t *testing.T) {
	repo, mock, _ := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM trip_requests")).
		WithArgs("trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("booked"))
	mock.ExpectRollback()

	_, err := repo.CancelTripRequest(context.Background(), "trip-1")

	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireStaleTrips(t *testing.T) {
	repo, mock, _ := newTestRepo(t)
	cutoff := testTime.Add(-20 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE trip_requests SET status = $1, updated_at = $2 WHERE status IN ($3, $4) AND departure_time < $5 RETURNING id")).
		WithArgs(models.TripStatusExpired, sqlmock.AnyArg(), models.TripStatusCreated, models.TripStatusSearching, cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-1").AddRow("trip-2"))
	mock.ExpectExec(regexp.QuoteMeta("WHERE trip_request_id = ANY($3)")).
		WithArgs(models.DriverPairingExpired, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("WHERE trip_request_id = ANY($3)")).
		WithArgs(models.RiderPairingExpired, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	summary, err := repo.ExpireStaleTrips(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, models.ExpirySummary{DriverPairings: 4, RiderPairings: 1, Trips: 2}, summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireStalePairings(t *testing.T) {
	idleSince := testTime.Add(-30 * time.Minute)
	stale := regexp.QuoteMeta("WHERE updated_at < $3 AND status = ANY($4)")

	t.Run("closes both sides in one transaction", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(stale).
			WithArgs(models.DriverPairingExpired, sqlmock.AnyArg(), idleSince, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(stale).
			WithArgs(models.RiderPairingExpired, sqlmock.AnyArg(), idleSince, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		summary, err := repo.ExpireStalePairings(context.Background(), idleSince)

		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.Total())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rider side failure rolls back driver side", func(t *testing.T) {
		repo, mock, _ := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(stale).
			WithArgs(models.DriverPairingExpired, sqlmock.AnyArg(), idleSince, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(stale).
			WithArgs(models.RiderPairingExpired, sqlmock.AnyArg(), idleSince, sqlmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		summary, err := repo.ExpireStalePairings(context.Background(), idleSince)

		require.Error(t, err)
		assert.Equal(t, int64(0), summary.Total())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFanoutLock(t *testing.T) {
	repo, _, mr := newTestRepo(t)
	ctx := context.Background()

	ok, err := repo.AcquireFanoutLock(ctx, "trip-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireFanoutLock(ctx, "trip-1", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 30*time.Second, mr.TTL("trip:fanout:lock:trip-1"))

	require.NoError(t, repo.ReleaseFanoutLock(ctx, "trip-1"))
	ok, err = repo.AcquireFanoutLock(ctx, "trip-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFanoutLock_RedisDown(t *testing.T) {
	repo, _, mr := newTestRepo(t)
	mr.Close()

	_, err := repo.AcquireFanoutLock(context.Background(), "trip-1", time.Second)

	assert.ErrorIs(t, err, models.ErrTransientDependency)
}

func TestIncrRequeueAttempt(t *testing.T) {
	repo, _, mr := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.IncrRequeueAttempt(ctx, "trip-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.IncrRequeueAttempt(ctx, "trip-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, time.Hour, mr.TTL("trip:requeue:attempt:trip-1"))
}
