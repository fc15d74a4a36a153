package eta

import (
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) EstimateDays(origin, destination domain.Port) (int, error) {
	args := m.Called(origin, destination)
	return args.Int(0), args.Error(1)
}

var (
	shanghai = domain.Port{ID: "Shanghai", Timezone: "Asia/Shanghai"}
	newYork  = domain.Port{ID: "NewYork", Timezone: "America/New_York"}
	hamburg  = domain.Port{ID: "Hamburg", Timezone: "Europe/Berlin"}
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func newTenDayCalculator() *Calculator {
	return NewCalculator(&ConstantEstimator{Days: DefaultVoyageDays}, NewZoneResolver())
}

func TestCalculator_Calculate_DaylightSavingAtDestination(t *testing.T) {
	calc := newTenDayCalculator()
	departure := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("", 8*3600))

	arrival, err := calc.Calculate(shanghai, newYork, departure)
	require.NoError(t, err)

	// 2024-03-01T04:00Z + 240h = 2024-03-11T04:00Z, which is midnight EDT.
	assert.Equal(t, "2024-03-11T00:00:00-04:00", arrival.Format(time.RFC3339))
	name, offset := arrival.Zone()
	assert.Equal(t, "EDT", name)
	assert.Equal(t, -4*3600, offset)
	assert.Equal(t, "America/New_York", arrival.Location().String())
}

func TestCalculator_Calculate_DiffersFromCalendarAdditionByTransition(t *testing.T) {
	calc := newTenDayCalculator()
	ny := mustLoad(t, "America/New_York")
	departure := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("", 8*3600))

	arrival, err := calc.Calculate(shanghai, newYork, departure)
	require.NoError(t, err)

	// Adding ten calendar days to the New York wall clock keeps the EST hour.
	naive := departure.In(ny).AddDate(0, 0, 10)
	assert.Equal(t, 23, naive.Hour())
	assert.Equal(t, 0, arrival.Hour())
	assert.Equal(t, time.Hour, arrival.Sub(naive))
}

func TestCalculator_Calculate_FallBackTransition(t *testing.T) {
	calc := NewCalculator(&ConstantEstimator{Days: 3}, nil)
	departure := time.Date(2024, 10, 25, 12, 0, 0, 0, mustLoad(t, "Europe/Berlin"))

	arrival, err := calc.Calculate(shanghai, hamburg, departure)
	require.NoError(t, err)

	// Berlin leaves CEST on 2024-10-27, so 72h later reads an hour earlier.
	assert.Equal(t, "2024-10-28T11:00:00+01:00", arrival.Format(time.RFC3339))
}

func TestCalculator_Calculate_AbsoluteInstantIsDeparturePlusDays(t *testing.T) {
	departure := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("", 8*3600))

	for _, days := range []int{0, 1, 9, 10, 45, 400} {
		calc := NewCalculator(&ConstantEstimator{Days: days}, nil)

		arrival, err := calc.Calculate(shanghai, newYork, departure)
		require.NoError(t, err)
		assert.Equal(t, int64(days)*86400, arrival.Unix()-departure.Unix(), "days=%d", days)
		assert.True(t, arrival.UTC().Equal(departure.UTC().Add(time.Duration(days)*24*time.Hour)))
	}
}

func TestCalculator_Calculate_Deterministic(t *testing.T) {
	calc := newTenDayCalculator()
	departure := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.FixedZone("", 8*3600))

	first, err := calc.Calculate(shanghai, newYork, departure)
	require.NoError(t, err)
	second, err := calc.Calculate(shanghai, newYork, departure)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Format(time.RFC3339Nano), second.Format(time.RFC3339Nano))
}

func TestCalculator_Calculate_TaggedWithDestinationNotOrigin(t *testing.T) {
	calc := newTenDayCalculator()
	departure := time.Date(2024, 7, 1, 8, 0, 0, 0, mustLoad(t, "America/New_York"))

	arrival, err := calc.Calculate(newYork, shanghai, departure)
	require.NoError(t, err)

	_, offset := arrival.Zone()
	assert.Equal(t, 8*3600, offset)
	assert.Equal(t, "Asia/Shanghai", arrival.Location().String())
}

func TestCalculator_Calculate_UnknownTimezone(t *testing.T) {
	calc := newTenDayCalculator()
	departure := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		timezone string
	}{
		{name: "Not a zone", timezone: "Mars/Olympus_Mons"},
		{name: "Empty", timezone: ""},
		{name: "Host local", timezone: "Local"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Calculate(shanghai, domain.Port{ID: "X", Timezone: tc.timezone}, departure)
			assert.ErrorIs(t, err, domain.ErrUnknownTimezone)
		})
	}
}

func TestCalculator_Calculate_MissingDeparture(t *testing.T) {
	calc := newTenDayCalculator()

	_, err := calc.Calculate(shanghai, newYork, time.Time{})
	assert.ErrorIs(t, err, domain.ErrNaiveInstant)
}

func TestCalculator_Calculate_EstimatorErrorPropagates(t *testing.T) {
	estimator := &MockEstimator{}
	calc := NewCalculator(estimator, nil)
	departure := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	routeErr := errors.Join(domain.ErrRouteNotFound, errors.New("no sailing"))
	estimator.On("EstimateDays", shanghai, newYork).Return(0, routeErr).Once()

	_, err := calc.Calculate(shanghai, newYork, departure)
	assert.ErrorIs(t, err, domain.ErrRouteNotFound)

	estimator.AssertExpectations(t)
}

func TestCalculator_Calculate_TimezoneCheckedBeforeEstimator(t *testing.T) {
	estimator := &MockEstimator{}
	calc := NewCalculator(estimator, nil)

	_, err := calc.Calculate(shanghai, domain.Port{ID: "X", Timezone: "Nowhere/Land"}, time.Now())
	assert.ErrorIs(t, err, domain.ErrUnknownTimezone)

	estimator.AssertNotCalled(t, "EstimateDays")
}

func TestCalculator_Calculate_NegativeDaysRejected(t *testing.T) {
	estimator := &MockEstimator{}
	calc := NewCalculator(estimator, nil)
	estimator.On("EstimateDays", shanghai, newYork).Return(-1, nil).Once()

	_, err := calc.Calculate(shanghai, newYork, time.Now())
	assert.ErrorContains(t, err, "out of range")
}

func TestCalculator_Calculate_DaysBeyondDurationRangeRejected(t *testing.T) {
	estimator := &MockEstimator{}
	calc := NewCalculator(estimator, nil)
	estimator.On("EstimateDays", shanghai, newYork).Return(200000, nil).Once()

	departure := time.Date(2024, 3, 1, 12, 0, 0, 0, mustLoad(t, "Asia/Shanghai"))
	arrival, err := calc.Calculate(shanghai, newYork, departure)
	assert.ErrorContains(t, err, "out of range")
	assert.True(t, arrival.IsZero())
}

func TestCalculator_Calculate_MaxVoyageDays(t *testing.T) {
	calc := NewCalculator(&ConstantEstimator{Days: domain.MaxVoyageDays}, nil)
	departure := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	arrival, err := calc.Calculate(shanghai, newYork, departure)
	require.NoError(t, err)
	assert.True(t, arrival.After(departure))
	assert.Equal(t, time.Duration(domain.MaxVoyageDays)*24*time.Hour, arrival.Sub(departure))
}

func TestCalculator_Estimate_ReportsDays(t *testing.T) {
	calc := NewCalculator(&ConstantEstimator{Days: 7}, nil)
	departure := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	res, err := calc.Estimate(shanghai, hamburg, departure)
	require.NoError(t, err)
	assert.Equal(t, 7, res.VoyageDays)
	assert.Equal(t, "2024-01-22T01:00:00+01:00", res.Arrival.Format(time.RFC3339))
}
