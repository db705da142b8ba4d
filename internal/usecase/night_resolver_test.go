package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loggingnight-service/internal/domain/entity"
	"loggingnight-service/internal/usecase"
	"loggingnight-service/pkg/logger"
)

type fakeAirportRepo struct {
	calls   int
	airport *entity.AirportLocation
	err     error
}

func (f *fakeAirportRepo) GetByCode(ctx context.Context, code string) (*entity.AirportLocation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.airport, nil
}

type fakeProvider struct {
	calls int
	times *entity.SunTimes
	err   error
}

func (f *fakeProvider) Lookup(ctx context.Context, airport *entity.AirportLocation, date time.Time, ref entity.TimeReference) (*entity.SunTimes, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	copied := *f.times
	return &copied, nil
}

type fakeDirectory struct {
	gets    int
	saves   int
	airport *entity.AirportLocation
}

func (f *fakeDirectory) GetByCode(ctx context.Context, code string) (*entity.AirportLocation, error) {
	f.gets++
	return f.airport, nil
}

func (f *fakeDirectory) Save(ctx context.Context, airport *entity.AirportLocation) error {
	f.saves++
	return nil
}

var testAirport = &entity.AirportLocation{
	Code:      "KSMO",
	Name:      "Santa Monica Municipal",
	City:      "Santa Monica",
	State:     "CA",
	Latitude:  34.0158,
	Longitude: -118.4506,
}

func testSunTimes() *entity.SunTimes {
	zone := time.FixedZone("UTC-7", -7*3600)
	return &entity.SunTimes{
		Sunrise:            time.Date(2017, time.May, 9, 5, 57, 0, 0, zone),
		Sunset:             time.Date(2017, time.May, 9, 19, 47, 0, 0, zone),
		StartCivilTwilight: time.Date(2017, time.May, 9, 5, 29, 0, 0, zone),
		EndCivilTwilight:   time.Date(2017, time.May, 9, 20, 15, 0, 0, zone),
	}
}

func newResolver(airports *fakeAirportRepo, provider *fakeProvider, directory *fakeDirectory) *usecase.NightResolver {
	if directory == nil {
		return usecase.NewNightResolver(airports, nil, provider, nil, time.Hour, logger.NewNopLogger(), nil)
	}
	return usecase.NewNightResolver(airports, directory, provider, nil, time.Hour, logger.NewNopLogger(), nil)
}

func TestResolveHappyPath(t *testing.T) {
	airports := &fakeAirportRepo{airport: testAirport}
	provider := &fakeProvider{times: testSunTimes()}
	resolver := newResolver(airports, provider, nil)

	result, err := resolver.Resolve(context.Background(), usecase.Request{
		Code: " ksmo ",
		Date: time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if result.Airport.Name != "Santa Monica Municipal" {
		t.Errorf("Airport.Name = %q", result.Airport.Name)
	}
	if !result.Times.HourAfterSunset.Equal(result.Times.Sunset.Add(time.Hour)) {
		t.Error("HourAfterSunset != Sunset + 1h")
	}
	if !result.Times.HourBeforeSunrise.Equal(result.Times.Sunrise.Add(-time.Hour)) {
		t.Error("HourBeforeSunrise != Sunrise - 1h")
	}
	if airports.calls != 1 || provider.calls != 1 {
		t.Errorf("call counts airport=%d provider=%d, want 1 and 1", airports.calls, provider.calls)
	}
}

func TestResolveDeterminism(t *testing.T) {
	airports := &fakeAirportRepo{airport: testAirport}
	provider := &fakeProvider{times: testSunTimes()}
	resolver := newResolver(airports, provider, nil)

	req := usecase.Request{Code: "KSMO", Date: time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC)}

	first, err := resolver.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("first Resolve returned error: %v", err)
	}
	second, err := resolver.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("second Resolve returned error: %v", err)
	}

	if !first.Times.Sunset.Equal(second.Times.Sunset) ||
		!first.Times.EndCivilTwilight.Equal(second.Times.EndCivilTwilight) ||
		!first.Times.HourAfterSunset.Equal(second.Times.HourAfterSunset) {
		t.Error("identical requests resolved to different sun times")
	}
}

func TestResolveRejectsOffsetPlusZulu(t *testing.T) {
	airports := &fakeAirportRepo{airport: testAirport}
	provider := &fakeProvider{times: testSunTimes()}
	resolver := newResolver(airports, provider, nil)

	offset := -8.0
	_, err := resolver.Resolve(context.Background(), usecase.Request{
		Code:   "KSMO",
		Date:   time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC),
		Offset: &offset,
		Zulu:   true,
	})

	var confErr *entity.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("Resolve = %v, want *entity.ConfigurationError", err)
	}
	if airports.calls != 0 || provider.calls != 0 {
		t.Errorf("network calls made before validation: airport=%d provider=%d, want 0 and 0",
			airports.calls, provider.calls)
	}
}

func TestResolveUnknownAirport(t *testing.T) {
	airports := &fakeAirportRepo{err: &entity.LocationError{Code: "ZZZZ", Reason: "not found"}}
	provider := &fakeProvider{times: testSunTimes()}
	resolver := newResolver(airports, provider, nil)

	_, err := resolver.Resolve(context.Background(), usecase.Request{
		Code: "ZZZZ",
		Date: time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC),
	})

	var locErr *entity.LocationError
	if !errors.As(err, &locErr) {
		t.Fatalf("Resolve = %v, want *entity.LocationError", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for an unknown airport, want 0", provider.calls)
	}
}

func TestResolveEmptyCode(t *testing.T) {
	airports := &fakeAirportRepo{airport: testAirport}
	provider := &fakeProvider{times: testSunTimes()}
	resolver := newResolver(airports, provider, nil)

	_, err := resolver.Resolve(context.Background(), usecase.Request{
		Code: "   ",
		Date: time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC),
	})

	var locErr *entity.LocationError
	if !errors.As(err, &locErr) {
		t.Fatalf("Resolve = %v, want *entity.LocationError", err)
	}
	if airports.calls != 0 {
		t.Errorf("airport repo called %d times for an empty code, want 0", airports.calls)
	}
}

func TestResolveServesAirportFromDirectory(t *testing.T) {
	airports := &fakeAirportRepo{airport: testAirport}
	provider := &fakeProvider{times: testSunTimes()}
	directory := &fakeDirectory{airport: testAirport}
	resolver := newResolver(airports, provider, directory)

	_, err := resolver.Resolve(context.Background(), usecase.Request{
		Code: "KSMO",
		Date: time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if directory.gets != 1 {
		t.Errorf("directory consulted %d times, want 1", directory.gets)
	}
	if airports.calls != 0 {
		t.Errorf("remote airport service called %d times despite a directory hit, want 0", airports.calls)
	}
}

func TestResolvePersistsRemoteResolution(t *testing.T) {
	airports := &fakeAirportRepo{airport: testAirport}
	provider := &fakeProvider{times: testSunTimes()}
	directory := &fakeDirectory{} // empty directory, remote must fill it
	resolver := newResolver(airports, provider, directory)

	_, err := resolver.Resolve(context.Background(), usecase.Request{
		Code: "KSMO",
		Date: time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if airports.calls != 1 {
		t.Errorf("remote airport service called %d times, want 1", airports.calls)
	}
	if directory.saves != 1 {
		t.Errorf("directory saved %d times, want 1", directory.saves)
	}
}

func TestResolveProviderErrorPropagates(t *testing.T) {
	airports := &fakeAirportRepo{airport: testAirport}
	provider := &fakeProvider{err: &entity.AstronomicalError{Reason: "service down"}}
	resolver := newResolver(airports, provider, nil)

	_, err := resolver.Resolve(context.Background(), usecase.Request{
		Code: "KSMO",
		Date: time.Date(2017, time.May, 9, 0, 0, 0, 0, time.UTC),
	})

	var astroErr *entity.AstronomicalError
	if !errors.As(err, &astroErr) {
		t.Fatalf("Resolve = %v, want the provider error unmodified", err)
	}
}
