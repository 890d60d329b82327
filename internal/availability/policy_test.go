package availability

import (
	"testing"
	"time"

	"frontdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	ct, err := ParseClockTime("15:04")
	require.NoError(t, err)
	assert.Equal(t, 15, ct.Hour)
	assert.Equal(t, 4, ct.Minute)
	assert.Equal(t, "15:04", ct.String())

	for _, bad := range []string{"", "25:00", "9:5:1", "noon", "09:60"} {
		_, err := ParseClockTime(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestResolveInstantUsesPolicyLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	pol := Policy{CheckIn: ClockTime{Hour: 15}, CheckOut: ClockTime{Hour: 11}, Location: loc}

	day := time.Date(2025, 7, 10, 0, 0, 0, 0, loc)
	got := pol.ResolveInstant(day, pol.CheckIn)
	assert.Equal(t, time.Date(2025, 7, 10, 15, 0, 0, 0, loc), got)
}

func TestDateOfNormalizesAcrossZones(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	pol := Policy{Location: loc}

	// 23:30 UTC is already the next day in Berlin (UTC+2 in July).
	instant := time.Date(2025, 7, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 11, 0, 0, 0, 0, loc), pol.DateOf(instant))
}

func TestNilLocationFallsBackToUTC(t *testing.T) {
	pol := Policy{CheckIn: ClockTime{Hour: 15}}
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC), pol.ResolveInstant(day, pol.CheckIn))
}

func TestParseDateInPolicyLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Almaty")
	require.NoError(t, err)
	pol := Policy{Location: loc}

	got, err := pol.ParseDate("2025-07-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, loc), got)

	_, err = pol.ParseDate("10.07.2025")
	assert.Error(t, err)
}

func TestPolicyFromSettings(t *testing.T) {
	pol := PolicyFrom(domain.HotelSettings{
		CheckInTime:  "14:00",
		CheckOutTime: "12:00",
		Timezone:     "Europe/Berlin",
	})
	assert.Equal(t, ClockTime{Hour: 14}, pol.CheckIn)
	assert.Equal(t, ClockTime{Hour: 12}, pol.CheckOut)
	assert.Equal(t, "Europe/Berlin", pol.Location.String())
}

func TestPolicyFromBadSettingsFallsBack(t *testing.T) {
	pol := PolicyFrom(domain.HotelSettings{
		CheckInTime:  "whenever",
		CheckOutTime: "",
		Timezone:     "Mars/Olympus",
	})
	assert.Equal(t, DefaultPolicy().CheckIn, pol.CheckIn)
	assert.Equal(t, DefaultPolicy().CheckOut, pol.CheckOut)
	assert.Equal(t, time.UTC, pol.Location)
}
