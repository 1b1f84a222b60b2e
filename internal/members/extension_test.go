package members

import (
	"errors"
	"testing"
	"time"

	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
)

func date(y int, m time.Month, d int) dbtypes.Date {
	return dbtypes.NewDate(y, m, d)
}

func datePtr(y int, m time.Month, d int) *dbtypes.Date {
	v := dbtypes.NewDate(y, m, d)
	return &v
}

func TestExtendMembership(t *testing.T) {
	cases := []struct {
		name        string
		today       dbtypes.Date
		activeUntil *dbtypes.Date
		months      int
		want        dbtypes.Date
	}{
		{
			name:        "never activated anchors on today",
			today:       date(2024, time.January, 15),
			activeUntil: nil,
			months:      3,
			want:        date(2024, time.April, 15),
		},
		{
			name:        "lapsed membership anchors on today",
			today:       date(2024, time.June, 10),
			activeUntil: datePtr(2024, time.February, 1),
			months:      1,
			want:        date(2024, time.July, 10),
		},
		{
			name:        "active membership stacks on current expiry",
			today:       date(2024, time.June, 10),
			activeUntil: datePtr(2024, time.September, 20),
			months:      2,
			want:        date(2024, time.November, 20),
		},
		{
			name:        "expiring today anchors on today",
			today:       date(2024, time.June, 10),
			activeUntil: datePtr(2024, time.June, 10),
			months:      1,
			want:        date(2024, time.July, 10),
		},
		{
			name:        "jan 31 clamps to feb 28 in a non-leap year",
			today:       date(2023, time.January, 31),
			activeUntil: nil,
			months:      1,
			want:        date(2023, time.February, 28),
		},
		{
			name:        "jan 31 clamps to feb 29 in a leap year",
			today:       date(2024, time.January, 31),
			activeUntil: nil,
			months:      1,
			want:        date(2024, time.February, 29),
		},
		{
			name:        "oct 31 clamps to nov 30",
			today:       date(2024, time.October, 31),
			activeUntil: nil,
			months:      1,
			want:        date(2024, time.November, 30),
		},
		{
			name:        "twelve months crosses the year boundary",
			today:       date(2024, time.March, 5),
			activeUntil: nil,
			months:      12,
			want:        date(2025, time.March, 5),
		},
		{
			name:        "long duration spans multiple years",
			today:       date(2024, time.November, 30),
			activeUntil: nil,
			months:      15,
			want:        date(2026, time.February, 28),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtendMembership(tc.today, tc.activeUntil, tc.months)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestExtendMembershipRejectsNonPositiveDuration(t *testing.T) {
	for _, months := range []int{0, -1, -12} {
		_, err := ExtendMembership(date(2024, time.January, 1), nil, months)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("months=%d: expected ErrInvalidDuration, got %v", months, err)
		}
	}
}
