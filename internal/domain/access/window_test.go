package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	coursevo "github.com/edulane/edulane/internal/domain/course/valueobjects"
)

var anchor = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func periodPtr(p vo.PeriodToken) *vo.PeriodToken { return &p }

func TestWindow_Contains(t *testing.T) {
	end := anchor.Add(24 * time.Hour)

	tests := []struct {
		name string
		w    Window
		now  time.Time
		want bool
	}{
		{
			name: "inside bounded window",
			w:    Window{Start: anchor, End: &end},
			now:  anchor.Add(time.Hour),
			want: true,
		},
		{
			name: "exactly at start",
			w:    Window{Start: anchor, End: &end},
			now:  anchor,
			want: true,
		},
		{
			name: "exactly at end is excluded",
			w:    Window{Start: anchor, End: &end},
			now:  end,
			want: false,
		},
		{
			name: "before start",
			w:    Window{Start: anchor, End: &end},
			now:  anchor.Add(-time.Second),
			want: false,
		},
		{
			name: "after end",
			w:    Window{Start: anchor, End: &end},
			now:  end.Add(time.Second),
			want: false,
		},
		{
			name: "unbounded window far in the future",
			w:    Window{Start: anchor},
			now:  anchor.AddDate(10, 0, 0),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.Contains(tt.now))
		})
	}
}

func TestWindow_Validate(t *testing.T) {
	badEnd := anchor.Add(-time.Hour)
	goodEnd := anchor.Add(time.Hour)

	assert.NoError(t, Window{Start: anchor, End: &goodEnd}.Validate())
	assert.NoError(t, Window{Start: anchor}.Validate())
	assert.ErrorIs(t, Window{Start: anchor, End: &badEnd}.Validate(), ErrInvalidWindow)
	// Zero-length window is structurally valid; Contains never allows it.
	assert.NoError(t, Window{Start: anchor, End: &anchor}.Validate())
	assert.False(t, Window{Start: anchor, End: &anchor}.Contains(anchor))
}

func TestComputeWindow_TrialCourse(t *testing.T) {
	w, err := ComputeWindow(coursevo.SubscriptionTrial, uintPtr(7), nil, anchor)
	require.NoError(t, err)

	require.NotNil(t, w.End)
	assert.Equal(t, anchor.AddDate(0, 0, 7), *w.End)
	assert.Equal(t, anchor, w.Start)
}

func TestComputeWindow_TrialWithoutDayCount(t *testing.T) {
	w, err := ComputeWindow(coursevo.SubscriptionTrial, nil, nil, anchor)
	require.NoError(t, err)

	assert.True(t, w.Unbounded())
}

func TestComputeWindow_PaidWithPeriod(t *testing.T) {
	tests := []struct {
		period vo.PeriodToken
		want   time.Time
	}{
		{vo.Period30Days, anchor.AddDate(0, 0, 30)},
		{vo.Period3Months, anchor.AddDate(0, 3, 0)},
		{vo.Period6Months, anchor.AddDate(0, 6, 0)},
		{vo.Period1Year, anchor.AddDate(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			w, err := ComputeWindow(coursevo.SubscriptionPaid, nil, periodPtr(tt.period), anchor)
			require.NoError(t, err)
			require.NotNil(t, w.End)
			assert.Equal(t, tt.want, *w.End)
		})
	}
}

func TestComputeWindow_PaidWithoutPeriodIsUnbounded(t *testing.T) {
	w, err := ComputeWindow(coursevo.SubscriptionPaid, nil, nil, anchor)
	require.NoError(t, err)

	assert.True(t, w.Unbounded())
}

func TestComputeWindow_FreeIsUnbounded(t *testing.T) {
	w, err := ComputeWindow(coursevo.SubscriptionFree, nil, nil, anchor)
	require.NoError(t, err)

	assert.True(t, w.Unbounded())
}

func TestComputeWindow_InvalidPeriodToken(t *testing.T) {
	_, err := ComputeWindow(coursevo.SubscriptionPaid, nil, periodPtr(vo.PeriodToken("2_weeks")), anchor)
	assert.ErrorIs(t, err, ErrInvalidPeriodToken)
}

func TestComputeWindow_CalendarMonthArithmetic(t *testing.T) {
	// A 3-month extension from Nov 30 lands on Mar 2 (or Mar 1 in leap
	// years), following Go's calendar normalization rather than clamping.
	novAnchor := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	w, err := ComputeWindow(coursevo.SubscriptionPaid, nil, periodPtr(vo.Period3Months), novAnchor)
	require.NoError(t, err)
	require.NotNil(t, w.End)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *w.End)
}
