package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastBanner_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	banner := newToastBanner(4 * time.Second)
	banner.nowFn = func() time.Time { return now }

	assert.Nil(t, banner.Current())

	banner.Show(toastSuccess("saved"))
	require.NotNil(t, banner.Current())
	assert.Equal(t, "saved", banner.Current().Message)

	now = now.Add(3 * time.Second)
	assert.NotNil(t, banner.Current())

	now = now.Add(2 * time.Second)
	assert.Nil(t, banner.Current())
}

func TestToastBanner_NewToastReplacesOld(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	banner := newToastBanner(4 * time.Second)
	banner.nowFn = func() time.Time { return now }

	banner.Show(toastError("first"))
	now = now.Add(3 * time.Second)
	banner.Show(toastInfo("second"))

	// The replacement restarts the clock.
	now = now.Add(3 * time.Second)
	require.NotNil(t, banner.Current())
	assert.Equal(t, "second", banner.Current().Message)
}

func TestShowToast_Prints(t *testing.T) {
	ta := newTestApp(t, false)

	ta.app.showToast(toastError("something broke"))

	assert.Contains(t, ta.out.String(), "[error] something broke")
	require.NotNil(t, ta.app.banner.Current())
}
