package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/travelgram/domain"
)

func TestInteractionsAreCounted(t *testing.T) {
	m := New()
	m.SessionStarted(domain.Condition1)
	m.Liked(domain.Condition1, "p1", true)
	m.Liked(domain.Condition1, "p1", false)
	m.Liked(domain.Condition1, "p2", true)
	m.Commented(domain.Condition2, "p1")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessions.WithLabelValues("condition1")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.likes.WithLabelValues("condition1", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.likes.WithLabelValues("condition1", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commentCount.WithLabelValues("condition2")))
}

func TestHandler_ExposesFetchHistogram(t *testing.T) {
	m := New()
	m.ObserveFetch("Posts1", 120*time.Millisecond, nil)
	m.ObserveFetch("Comments1", time.Second, errors.New("boom"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `travelgram_sheet_fetch_seconds_count{ok="true",sheet="Posts1"} 1`)
	assert.Contains(t, string(body), `travelgram_sheet_fetch_seconds_count{ok="false",sheet="Comments1"} 1`)
}
