package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/classes", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/classes", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/bookings", "201", 0.1)
	RecordHTTPRequest("POST", "/api/bookings", "201", 0.2)
	RecordHTTPRequest("POST", "/api/bookings", "401", 0.05)

	createdCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "201"))
	deniedCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "401"))

	assert.Equal(t, float64(2), createdCount)
	assert.Equal(t, float64(1), deniedCount)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("created")
	RecordBooking("created")
	RecordBooking("rejected")

	created := testutil.ToFloat64(BookingsTotal.WithLabelValues("created"))
	rejected := testutil.ToFloat64(BookingsTotal.WithLabelValues("rejected"))

	assert.Equal(t, float64(2), created)
	assert.Equal(t, float64(1), rejected)
}

func TestRecordTrainerCreated(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pulsefit_trainers_created_total_test",
			Help: "Total number of trainers created",
		},
	)

	oldCounter := TrainersCreatedTotal
	TrainersCreatedTotal = testCounter
	defer func() { TrainersCreatedTotal = oldCounter }()

	RecordTrainerCreated()
	RecordTrainerCreated()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(2), count)
}

func TestRecordClassCreated(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pulsefit_classes_created_total_test",
			Help: "Total number of classes created",
		},
	)

	oldCounter := ClassesCreatedTotal
	ClassesCreatedTotal = testCounter
	defer func() { ClassesCreatedTotal = oldCounter }()

	RecordClassCreated()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(1), count)
}

func TestRecordUserSync(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pulsefit_user_syncs_total_test",
			Help: "Total number of identity sync calls",
		},
	)

	oldCounter := UserSyncsTotal
	UserSyncsTotal = testCounter
	defer func() { UserSyncsTotal = oldCounter }()

	RecordUserSync()
	RecordUserSync()
	RecordUserSync()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(3), count)
}

func TestRecordRelay(t *testing.T) {
	ContactRelayTotal.Reset()

	RecordRelay("success")
	RecordRelay("success")
	RecordRelay("failed")

	success := testutil.ToFloat64(ContactRelayTotal.WithLabelValues("success"))
	failed := testutil.ToFloat64(ContactRelayTotal.WithLabelValues("failed"))

	assert.Equal(t, float64(2), success)
	assert.Equal(t, float64(1), failed)
}

func TestContactQueueLength(t *testing.T) {
	ContactQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(ContactQueueLength))

	ContactQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(ContactQueueLength))
}

func TestMetricsIntegration(t *testing.T) {
	HTTPRequestsTotal.Reset()
	BookingsTotal.Reset()
	ContactRelayTotal.Reset()

	RecordHTTPRequest("POST", "/api/bookings", "201", 0.25)
	RecordBooking("created")
	RecordRelay("success")

	httpCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "201"))
	bookingCount := testutil.ToFloat64(BookingsTotal.WithLabelValues("created"))
	relayCount := testutil.ToFloat64(ContactRelayTotal.WithLabelValues("success"))

	assert.Equal(t, float64(1), httpCount)
	assert.Equal(t, float64(1), bookingCount)
	assert.Equal(t, float64(1), relayCount)
}
