package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(llmRequests.WithLabelValues("prd", OutcomeError))
	ObserveLLM("prd", time.Second, errors.New("timeout"))
	assert.Equal(t, before+1, testutil.ToFloat64(llmRequests.WithLabelValues("prd", OutcomeError)))

	before = testutil.ToFloat64(ticketsCreated.WithLabelValues(SourceMeeting))
	TicketCreated(SourceMeeting)
	TicketCreated(SourceMeeting)
	assert.Equal(t, before+2, testutil.ToFloat64(ticketsCreated.WithLabelValues(SourceMeeting)))

	before = testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/tickets", "200"))
	ObserveHTTP("GET", "/api/tickets", "200", 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/tickets", "200")))

	before = testutil.ToFloat64(transcriptions.WithLabelValues(OutcomeSuccess))
	ObserveTranscription(nil)
	assert.Equal(t, before+1, testutil.ToFloat64(transcriptions.WithLabelValues(OutcomeSuccess)))
}
