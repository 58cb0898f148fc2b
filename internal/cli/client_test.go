package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient("http://sim.test", slog.New(slog.NewTextHandler(io.Discard, nil)))
	httpmock.ActivateNonDefault(c.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_Schedule(t *testing.T) {
	c := newTestClient(t)

	var got requests.ScheduleRequests
	httpmock.RegisterResponder(http.MethodPost, "http://sim.test/api/v1/schedule/rr",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
			}
			return httpmock.NewJsonResponse(http.StatusOK, responses.ScheduleResponse{RunID: "abc", Algorithm: "rr"})
		})

	resp, err := c.Schedule("rr", requests.ScheduleRequests{
		Jobs:        []requests.Job{{ProcessId: 1, BurstTime: 4}},
		TimeQuantum: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.RunID)
	assert.Equal(t, 3, got.TimeQuantum)
	require.Len(t, got.Jobs, 1)
	assert.Equal(t, 4, got.Jobs[0].BurstTime)
}

func TestClient_ServerError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, "http://sim.test/api/v1/schedule/edf",
		httpmock.NewJsonResponderOrPanic(http.StatusUnprocessableEntity,
			responses.ErrorResponse{Error: "hyperperiod exceeds limit"}))
	httpmock.RegisterResponder(http.MethodPost, "http://sim.test/api/v1/compare",
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	_, err := c.Schedule("edf", requests.ScheduleRequests{})
	assert.ErrorContains(t, err, "422")
	assert.ErrorContains(t, err, "hyperperiod exceeds limit")

	_, err = c.Compare(requests.ScheduleRequests{})
	assert.EqualError(t, err, "server returned 500")
}

func TestClient_Compare(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, "http://sim.test/api/v1/compare",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, responses.CompareResponse{
			RunID:   "cmp",
			Results: []responses.ComparisonResponse{{Algorithm: "fcfs", AverageWaitingTime: 1}},
		}))

	resp, err := c.Compare(requests.ScheduleRequests{Jobs: []requests.Job{{ProcessId: 1, BurstTime: 1}}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "fcfs", resp.Results[0].Algorithm)
}

func TestDefaultServer(t *testing.T) {
	t.Setenv("SCHEDSIM_SERVER", "http://other:1")
	assert.Equal(t, "http://other:1", defaultServer())
}
