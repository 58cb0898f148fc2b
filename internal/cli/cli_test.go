package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/loader"
	"cpu-scheduling-simulator/internal/responses"
)

const twoProcesses = `processes:
  - pid: 1
    arrival_time: 0
    burst_time: 5
  - pid: 2
    arrival_time: 2
    burst_time: 3
`

const periodicProcesses = `processes:
  - pid: 1
    arrival_time: 0
    burst_time: 1
    period: 4
    deadline: 4
  - pid: 2
    arrival_time: 0
    burst_time: 2
    period: 6
    deadline: 6
`

func writeProcessFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "procs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"run", "compare", "generate", "serve", "submit"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRun_FCFSFromFile(t *testing.T) {
	path := writeProcessFile(t, twoProcesses)

	out, err := execute(t, "run", "--algorithm", "fcfs", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "1.50")
}

func TestRun_JSON(t *testing.T) {
	path := writeProcessFile(t, twoProcesses)

	out, err := execute(t, "run", "-a", "fcfs", "-f", path, "--json")
	require.NoError(t, err)

	var resp responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, []responses.SegmentResponse{
		{ProcessId: 1, Start: 0, End: 5},
		{ProcessId: 2, Start: 5, End: 8},
	}, resp.Timeline)
	assert.InDelta(t, 1.5, resp.AverageWaitingTime, 1e-9)
}

func TestRun_RoundRobinQuantum(t *testing.T) {
	path := writeProcessFile(t, twoProcesses)

	out, err := execute(t, "run", "-a", "round-robin", "-q", "5", "-f", path, "--json")
	require.NoError(t, err)

	var resp responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "rr", resp.Algorithm)
	assert.Len(t, resp.Timeline, 2)
}

func TestRun_Periodic(t *testing.T) {
	path := writeProcessFile(t, periodicProcesses)

	out, err := execute(t, "run", "-a", "rm", "-f", path, "--json")
	require.NoError(t, err)

	var resp responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 12, resp.Hyperperiod)
	assert.Empty(t, resp.DeadlineMisses)
}

func TestRun_WarnsAboveDisplayHyperperiod(t *testing.T) {
	path := writeProcessFile(t, `processes:
  - {pid: 1, arrival_time: 0, burst_time: 1, period: 7}
  - {pid: 2, arrival_time: 0, burst_time: 1, period: 11}
  - {pid: 3, arrival_time: 0, burst_time: 1, period: 13}
`)

	out, err := execute(t, "run", "-a", "rm", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Hyperperiod exceeds 100")

	path = writeProcessFile(t, periodicProcesses)
	out, err = execute(t, "run", "-a", "rm", "-f", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Hyperperiod exceeds")
}

func TestRun_ReportsDroppedInstances(t *testing.T) {
	path := writeProcessFile(t, `processes:
  - {pid: 1, arrival_time: 0, burst_time: 3, period: 4, deadline: 10}
  - {pid: 2, arrival_time: 0, burst_time: 3, period: 4, deadline: 2}
`)

	out, err := execute(t, "run", "-a", "edf", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 deadline miss(es)")
	assert.Contains(t, out, "1 instance(s) dropped")
}

func TestRun_RandomIsReproducible(t *testing.T) {
	first, err := execute(t, "run", "-a", "sjn", "--random", "5", "--seed", "9")
	require.NoError(t, err)
	second, err := execute(t, "run", "-a", "sjn", "--random", "5", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "-a", "fcfs")
	assert.ErrorContains(t, err, "--file or --random")

	_, err = execute(t, "run", "-a", "lottery", "--random", "3")
	assert.ErrorContains(t, err, "unknown algorithm")

	path := writeProcessFile(t, twoProcesses)
	_, err = execute(t, "run", "-a", "rm", "-f", path)
	assert.ErrorContains(t, err, "period")
}

func TestCompare(t *testing.T) {
	path := writeProcessFile(t, twoProcesses)

	out, err := execute(t, "compare", "-f", path, "--json")
	require.NoError(t, err)

	var rows []responses.ComparisonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, "fcfs", rows[0].Algorithm)
	assert.InDelta(t, 1.5, rows[0].AverageWaitingTime, 1e-9)
	assert.NotEmpty(t, rows[3].Error)

	out, err = execute(t, "compare", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "FCFS")
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "--random", "4", "--seed", "3")
	require.NoError(t, err)

	processes, err := loader.Parse(bytes.NewBufferString(out))
	require.NoError(t, err)
	require.Len(t, processes, 4)
	for _, p := range processes {
		assert.Positive(t, p.BurstTime)
		assert.True(t, p.HasPeriod())
		assert.True(t, p.HasDeadline())
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	_, err = execute(t, "generate", "--random", "4", "--seed", "3", "-o", path)
	require.NoError(t, err)
	fromFile, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, processes, fromFile)

	_, err = execute(t, "generate")
	assert.Error(t, err)
}

func TestGenerate_OutputErrors(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "missing", "out.yaml")
	_, err := execute(t, "generate", "--random", "2", "-o", missingDir)
	assert.ErrorContains(t, err, "create")
}

func TestSubmit(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, "http://sim.test/api/v1/schedule/edf",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, responses.ScheduleResponse{
			RunID:              "run-1",
			Algorithm:          "edf",
			AverageWaitingTime: 0.5,
			Timeline: []responses.SegmentResponse{
				{ProcessId: 1, Start: 0, End: 1},
				{ProcessId: 2, Start: 1, End: 3},
			},
		}))

	path := writeProcessFile(t, periodicProcesses)
	out, err := execute(t, "submit", "--server", "http://sim.test", "-a", "deadline-first", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "P2")
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}
