package schedulers

import (
	"fmt"
	"log/slog"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/util"
)

// DeadlineMiss records a periodic instance that still had work left when its
// absolute deadline passed. Misses are reported, never treated as failures.
type DeadlineMiss struct {
	PID       int `json:"pid"`
	Release   int `json:"release"`
	Deadline  int `json:"deadline"`
	Remaining int `json:"remaining"`
}

// DroppedInstance records unfinished work discarded at a period boundary
// while the instance's deadline was still ahead. This only happens when the
// relative deadline is longer than the period. An instance is reported at
// most once, either as a miss or as dropped.
type DroppedInstance struct {
	PID       int `json:"pid"`
	Release   int `json:"release"`
	Deadline  int `json:"deadline"`
	Remaining int `json:"remaining"`
}

// Hyperperiod returns the LCM of all periods. It fails with ErrConfiguration
// when a process has no period, and with ErrLimitExceeded when the LCM is
// above limit or, with limit <= 0, does not fit in an int. An empty set has hyperperiod 0.
func Hyperperiod(processes []*core.Process, limit int) (int, error) {
	if len(processes) == 0 {
		return 0, nil
	}
	periods := make([]int, 0, len(processes))
	for _, p := range processes {
		if !p.HasPeriod() {
			return 0, fmt.Errorf("%w: process %d: period is required", ErrConfiguration, p.PID)
		}
		periods = append(periods, p.Period)
	}
	h, exceeded := util.LCMBounded(periods, limit)
	if exceeded {
		if limit <= 0 {
			return 0, fmt.Errorf("%w: hyperperiod overflows int", ErrLimitExceeded)
		}
		return 0, fmt.Errorf("%w: hyperperiod exceeds %d (reached %d)", ErrLimitExceeded, limit, h)
	}
	return h, nil
}

// periodicTask is the per-process runtime state of one periodic instance.
type periodicTask struct {
	process  *core.Process
	capacity int
	release  int
	deadline int
	missed   bool
}

// pickFunc reports whether a should run instead of b.
type pickFunc func(a, b *periodicTask) bool

// periodicRun is the state shared by the RM and EDF schedulers.
type periodicRun struct {
	hyperperiod    int
	deadlineMisses []DeadlineMiss
	dropped        []DroppedInstance
}

func (r *periodicRun) Hyperperiod() int { return r.hyperperiod }

func (r *periodicRun) DeadlineMisses() []DeadlineMiss { return r.deadlineMisses }

func (r *periodicRun) DroppedInstances() []DroppedInstance { return r.dropped }

// record stores the outcome of simulate.
func (r *periodicRun) record(hyperperiod int, out simulation) {
	r.hyperperiod = hyperperiod
	r.deadlineMisses = out.misses
	r.dropped = out.dropped
}

type simulation struct {
	timeline core.Timeline
	misses   []DeadlineMiss
	dropped  []DroppedInstance
}

// simulate runs ticks 0..hyperperiod-1. Every task is released at t=0 and at
// each multiple of its period with its capacity reset to the burst time and
// its absolute deadline set to release+relativeDeadline(process). On each
// tick the ready task preferred by higher runs for one unit; ticks with no
// ready task are skipped. A miss is recorded once the absolute deadline has
// passed with work left; work still pending at a boundary before its deadline
// is recorded as dropped.
func simulate(
	processes []*core.Process,
	hyperperiod int,
	relativeDeadline func(*core.Process) int,
	higher pickFunc,
	logger *slog.Logger,
) simulation {
	tasks := make([]*periodicTask, 0, len(processes))
	for _, p := range processes {
		tasks = append(tasks, &periodicTask{
			process:  p,
			capacity: p.BurstTime,
			deadline: relativeDeadline(p),
		})
	}

	var out simulation
	recordMiss := func(task *periodicTask) {
		if task.missed || task.capacity == 0 {
			return
		}
		task.missed = true
		out.misses = append(out.misses, DeadlineMiss{
			PID:       task.process.PID,
			Release:   task.release,
			Deadline:  task.deadline,
			Remaining: task.capacity,
		})
		logger.Debug("deadline missed", "pid", task.process.PID, "release", task.release, "deadline", task.deadline)
	}

	cpu := core.NewCPU()
	for t := 0; t < hyperperiod; t++ {
		var running *periodicTask
		for _, task := range tasks {
			if task.capacity == 0 {
				continue
			}
			if running == nil || higher(task, running) {
				running = task
			}
		}
		if running != nil {
			cpu.Execute(running.process.PID, t, 1)
			running.capacity--
			running.process.RemainingTime = running.capacity
		}

		for _, task := range tasks {
			if t+1 >= task.deadline {
				recordMiss(task)
			}
			if (t+1)%task.process.Period == 0 {
				if !task.missed && task.capacity > 0 {
					out.dropped = append(out.dropped, DroppedInstance{
						PID:       task.process.PID,
						Release:   task.release,
						Deadline:  task.deadline,
						Remaining: task.capacity,
					})
					logger.Debug("instance dropped", "pid", task.process.PID, "release", task.release, "deadline", task.deadline)
				}
				if t+1 == hyperperiod {
					continue
				}
				task.release = t + 1
				task.capacity = task.process.BurstTime
				task.deadline = task.release + relativeDeadline(task.process)
				task.missed = false
				task.process.RemainingTime = task.capacity
			}
		}
	}
	out.timeline = cpu.Timeline()
	return out
}

// byPID breaks ties deterministically.
func byPID(a, b *periodicTask) bool {
	return a.process.PID < b.process.PID
}
