// Package loader reads and writes process sets as YAML:
//
//	processes:
//	  - pid: 1
//	    arrival_time: 0
//	    burst_time: 5
//	    period: 10     # optional
//	    deadline: 8    # optional, relative for EDF
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"cpu-scheduling-simulator/internal/core"
)

type processFile struct {
	Processes []*core.Process `yaml:"processes"`
}

// Load reads a process set from a YAML file.
func Load(path string) ([]*core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	processes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return processes, nil
}

// Parse decodes a process set and rejects duplicate pids. Remaining time is
// initialised to the burst time.
func Parse(r io.Reader) ([]*core.Process, error) {
	var file processFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []*core.Process{}, nil
		}
		return nil, fmt.Errorf("decode process file: %w", err)
	}

	seen := make(map[int]bool, len(file.Processes))
	processes := make([]*core.Process, 0, len(file.Processes))
	for i, p := range file.Processes {
		if p == nil {
			return nil, fmt.Errorf("processes[%d]: empty entry", i)
		}
		if seen[p.PID] {
			return nil, fmt.Errorf("processes[%d]: duplicate pid %d", i, p.PID)
		}
		seen[p.PID] = true
		p.RemainingTime = p.BurstTime
		processes = append(processes, p)
	}
	return processes, nil
}

// Write encodes a process set in the format Parse reads.
func Write(w io.Writer, processes []*core.Process) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(processFile{Processes: processes}); err != nil {
		return fmt.Errorf("encode process file: %w", err)
	}
	return enc.Close()
}
