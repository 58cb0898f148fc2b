package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/generator"
	"cpu-scheduling-simulator/internal/logging"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/schedulers"
)

const maxGeneratedProcesses = 100

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger.With("component", "api")}
}

func (s *SchedulerHandlerImpl) options(timeQuantum int) []schedulers.Option {
	if timeQuantum == 0 {
		timeQuantum = s.config.RoundRobinTimeQuantum
	}
	return []schedulers.Option{
		schedulers.WithLogger(s.logger),
		schedulers.WithTimeQuantum(timeQuantum),
		schedulers.WithMaxHyperperiod(s.config.MaxHyperperiod),
	}
}

// Schedule runs the algorithm named in the path on the posted process set.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}

	algorithm := ctx.Params("algorithm")
	scheduler, err := schedulers.New(algorithm, s.options(request.TimeQuantum)...)
	if err != nil {
		return s.schedulingError(ctx, algorithm, err)
	}
	for _, p := range request.Processes() {
		scheduler.AddProcess(p)
	}
	if err := scheduler.Schedule(); err != nil {
		return s.schedulingError(ctx, algorithm, err)
	}

	response := schedulers.GenerateResponse(uuid.NewString(), scheduler)
	s.logger.Info("schedule served", "run_id", response.RunID, "algorithm", response.Algorithm,
		"processes", len(request.Jobs), "segments", len(response.Timeline))
	return ctx.JSON(response)
}

// Compare runs every algorithm on the posted process set.
func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	if request.TimeQuantum < 0 {
		return writeError(ctx, fiber.StatusBadRequest, "time_quantum must be positive")
	}

	response := responses.CompareResponse{RunID: uuid.NewString()}
	for _, r := range schedulers.Compare(request.Processes(), s.options(request.TimeQuantum)...) {
		row := responses.ComparisonResponse{
			Algorithm:             r.Algorithm,
			AverageWaitingTime:    r.AverageWaitingTime,
			AverageTurnAroundTime: r.AverageTurnaroundTime,
		}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		response.Results = append(response.Results, row)
	}
	return ctx.JSON(response)
}

// Generate returns a seeded synthetic process set in request format.
func (s *SchedulerHandlerImpl) Generate(ctx *fiber.Ctx) error {
	var request requests.GenerateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	if request.Count <= 0 || request.Count > maxGeneratedProcesses {
		return writeError(ctx, fiber.StatusBadRequest, "count must be between 1 and 100")
	}

	opts := generator.DefaultOptions()
	if request.ArrivalMax > 0 {
		opts.ArrivalMin, opts.ArrivalMax = request.ArrivalMin, request.ArrivalMax
	}
	if request.BurstMax > 0 {
		opts.BurstMin, opts.BurstMax = request.BurstMin, request.BurstMax
	}
	opts.IncludePeriod = request.IncludePeriod
	opts.IncludeDeadline = request.IncludeDeadline

	rng := generator.NewRand(request.Seed)
	var processes []*core.Process
	var err error
	if request.Sequential {
		processes, err = generator.Sequential(rng, request.Count, request.Step, opts)
	} else {
		processes, err = generator.Random(rng, request.Count, opts)
	}
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, err.Error())
	}

	response := requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(processes))}
	for _, p := range processes {
		response.Jobs = append(response.Jobs, requests.JobFromProcess(p))
	}
	return ctx.JSON(response)
}

type algorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Periodic    bool   `json:"periodic"`
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	infos := make([]algorithmInfo, 0, len(schedulers.Algorithms()))
	for _, name := range schedulers.Algorithms() {
		infos = append(infos, algorithmInfo{
			Name:        name,
			Description: schedulers.Describe(name),
			Periodic:    schedulers.IsPeriodic(name),
		})
	}
	return ctx.JSON(fiber.Map{"algorithms": infos})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedulingError(ctx *fiber.Ctx, algorithm string, err error) error {
	s.logger.Warn("schedule rejected", "algorithm", algorithm, logging.ErrAttr(err))
	switch {
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return writeError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, schedulers.ErrLimitExceeded):
		return writeError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, schedulers.ErrConfiguration):
		return writeError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return writeError(ctx, fiber.StatusInternalServerError, "can not process request")
}

func writeError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message})
}
