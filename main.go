package main

import (
	"context"
	"fmt"
	"github.com/Marat-Tanalin/integer-scaling/api"
	"github.com/Marat-Tanalin/integer-scaling/common"
	"github.com/Marat-Tanalin/integer-scaling/common/event"
	"github.com/Marat-Tanalin/integer-scaling/common/logger"
	"github.com/Marat-Tanalin/integer-scaling/fixture"
	"github.com/Marat-Tanalin/integer-scaling/imagetools"
	"github.com/Marat-Tanalin/integer-scaling/scaling"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const busQueueSize = 100

func main() {
	params, err := common.ParseParams()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if err := params.Validate(); err != nil {
		logger.Error.Printf("Invalid parameters: %s", err)
		os.Exit(2)
	}

	if params.TestCasesPath() != "" {
		os.Exit(runTestCases(params))
	}

	if params.ImageFile() != "" {
		size, err := imagetools.ProbeSize(params.ImageFile())
		if err != nil {
			logger.Error.Printf("%s", err)
			os.Exit(1)
		}
		params = params.WithImage(size)
		if err := params.Validate(); err != nil {
			logger.Error.Printf("Invalid image: %s", err)
			os.Exit(1)
		}
	}

	calculate(os.Stdout, params)
}

func calculate(out io.Writer, params *common.Params) {
	area := params.Area()
	image := params.Image()
	aspect := params.Aspect()
	logger.Debug.Printf("Calculating %s for %s in %s, aspect %s", params.Mode(), image, area, aspect)

	switch params.Mode() {
	case common.ModeRatio:
		fmt.Fprintln(out, scaling.CalculateRatio(area.Width(), area.Height(), image.Width(), image.Height()))
	case common.ModeRatios:
		fmt.Fprintln(out, scaling.CalculateRatios(area.Width(), area.Height(), image.Width(), image.Height(), aspect))
	case common.ModeSize:
		fmt.Fprintln(out, scaling.CalculateSize(area.Width(), area.Height(), image.Width(), image.Height()))
	case common.ModeCorrected:
		fmt.Fprintln(out, scaling.CalculateSizeCorrected(area.Width(), area.Height(), image.Width(), image.Height(), aspect))
	case common.ModePerfectY:
		fmt.Fprintln(out, scaling.CalculateSizeCorrectedPerfectY(area.Width(), area.Height(), image.Height(), aspect))
	}
}

func runTestCases(params *common.Params) int {
	broker := event.InitBus(busQueueSize)
	defer broker.Close()

	broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Trace.Printf("%s: %d/%d", command.Name, command.Current, command.Total)
	})
	broker.Subscribe(api.TestCasesReloaded, func(command *api.TestCasesReloadedCommand) {
		logger.Info.Printf("Reloaded %d test cases from %s", command.Count, command.Path)
	})

	checker := fixture.NewChecker(broker, api.NewSenderProgressReporter(broker))
	path := params.TestCasesPath()

	exitCode := 0
	check := func(cases []*fixture.Case) {
		report := checker.Run(path, cases)
		printReport(os.Stdout, report)
		if report.Failed() > 0 {
			exitCode = 1
		} else {
			exitCode = 0
		}
	}

	cases, err := fixture.Load(path)
	if err != nil {
		broker.SendError("Could not load test cases", err)
		if !params.Watch() {
			return 1
		}
	} else {
		check(cases)
	}

	if params.Watch() {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		err := fixture.Watch(ctx, path, func(cases []*fixture.Case) {
			broker.SendCommandToTopic(api.TestCasesReloaded, &api.TestCasesReloadedCommand{Path: path, Count: len(cases)})
			check(cases)
		})
		if err != nil {
			logger.Error.Printf("Could not watch %s: %s", path, err)
			return 1
		}
	}
	return exitCode
}

func printReport(out io.Writer, report *fixture.Report) {
	fmt.Fprintf(out, "%d items.\n", report.Total())
	for _, failure := range report.Failures() {
		fmt.Fprintf(out, "FAIL %s: %s\n", failure.Case().Name, failure.Message())
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", report.Passed(), report.Failed())
}
