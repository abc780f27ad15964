/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/common/version"
	"github.com/urfave/cli/v2"

	"github.com/NVIDIA/device-query/internal/pkg/appconfig"
	"github.com/NVIDIA/device-query/internal/pkg/deviceruntime"
	"github.com/NVIDIA/device-query/internal/pkg/enumerator"
	"github.com/NVIDIA/device-query/internal/pkg/fakeprovider"
	"github.com/NVIDIA/device-query/internal/pkg/hostname"
	"github.com/NVIDIA/device-query/internal/pkg/logging"
	"github.com/NVIDIA/device-query/internal/pkg/nvmlprovider"
	"github.com/NVIDIA/device-query/internal/pkg/prerequisites"
	"github.com/NVIDIA/device-query/internal/pkg/renderreport"
)

const devicesUsage = `Specify which devices get a report section.
	Possible values: {{all}} or id1[,id2-id3...].
	For example:
		all = report every device (default)
		0,2-3 = report devices 0, 2 and 3
	Peer relations are always computed against every device.
	Any requested index must exist on the system.`

// backend is a Runtime that must be initialized before use and closed afterwards.
type backend interface {
	deviceruntime.Runtime
	Init() error
	Close() error
}

var (
	newBackend = func(config *appconfig.Config) (backend, error) {
		switch config.Backend {
		case appconfig.BackendNVML:
			return nvmlprovider.New(nvmlprovider.RealNVML{}), nil
		case appconfig.BackendFake:
			return fakeprovider.New(config.FixtureFile), nil
		default:
			return nil, fmt.Errorf("unsupported backend: %s", config.Backend)
		}
	}

	validatePrerequisites = prerequisites.Validate

	initRetryDelay = time.Second
)

func NewApp(buildVersion ...string) *cli.App {
	c := cli.NewApp()
	c.Name = "device-query"
	c.Usage = "Enumerates the GPUs visible to this process and reports their capabilities"
	if len(buildVersion) == 0 {
		buildVersion = append(buildVersion, "")
	}
	c.Version = buildVersion[0]
	version.Version = buildVersion[0]

	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, version.Print(c.App.Name))
	}

	c.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    CLIBackend,
			Aliases: []string{"b"},
			Value:   string(appconfig.BackendNVML),
			Usage: fmt.Sprintf("Device runtime to query. Possible values: '%s', '%s'",
				appconfig.BackendNVML, appconfig.BackendFake),
			EnvVars: []string{envPrefix + "BACKEND"},
		},
		&cli.StringFlag{
			Name:    CLIFixture,
			Usage:   "Path to the YAML fixture describing the devices of the fake backend",
			EnvVars: []string{envPrefix + "FIXTURE"},
		},
		&cli.StringFlag{
			Name:    CLIFormat,
			Aliases: []string{"o"},
			Value:   string(renderreport.FormatText),
			Usage: fmt.Sprintf("Report format. Possible values: %s",
				strings.Join(renderreport.SupportedFormats(), ", ")),
			EnvVars: []string{envPrefix + "FORMAT"},
		},
		&cli.StringFlag{
			Name:    CLIDevices,
			Aliases: []string{"d"},
			Value:   appconfig.AllDevicesKey,
			Usage:   strings.ReplaceAll(devicesUsage, "{{all}}", appconfig.AllDevicesKey),
			EnvVars: []string{envPrefix + "DEVICES"},
		},
		&cli.UintFlag{
			Name:    CLIInitAttempts,
			Value:   defaultInitAttempts,
			Usage:   "Number of attempts to initialize the device runtime before giving up",
			EnvVars: []string{envPrefix + "INIT_ATTEMPTS"},
		},
		&cli.BoolFlag{
			Name:    CLISkipPrerequisites,
			Value:   false,
			Usage:   "Skip the check for the NVML library before using the nvml backend",
			EnvVars: []string{envPrefix + "SKIP_PREREQUISITES"},
		},
		&cli.StringFlag{
			Name:  CLILogFormat,
			Value: string(appconfig.LogFormatJSON),
			Usage: fmt.Sprintf("Log format. Possible values: '%s', '%s'",
				appconfig.LogFormatJSON, appconfig.LogFormatText),
			EnvVars: []string{envPrefix + "LOG_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    CLIDebugMode,
			Value:   false,
			Usage:   "Enable debug output",
			EnvVars: []string{envPrefix + "DEBUG"},
		},
	}

	c.Action = func(c *cli.Context) error {
		return action(c)
	}

	return c
}

func action(c *cli.Context) (err error) {
	// Capture any panic that may occur during the query and return it as an error.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Encountered a failure.", slog.String(logging.StackTraceKey, string(debug.Stack())))
			err = fmt.Errorf("encountered a failure; err: %v", r)
		}
	}()

	return queryDevices(c)
}

func queryDevices(c *cli.Context) error {
	config, err := contextToConfig(c)
	if err != nil {
		return err
	}

	setupLogging(config, c.App.ErrWriter)
	enableDebugLogging(config)

	if config.Backend == appconfig.BackendNVML && !config.SkipPrerequisites {
		if err := validatePrerequisites(); err != nil {
			return err
		}
	}

	rt, err := openBackend(config)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			slog.Warn("Failed to close the device runtime", slog.String(logging.ErrorKey, err.Error()))
		}
	}()

	handle := deviceruntime.NewHandle(rt)

	runtimeVersion, err := handle.Version()
	if err != nil {
		return err
	}

	writer, err := renderreport.NewWriter(renderreport.Format(config.Format), c.App.Writer)
	if err != nil {
		return err
	}

	header := renderreport.NewHeader(string(config.Backend), runtimeVersion)
	if header.Host, err = hostname.Get(); err != nil {
		slog.Warn("Failed to get the hostname", slog.String(logging.ErrorKey, err.Error()))
	}

	if err := writer.WriteHeader(header); err != nil {
		return errors.Wrap(err, "failed to write report header")
	}

	runErr := enumerator.Run(handle, config.Devices, writer)
	closeErr := writer.Close()
	if runErr != nil {
		return runErr
	}

	return errors.Wrap(closeErr, "failed to write report")
}

// openBackend initializes the configured backend. Only statuses reported by the runtime are retried.
func openBackend(config *appconfig.Config) (backend, error) {
	rt, err := newBackend(config)
	if err != nil {
		return nil, err
	}

	err = retry.Do(rt.Init,
		retry.Attempts(config.InitAttempts),
		retry.Delay(initRetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var se *deviceruntime.StatusError
			return errors.As(err, &se)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Failed to initialize the device runtime; retrying",
				slog.String(logging.BackendKey, string(config.Backend)),
				slog.Uint64(logging.AttemptKey, uint64(n+1)),
				slog.String(logging.ErrorKey, err.Error()))
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to initialize the %s backend", config.Backend)
	}

	slog.Info("Device runtime initialized", slog.String(logging.BackendKey, string(config.Backend)))

	return rt, nil
}

func contextToConfig(c *cli.Context) (*appconfig.Config, error) {
	backendName := appconfig.Backend(c.String(CLIBackend))
	if !slices.Contains([]appconfig.Backend{appconfig.BackendNVML, appconfig.BackendFake}, backendName) {
		return nil, fmt.Errorf("invalid --%s value: %s", CLIBackend, backendName)
	}

	if backendName == appconfig.BackendFake && c.String(CLIFixture) == "" {
		return nil, fmt.Errorf("the %s backend requires --%s", backendName, CLIFixture)
	}

	format := renderreport.Format(c.String(CLIFormat))
	if format.IsUnknown() {
		return nil, fmt.Errorf("invalid --%s value: %s", CLIFormat, format)
	}

	logFormat := appconfig.LogFormat(c.String(CLILogFormat))
	if logFormat != appconfig.LogFormatJSON && logFormat != appconfig.LogFormatText {
		return nil, fmt.Errorf("invalid --%s value: %s", CLILogFormat, logFormat)
	}

	if c.Uint(CLIInitAttempts) == 0 {
		return nil, fmt.Errorf("--%s must be at least 1", CLIInitAttempts)
	}

	devices, err := appconfig.ParseDeviceOptions(c.String(CLIDevices))
	if err != nil {
		return nil, err
	}

	return &appconfig.Config{
		Backend:           backendName,
		FixtureFile:       c.String(CLIFixture),
		Format:            string(format),
		Devices:           devices,
		InitAttempts:      c.Uint(CLIInitAttempts),
		SkipPrerequisites: c.Bool(CLISkipPrerequisites),
		LogFormat:         logFormat,
		Debug:             c.Bool(CLIDebugMode),
	}, nil
}

func setupLogging(config *appconfig.Config, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if config.Debug {
		opts.Level = slog.LevelDebug
	}

	if config.LogFormat == appconfig.LogFormatText {
		logging.SetupGlobalTextLogger(w, opts)
		return
	}
	logging.SetupGlobalLogger(w, opts)
}

func enableDebugLogging(config *appconfig.Config) {
	if !config.Debug {
		return
	}

	slog.Debug("Debug output is enabled")
	slog.Debug(fmt.Sprintf("Command line: %s", strings.Join(os.Args, " ")))
	slog.Debug("Loaded configuration", slog.String(logging.DumpKey, fmt.Sprintf("%+v", config)))
}
