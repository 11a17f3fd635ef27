package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/CrestNiraj12/travelgram/domain"
	"github.com/CrestNiraj12/travelgram/infra/config"
	"github.com/CrestNiraj12/travelgram/infra/editor"
	"github.com/CrestNiraj12/travelgram/infra/logging"
	"github.com/CrestNiraj12/travelgram/infra/metrics"
	"github.com/CrestNiraj12/travelgram/infra/sheets"
	"github.com/CrestNiraj12/travelgram/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const farewell = "Thanks for browsing. Please return to the survey in your browser to continue."

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func newCLI() *cli.App {
	return &cli.App{
		Name:  "travelgram",
		Usage: "photo feed for survey participants",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "dotenv file to load before reading the environment",
				EnvVars: []string{"TRAVELGRAM_ENV_FILE"},
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "start the feed (default)",
				Action: runTUI,
			},
			{
				Name:  "check",
				Usage: "load a condition and print its posts as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "code",
						Usage:    "participant entry code",
						Required: true,
					},
				},
				Action: runCheck,
			},
			{
				Name:   "version",
				Usage:  "print build information",
				Action: runVersion,
			},
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "travelgram: %v\n", err)
		os.Exit(1)
	}
}

func runVersion(cmd *cli.Context) error {
	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
	fmt.Fprintf(cmd.App.Writer, "Travelgram %s\ncommit: %s\nbuilt: %s\n", v, c, d)
	return nil
}

// services holds the infrastructure shared by the run and check commands.
type services struct {
	cfg     config.Config
	log     *logging.Logger
	metrics *metrics.Metrics
	loader  *sheets.Loader
}

func setup(cmd *cli.Context) (*services, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return nil, fmt.Errorf("config: %w\n\n%s", err, config.Usage())
	}

	log, err := logging.NewFile(cfg.Log.File, logging.Opts{
		Level:     cfg.Log.Level,
		Env:       cfg.Env,
		SentryDSN: cfg.SentryDSN,
	})
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	m := metrics.New()
	client := sheets.NewClient(cfg.Sheet.ID,
		sheets.WithURLTemplate(cfg.Sheet.URLTemplate),
		sheets.WithLogger(log.Logger),
		sheets.WithObserver(m),
	)
	media := sheets.Media{
		BaseURL:     cfg.Media.BaseURL,
		Extension:   cfg.Media.Extension,
		Placeholder: cfg.Media.Placeholder,
	}

	return &services{
		cfg:     cfg,
		log:     log,
		metrics: m,
		loader:  sheets.NewLoader(client, media, log.Logger),
	}, nil
}

func runTUI(cmd *cli.Context) error {
	ctx, cancel := signal.NotifyContext(cmd.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, err := setup(cmd)
	if err != nil {
		return err
	}
	defer svc.log.Close()

	if svc.cfg.Sheet.ID == "" {
		svc.log.Warn("TRAVELGRAM_SHEET_ID is not set; feeds will fail to load")
	}
	if addr := svc.cfg.MetricsAddr; addr != "" {
		go svc.metrics.Serve(ctx, addr, svc.log.Logger)
	}

	model := tui.NewApp(ctx, tui.Deps{
		Feed:    svc.loader,
		Tracker: svc.metrics,
		Editor:  editor.NewEnvEditor(),
		Logger:  svc.log.Logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		svc.log.Error("tui exited", "err", err)
		return fmt.Errorf("running TUI: %w", err)
	}
	if a, ok := final.(tui.App); ok && a.Ended() {
		fmt.Fprintln(cmd.App.Writer, farewell)
	}
	return nil
}

func runCheck(cmd *cli.Context) error {
	cond, err := domain.ConditionForCode(strings.TrimSpace(cmd.String("code")))
	if err != nil {
		return err
	}

	svc, err := setup(cmd)
	if err != nil {
		return err
	}
	defer svc.log.Close()

	posts, err := svc.loader.Load(cmd.Context, cond)
	if err != nil {
		return err
	}
	return writePosts(cmd.App.Writer, posts)
}

func writePosts(w io.Writer, posts []domain.Post) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(posts)
}
