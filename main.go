package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"calwatch/internal/auth"
	"calwatch/internal/clock"
	"calwatch/internal/config"
	"calwatch/internal/health"
	"calwatch/internal/host"
	"calwatch/internal/logging"
	"calwatch/internal/service"
	"calwatch/internal/store"
	"calwatch/internal/strava"
	"calwatch/internal/tui"
	"calwatch/internal/watchface"
)

const usage = `Usage:
  calwatch [-config path]                      show the watchface
  calwatch log [-config path] [-resting] KCAL  record calories burned now
  calwatch sync [-config path]                 import today's Strava activities
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cmd := "watch"
	if len(args) > 0 && (args[0] == "log" || args[0] == "sync") {
		cmd, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := fs.String("config", "", "config file (default ~/.calwatch/config.json)")
	resting := fs.Bool("resting", false, "record resting instead of active calories")
	fs.Parse(args)

	a, err := setup(*configPath)
	if err != nil || a == nil {
		return err
	}
	defer a.close()

	switch cmd {
	case "log":
		if fs.NArg() != 1 {
			fs.Usage()
			return errors.New("log needs exactly one kcal value")
		}
		return a.logCalories(fs.Arg(0), *resting)
	case "sync":
		return a.syncOnce(context.Background())
	default:
		return a.watch(context.Background())
	}
}

// app holds what every subcommand shares
type app struct {
	cfg    *config.Config
	db     *store.Store
	logger *zap.SugaredLogger
	clock  clock.Clock
}

// setup loads config, opens the log and the database. A nil app with a nil
// error means the user has to edit the config first.
func setup(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(configPath); err != nil {
			return nil, fmt.Errorf("creating example config: %w", err)
		}
		fmt.Printf("\nReview the config file at:\n  %s\n\n", displayPath(configPath))
		fmt.Println("Set athlete.bmr_kcal to your basal metabolic rate.")
		fmt.Println("For Strava import add an API application from https://www.strava.com/settings/api")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s\n", displayPath(configPath))
		return nil, nil
	}

	dataDir, err := dataDir(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(filepath.Join(dataDir, "calwatch.log"), cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	db, err := store.Open(filepath.Join(dataDir, "data.db"))
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &app{cfg: cfg, db: db, logger: logger, clock: clock.Real{}}, nil
}

func (a *app) close() {
	a.db.Close()
	a.logger.Sync()
}

// dataDir keeps the database and log next to the config file
func dataDir(configPath string) (string, error) {
	if configPath != "" {
		return filepath.Dir(configPath), nil
	}
	return config.GetConfigDir()
}

func displayPath(configPath string) string {
	if configPath != "" {
		return configPath
	}
	dir, _ := config.GetConfigDir()
	return filepath.Join(dir, "config.json")
}

func (a *app) watch(ctx context.Context) error {
	var syncer tui.Syncer
	if a.cfg.StravaEnabled() {
		client, err := a.stravaClient(ctx)
		if err != nil {
			return err
		}
		syncer = service.NewImportService(client, a.db, a.clock, a.logger)
	}

	platform := tui.NewPlatform(a.cfg.Display.Shape, a.cfg.Display.Color)
	locale := host.Clock24h
	if a.cfg.Display.Clock == "12h" {
		locale = host.Clock12h
	}

	stack := host.NewStack(platform.Bounds())
	ticks := host.NewTickService()

	ctrl := watchface.New(watchface.Deps{
		Health:       health.NewStoreService(a.db, a.cfg.Athlete.BMRKcal, a.clock, a.logger),
		Clock:        a.clock,
		Locale:       locale,
		Capabilities: platform,
		Windows:      stack,
		Ticks:        ticks,
		Logger:       a.logger,
	})
	if err := ctrl.Start(); err != nil {
		return fmt.Errorf("starting watchface: %w", err)
	}
	defer ctrl.Stop()

	model := tui.NewApp(tui.Options{
		Controller: ctrl,
		Stack:      stack,
		Ticks:      ticks,
		Clock:      a.clock,
		Syncer:     syncer,
		History:    a.db,
		Logger:     a.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func (a *app) logCalories(arg string, resting bool) error {
	kcal, err := strconv.ParseFloat(arg, 64)
	if err != nil || kcal <= 0 {
		return fmt.Errorf("invalid kcal value %q", arg)
	}

	metric := health.ActiveKCalories
	if resting {
		metric = health.RestingKCalories
	}

	now := a.clock.Now()
	if err := a.db.InsertSample(&store.Sample{
		Metric:     string(metric),
		RecordedAt: now,
		KCal:       kcal,
		Source:     store.SourceManual,
	}); err != nil {
		return fmt.Errorf("recording sample: %w", err)
	}
	a.logger.Infow("Logged calories", "metric", metric, "kcal", kcal)

	total, err := a.db.SumSamples(string(metric), clock.StartOfDay(now), now)
	if err != nil {
		return fmt.Errorf("summing today: %w", err)
	}
	fmt.Printf("Logged %s kcal (%s today: %s kcal)\n",
		humanize.Ftoa(kcal), metric, humanize.Comma(int64(total)))
	return nil
}

func (a *app) syncOnce(ctx context.Context) error {
	if !a.cfg.StravaEnabled() {
		return errors.New("strava is not configured; add strava.client_id and strava.client_secret to the config")
	}

	client, err := a.stravaClient(ctx)
	if err != nil {
		return err
	}
	svc := service.NewImportService(client, a.db, a.clock, a.logger)

	progress := make(chan service.SyncProgress)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			if p.CurrentActivity != "" {
				fmt.Printf("  [%d/%d] %s\n", p.Completed+1, p.Total, p.CurrentActivity)
			}
		}
	}()

	result, err := svc.SyncToday(ctx, progress)
	<-done
	if err != nil {
		return fmt.Errorf("syncing: %w", err)
	}

	fmt.Printf("\nImported %d activities (%d new, %d updated), %s kcal\n",
		result.SamplesCreated+result.SamplesUpdated, result.SamplesCreated, result.SamplesUpdated,
		humanize.Comma(int64(result.KCalImported)))
	for _, e := range result.Errors {
		fmt.Printf("  skipped: %v\n", e)
	}

	short, daily := client.RateLimitStatus()
	fmt.Printf("API requests left: %d (15 min), %d (today)\n", short, daily)
	return nil
}

// stravaClient returns an API client, running the OAuth flow when no tokens are stored
func (a *app) stravaClient(ctx context.Context) (*strava.Client, error) {
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     a.cfg.Strava.ClientID,
		ClientSecret: a.cfg.Strava.ClientSecret,
		RedirectURL:  auth.RedirectURL(),
	})

	storedAuth, err := a.db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		fmt.Println("No Strava authorization found. Starting OAuth flow...")
		if storedAuth, err = a.authenticate(ctx, oauthCfg); err != nil {
			return nil, fmt.Errorf("authentication: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking auth: %w", err)
	}

	tokenSource := a.tokenSource(oauthCfg, storedAuth)

	// A revoked refresh token needs a new authorization
	if _, err := tokenSource.Token(); err != nil {
		a.logger.Warnw("Stored Strava token rejected", "error", err)
		fmt.Println("Stored token is invalid or expired. Re-authenticating...")
		storedAuth, err = a.authenticate(ctx, oauthCfg)
		if err != nil {
			return nil, fmt.Errorf("re-authentication: %w", err)
		}
		tokenSource = a.tokenSource(oauthCfg, storedAuth)
	}

	return strava.NewClient(tokenSource), nil
}

// tokenSource refreshes the stored tokens and writes renewed ones back
func (a *app) tokenSource(oauthCfg *oauth2.Config, stored *store.Auth) oauth2.TokenSource {
	token := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		Expiry:       stored.ExpiresAt,
	}
	return auth.NewPersistingTokenSource(oauthCfg, token, func(t *oauth2.Token) error {
		return a.db.UpdateTokens(t.AccessToken, t.RefreshToken, t.Expiry)
	})
}

func (a *app) authenticate(ctx context.Context, oauthCfg *oauth2.Config) (*store.Auth, error) {
	result, err := auth.Authorize(ctx, oauthCfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	storedAuth := &store.Auth{
		AthleteID:    result.AthleteID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}
	if err := a.db.SaveAuth(storedAuth); err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}

	a.logger.Infow("Strava authorized", "athlete_id", result.AthleteID)
	fmt.Printf("\nSuccessfully authenticated as athlete %d!\n", result.AthleteID)
	return storedAuth, nil
}
