package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/dskvich/location-images/pkg/batch"
	"github.com/dskvich/location-images/pkg/cli"
	"github.com/dskvich/location-images/pkg/console"
	"github.com/dskvich/location-images/pkg/database"
	"github.com/dskvich/location-images/pkg/domain"
	"github.com/dskvich/location-images/pkg/generator"
	"github.com/dskvich/location-images/pkg/llm"
	"github.com/dskvich/location-images/pkg/llm/gemini"
	"github.com/dskvich/location-images/pkg/llm/openai"
	"github.com/dskvich/location-images/pkg/llm/replicate"
	"github.com/dskvich/location-images/pkg/logger"
	"github.com/dskvich/location-images/pkg/notify"
	"github.com/dskvich/location-images/pkg/repository"
	"github.com/hashicorp/go-multierror"
)

type Config struct {
	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	ReplicateToken   string        `env:"REPLICATE_API_TOKEN"`
	OpenAIToken      string        `env:"OPEN_AI_TOKEN"`
	ImageModel       string        `env:"IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	OutputDir        string        `env:"OUTPUT_DIR" envDefault:"public/images"`
	MaxRetries       int           `env:"MAX_RETRIES" envDefault:"3"`
	PacingDelay      time.Duration `env:"PACING_DELAY" envDefault:"15s"`
	RateLimitBackoff time.Duration `env:"RATE_LIMIT_BACKOFF" envDefault:"60s"`
	ErrorBackoff     time.Duration `env:"ERROR_BACKOFF" envDefault:"5s"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s"`
	TranscodeJPEG    bool          `env:"TRANSCODE_JPEG" envDefault:"false"`
	SOCKS5Proxy      string        `env:"SOCKS5_PROXY"`
	LogLevel         slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`

	HistoryEnabled bool   `env:"HISTORY_ENABLED" envDefault:"false"`
	PgURL          string `env:"DATABASE_URL"`
	PgHost         string `env:"DB_HOST" envDefault:"localhost:61234"`
	BunDebug       int    `env:"BUNDEBUG" envDefault:"0"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(os.Args[1:]); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
}

func runMain(args []string) error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("stopping due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parsing env config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	logger.Level.Set(cfg.LogLevel)

	hc, err := llm.NewHTTPClient(cfg.RequestTimeout, cfg.SOCKS5Proxy)
	if err != nil {
		return fmt.Errorf("creating http client: %w", err)
	}

	imageClient, err := setupImageClient(cfg, hc)
	if err != nil {
		return err
	}

	out := console.New(os.Stdout)

	var driverOpts []batch.Option
	if cfg.HistoryEnabled {
		db, err := database.NewDB(cfg.PgURL, cfg.PgHost)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		defer db.Close()

		driverOpts = append(driverOpts, batch.WithHistory(repository.NewGenerationRepository(db)))
	}

	var notifier *notify.Telegram
	if cfg.TelegramBotToken != "" {
		if notifier, err = notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID); err != nil {
			return fmt.Errorf("creating notifier: %w", err)
		}
	}

	executor := generator.NewExecutor(imageClient, generator.Config{
		Model:            cfg.ImageModel,
		MaxRetries:       cfg.MaxRetries,
		RateLimitBackoff: cfg.RateLimitBackoff,
		ErrorBackoff:     cfg.ErrorBackoff,
		Transcode:        cfg.TranscodeJPEG,
	}, out)

	driver := batch.NewDriver(executor, batch.Config{
		OutputDir:   cfg.OutputDir,
		PacingDelay: cfg.PacingDelay,
	}, out, driverOpts...)

	if err := driver.Prepare(domain.CategorySubareas, domain.CategoryLandmarks); err != nil {
		return fmt.Errorf("preparing output directories: %w", err)
	}

	out.Header("SAN DIEGO HOME CARE - IMAGE GENERATION\nUsing " + cfg.ImageModel)

	summary, err := cli.Dispatch(ctx, args, driver, out)
	if errors.Is(err, cli.ErrUnknownMode) {
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("run finished", "mode", summary.Mode, "success", summary.Success(), "total", summary.Total())

	if notifier != nil {
		if err := notifier.Notify(ctx, summary.Markdown()); err != nil {
			slog.Error("failed to send summary", logger.Err(err))
		}
	}

	return nil
}

func validate(cfg Config) error {
	var result *multierror.Error

	if cfg.MaxRetries < 1 {
		result = multierror.Append(result, fmt.Errorf("MAX_RETRIES must be at least 1, got %d", cfg.MaxRetries))
	}
	for name, d := range map[string]time.Duration{
		"PACING_DELAY":       cfg.PacingDelay,
		"RATE_LIMIT_BACKOFF": cfg.RateLimitBackoff,
		"ERROR_BACKOFF":      cfg.ErrorBackoff,
		"REQUEST_TIMEOUT":    cfg.RequestTimeout,
	} {
		if d < 0 {
			result = multierror.Append(result, fmt.Errorf("%s must not be negative, got %s", name, d))
		}
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID == 0 {
		result = multierror.Append(result, errors.New("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set"))
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		result = multierror.Append(result, errors.New("OUTPUT_DIR must not be empty"))
	}

	return result.ErrorOrNil()
}

// setupImageClient registers a provider for every credential present and fails when
// the configured model has none.
func setupImageClient(cfg Config, hc *http.Client) (*llm.MultiProviderImageClient, error) {
	providers := map[string]llm.ImageGenerator{}

	if cfg.GeminiAPIKey != "" {
		c, err := gemini.NewClient(cfg.GeminiAPIKey, gemini.WithHTTPClient(hc))
		if err != nil {
			return nil, fmt.Errorf("creating gemini client: %w", err)
		}
		providers[domain.Gemini25FlashImage] = c
		if strings.HasPrefix(cfg.ImageModel, "gemini-") {
			providers[cfg.ImageModel] = c
		}
	}

	if cfg.ReplicateToken != "" {
		c, err := replicate.NewClient(cfg.ReplicateToken, replicate.WithHTTPClient(hc))
		if err != nil {
			return nil, fmt.Errorf("creating replicate client: %w", err)
		}
		for model := range replicate.ModelToReplicateModel {
			providers[model] = c
		}
	}

	if cfg.OpenAIToken != "" {
		c, err := openai.NewClient(cfg.OpenAIToken, openai.WithHTTPClient(hc))
		if err != nil {
			return nil, fmt.Errorf("creating open ai client: %w", err)
		}
		providers[domain.DallE2Model] = c
		providers[domain.DallE3Model] = c
	}

	client := llm.NewMultiProviderImageClient(providers)
	if !client.Supports(cfg.ImageModel) {
		return nil, fmt.Errorf("no credentials configured for image model %q", cfg.ImageModel)
	}

	return client, nil
}
