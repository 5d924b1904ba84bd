package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vatkit/vatkit/pkg/config"
	"github.com/vatkit/vatkit/pkg/logger"
	"github.com/vatkit/vatkit/pkg/vat"
	"github.com/vatkit/vatkit/pkg/vies"
)

// Exit codes: 0 number is valid, 1 number is invalid, 2 the check failed.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	timeout := flag.Duration("timeout", 0, "request timeout override (e.g. 5s)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: vatcheck [flags] <vat-id>\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Validates a European VAT number against the VIES registry.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return exitError
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)
	logger.SetAsDefault(log)

	client := vies.New(buildOptions(cfg, log)...)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+time.Second)
	defer cancel()

	res, err := client.Check(ctx, vat.Normalize(flag.Arg(0)))
	if err != nil {
		switch {
		case errors.Is(err, vat.ErrInvalidCountry), errors.Is(err, vat.ErrInvalidNumber):
			fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		case errors.Is(err, vies.ErrTimeout):
			fmt.Fprintln(os.Stderr, "the registry did not answer in time")
		default:
			fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
		}
		return exitError
	}

	printResult(res)
	if !res.Valid {
		return exitInvalid
	}
	return exitValid
}

func buildOptions(cfg config.Config, log *slog.Logger) []vies.Option {
	opts := []vies.Option{
		vies.WithEndpoint(cfg.Endpoint),
		vies.WithTimeout(cfg.Timeout),
		vies.WithLogger(log),
	}

	switch {
	case cfg.RedisURL != "":
		redisOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("invalid redis URL, falling back to in-memory cache", slog.Any("error", err))
			opts = append(opts, vies.WithCache(vies.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL)))
			break
		}
		opts = append(opts, vies.WithCache(vies.NewRedisCache(redis.NewClient(redisOpt), cfg.CacheTTL)))
	case cfg.CacheSize > 0:
		opts = append(opts, vies.WithCache(vies.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL)))
	}

	return opts
}

func printResult(res vies.Result) {
	status := "INVALID"
	if res.Valid {
		status = "VALID"
		if !res.ServerValidated {
			status = "VALID (unconfirmed, registry unavailable)"
		}
	}
	fmt.Printf("%s%s: %s\n", res.CountryCode, res.VATNumber, status)
	if res.Name != "" {
		fmt.Printf("  name:    %s\n", res.Name)
	}
	if res.Address != "" {
		fmt.Printf("  address: %s\n", res.Address)
	}
}
