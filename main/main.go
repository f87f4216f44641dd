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

	"github.com/urfave/cli/v2"

	validator "github.com/mikepage/dmarc-validator"
	"github.com/mikepage/dmarc-validator/dmarc"
	"github.com/mikepage/dmarc-validator/dns"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmarc-validator"
	app.Usage = "look up and interpret DMARC policies"
	app.Description = `dmarc-validator queries the DMARC policy record of a domain and
explains what each policy tag means. It can run as a one-shot
lookup ('lookup') or as an HTTP API server ('serve').
`
	app.Commands = []*cli.Command{
		serveCommand(),
		lookupCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the DMARC lookup HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Address to listen on",
				EnvVars: []string{"DMARC_VALIDATOR_ADDR"},
				Value:   ":8080",
			},
			&cli.StringSliceFlag{
				Name:    "nameserver",
				Usage:   "DNS server to query, may be given multiple times (default: system resolver)",
				EnvVars: []string{"DMARC_VALIDATOR_NAMESERVER"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "DNS query timeout",
				Value: 5 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "no-metrics",
				Usage: "Disable the Prometheus /metrics endpoint",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	logger := newLogger(c.Bool("debug"))

	srv := validator.New(validator.Config{
		Addr:           c.String("addr"),
		Resolver:       newResolver(c),
		DisableMetrics: c.Bool("no-metrics"),
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Look up the DMARC record of a domain",
		ArgsUsage: "DOMAIN",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the result as JSON",
			},
			&cli.StringSliceFlag{
				Name:    "nameserver",
				Usage:   "DNS server to query, may be given multiple times (default: system resolver)",
				EnvVars: []string{"DMARC_VALIDATOR_NAMESERVER"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "DNS query timeout",
				Value: 5 * time.Second,
			},
		},
		Action: runLookup,
	}
}

func runLookup(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: dmarc-validator lookup DOMAIN", 2)
	}
	domain := c.Args().First()
	resolver := newResolver(c)

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout")+time.Second)
	defer cancel()

	result, err := dmarc.Lookup(ctx, resolver, domain)
	if errors.Is(err, dmarc.ErrNoRecord) {
		// Subdomains without their own record inherit the policy of
		// the organizational domain (RFC 7489, section 6.6.3).
		clean := dmarc.CleanDomain(domain)
		if org := dmarc.OrganizationalDomain(clean); org != "" && !strings.EqualFold(org, clean) {
			fmt.Fprintf(os.Stderr, "no record for %s, trying organizational domain %s\n", clean, org)
			result, err = dmarc.Lookup(ctx, resolver, org)
		}
	}
	if err != nil {
		if errors.Is(err, dmarc.ErrNoRecord) {
			return cli.Exit(fmt.Sprintf("no DMARC record found for %s", dmarc.CleanDomain(domain)), 1)
		}
		return err
	}

	if c.Bool("json") {
		data, err := result.ToJSONIndent()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Domain:  %s\n", result.Domain)
	fmt.Printf("Record:  %s\n", result.Record)
	fmt.Printf("Policy:  %s\n", result.Policy)
	fmt.Printf("Summary: %s\n", result.PolicyDescription)
	fmt.Printf("Query:   %dms\n", result.QueryTime)
	fmt.Println()
	for _, tag := range result.Tags {
		fmt.Printf("  %s=%s\n", tag.Tag, tag.Value)
		fmt.Printf("      %s\n", tag.Description)
	}
	return nil
}

// newResolver builds a resolver from the --nameserver and --timeout flags.
// Without explicit nameservers the system resolver is used.
func newResolver(c *cli.Context) dns.Resolver {
	nameservers := c.StringSlice("nameserver")
	if len(nameservers) == 0 {
		return dns.NewStdResolver()
	}
	return dns.NewResolver(dns.ResolverConfig{
		Nameservers: nameservers,
		Timeout:     c.Duration("timeout"),
	})
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
