package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/metroroute/config"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dfs"
	"github.com/katalvlaran/metroroute/gtfs"
	"github.com/katalvlaran/metroroute/httpapi"
	"github.com/katalvlaran/metroroute/netfile"
	"github.com/katalvlaran/metroroute/planner"
	"github.com/katalvlaran/metroroute/sample"
)

// newPlanner wraps n with the routing section of cfg.
func newPlanner(n *core.Network, cfg config.RoutingConfig, logger *log.Logger) (*planner.Planner, error) {
	return planner.New(n,
		planner.WithLinePenalty(cfg.LinePenalty),
		planner.WithMaxFrontier(cfg.MaxFrontier),
		planner.WithMaxTransferDepth(cfg.MaxTransferDepth),
		planner.WithLogger(logger),
	)
}

// printQuery writes both routes between from and to.
func printQuery(w io.Writer, p *planner.Planner, from, to string) {
	if r, ok := p.FindMinTransferRoute(from, to); ok {
		fmt.Fprintf(w, "Minimum-transfer route (%d transfers): %s\n", r.Transfers(), r)
	} else {
		fmt.Fprintln(w, "Minimum-transfer route: none")
	}
	if r, ok := p.FindFastestRoute(from, to); ok {
		fmt.Fprintf(w, "Fastest route (%d minutes): %s\n", r.Cost, r)
	} else {
		fmt.Fprintln(w, "Fastest route: none")
	}
}

// runDemo prints the sample scenarios.
func runDemo(w io.Writer, p *planner.Planner) {
	fmt.Fprintln(w, "=== Test scenarios ===")
	for i, sc := range sample.Scenarios {
		fmt.Fprintf(w, "\n%d. %s:\n", i+1, sc.Title)
		printQuery(w, p, sc.From, sc.To)
	}
}

func cmdDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	penalty := fs.Int64("penalty", -1, "line-change penalty (default from config)")
	fs.Parse(args)

	cfg := config.Default()
	if *penalty >= 0 {
		cfg.Routing.LinePenalty = *penalty
	}
	p, err := newPlanner(sample.Network(), cfg.Routing, nil)
	if err != nil {
		return err
	}
	runDemo(os.Stdout, p)

	return nil
}

func cmdRoute(args []string) error {
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config")
	from := fs.String("from", "", "origin stop ID")
	to := fs.String("to", "", "destination stop ID")
	avoid := fs.String("avoid", "", "comma-separated lines to avoid")
	fs.Parse(args)

	if *from == "" || *to == "" {
		return fmt.Errorf("route: -from and -to are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	ctx := context.Background()
	n, err := loadNetwork(ctx, cfg.Network)
	if err != nil {
		return err
	}
	p, err := newPlanner(n, cfg.Routing, nil)
	if err != nil {
		return err
	}

	if *avoid == "" {
		printQuery(os.Stdout, p, *from, *to)
		return nil
	}

	lines := strings.Split(*avoid, ",")
	if r, err := p.MinTransferRoute(ctx, *from, *to, lines...); err == nil {
		fmt.Printf("Minimum-transfer route (%d transfers): %s\n", r.Transfers(), r)
	} else {
		fmt.Printf("Minimum-transfer route: %v\n", err)
	}
	if r, err := p.FastestRoute(ctx, *from, *to, lines...); err == nil {
		fmt.Printf("Fastest route (%d minutes): %s\n", r.Cost, r)
	} else {
		fmt.Printf("Fastest route: %v\n", err)
	}

	return nil
}

func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config")
	port := fs.Int("port", 0, "listen port (default from config)")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := loadNetwork(ctx, cfg.Network)
	if err != nil {
		return err
	}
	p, err := newPlanner(n, cfg.Routing, log.Default())
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(p, httpapi.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeoutMS) * time.Millisecond,
	})
	return httpapi.Serve(ctx, net.JoinHostPort("", strconv.Itoa(cfg.Server.Port)), router)
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config")
	out := fs.String("out", "", "write the network as YAML to this file (- for stdout)")
	db := fs.String("db", "", "save the network into this SQLite database")
	pg := fs.Bool("pg", false, "save the network into DATABASE_URL")
	fs.Parse(args)

	if *out == "" && *db == "" && !*pg {
		return fmt.Errorf("export: one of -out, -db or -pg is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	ctx := context.Background()
	n, err := loadNetwork(ctx, cfg.Network)
	if err != nil {
		return err
	}

	if *out != "" {
		if err := writeNetFile(*out, n); err != nil {
			return err
		}
	}
	if *db != "" {
		if err := saveNetwork(ctx, config.NetworkConfig{Source: config.SourceSQLite, Path: *db}, n); err != nil {
			return err
		}
	}
	if *pg {
		dbCfg := config.NetworkConfig{Source: config.SourcePostgres, DatabaseURL: cfg.Network.DatabaseURL}
		if dbCfg.DatabaseURL == "" {
			return fmt.Errorf("export: DATABASE_URL is not set")
		}
		if err := saveNetwork(ctx, dbCfg, n); err != nil {
			return err
		}
	}

	return nil
}

func cmdImportGTFS(args []string) error {
	fs := flag.NewFlagSet("import-gtfs", flag.ExitOnError)
	feedPath := fs.String("gtfs", "", "GTFS zip file or directory")
	db := fs.String("db", "metroroute.db", "SQLite database to write")
	transfer := fs.Int64("transfer", gtfs.DefaultTransferMinutes, "minutes for an in-station transfer")
	routeTypes := fs.String("route-types", "", "comma-separated GTFS route_type values to keep (default all)")
	fs.Parse(args)

	if *feedPath == "" {
		return fmt.Errorf("import-gtfs: -gtfs is required")
	}

	opts := gtfs.BuildOptions{TransferMinutes: *transfer}
	for _, s := range strings.Split(*routeTypes, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		rt, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("import-gtfs: bad route type %q", s)
		}
		opts.RouteTypes = append(opts.RouteTypes, rt)
	}

	feed, err := parseFeed(*feedPath)
	if err != nil {
		return err
	}
	n, err := gtfs.BuildNetwork(feed, opts)
	if err != nil {
		return err
	}
	islands, err := dfs.Components(context.Background(), n)
	if err != nil {
		return err
	}
	if len(islands) > 1 {
		log.Printf("Warning: imported network has %d islands; the largest holds %d of %d stops",
			len(islands), len(largest(islands)), n.StopCount())
	}

	return saveNetwork(context.Background(), config.NetworkConfig{Source: config.SourceSQLite, Path: *db}, n)
}

func writeNetFile(path string, n *core.Network) error {
	f := netfile.FromNetwork(n)
	if path == "-" {
		return f.Encode(os.Stdout)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Encode(out); err != nil {
		out.Close()
		return err
	}
	log.Printf("Wrote %d lines to %s", len(f.Lines), path)

	return out.Close()
}

func saveNetwork(ctx context.Context, cfg config.NetworkConfig, n *core.Network) error {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(ctx, n); err != nil {
		return err
	}
	stats := n.Stats()
	log.Printf("Saved %d stops and %d connections (%s)", stats.StopCount, stats.ConnectionCount, cfg.Source)

	return nil
}

func largest(islands [][]string) []string {
	best := islands[0]
	for _, is := range islands[1:] {
		if len(is) > len(best) {
			best = is
		}
	}
	return best
}
