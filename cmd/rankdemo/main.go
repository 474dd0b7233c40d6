package main

// Rank a catalog feed for a profile and print the result:
//   go run ./cmd/rankdemo -profile profile.json -category internet [-feed feed.yaml] [-limit 5]

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
	"plancompare-backend/internal/recommend"
)

type options struct {
	feedPath     string
	profilePath  string
	providerPath string
	category     string
	limit        int
	extended     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.feedPath, "feed", "", "catalog feed YAML (defaults to the built-in catalog)")
	flag.StringVar(&opts.profilePath, "profile", "", "user profile JSON (required, - for stdin)")
	flag.StringVar(&opts.providerPath, "providers", "", "provider table YAML override")
	flag.StringVar(&opts.category, "category", "", "category to rank (all categories when empty)")
	flag.IntVar(&opts.limit, "limit", 5, "number of recommendations to print, 0 for all")
	flag.BoolVar(&opts.extended, "extended", false, "score extended priority dimensions")
	flag.Parse()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "rankdemo:", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, stdout io.Writer) error {
	if opts.profilePath == "" {
		return errors.New("-profile is required")
	}

	cat, err := loadCatalog(opts.feedPath)
	if err != nil {
		return err
	}
	prof, err := loadProfile(opts.profilePath, stdin)
	if err != nil {
		return err
	}

	cfg := recommend.DefaultConfig()
	cfg.ExtendedPriorities = opts.extended
	if opts.providerPath != "" {
		f, err := os.Open(opts.providerPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if cfg.Providers, err = recommend.LoadProviderTable(f); err != nil {
			return err
		}
	}

	plans := cat.All()
	if opts.category != "" {
		c, ok := catalog.ParseCategory(opts.category)
		if !ok {
			return fmt.Errorf("unknown category %q", opts.category)
		}
		plans = cat.ByCategory(c)
	}

	recs := recommend.Top(recommend.New(cfg).Rank(plans, prof), opts.limit)
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(recs)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	plans, err := catalog.DecodeFeed(f)
	if err != nil {
		return nil, err
	}
	return catalog.NewCatalog(plans), nil
}

func loadProfile(path string, stdin io.Reader) (profile.UserProfile, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return profile.UserProfile{}, err
		}
		defer f.Close()
		r = f
	}
	var prof profile.UserProfile
	if err := json.NewDecoder(r).Decode(&prof); err != nil {
		return profile.UserProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return prof, nil
}
