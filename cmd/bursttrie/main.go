// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command bursttrie loads a properties file into a burst trie,
// logs the trie statistics, looks up keys and optionally writes
// the trie dump to disk.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/gaissmai/bursttrie"
	"github.com/gaissmai/bursttrie/internal/charset"
	"github.com/gaissmai/bursttrie/internal/config"
	"github.com/gaissmai/bursttrie/internal/properties"
)

// text is the payload, a property value reporting its own burden.
type text string

func (t text) MemoryBurden() int {
	return 16 + len(t)
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		logger.Error().Err(err).Msg("bursttrie failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger zerolog.Logger) error {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	lvl, err := cfg.Level()
	if err != nil {
		return errors.Wrap(err, "invalid config")
	}
	logger = logger.Level(lvl)

	start := time.Now()

	pairs, err := properties.ReadFile(cfg.Input)
	if err != nil {
		return err
	}

	t := bursttrie.New[text](bursttrie.WithMaxContainerCost(cfg.MaxContainerCost))

	var skipped int
	for _, p := range pairs {
		if !charset.Valid(p.Key) {
			skipped++
			logger.Debug().Str("key", p.Key).Int("line", p.Line).Msg("key outside alphabet, skipped")
			continue
		}
		t.Insert(p.Key, text(p.Value))
	}

	s := t.Stats()
	logger.Info().
		Str("file", cfg.Input).
		Int("pairs", len(pairs)).
		Int("skipped", skipped).
		Int("count", s.Count).
		Int("depth", s.Depth).
		Int("burden", s.MemoryBurden).
		Int("containers", s.Containers).
		Int("subtries", s.Subtries).
		Int("values", s.Values).
		Int("max_container_cost", t.MaxContainerCost()).
		Dur("elapsed", time.Since(start)).
		Msg("trie loaded")

	for _, key := range cfg.Lookup {
		if val, ok := t.Get(key); ok {
			fmt.Fprintf(out, "%s=%s\n", key, val)
			continue
		}
		logger.Warn().Str("key", key).Msg("key not found")
	}

	if cfg.Dump != "" {
		if err := writeDump(cfg.Dump, t); err != nil {
			return err
		}
		logger.Info().Str("file", cfg.Dump).Msg("dump written")
	}

	return nil
}

func writeDump(path string, t *bursttrie.Trie[text]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create dump file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close dump file")
		}
	}()

	t.Dump(f)
	return nil
}
