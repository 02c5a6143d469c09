// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordsolve CLI and IPC server.

wordsolve indexes every five letter word of a dictionary in a crit-bit trie
and lists the words that fit a word puzzle guess: a pattern of known letters
and wildcards, the letters still allowed at each position, and letters the
answer must contain.

# Usage

Start the interactive interpreter on the system word list:

	wordsolve

Use another word list and enable debug mode:

	wordsolve -dict ./words.txt -d

Serve msgpack requests on stdin/stdout instead:

	wordsolve -ipc

# Interactive commands

	try ?t?ne s        words matching ?t?ne that contain an s
	eliminate xyz      drop letters from every position
	remove 1 ab        drop letters from position 1
	pin 3 o            allow only o at position 3
	add 3 a            allow a at position 3 again
	reset              allow every letter everywhere
	sets               show the letters allowed at each position

Type help for the full reference.

# Configuration

A TOML file is created with defaults in the config directory
(~/.config/wordsolve/config.toml on linux) when missing:

	[dict]
	path = "/usr/share/dict/words"
	min_words = 1

	[match]
	wildcard = "?"
	count_repeats = false
	exclusions = []

	[cli]
	prompt = "> "
	columns = 0
	limit = 0
	color = true

	[server]
	max_results = 256

Flags override the config values they name.

# Command Line Flags

	-dict string
	    Word list to load (default from config)
	-config string
	    Config file to use instead of the default location
	-d  Enable debug mode with detailed logging
	-ipc
	    Serve msgpack requests on stdin/stdout
	-limit int
	    Words printed per query, 0 for all
	-cols int
	    Output width, 0 to use $COLUMNS
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordsolve/internal/cli"
	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/critbit"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordsolve"
	gh      = "https://github.com/bastiangx/wordsolve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary, engine and the chosen front end.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list to load (default from config)")
	configPath := flag.String("config", "", "Config file to use instead of the default location")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	ipcMode := flag.Bool("ipc", false, "Serve msgpack requests on stdin/stdout")
	limit := flag.Int("limit", -1, "Words printed per query, 0 for all (default from config)")
	cols := flag.Int("cols", -1, "Output width, 0 to use $COLUMNS (default from config)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if usedConfig != "" {
		log.Debugf("Using config file: %s", config.GetActiveConfigPath(usedConfig))
	}
	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *limit >= 0 {
		cfg.CLI.Limit = *limit
	}
	if *cols >= 0 {
		cfg.CLI.Columns = *cols
	}

	opts, err := cfg.MatchOptions()
	if err != nil {
		log.Fatalf("Invalid [match] config: %v", err)
	}
	engine, err := match.New(opts)
	if err != nil {
		log.Fatalf("Failed to create match engine: %v", err)
	}
	defer engine.Close()

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolved, err := pathResolver.GetDictPath(cfg.Dict.Path)
	if err != nil {
		log.Fatalf("No dictionary found (tried %q): %v", pathResolver.DictCandidates(cfg.Dict.Path), err)
	}
	log.Debugf("Using dictionary at: %s", resolved)

	loader := dictionary.NewLoader(critbit.WordLen)
	stats, err := loader.Load(resolved, engine)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	if stats.Accepted < cfg.Dict.MinWords {
		log.Fatalf("Dictionary %s has %d usable words, need at least %d", resolved, stats.Accepted, cfg.Dict.MinWords)
	}

	if *ipcMode {
		srvLog := logger.New("ipc")
		srvLog.Debug("spawning IPC", "words", engine.Len(), "max_results", cfg.Server.MaxResults)
		srv := server.NewServer(engine, cfg.Server.MaxResults)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	handler := cli.NewInputHandler(engine, loader.Lexicon(), cli.Settings{
		Prompt:  cfg.CLI.Prompt,
		Columns: cfg.CLI.Columns,
		Limit:   cfg.CLI.Limit,
		Color:   cfg.CLI.Color,
		Load:    stats,
	}, os.Stdin, os.Stdout)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// printVersion shows the styled version banner.
func printVersion() {
	l := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ " + AppName + " ] Five letter word puzzle solver")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
