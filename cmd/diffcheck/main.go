package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skuforge/catalogsync/internal/catalog"
	"github.com/skuforge/catalogsync/internal/config"
	"github.com/skuforge/catalogsync/internal/diff"
	"github.com/skuforge/catalogsync/internal/refcache"
	"github.com/skuforge/catalogsync/internal/resolve"
)

type actionEnvelope struct {
	Action string `json:"action"`
	Detail any    `json:"detail"`
}

func main() {
	cfg := config.Load()

	oldPath := flag.String("old", "", "path to the existing catalog item (JSON)")
	draftPath := flag.String("draft", "", "path to the desired item draft (JSON)")
	metaPath := flag.String("meta", "", "path to attribute metadata (JSON map, optional)")
	keysPath := flag.String("keys", "", "path to an id-to-key map used to resolve draft references (JSON, optional)")
	allow := flag.String("allow", "", "comma-separated action groups to diff (default all)")
	deny := flag.String("deny", "", "comma-separated action groups to skip")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	flag.Parse()

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if *oldPath == "" || *draftPath == "" {
		fmt.Fprintln(os.Stderr, "usage: diffcheck -old item.json -draft draft.json [-meta meta.json] [-keys keys.json]")
		os.Exit(2)
	}

	var old catalog.Item
	if err := readJSON(*oldPath, &old); err != nil {
		logger.Fatal("reading item", zap.Error(err))
	}
	var draft catalog.ItemDraft
	if err := readJSON(*draftPath, &draft); err != nil {
		logger.Fatal("reading draft", zap.Error(err))
	}

	meta := map[string]catalog.AttributeMetadata{}
	if *metaPath != "" {
		if err := readJSON(*metaPath, &meta); err != nil {
			logger.Fatal("reading attribute metadata", zap.Error(err))
		}
	}

	if *keysPath != "" {
		keys := map[string]string{}
		if err := readJSON(*keysPath, &keys); err != nil {
			logger.Fatal("reading key map", zap.Error(err))
		}
		draft = resolve.Draft(newCache(cfg, keys), draft)
	}

	if issues := catalog.ValidateDraft(draft); !issues.IsValid() {
		for _, issue := range issues.Issues {
			logger.Error("draft invalid",
				zap.String("path", issue.Path),
				zap.String("code", issue.Code),
				zap.String("message", issue.Message))
		}
		os.Exit(1)
	}

	opts := diff.Options{Logger: logger}
	if *allow != "" {
		opts.Filter = diff.AllowGroups(splitGroups(*allow)...)
	} else if *deny != "" {
		opts.Filter = diff.DenyGroups(splitGroups(*deny)...)
	}

	engine := diff.NewEngine(opts)
	actions, diags := engine.BuildActions(old, draft, meta)

	envelopes := make([]actionEnvelope, len(actions))
	for i, a := range actions {
		envelopes[i] = actionEnvelope{Action: string(a.Kind()), Detail: a}
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(envelopes); err != nil {
		logger.Fatal("encoding output", zap.Error(err))
	}

	for _, d := range diags {
		if d.Level == diff.LevelError {
			os.Exit(1)
		}
	}
}

func newCache(cfg config.Config, keys map[string]string) refcache.Cache {
	if cfg.CacheBackend == "expiring" {
		c := refcache.NewExpiring(cfg.CacheTTL, cfg.CacheTTL)
		for id, key := range keys {
			c.Put(id, key)
		}
		return c
	}
	c := refcache.NewMemory()
	for id, key := range keys {
		c.Put(id, key)
	}
	return c
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func splitGroups(list string) []diff.Group {
	parts := strings.Split(list, ",")
	groups := make([]diff.Group, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			groups = append(groups, diff.Group(p))
		}
	}
	return groups
}
