// Package main is the terminal host for the narrative engine.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nightpath/storycore/internal/config"
	"github.com/nightpath/storycore/internal/content"
	"github.com/nightpath/storycore/internal/emotion"
	"github.com/nightpath/storycore/internal/narrative"
	"github.com/nightpath/storycore/internal/save"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nshutting down...")
		cancel()
		// The read loop may be blocked on stdin, give it a moment then exit.
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	catalog, err := buildCatalog(cfg)
	if err != nil {
		log.Fatalf("failed to load scenes: %v", err)
	}

	model, err := emotion.NewModel(emotion.Config{
		Min:            cfg.EmotionMin,
		Max:            cfg.EmotionMax,
		DecayPerMinute: cfg.EmotionDecayPerMinute,
		HistoryWindow:  cfg.HistoryWindow,
	}, time.Now, logger)
	if err != nil {
		log.Fatalf("failed to create emotion model: %v", err)
	}

	engine := narrative.NewEngine(catalog, model, cfg.FallbackScene, logger)

	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open save store: %v", err)
	}
	defer closeStore()

	adapter := save.NewAdapter(engine, model, store, nil)

	engine.EnterScene(cfg.StartScene)
	run(ctx, engine, model, adapter, logger)
}

func buildCatalog(cfg config.Config) (*narrative.Catalog, error) {
	if cfg.ScenesPath != "" {
		catalog, err := content.LoadYAML(cfg.ScenesPath)
		if err != nil {
			return nil, err
		}
		if err := content.CheckIntegrity(catalog); err != nil {
			return nil, err
		}
		return catalog, nil
	}
	return content.DefaultCatalog()
}

func buildStore(ctx context.Context, cfg config.Config) (save.Store, func(), error) {
	noop := func() {}
	switch cfg.SaveBackend {
	case config.BackendMemory:
		return save.NewMemoryStore(), noop, nil
	case config.BackendPostgres:
		store, err := save.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case config.BackendSQLite:
		store, err := save.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return save.NewRedisStore(client, save.RedisOptions{}), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
}

func run(ctx context.Context, engine *narrative.Engine, model *emotion.Model, adapter *save.Adapter, logger *slog.Logger) {
	printEvent(engine)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "stats":
			printStats(model)
		case "save":
			slot := slotArg(fields)
			if _, err := adapter.Save(ctx, slot); err != nil {
				logger.Error("save failed", "slot", slot, "error", err)
			} else {
				fmt.Printf("saved to %q\n", slot)
			}
		case "load":
			slot := slotArg(fields)
			if _, err := adapter.Load(ctx, slot); err != nil {
				logger.Error("load failed", "slot", slot, "error", err)
			} else {
				fmt.Printf("loaded %q\n", slot)
				printEvent(engine)
			}
		case "saves":
			slots, err := adapter.List(ctx)
			if err != nil {
				logger.Error("list saves failed", "error", err)
				break
			}
			if len(slots) == 0 {
				fmt.Println("no saves")
			}
			for _, slot := range slots {
				fmt.Println("  " + slot)
			}
		case "help":
			fmt.Println("enter a choice number, or: stats, save [slot], load [slot], saves, quit")
		default:
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				fmt.Println("enter a choice number, or: stats, save [slot], load [slot], saves, quit")
				break
			}
			if err := engine.ApplyChoice(n - 1); err != nil {
				fmt.Printf("invalid choice: %v\n", err)
				break
			}
			if engine.State() == narrative.StateAwaitingTransition {
				engine.Tick()
			}
			printEvent(engine)
		}
		fmt.Print("> ")
	}
}

func slotArg(fields []string) string {
	if len(fields) > 1 {
		return fields[1]
	}
	return "auto"
}

func printEvent(engine *narrative.Engine) {
	event := engine.CurrentEvent()
	if event == nil {
		fmt.Println("(no active scene)")
		return
	}
	fmt.Println()
	fmt.Println(event.Text)
	for i, choice := range event.Choices {
		fmt.Printf("  %d. %s\n", i+1, choice.Text)
	}
}

func printStats(model *emotion.Model) {
	summary := model.Summarize()
	for _, axis := range emotion.Axes() {
		name := axis.String()
		fmt.Printf("  %-13s %3d (%5.1f%%)\n", name, summary.Values[name], summary.Percentages[name]*100)
	}
	fmt.Printf("  dominant: %s  stability: %.2f\n", summary.Dominant, summary.Stability)
}
