// Command bufctl is an interactive operator shell for driving a buffer
// pool against a real on-disk page file: pin, unpin, mark dirty, force,
// and flush, one command at a time.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"gopkg.in/yaml.v3"

	"github.com/kolibridb/bufferpool/internal/config"
	"github.com/kolibridb/bufferpool/storage"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a pool config YAML file")
		pageFile   = flag.String("page-file", "pool.db", "page file path (used when -config is not given)")
		poolSize   = flag.Int("pool-size", 64, "number of frames (used when -config is not given)")
		replacer   = flag.String("replacer", "clock", "fifo|lru|lru-k|lfu|clock (used when -config is not given)")
	)
	flag.Parse()

	cfg := config.DefaultPoolConfig()
	if *configPath != "" {
		loaded, err := config.LoadPoolConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg.PageFile = *pageFile
		cfg.PoolSize = *poolSize
		cfg.Replacer = *replacer
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	strategy, ok := storage.ParseReplacementStrategy(cfg.Replacer)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown replacer %q\n", cfg.Replacer)
		os.Exit(1)
	}

	adapter, err := storage.OpenPageFile(cfg.PageFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open page file: %v\n", err)
		os.Exit(1)
	}
	defer adapter.Close()

	pool, err := storage.NewBufferPool(cfg.PageFile, cfg.PoolSize, strategy, adapter, nil, storage.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init pool: %v\n", err)
		os.Exit(1)
	}

	if *configPath != "" {
		err := config.WatchAndReload(*configPath, log, func(reloaded *config.PoolConfig) {
			log.Info("live config change observed; pool_size/page_file require restart", "log_level", reloaded.LogLevel)
		})
		if err != nil {
			log.Warn("config watch disabled", "err", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bufctl> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("attached to %s (%d frames, %s)\n", cfg.PageFile, cfg.PoolSize, strategy)
	fmt.Println("type \\help for commands")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			fmt.Println()
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "\\q", "quit", "exit":
			if err := pool.Shutdown(); err != nil {
				fmt.Printf("shutdown error: %v\n", err)
			}
			return
		case "\\help":
			printHelp()
		case "\\dump":
			dumpPool(pool)
		case "pin":
			runPin(pool, args)
		case "unpin":
			runUnpin(pool, args)
		case "dirty":
			runMarkDirty(pool, args)
		case "force":
			runForce(pool, args)
		case "flush":
			if err := pool.FlushAll(); err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Println("OK")
		default:
			fmt.Printf("unknown command: %s (try \\help)\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  pin <pageNum>      pin a page, loading it on miss
  unpin <pageNum>     unpin a page
  dirty <pageNum>     mark a resident page dirty
  force <pageNum>     write a resident page back unconditionally
  flush               flush all unpinned dirty frames
  \dump                dump frame table state as YAML
  \q | quit | exit    shut down the pool and exit`)
}

func dumpPool(pool *storage.BufferPool) {
	snapshot := struct {
		Strategy   string  `yaml:"strategy"`
		NumPages   int     `yaml:"num_pages"`
		FrameNums  []int32 `yaml:"frame_page_nums"`
		Dirty      []bool  `yaml:"dirty"`
		FixCounts  []int   `yaml:"fix_counts"`
		NumReadIO  int     `yaml:"num_read_io"`
		NumWriteIO int     `yaml:"num_write_io"`
	}{
		Strategy:   pool.Strategy().String(),
		NumPages:   pool.NumPages(),
		FrameNums:  pool.GetFrameContents(),
		Dirty:      pool.GetDirtyFlags(),
		FixCounts:  pool.GetFixCounts(),
		NumReadIO:  pool.GetNumReadIO(),
		NumWriteIO: pool.GetNumWriteIO(),
	}

	out, err := yaml.Marshal(snapshot)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Print(string(out))
}

func runPin(pool *storage.BufferPool, args []string) {
	pageNum, err := parsePageNum(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	if _, err := pool.PinPage(pageNum); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("OK")
}

func runUnpin(pool *storage.BufferPool, args []string) {
	pageNum, err := parsePageNum(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := pool.UnpinPage(pageNum); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("OK")
}

func runMarkDirty(pool *storage.BufferPool, args []string) {
	pageNum, err := parsePageNum(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := pool.MarkDirty(pageNum); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("OK")
}

func runForce(pool *storage.BufferPool, args []string) {
	pageNum, err := parsePageNum(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := pool.ForcePage(pageNum); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("OK")
}

func parsePageNum(args []string) (int32, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one page number argument")
	}
	n, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q: %w", args[0], err)
	}
	return int32(n), nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
