package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/its-jojoo/kontakclip/internal/adapter/chatlink"
	"github.com/its-jojoo/kontakclip/internal/adapter/clipboard"
	"github.com/its-jojoo/kontakclip/internal/adapter/storage"
	"github.com/its-jojoo/kontakclip/internal/adapter/storage/memory"
	"github.com/its-jojoo/kontakclip/internal/adapter/storage/sqlite"
	"github.com/its-jojoo/kontakclip/internal/config"
	"github.com/its-jojoo/kontakclip/internal/logger"
	"github.com/its-jojoo/kontakclip/internal/usecase/lookup"
	"github.com/its-jojoo/kontakclip/internal/usecase/session"
)

const usage = "Commands: paste | clip | watch | list | find <q> | set <#|id> name|phone <value> | del <#|id> | chat <#|id> | export [path] | clear | count | quit"

func main() {
	var (
		storeDriver = flag.String("store", "", "session store: memory or sqlite (overrides config)")
		exportFile  = flag.String("out", "", "default export path (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *storeDriver != "" {
		cfg.Store.Driver = *storeDriver
	}
	if *exportFile != "" {
		cfg.Export.File = *exportFile
	}

	log := logger.Init("kontakclip", cfg.Log.Env)
	defer log.SafeSync()

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		log.Fatalw("open store", "driver", cfg.Store.Driver, "error", err)
	}
	defer closeStore()

	filter, err := cfg.Parse.Filter()
	if err != nil {
		log.Fatalw("invalid skip patterns", "error", err)
	}

	svc := session.New(store, session.Config{
		Locale:    cfg.Locale.Core(),
		Filter:    filter,
		RawExport: cfg.Export.Raw,
	})

	a := &app{
		cfg:    cfg,
		log:    log,
		svc:    svc,
		finder: lookup.New(svc, cfg.Locale.Core()),
		chat:   chatlink.Builder{BaseURL: cfg.Chat.BaseURL, Message: cfg.Chat.Message},
		clip:   clipboard.New(cfg.Clipboard.Interval),
	}

	ctx := context.Background()

	fmt.Println("KontakClip")
	fmt.Println(usage)
	fmt.Println("Tip: 'paste' reads name/phone lines until a line with a single '.'")

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		cmd, arg := splitCmd(line)

		switch cmd {
		case "quit", "exit":
			return

		case "paste":
			fmt.Println("(paste, end with '.')")
			raw, ok := readBlock(sc)
			a.load(ctx, raw)
			if !ok {
				return
			}

		case "clip":
			txt, err := a.clip.ReadText()
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			a.load(ctx, txt)

		case "watch":
			a.watch(ctx)

		case "list":
			a.list(ctx)

		case "find":
			a.find(ctx, arg)

		case "set":
			a.set(ctx, arg)

		case "del":
			a.del(ctx, arg)

		case "chat":
			a.openChat(ctx, arg)

		case "export":
			a.export(ctx, arg)

		case "clear":
			if err := a.svc.Clear(ctx); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("cleared")

		case "count":
			n, err := a.svc.Count(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(n)

		case "help":
			fmt.Println(usage)

		default:
			fmt.Println("unknown command:", cmd)
			fmt.Println(usage)
		}
	}

	if err := sc.Err(); err != nil {
		log.Errorw("stdin error", "error", err)
	}
}

func openStore(cfg config.StoreConfig) (storage.Store, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		st, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	case "memory", "":
		return memory.New(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// readBlock collects lines until a lone "." or EOF. ok is false on EOF.
func readBlock(sc *bufio.Scanner) (string, bool) {
	var b strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "." {
			return b.String(), true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), false
}

func splitCmd(s string) (cmd, arg string) {
	parts := strings.Fields(s)
	cmd = strings.ToLower(parts[0])
	if len(parts) > 1 {
		arg = strings.TrimSpace(s[len(parts[0]):])
	}
	return cmd, arg
}

func preview(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
