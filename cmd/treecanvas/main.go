// Command treecanvas keeps a binary search tree and draws it as an SVG picture,
// reading commands from stdin or serving them over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := flag.String("config", "", "TOML config file")
	serveMode := flag.Bool("serve", false, "serve the tree over HTTP instead of reading commands from stdin")
	out := flag.String("out", "", "SVG file written after every change, overrides canvas.output")
	addr := flag.String("addr", "", "listen address, overrides server.addr")
	flag.Parse()

	cfg, unknown, err := LoadConfig(*cfgPath)
	if err != nil {
		Log.Fatalln(err)
	}
	if *out != "" {
		cfg.Canvas.Output = *out
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	lvl, _ := logrus.ParseLevel(cfg.LogLevel)
	Log.SetLevel(lvl)
	for _, k := range unknown {
		Log.WithField("key", k).Warn("unknown config key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := NewSession(cfg)
	if *serveMode {
		err = serve(ctx, cfg.Server.Addr, NewRouter(s))
	} else {
		err = repl(ctx, s, os.Stdin, os.Stdout, cfg.Canvas.Output)
	}
	if err != nil {
		Log.Fatalln(err)
	}
}
