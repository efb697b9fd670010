package main

import (
	// standard
	"fmt"
	"os"
	"strings"
	// local
	"github.com/nil0x42/prgi/internal/config"
	"github.com/nil0x42/prgi/internal/runner"
	"github.com/nil0x42/prgi/internal/tty"
)

var header = "  " + strings.TrimSpace(config.HEADER)

func main() {
	conf := config.Init()

	if ttyFile := tty.OpenTTY(); ttyFile != nil {
		fmt.Fprint(ttyFile, "\033[0;90m"+header+"\033[0m\n\n")
		ttyFile.Close()
	}

	err := runner.New(conf).Run(conf.Opts.Scenario)
	if conf.Output != os.Stdout && conf.Output != os.Stderr {
		conf.Output.Close()
	}
	if err != nil {
		tty.SmartFprintf(os.Stderr, "\033[1;31m[-] %v\033[0m\n", err)
		os.Exit(3)
	}
	os.Exit(0)
}
