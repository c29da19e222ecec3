package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oaxley/gobrainfuck/api"
	"github.com/oaxley/gobrainfuck/program"
	"github.com/oaxley/gobrainfuck/vm"
	"go.uber.org/zap"
)

var httpAddr string

func init() {
	flag.StringVar(&httpAddr, "http", "", "serve the run API on this address instead of executing a file")
}

func main() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	l := zap.Must(cfg.Build())
	zap.ReplaceGlobals(l)

	flag.Parse()

	if httpAddr != "" {
		srv, err := api.NewServer(api.ServerConfig{
			ListenerAddr: httpAddr,
			Logger:       l,
		})
		if err != nil {
			l.Fatal(err.Error())
		}
		if err := srv.Start(); err != nil {
			l.Fatal(err.Error())
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Println("Please specify a source code file on the command line")
		os.Exit(1)
	}

	prog, err := program.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("%d bytes read.\n", prog.Len())

	machine, err := vm.NewVM(prog.Bytes(), vm.LoggerOpt(l))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = machine.Run()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
