package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/TanaroSch/macro-manager/internal/app"
	"github.com/TanaroSch/macro-manager/internal/config"
	"github.com/TanaroSch/macro-manager/internal/ui"
)

const version = "v1.0.0"

func main() {
	settingsPath := flag.String("settings", "", "path to the settings file (default "+config.DefaultPath+", env "+config.PathEnvVar+")")
	logPath := flag.String("log", "", "append log output to this file instead of stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [macro-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("Macro Manager %s\n", version)
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	logFile, err := setupLogging(*logPath)
	if err != nil {
		log.Fatalf("Error opening log file: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.Printf("Macro Manager %s starting...", version)

	cfg, err := config.Load(config.ResolvePath(*settingsPath))
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	ui.InitGlobalNotifications(cfg.UseNotifications, "Macro Manager")

	macroPath := cfg.MacroFile
	if flag.NArg() == 1 {
		macroPath = flag.Arg(0)
	}
	log.Printf("Using settings %s and macro file %s", cfg.GetConfigPath(), macroPath)

	application := app.New(cfg, macroPath, version)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		log.Println("Exiting...")
		application.Quit()
	}()

	application.Run()
	log.Println("Macro Manager stopped.")
}
