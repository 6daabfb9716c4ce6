package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"rpsplus/cli"
	"rpsplus/communication"
	"rpsplus/communication/client"
	"rpsplus/communication/server"
	"rpsplus/config"
	"rpsplus/engine"
	"rpsplus/gamemaster"
	"rpsplus/judge"
	"rpsplus/player"
	"rpsplus/transcript"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	envFile := flag.String("env", ".env", "Optional .env file to load")
	serve := flag.Bool("serve", false, "Run the HTTP match server instead of the interactive game")
	addr := flag.String("addr", "", "Address for -serve (defaults to RPS_SERVER_ADDR)")
	remote := flag.String("remote", "", "Play against a match server at this base URL")
	transcriptDir := flag.String("transcript", "", "Directory to write a CSV transcript of the rounds into")
	seed := flag.Uint64("seed", 0, "Seed for the bot's moves (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *remote != "" {
		comm, err := client.NewClientCommunicator(ctx, *remote, nil)
		if err != nil {
			log.Fatal().Err(err).Str("remote", *remote).Msg("could not start a remote match")
		}
		play(ctx, comm)
		return
	}

	prompts, err := config.LoadPrompts(cfg.PromptsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load prompts")
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	collector := transcript.NewDummyCollector()
	if *transcriptDir != "" {
		collector = transcript.NewCollector()
	}

	oracle := judge.NewOpenAIOracle(judge.OpenAIConfig{
		APIKey:  cfg.APIKey(),
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	})
	eng := engine.NewEngine(oracle, player.NewSelector(*seed),
		engine.WithPrompts(prompts.System, prompts.InstructionHeader),
		engine.WithCollector(collector),
	)
	gm := gamemaster.NewGameMaster(eng)

	if *serve {
		listen := cfg.ServerAddress
		if *addr != "" {
			listen = *addr
		}
		runServer(ctx, gm, listen)
	} else {
		play(ctx, gamemaster.NewLocalCommunicator(gm))
	}

	if *transcriptDir != "" {
		writeTranscript(*transcriptDir, collector)
	}
}

func play(ctx context.Context, comm communication.Communicator) {
	err := cli.Run(ctx, os.Stdin, os.Stdout, comm)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("reading input failed")
	}
	if summary, err := cli.Summary(context.Background(), comm); err == nil {
		fmt.Println(summary)
	}
}

func runServer(ctx context.Context, gm *gamemaster.GameMaster, addr string) {
	sc := server.NewServerCommunicator(gm)
	go func() {
		<-ctx.Done()
		if err := sc.Shutdown(); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()
	if err := sc.Start(addr); err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("match server stopped")
	}
}

func writeTranscript(dir string, collector transcript.Collector) {
	w, err := transcript.NewWriter(dir)
	if err != nil {
		log.Error().Err(err).Msg("could not create transcript directory")
		return
	}
	if err := w.WriteRounds(collector.Records()); err != nil {
		log.Error().Err(err).Msg("could not write transcript")
		return
	}
	log.Info().Str("dir", w.Dir()).Msg("stored round records")
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
