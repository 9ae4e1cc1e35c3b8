package app

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"urtbot/internal/app/adapters/backend"
	"urtbot/internal/app/adapters/collector"
	"urtbot/internal/app/adapters/discord"
	router "urtbot/internal/app/adapters/http"
	"urtbot/internal/app/adapters/messages"
	"urtbot/internal/app/infrastructure/config"
	"urtbot/internal/app/infrastructure/replies"
	"urtbot/internal/app/infrastructure/storage"
	"urtbot/pkg/logger"
)

const configPath = "config.json"

func New() error {
	log := logger.New()

	manager, err := config.New(configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	client := &http.Client{
		Timeout:   10 * time.Second,
		Transport: http.DefaultTransport,
	}

	rep, err := replies.Load(cfg.App.StringsPath, cfg.Discord.Prefix)
	if err != nil {
		log.Error("Error loading reply strings", err)
		return err
	}

	channels := storage.NewChannelStore(cfg.App.ChannelsPath)
	api := backend.New(logger.NewPrefixedLogger(log, "backend"), client, cfg.Backend.APIURL, cfg.Backend.BearerToken)

	chat, err := discord.New(logger.NewPrefixedLogger(log, "discord"), cfg.Discord.Token)
	if err != nil {
		log.Error("Error creating discord session", err)
		return err
	}

	msgs := messages.New(log, cfg, api, channels, rep, chat)
	chat.OnMessage(msgs.Handle)

	if err := chat.Connect(); err != nil {
		log.Error("Error connecting to discord", err)
		return err
	}

	coll := collector.New(logger.NewPrefixedLogger(log, "collector"), api, chat, time.Duration(cfg.App.CollectSeconds)*time.Second)
	coll.Start()
	log.Info("Chatbot started")

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Info("Shutting down")
		coll.Stop()
		if err := chat.Close(); err != nil {
			log.Error("Error closing discord session", err)
		}
		os.Exit(0)
	}()

	return router.NewRouter(log, manager).Run()
}
