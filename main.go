package main

import (
	"fmt"
	"log"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/config"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/database"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/router"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/scheduler"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// nightly habit materialization
	sched := scheduler.New(db, cfg.Scheduler.MaterializeSpec)
	if err := sched.Start(); err != nil {
		log.Fatalf("start scheduler: %v", err)
	}
	defer sched.Stop()

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
