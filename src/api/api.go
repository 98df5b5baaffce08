package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/api/config"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/api/webserver"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/ethics"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/management"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/marketplace"
	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts/nft"
)

func main() {
	cfg := config.Load()

	// All registry state lives in memory for the lifetime of the process.
	regs := webserver.Registries{
		Proposals:   management.New(cfg.ContractOwner),
		Market:      marketplace.New(marketplace.Options{SingleSale: cfg.SingleSale}),
		Assessments: ethics.NewLog(),
		Tokens:      nft.New(),
	}

	router := webserver.New(cfg, regs)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("Cosmic String registry API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
