package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/calcyard/mathcalc/internal/config"
	"github.com/calcyard/mathcalc/internal/storage"
)

func main() {
	cfg := config.Load()
	hostPtr := flag.String("host", cfg.Host, "host of server")
	portPtr := flag.Int("port", cfg.Port, "port of server")
	dbPtr := flag.String("db", cfg.DBPath, "path to sqlite database")
	flag.Parse()

	db, err := sql.Open("sqlite3", *dbPtr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := db.PingContext(context.TODO()); err != nil {
		log.Fatal(err)
	}
	if err := storage.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	s := storage.GetServer(*hostPtr, *portPtr, db, cfg)
	go func() {
		fmt.Printf("run calculator server at %s:%d\n", *hostPtr, *portPtr)
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	var stopChan = make(chan os.Signal, 2)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan // wait for SIGINT
	fmt.Println("stop calculator server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Println(err)
	}
}
