package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/veggie-arcade/airhockey-mp/server/core"
)

func main() {
	port := flag.Uint("port", 7373, "Websocket listen port")
	httpPort := flag.Uint("httpport", 7374, "HTTP listen port (static pages, health)")
	name := flag.String("name", "Air Hockey Relay", "Server display name")
	flag.Parse()

	server := core.NewServer(*name)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		os.Exit(0)
	}()

	go func() {
		if err := server.StartWeb(*httpPort); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	log.Printf("Starting %q on port %d (http on %d)", *name, *port, *httpPort)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
