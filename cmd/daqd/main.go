package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/koppilab/cryodaq-go/internal/server"
)

func main() {
	var (
		addr = flag.String("addr", "127.0.0.1:8080", "http listen address")
		web  = flag.String("web", "./web", "path to web root (index.html)")
	)
	flag.Parse()

	if st, err := os.Stat(*web); err != nil || !st.IsDir() {
		log.Printf("web root %q not found; live-plot page will 404", *web)
	}

	s := server.New()
	log.Printf("Serving on http://%s", *addr)
	log.Printf("UI:        http://%s/", *addr)
	if err := http.ListenAndServe(*addr, s.Handler()); err != nil {
		fmt.Println(err)
	}
}
