package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Baugest615/case-management/process/report"
)

func main() {
	month := flag.String("month", "2026-08", "month to report (YYYY-MM)")
	list := flag.Bool("list", false, "list matching rows")
	flag.Parse()

	if os.Getenv("STORE_URL") == "" || os.Getenv("STORE_KEY") == "" {
		fmt.Fprintln(os.Stderr, "STORE_URL/STORE_KEY not set; export them and retry")
		os.Exit(2)
	}

	report.Run(*month, *list)
}
