// Command logogen writes the product-scanner logo to logo.png in the
// current directory. It takes no arguments; any given are ignored.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/prodscan/logo"
)

func main() {
	logo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout); err != nil {
		log.Fatalf("logogen: %v", err)
	}
}

func run(stdout io.Writer) error {
	if err := logo.Save(logo.FileName); err != nil {
		return err
	}
	_, err := fmt.Fprintln(stdout, "Logo created successfully!")
	return err
}
