// Package linkgen prints personalised invitation links for a guest list.
package linkgen

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"sakeenah/internal/domain"
)

// Config holds configuration for link generation.
type Config struct {
	BaseURL string
	UID     string
	// NamesFile lists one guest per line; "-" reads stdin.
	NamesFile string
	Names     []string
	CSV       bool
}

// ParseConfig parses flags into a Config. Positional arguments are guest names.
func ParseConfig(fs *flag.FlagSet, args []string, defaultBaseURL, defaultUID string) (Config, error) {
	cfg := Config{BaseURL: defaultBaseURL, UID: defaultUID}
	fs.StringVar(&cfg.BaseURL, "base", cfg.BaseURL, "public base URL of the invitation site")
	fs.StringVar(&cfg.UID, "uid", cfg.UID, "invitation UID")
	fs.StringVar(&cfg.NamesFile, "names", "", `file with one guest name per line ("-" for stdin)`)
	fs.BoolVar(&cfg.CSV, "csv", false, "write name,link CSV instead of tab separated lines")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Names = fs.Args()
	return cfg, nil
}

// Run writes one link per guest to out. stdin is read when NamesFile is "-".
func Run(cfg Config, svc domain.InvitationService, stdin io.Reader, out io.Writer) error {
	if strings.TrimSpace(cfg.UID) == "" {
		return errors.New("uid is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return errors.New("base URL is required")
	}
	names := cfg.Names
	if cfg.NamesFile != "" {
		more, err := readNames(cfg.NamesFile, stdin)
		if err != nil {
			return err
		}
		names = append(names, more...)
	}
	if len(names) == 0 {
		return errors.New("no guest names given")
	}

	links := svc.BulkInvitationLinks(cfg.BaseURL, cfg.UID, names)
	if cfg.CSV {
		w := csv.NewWriter(out)
		if err := w.Write([]string{"name", "link"}); err != nil {
			return err
		}
		for _, l := range links {
			if err := w.Write([]string{l.Name, l.Link}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}
	for _, l := range links {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", l.Name, l.Link); err != nil {
			return err
		}
	}
	return nil
}

func readNames(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open names file: %w", err)
		}
		defer f.Close()
		r = f
	}
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return names, nil
}
