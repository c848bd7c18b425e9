// Package adminhash derives the ADMIN_PASSWORD_SALT and ADMIN_PASSWORD_HASH
// settings from a plain admin password.
package adminhash

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"sakeenah/internal/domain"
)

// Config holds configuration for admin password hashing.
type Config struct {
	// Password is read from stdin when empty.
	Password string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Password, "password", "", "admin password (read from stdin when omitted)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run hashes the password with a fresh salt and writes both as env lines.
func Run(cfg Config, hasher domain.PasswordHasher, stdin io.Reader, out io.Writer) error {
	password := cfg.Password
	if password == "" && stdin != nil {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("password is required")
	}
	salt, err := hasher.GenerateSalt()
	if err != nil {
		return err
	}
	hash, err := hasher.Hash(salt, password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "ADMIN_PASSWORD_SALT=%s\nADMIN_PASSWORD_HASH=%s\n", salt, hash)
	return err
}
