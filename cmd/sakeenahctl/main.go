// Command sakeenahctl is the operator tool: it prints personalised invitation
// links, hashes the admin password and prepares the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"sakeenah/config"
	"sakeenah/internal/adapters/auth"
	"sakeenah/internal/repository/postgres"
	"sakeenah/internal/repository/static"
	"sakeenah/internal/services"
	"sakeenah/internal/tools/adminhash"
	"sakeenah/internal/tools/linkgen"
)

const usage = `usage: sakeenahctl <command> [flags]

commands:
  links          print personalised invitation links for guest names
  hash-password  print ADMIN_PASSWORD_SALT and ADMIN_PASSWORD_HASH for a password
  migrate        create the database tables (-seed also stores the invitation)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		exitf("load config: %v", err)
	}

	cmd, args := os.Args[1], os.Args[2:]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	switch cmd {
	case "links":
		lc, err := linkgen.ParseConfig(fs, args, cfg.BaseURL, cfg.InvitationUID)
		if err != nil {
			exitf("parse flags: %v", err)
		}
		svc := services.NewInvitationService(nil)
		if err := linkgen.Run(lc, svc, os.Stdin, os.Stdout); err != nil {
			exitf("generate links: %v", err)
		}
	case "hash-password":
		hc, err := adminhash.ParseConfig(fs, args)
		if err != nil {
			exitf("parse flags: %v", err)
		}
		if err := adminhash.Run(hc, auth.NewBcryptHasher(0), os.Stdin, os.Stdout); err != nil {
			exitf("hash password: %v", err)
		}
	case "migrate":
		seed := fs.Bool("seed", false, "store the configured invitation (INVITATION_FILE or the built-in one) under INVITATION_UID")
		if err := fs.Parse(args); err != nil {
			exitf("parse flags: %v", err)
		}
		if err := migrate(cfg, *seed); err != nil {
			exitf("migrate: %v", err)
		}
		fmt.Println("schema applied")
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func migrate(cfg *config.Config, seed bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	if !seed {
		return nil
	}
	if cfg.InvitationUID == "" {
		return fmt.Errorf("INVITATION_UID is required with -seed")
	}
	inv, err := static.DefaultInvitation(cfg.InvitationUID)
	if cfg.InvitationFile != "" {
		inv, err = static.LoadInvitation(cfg.InvitationFile, cfg.InvitationUID)
	}
	if err != nil {
		return err
	}
	return postgres.UpsertInvitation(ctx, db, inv)
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
