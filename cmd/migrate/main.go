package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rmc/backend/internal/infrastructure/config"
)

// usage: migrate [-path migrations] <up|down|version|force N>
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := flag.String("path", "migrations", "directory holding the migration files")
	flag.Parse()

	if flag.NArg() < 1 {
		return errors.New("command required: up, down, version, or force N")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := migrate.New("file://"+*path, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			return verr
		}
		fmt.Printf("version %d (dirty=%v)\n", version, dirty)
		return nil
	case "force":
		if flag.NArg() < 2 {
			return errors.New("force requires a version number")
		}
		version, perr := strconv.Atoi(flag.Arg(1))
		if perr != nil {
			return fmt.Errorf("invalid version %q", flag.Arg(1))
		}
		err = m.Force(version)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("no change")
		return nil
	}
	return err
}
