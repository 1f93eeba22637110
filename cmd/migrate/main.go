package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/invoicegen/backend/internal/infrastructure/config"
	"github.com/invoicegen/backend/internal/infrastructure/logger"
	"github.com/invoicegen/backend/internal/infrastructure/migration"
)

const usage = `Usage: migrate [flags] <command> [args]

Commands:
  up              apply all pending migrations
  down            roll back all migrations
  step <n>        apply n migrations (negative rolls back)
  version         print the current schema version
  force <n>       set the schema version without migrating
  create <name>   create a new migration file pair
  list            list migrations in the migrations directory

Flags:
  -path string        migrations directory (default "migrations")
  -log-level string   log level (default "info")
`

func main() {
	var (
		path     = flag.String("path", "migrations", "migrations directory")
		logLevel = flag.String("log-level", "info", "log level")
	)
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	log := logger.New(config.LogConfig{Level: *logLevel, Format: "console", Output: "stdout"})
	defer func() {
		_ = log.Sync()
	}()

	// create and list work without a database connection
	switch command {
	case "create":
		if flag.NArg() < 2 {
			log.Fatal("create requires a migration name")
		}
		pair, err := migration.Create(*path, flag.Arg(1))
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.String("up", pair.UpPath),
			zap.String("down", pair.DownPath),
		)
		return
	case "list":
		names, err := migration.List(*path)
		if err != nil {
			log.Fatal("Failed to list migrations", zap.Error(err))
		}
		if len(names) == 0 {
			log.Info("No migrations found", zap.String("path", *path))
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := migration.New(db, *path, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "step":
		n, convErr := intArg(1)
		if convErr != nil {
			log.Fatal("step requires an integer argument", zap.Error(convErr))
		}
		err = migrator.Steps(n)
	case "version":
		version, dirty, verErr := migrator.Version()
		if verErr != nil {
			log.Fatal("Failed to read schema version", zap.Error(verErr))
		}
		log.Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	case "force":
		n, convErr := intArg(1)
		if convErr != nil {
			log.Fatal("force requires an integer argument", zap.Error(convErr))
		}
		err = migrator.Force(n)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal("Migration command failed", zap.String("command", command), zap.Error(err))
	}
}

func intArg(i int) (int, error) {
	if flag.NArg() <= i {
		return 0, fmt.Errorf("missing argument")
	}
	return strconv.Atoi(flag.Arg(i))
}
