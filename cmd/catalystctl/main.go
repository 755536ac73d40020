// Command catalystctl runs the one-off maintenance jobs: moving a legacy
// SQLite database into Firestore, checking the result, dumping Firestore
// for rollback and issuing API tokens.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/linskybing/catalyst/internal/api/middleware"
	"github.com/linskybing/catalyst/internal/config"
	"github.com/linskybing/catalyst/internal/config/db"
	"github.com/linskybing/catalyst/internal/integrations/storage"
	"github.com/linskybing/catalyst/internal/migration"
	"github.com/linskybing/catalyst/pkg/response"
	"github.com/pkg/errors"
)

const usage = `usage: catalystctl <command> [flags]

commands:
  export    dump a legacy SQLite database to JSON
  import    load an export into Firestore with fresh document ids
  verify    compare SQLite row counts with Firestore
  rollback  dump every Firestore collection to JSON
  token     issue an API token
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	config.LoadConfig()
	ctx := context.Background()

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "export":
		err = runExport(ctx, args)
	case "import":
		err = runImport(ctx, args)
	case "verify":
		err = runVerify(ctx, args)
	case "rollback":
		err = runRollback(ctx, args)
	case "token":
		err = runToken(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		die("%s: %v", cmd, err)
	}
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dbPath := fs.String("db", config.SQLitePath, "legacy SQLite database file")
	out := fs.String("out", "migration_backup.json", "output JSON file")
	_ = fs.Parse(args)

	sqlDB, err := migration.OpenSQLite(*dbPath)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer sqlDB.Close()

	backup, err := migration.Export(ctx, sqlDB, time.Now())
	if err != nil {
		return err
	}
	if err := migration.WriteJSON(*out, backup); err != nil {
		return err
	}
	fmt.Printf("Export complete: %d records written to %s\n", backup.Total(), *out)
	return nil
}

func runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	in := fs.String("in", "migration_backup.json", "JSON export to load")
	mapPath := fs.String("map", "id_mapping.json", "where to write the old to new id map")
	_ = fs.Parse(args)

	backup, err := migration.ReadBackup(*in)
	if err != nil {
		return err
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := migration.Import(ctx, store, backup)
	if report != nil {
		if werr := migration.WriteJSON(*mapPath, report.IDs); werr != nil {
			fmt.Fprintf(os.Stderr, "write id map: %v\n", werr)
		}
	}
	if err != nil {
		return err
	}

	fmt.Println("Migration complete")
	for _, table := range []string{
		migration.TableProjects,
		migration.TableUsers,
		migration.TableLabels,
		migration.TableCycles,
		migration.TableModules,
		migration.TableTickets,
	} {
		fmt.Printf("  %-9s %d\n", table+":", report.Counts[table])
	}
	fmt.Printf("ID mapping saved to %s\n", *mapPath)
	return nil
}

func runVerify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	dbPath := fs.String("db", config.SQLitePath, "legacy SQLite database file")
	_ = fs.Parse(args)

	sqlDB, err := migration.OpenSQLite(*dbPath)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer sqlDB.Close()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := migration.Verify(ctx, sqlDB, store)
	if err != nil {
		return err
	}
	printVerify(os.Stdout, report)
	if !report.Passed() {
		return errVerifyFailed
	}
	fmt.Println("Verification passed")
	return nil
}

var errVerifyFailed = errors.New("verification failed")

func printVerify(w io.Writer, report *migration.VerifyReport) {
	fmt.Fprintf(w, "%-15s %8s %10s\n", "collection", "sqlite", "firestore")
	for _, c := range report.Checks {
		mark := "ok"
		if !c.OK() {
			mark = "MISMATCH"
		}
		fmt.Fprintf(w, "%-15s %8d %10d  %s\n", c.Name, c.SQLite, c.Firestore, mark)
	}
	for _, name := range report.Skipped {
		fmt.Fprintf(w, "%-15s skipped (table not found)\n", name)
	}
}

func runRollback(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rollback", flag.ExitOnError)
	out := fs.String("out", "firestore_backup.json", "output JSON file")
	upload := fs.Bool("upload", false, "also copy the backup to the MinIO bucket")
	_ = fs.Parse(args)

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	now := time.Now()
	backup, err := migration.Snapshot(ctx, store, now)
	if err != nil {
		return err
	}
	if err := migration.WriteJSON(*out, backup); err != nil {
		return err
	}
	fmt.Printf("Firestore dump complete: %d documents written to %s\n", backup.Total(), *out)

	if !*upload {
		return nil
	}
	raw, err := os.ReadFile(*out)
	if err != nil {
		return errors.Wrapf(err, "read %s", *out)
	}
	objects, err := storage.New(ctx, storage.Options{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		UseSSL:    config.MinioUseSSL,
		Bucket:    config.MinioBucket,
	})
	if err != nil {
		return errors.Wrap(err, "connect to MinIO")
	}
	key := storage.BackupKey(filepath.Base(*out), now)
	if err := objects.Put(ctx, key, "application/json", bytes.NewReader(raw), int64(len(raw))); err != nil {
		return errors.Wrap(err, "upload")
	}
	fmt.Printf("Uploaded to %s/%s\n", config.MinioBucket, key)
	return nil
}

func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	subject := fs.String("subject", "", "token subject, recorded as the audit actor")
	name := fs.String("name", "", "display name carried in the token")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	asJSON := fs.Bool("json", false, "print the token as JSON")
	_ = fs.Parse(args)

	if *subject == "" {
		return errors.New("-subject is required")
	}
	middleware.Init()
	token, expiresAt, err := middleware.GenerateToken(*subject, *name, *ttl)
	if err != nil {
		return errors.Wrap(err, "sign token")
	}
	if *asJSON {
		out, err := json.MarshalIndent(response.TokenResponse{
			Token:     token,
			Subject:   *subject,
			ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
	return nil
}

func openStore(ctx context.Context) (*migration.FirestoreStore, error) {
	client, err := db.NewFirestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connect to Firestore")
	}
	return migration.NewFirestoreStore(client), nil
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
