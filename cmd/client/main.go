package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-cert-registry/internal/client"
	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: certctl <command> [flags]

Commands:
  upload  -file <path>                          upload a certificate file
  issue   -to <address> -file <path>            upload a file and issue it on the ledger
  issue   -to <address> -hash <hash> -uri <uri> issue an already uploaded certificate
  verify  -hash <hash> | -file <path>           verify a certificate
  inspect -token <id>                           show one token's on-chain state
  list                                          list stored certificates
  info                                          show registry contract info
  health                                        show server health

Server settings come from CERTCTL_* environment variables, ledger settings
from LEDGER_*.
`

func main() {
	printBuildInfo()

	log := logger.NewCLILogger("certctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err := dispatch(ctx, app, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func dispatch(ctx context.Context, app *client.App, command string, args []string) error {
	switch command {
	case "upload":
		fs := flag.NewFlagSet("upload", flag.ExitOnError)
		file := fs.String("file", "", "path to the certificate file")
		fs.Parse(args)
		if *file == "" {
			return fmt.Errorf("upload: -file is required")
		}
		return app.Upload(ctx, *file)

	case "issue":
		fs := flag.NewFlagSet("issue", flag.ExitOnError)
		to := fs.String("to", "", "recipient address")
		file := fs.String("file", "", "path to a certificate file to upload and issue")
		hash := fs.String("hash", "", "certificate hash")
		uri := fs.String("uri", "", "metadata URI to register")
		fs.Parse(args)
		if *to == "" {
			return fmt.Errorf("issue: -to is required")
		}
		if *file != "" {
			return app.IssueFile(ctx, *file, *to)
		}
		if *hash == "" {
			return fmt.Errorf("issue: -file or -hash is required")
		}
		return app.Issue(ctx, *to, *hash, *uri)

	case "verify":
		fs := flag.NewFlagSet("verify", flag.ExitOnError)
		hash := fs.String("hash", "", "certificate hash")
		file := fs.String("file", "", "path to a certificate file to hash locally")
		fs.Parse(args)
		if *file != "" {
			return app.VerifyFile(ctx, *file)
		}
		if *hash == "" {
			return fmt.Errorf("verify: -hash or -file is required")
		}
		return app.Verify(ctx, *hash)

	case "inspect":
		fs := flag.NewFlagSet("inspect", flag.ExitOnError)
		token := fs.Int64("token", 0, "token id")
		fs.Parse(args)
		if *token == 0 {
			return fmt.Errorf("inspect: -token is required")
		}
		return app.Inspect(ctx, *token)

	case "list":
		return app.List(ctx)

	case "info":
		return app.Info(ctx)

	case "health":
		return app.Health(ctx)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
