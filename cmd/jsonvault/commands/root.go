package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsonvault/internal/app"
)

const keyEnv = "JSONVAULT_KEY"

var (
	cfg    app.Config
	appCtx *app.App
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) (err error) {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer func() {
		if appCtx == nil {
			return
		}
		if cerr := appCtx.Close(); err == nil {
			err = cerr
		}
		appCtx = nil
	}()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "jsonvault",
		Short:        "Embedded JSON document store with optional encryption at rest",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			if cfg.Key == "" {
				cfg.Key = os.Getenv(keyEnv)
			}
			if cfg.Encrypt && cfg.Key == "" {
				return fmt.Errorf("key required with --encrypt (-k or %s)", keyEnv)
			}
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&cfg.File, "file", "f", "data.json", "document file")
	root.PersistentFlags().BoolVarP(&cfg.Encrypt, "encrypt", "e", false, "encrypt the document at rest")
	root.PersistentFlags().StringVarP(&cfg.Key, "key", "k", "", "encryption passphrase (default $"+keyEnv+")")
	root.PersistentFlags().StringVar(&cfg.KDF, "kdf", "", "key derivation for new files: scrypt or argon2id")
	root.PersistentFlags().BoolVar(&cfg.Minify, "minify", false, "write compact JSON")
	root.PersistentFlags().BoolVar(&cfg.Recover, "recover", false, "treat an unreadable document as empty")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(getCmd(), setCmd(), deleteCmd(), appendCmd(), indexCmd(), dumpCmd())
	return root
}
