package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"dario.cat/mergo"
	"github.com/spf13/cobra"

	"github.com/ia4it/landing/internal/client"
	"github.com/ia4it/landing/internal/config"
	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/internal/form"
	"github.com/ia4it/landing/pkg/logger"
)

// flagValues collects overrides; zero values keep the environment setting.
type flagValues struct {
	envFile  string
	logLevel string
	client   client.Config
	fields   contact.Submission
}

func newRootCmd() *cobra.Command {
	var flags flagValues

	root := &cobra.Command{
		Use:          "contact",
		Short:        "Submit the IA4IT contact form",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "load variables from this file instead of ./.env")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newSendCmd(&flags), newSourcesCmd())
	return root
}

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List accepted referral sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range contact.ReferralSources {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newSendCmd(flags *flagValues) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Fill in and submit the contact form",
		Long: `Fill in and submit the contact form.

Endpoints and credentials come from the environment (CONTACT_MODE,
CONTACT_BASE_URL, CONTACT_TOKEN, CONTACT_WEBHOOK_URL, EMAILJS_*). Flags
override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			log := logger.NewCLI(cmd.ErrOrStderr(), logger.ParseLevel(cfg.LogLevel), "contact")
			svc, err := client.NewFromConfig(cfg.Client, client.WithLogger(log))
			if err != nil {
				return err
			}
			if !svc.Configured() {
				return client.ErrNotConfigured
			}

			f, err := form.New(svc,
				form.WithLogger(log),
				form.WithNotifier(&terminalNotifier{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}),
				// The process exits right after submitting.
				form.WithResetDelay(time.Hour),
			)
			if err != nil {
				return err
			}
			return submit(cmd, f, flags.fields, log)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&flags.fields.FirstName, "first-name", "", "first name")
	fl.StringVar(&flags.fields.LastName, "last-name", "", "last name")
	fl.StringVar(&flags.fields.Email, "email", "", "email address")
	fl.StringVar(&flags.fields.ReferralSource, "referral-source", "", "how you heard about us (see 'contact sources')")
	for _, name := range []string{"first-name", "last-name", "email", "referral-source"} {
		_ = cmd.MarkFlagRequired(name)
	}

	fl.StringVar(&flags.client.Mode, "mode", "", "strategy chain: auto, handler or webhook")
	fl.StringVar(&flags.client.BaseURL, "base-url", "", "contact handler base URL")
	fl.StringVar(&flags.client.Token, "token", "", "bearer token for the contact handler")
	fl.StringVar(&flags.client.WebhookURL, "webhook-url", "", "webhook URL")
	fl.StringVar(&flags.client.WebhookSecret, "webhook-secret", "", "HMAC secret for webhook payloads")
	fl.DurationVar(&flags.client.Timeout, "timeout", 0, "per-request timeout, 0 for none")

	return cmd
}

// loadConfig reads the environment and lays non-empty flags over it.
func loadConfig(flags *flagValues) (config.CLI, error) {
	var files []string
	if flags.envFile != "" {
		files = append(files, flags.envFile)
	}

	var cfg config.CLI
	if err := config.Load(&cfg, files...); err != nil {
		return cfg, err
	}

	overrides := config.CLI{LogLevel: flags.logLevel, Client: flags.client}
	if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
		return cfg, fmt.Errorf("merge flags: %w", err)
	}
	return cfg, nil
}

func submit(cmd *cobra.Command, f *form.Form, fields contact.Submission, log *slog.Logger) error {
	ctx := cmd.Context()

	if err := f.Open(ctx); err != nil {
		return err
	}
	for field, value := range map[form.Field]string{
		form.FieldFirstName:      fields.FirstName,
		form.FieldLastName:       fields.LastName,
		form.FieldEmail:          fields.Email,
		form.FieldReferralSource: fields.ReferralSource,
	} {
		if err := f.SetField(field, value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	res, err := f.Submit(ctx)
	if err != nil {
		return err
	}

	log.Debug("submission accepted", "strategy", res.Strategy, "message", res.Message)
	return f.Close(ctx)
}

type terminalNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n *terminalNotifier) Alert(message string) {
	fmt.Fprintln(n.errOut, message)
}

func (n *terminalNotifier) Confirm(title, message string) {
	fmt.Fprintf(n.out, "%s\n%s\n", title, message)
}
