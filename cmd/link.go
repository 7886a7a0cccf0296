package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pacesnailbar/nailbar/internal/booking"
)

var (
	linkReq  booking.Request
	linkJSON bool
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Compose booking links from the command line",
	Long: `Validates a booking request against the configured content and prints the
email and WhatsApp links a visitor would get from the booking form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		c, err := loadContent(cfg, logger)
		if err != nil {
			return err
		}

		b, err := booking.NewComposer(c).Compose(linkReq)
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			fields := make([]string, 0, len(verr.Fields))
			for f := range verr.Fields {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			for _, f := range fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "  --%s: %s\n", flagName(f), verr.Fields[f])
			}
			return fmt.Errorf("booking request is invalid")
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if linkJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(b)
		}
		fmt.Fprintf(out, "Reference: %s\n", b.ID)
		if b.MailtoURL != "" {
			fmt.Fprintf(out, "Email:     %s\n", b.MailtoURL)
		}
		if b.WhatsAppURL != "" {
			fmt.Fprintf(out, "WhatsApp:  %s\n", b.WhatsAppURL)
		}
		return nil
	},
}

func init() {
	f := linkCmd.Flags()
	f.StringVar(&linkReq.Name, "name", "", "visitor name")
	f.StringVar(&linkReq.Email, "email", "", "visitor email")
	f.StringVar(&linkReq.Phone, "phone", "", "visitor phone")
	f.StringVar(&linkReq.Service, "service", "", "service value, e.g. manicure")
	f.StringVar(&linkReq.PreferredDate, "date", "", "preferred date (YYYY-MM-DD)")
	f.StringVar(&linkReq.PreferredTime, "time", "", "preferred time (HH:MM)")
	f.StringVar(&linkReq.Message, "message", "", "additional message")
	f.BoolVar(&linkJSON, "json", false, "print the booking as JSON")
	rootCmd.AddCommand(linkCmd)
}

// flagName maps a request field to the flag that sets it.
func flagName(field string) string {
	switch field {
	case "preferred_date":
		return "date"
	case "preferred_time":
		return "time"
	}
	return field
}
