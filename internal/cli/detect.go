package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uadetect/internal/api"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

const maxLineBytes = 64 * 1024

type detectOptions struct {
	json bool
	lang string
}

func newDetectCmd(load loadConfigFunc) *cobra.Command {
	var opts detectOptions
	cmd := &cobra.Command{
		Use:   "detect [user-agent...]",
		Short: "Classify user agents given as arguments or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			tr, err := newTranslator(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			if opts.lang == "" {
				opts.lang = tr.DefaultLanguage()
			}

			out := cmd.OutOrStdout()
			emit := func(raw string) error {
				d := api.NewDetection(useragent.Parse(useragent.SanitizeHeader(raw)), tr, opts.lang)
				if opts.json {
					return json.NewEncoder(out).Encode(d)
				}
				return writeDetection(out, d)
			}

			if len(args) > 0 {
				for _, raw := range args {
					if err := emit(raw); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
			count := 0
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := emit(line); err != nil {
					return err
				}
				count++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			log.DebugContext(cmd.Context(), "classified user agents", "count", count, logger.Component("cli"))
			return nil
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&opts.json, "json", false, "print one JSON object per user agent")
	fs.StringVar(&opts.lang, "lang", "", "language of the description (defaults to DEFAULT_LANGUAGE)")
	return cmd
}

// writeDetection prints "<device>\t<description>", or the bot name for bots.
func writeDetection(w io.Writer, d api.Detection) error {
	label := d.Description
	if d.IsBot && d.Bot != "" {
		label = d.Bot
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", d.DeviceType, label)
	return err
}
