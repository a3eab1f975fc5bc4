package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uadetect/internal/api"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

func newCatalogCmd(load loadConfigFunc) *cobra.Command {
	var (
		records bool
		lang    string
	)
	cmd := &cobra.Command{
		Use:       "catalog {browsers|os|devices}",
		Short:     "Print the labels the classifier can produce",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{api.CatalogBrowsers, api.CatalogOS, api.CatalogDevices},
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
			if lang == "" {
				lang = tr.DefaultLanguage()
			}

			catalog, ok := api.ListCatalog(args[0], useragent.WithLocalizer(tr, lang))
			if !ok {
				return fmt.Errorf("unknown catalog %q: use browsers, os or devices", args[0])
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if records {
				return enc.Encode(catalog.Records())
			}
			return enc.Encode(catalog)
		},
	}
	cmd.Flags().BoolVar(&records, "records", false, "print value/label records instead of a mapping")
	cmd.Flags().StringVar(&lang, "lang", "", "label language (defaults to DEFAULT_LANGUAGE)")
	return cmd
}
