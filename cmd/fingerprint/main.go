package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/franchise-ops/collections/receivables/business/fingerprint"
)

var rootCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Compute and check título fingerprints",
	Long: `fingerprint derives the identity of a título from its CNPJ, amount and due date,
the same way the receivables service does before registering it.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	rootCmd.AddCommand(computeCmd(), checkCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("FINGERPRINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func computeCmd() *cobra.Command {
	var taxpayerID, amount, dueDate string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Print the fingerprint of one título",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			hash, err := fingerprint.Fingerprint(taxpayerID, value, dueDate)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"cnpj":        fingerprint.FormatTaxpayerID(taxpayerID),
					"cnpj_valido": fingerprint.ValidateTaxpayerID(taxpayerID),
					"valor":       fingerprint.NormalizeAmount(value),
					"hash":        hash,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().StringVar(&taxpayerID, "cnpj", "", "taxpayer id, formatted or digits only")
	cmd.Flags().StringVar(&amount, "valor", "", "amount, e.g. 1500.00")
	cmd.Flags().StringVar(&dueDate, "vencimento", "", "due date (YYYY-MM-DD, DD/MM/YYYY or DD-MM-YYYY)")
	_ = cmd.MarkFlagRequired("cnpj")
	_ = cmd.MarkFlagRequired("valor")
	_ = cmd.MarkFlagRequired("vencimento")
	return cmd
}

// parseAmount accepts a dot or a lone comma as decimal separator.
func parseAmount(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if strings.Contains(value, ",") && !strings.Contains(value, ".") {
		value = strings.Replace(value, ",", ".", 1)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return d, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
