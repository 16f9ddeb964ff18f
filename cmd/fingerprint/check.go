package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/franchise-ops/collections/receivables/business/fingerprint"
)

type checkRow struct {
	Line        int    `json:"linha"`
	TaxpayerID  string `json:"cnpj"`
	Amount      string `json:"valor"`
	DueDate     string `json:"vencimento"`
	Fingerprint string `json:"hash,omitempty"`
	DuplicateOf int    `json:"duplicado_da_linha,omitempty"`
	Problem     string `json:"problema,omitempty"`
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.csv>",
		Short: "Fingerprint every row of a CSV (cnpj,valor,vencimento) and flag duplicates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := checkRecords(f)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Line", "CNPJ", "Valor", "Vencimento", "Hash", "Status"})
			for _, r := range rows {
				tw.AppendRow(table.Row{r.Line, fingerprint.FormatTaxpayerID(r.TaxpayerID), r.Amount, r.DueDate, shortHash(r.Fingerprint), rowStatus(r)})
			}
			tw.Render()
			return nil
		},
	}
}

// checkRecords reads cnpj,valor,vencimento records. A header row is skipped when its first
// field is not a taxpayer id.
func checkRecords(r io.Reader) ([]checkRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	seen := map[string]int{}
	var rows []checkRow
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		if line == 1 && fingerprint.CleanTaxpayerID(record[0]) == "" {
			continue
		}

		row := checkRow{Line: line, TaxpayerID: record[0], Amount: record[1], DueDate: record[2]}
		switch amount, err := parseAmount(record[1]); {
		case err != nil:
			row.Problem = err.Error()
		case !fingerprint.ValidateTaxpayerID(record[0]):
			row.Problem = "cnpj must have 14 digits"
		default:
			hash, err := fingerprint.Fingerprint(record[0], amount, record[2])
			if err != nil {
				row.Problem = err.Error()
				break
			}
			row.Fingerprint = hash
			if first, ok := seen[hash]; ok {
				row.DuplicateOf = first
			} else {
				seen[hash] = line
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowStatus(r checkRow) string {
	switch {
	case r.Problem != "":
		return r.Problem
	case r.DuplicateOf != 0:
		return fmt.Sprintf("duplicate of line %d", r.DuplicateOf)
	default:
		return "ok"
	}
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12] + strings.Repeat(".", 3)
}
