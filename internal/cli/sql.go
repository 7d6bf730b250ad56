package cli

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/quadrec/quadsql"
)

const sqlSource = "items"

var sqlCmd = &cobra.Command{
	Use:   "sql [query]",
	Short: "Run SQL against the item store with the nn virtual table",
	Long: `Builds the index, opens the configured store (in memory when store.dsn is
empty) and exposes recommendations as the virtual table nn, for example:

  quadrec sql "SELECT label, rank FROM nn WHERE label MATCH 'rose' AND k = 5"

The items table and the feature_cosine/feature_l2 functions are available too.`,
	Args: cobra.ExactArgs(1),
	RunE: runSQL,
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}

func runSQL(cmd *cobra.Command, args []string) error {
	if cfg.Store.DSN == "" {
		cfg.Store.DSN = ":memory:"
	}
	if err := quadsql.RegisterModule(); err != nil {
		return err
	}
	sess, err := buildService(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := quadsql.Register(sqlSource, sess.srv); err != nil {
		return err
	}
	defer quadsql.Unregister(sqlSource)
	if _, err := sess.db.ExecContext(cmd.Context(), `CREATE VIRTUAL TABLE IF NOT EXISTS temp.nn USING `+quadsql.ModuleName+`(`+sqlSource+`)`); err != nil {
		return fmt.Errorf("create nn: %w", err)
	}
	rows, err := sess.db.QueryContext(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer rows.Close()
	return printRows(cmd, rows)
}

func printRows(cmd *cobra.Command, rows *sql.Rows) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	cmd.Println(strings.Join(cols, "\t"))
	values := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		fields := make([]string, len(values))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			fields[i] = fmt.Sprint(v)
		}
		cmd.Println(strings.Join(fields, "\t"))
	}
	return rows.Err()
}
