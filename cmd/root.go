package cmd

import (
	"fmt"
	"os"

	"calc/config"
	"calc/eval"
	"calc/expr"
	"calc/history"
	"calc/repl"

	"github.com/spf13/cobra"
)

type App struct {
	cfg config.Config

	verbose bool
	noSave  bool
}

func newEvalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate an infix arithmetic expression. Supports + - * / % ^, parentheses, constants pi and e, and functions like sin, cos, tan, ln, lg, log, sgn",
		Args:  cobra.MinimumNArgs(1),
		Run:   app.handleEval,
	}
	cmd.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "print the parser trace and expression tree")
	cmd.Flags().BoolVar(&app.noSave, "no-save", false, "do not record the evaluation in history")
	return cmd
}

func newReplCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session reading one expression per line. Type exit or quit to leave",
		Args:  cobra.NoArgs,
		Run:   app.handleRepl,
	}
	cmd.Flags().BoolVar(&app.noSave, "no-save", false, "do not record evaluations in history")
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [term]",
		Short: "Show recently evaluated expressions, newest first, optionally filtered by a substring",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.handleHistory(cmd, args, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of entries to show (default from CALC_HISTORY_LIMIT)")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		Args:  cobra.NoArgs,
		Run:   app.handleHistoryClear,
	})

	return cmd
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "CLI calculator for infix arithmetic expressions",
	}
	cmd.AddCommand(
		newEvalCmd(app),
		newReplCmd(app),
		newHistoryCmd(app),
	)
	return cmd
}

func (a *App) handleEval(cmd *cobra.Command, args []string) {
	evalConfig, err := eval.ParseConfig(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	evalConfig.DBName = a.cfg.DBName
	evalConfig.NoSave = a.noSave
	if a.verbose {
		evalConfig.Trace = cmd.OutOrStdout()
	}

	result, err := eval.Run(cmd.Context(), evalConfig)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(expr.FormatResult(result.Value))
}

func (a *App) handleRepl(cmd *cobra.Command, args []string) {
	replConfig := &repl.Config{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
	}
	if !a.noSave {
		replConfig.DBName = a.cfg.DBName
	}

	if err := repl.Run(cmd.Context(), replConfig); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *App) handleHistory(cmd *cobra.Command, args []string, limit int) {
	historyConfig := &history.Config{
		DBName: a.cfg.DBName,
		Limit:  limit,
	}
	if historyConfig.Limit <= 0 {
		historyConfig.Limit = a.cfg.HistoryLimit
	}
	if len(args) > 0 {
		historyConfig.Term = args[0]
	}

	entries, err := history.Run(cmd.Context(), historyConfig)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, entry := range entries {
		fmt.Printf("%s \t%s = %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.Expression,
			expr.FormatResult(entry.Result),
		)
	}
}

func (a *App) handleHistoryClear(cmd *cobra.Command, args []string) {
	if err := history.Clear(cmd.Context(), a.cfg.DBName); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("History cleared")
}

// Execute initializes and runs the root command. It is the single entry point
// for the command-line interface.
func Execute() {
	app := &App{cfg: config.Load()}
	rootCmd := newRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, so we just need to exit.
		os.Exit(1)
	}
}
