package eval

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"calc/db"
	"calc/expr"
)

// Config holds the configuration for one evaluation.
type Config struct {
	Expression string
	DBName     string
	NoSave     bool

	// Trace receives the shunting-yard steps and the parsed tree when
	// verbose output is requested. Nil disables tracing.
	Trace io.Writer
}

// Result is the outcome of an evaluation.
type Result struct {
	Value float64
	Tree  string
}

// ParseConfig parses command line arguments into a Config struct.
func ParseConfig(args []string) (*Config, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("at least 1 argument required (expression)")
	}

	config := &Config{
		Expression: strings.TrimSpace(strings.Join(args, " ")),
	}

	if config.Expression == "" {
		return nil, fmt.Errorf("expression cannot be empty")
	}

	return config, nil
}

// Run parses and evaluates the configured expression, recording the result
// to history unless disabled. History failures are reported but never block
// the result.
func Run(ctx context.Context, config *Config) (*Result, error) {
	tree, err := buildTree(config)
	if err != nil {
		return nil, err
	}

	if config.Trace != nil {
		fmt.Fprintf(config.Trace, "tree:   %s\n", tree)
	}

	value, err := tree.Eval()
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", config.Expression, err)
	}

	if !config.NoSave && config.DBName != "" {
		if err := save(config.DBName, config.Expression, value); err != nil {
			log.Printf("Warning: could not record history: %v", err)
		}
	}

	return &Result{Value: value, Tree: tree.String()}, nil
}

func buildTree(config *Config) (*expr.Tree, error) {
	tokens, err := expr.Tokenize(config.Expression)
	if err != nil {
		return nil, fmt.Errorf("error tokenizing %q: %w", config.Expression, err)
	}

	rpn, err := expr.ToRPNTrace(tokens, config.Trace)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", config.Expression, err)
	}

	tree, err := expr.FromRPN(rpn)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", config.Expression, err)
	}

	return tree, nil
}

func save(dbName, expression string, value float64) error {
	dbConn, err := db.SetupDatabase(dbName)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	_, err = db.SaveEntry(dbConn, expression, value)
	return err
}
