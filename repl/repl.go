package repl

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"strings"

	"calc/db"
	"calc/expr"

	lru "github.com/hashicorp/golang-lru/v2"
)

// treeCacheSize bounds how many parsed expressions a session memoizes.
const treeCacheSize = 128

// Config holds the configuration for an interactive session.
type Config struct {
	DBName string
	In     io.Reader
	Out    io.Writer
}

// Run reads expressions from In one line at a time, evaluates each and
// writes the result to Out. "exit" or "quit" ends the session. Parsed trees
// are memoized in an LRU cache, so repeating a line skips the parse.
func Run(ctx context.Context, config *Config) error {
	cache, err := lru.New[string, *expr.Tree](treeCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create expression cache: %w", err)
	}

	var dbConn *sql.DB
	if config.DBName != "" {
		dbConn, err = db.SetupDatabase(config.DBName)
		if err != nil {
			log.Printf("Warning: history disabled: %v", err)
		} else {
			defer dbConn.Close()
		}
	}

	scanner := bufio.NewScanner(config.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(config.Out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		tree, ok := cache.Get(line)
		if !ok {
			tree, err = expr.Parse(line)
			if err != nil {
				fmt.Fprintf(config.Out, "error: %v\n", err)
				continue
			}
			cache.Add(line, tree)
		}

		value, err := tree.Eval()
		if err != nil {
			fmt.Fprintf(config.Out, "error: %v\n", err)
			continue
		}

		fmt.Fprintln(config.Out, expr.FormatResult(value))

		if dbConn != nil {
			if _, err := db.SaveEntry(dbConn, line, value); err != nil {
				log.Printf("Warning: could not record history: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}
