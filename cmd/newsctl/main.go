// Command newsctl inspects and maintains the newsroom store from a shell,
// against the same backend the server is configured with.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/app"
	"github.com/infosecwire/newsroom-api/internal/config"
	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/service"
	"github.com/infosecwire/newsroom-api/pkg/logger"
)

type globalOptions struct {
	Config   string `short:"c" long:"config" env:"CONFIG_FILE" description:"YAML configuration file"`
	Driver   string `long:"driver" description:"Override the store driver (memory, sqlite, postgres, redis)"`
	LogLevel string `long:"log-level" default:"warn" description:"Log level"`
}

var (
	opts     globalOptions
	services *service.Services
	out      io.Writer = os.Stdout
)

type listCommand struct {
	All      bool   `short:"a" long:"all" description:"Include drafts and scheduled articles"`
	Category string `long:"category" description:"Only show this category slug"`
}

func (c *listCommand) Execute(_ []string) error {
	ctx := context.Background()
	var (
		articles []service.ArticleSummary
		err      error
	)
	if c.All {
		articles, err = services.Article.AdminList(ctx, "")
	} else {
		articles, err = services.Article.ListPublished(ctx, c.Category, "")
	}
	if err != nil {
		return err
	}
	printArticles(articles)
	return nil
}

type searchCommand struct {
	Args struct {
		Query string `positional-arg-name:"query" required:"yes"`
	} `positional-args:"yes"`
}

func (c *searchCommand) Execute(_ []string) error {
	articles, err := services.Article.ListPublished(context.Background(), "", c.Args.Query)
	if err != nil {
		return err
	}
	printArticles(articles)
	return nil
}

type categoriesCommand struct{}

func (c *categoriesCommand) Execute(_ []string) error {
	cats, err := services.Category.List(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSLUG\tARTICLES")
	for _, c := range cats {
		fmt.Fprintf(w, "%s\t%s\t%d\n", c.Name, c.Slug, c.ArticleCount)
	}
	return w.Flush()
}

type renameCategoryCommand struct {
	Args struct {
		From string `positional-arg-name:"from" required:"yes"`
		To   string `positional-arg-name:"to" required:"yes"`
	} `positional-args:"yes"`
}

func (c *renameCategoryCommand) Execute(_ []string) error {
	if err := services.Category.Rename(context.Background(), c.Args.From, c.Args.To); err != nil {
		return err
	}
	fmt.Fprintf(out, "renamed %q to %q\n", c.Args.From, c.Args.To)
	return nil
}

// seedCommand reads every collection once, which persists the built-in
// data for any collection that is still missing
type seedCommand struct{}

func (c *seedCommand) Execute(_ []string) error {
	ctx := context.Background()
	stats, err := services.Article.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d articles (%d published), %d authors, %d categories\n",
		stats.Total, stats.Published, stats.Authors, stats.Categories)
	return nil
}

type whoamiCommand struct{}

func (c *whoamiCommand) Execute(_ []string) error {
	user, ok, err := services.Auth.CurrentUser(context.Background())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "not signed in")
		return nil
	}
	fmt.Fprintf(out, "%s (%s, id %s)\n", user.Name, user.Role, user.ID)
	return nil
}

type logoutCommand struct{}

func (c *logoutCommand) Execute(_ []string) error {
	return services.Auth.Logout(context.Background())
}

func printArticles(articles []service.ArticleSummary) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPUBLISHED\tCATEGORY\tAUTHOR\tTITLE")
	for _, a := range articles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Status, a.PublishedAt.Format(time.DateOnly), a.Category, a.AuthorName, truncate(a.Title, 60))
	}
	w.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}

// migrateDownCommand works on the schema only and runs without services
type migrateDownCommand struct{}

func (c *migrateDownCommand) Execute(_ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := kvstore.MigrateDown(cfg.Store, cliLogger()); err != nil {
		return err
	}
	fmt.Fprintf(out, "rolled back the last %s migration\n", cfg.Store.Driver)
	return nil
}

func loadConfig() (*config.Config, error) {
	if opts.Config != "" {
		os.Setenv("CONFIG_FILE", opts.Config)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.Driver != "" {
		cfg.Store.Driver = opts.Driver
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func cliLogger() zerolog.Logger {
	return logger.NewWithWriter(os.Stderr, opts.LogLevel, "pretty")
}

func setup(log zerolog.Logger) (io.Closer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	svc, closer, err := app.Build(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}
	services = svc
	return closer, nil
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.AddCommand("list", "List articles", "List published articles, or every article with --all.", &listCommand{})
	parser.AddCommand("search", "Search published articles", "Case-insensitive search over title, excerpt, content, category and tags.", &searchCommand{})
	parser.AddCommand("categories", "List categories", "List categories with their slugs and article counts.", &categoriesCommand{})
	parser.AddCommand("rename-category", "Rename a category", "Rename a category and move every article filed under it.", &renameCategoryCommand{})
	parser.AddCommand("seed", "Persist built-in data", "Write the default authors, categories and articles where missing.", &seedCommand{})
	parser.AddCommand("whoami", "Show the signed-in author", "Show the author stored in the current session.", &whoamiCommand{})
	parser.AddCommand("logout", "Clear the session", "Remove the current session record.", &logoutCommand{})
	parser.AddCommand("migrate-down", "Roll back the last migration", "Roll back the last schema migration of the sqlite or postgres store.", &migrateDownCommand{})

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if _, ok := cmd.(*migrateDownCommand); ok {
			return cmd.Execute(args)
		}
		closer, err := setup(cliLogger())
		if err != nil {
			return err
		}
		defer closer.Close()
		return cmd.Execute(args)
	}

	// flags.Default prints the error itself
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}
