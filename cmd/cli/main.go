package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndtrung/quickadd/internal/config"
	"github.com/ndtrung/quickadd/internal/domain"
	"github.com/ndtrung/quickadd/internal/draft"
	"github.com/ndtrung/quickadd/internal/gcsuploader"
	infraBQ "github.com/ndtrung/quickadd/internal/infra/bigquery"
	"github.com/ndtrung/quickadd/internal/logger"
	"github.com/ndtrung/quickadd/internal/nlparse"
	"github.com/ndtrung/quickadd/internal/refdata"
	"github.com/ndtrung/quickadd/internal/refdata/inmemory"
	"github.com/ndtrung/quickadd/internal/resolver"
	"github.com/ndtrung/quickadd/internal/wizard"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "chat":
		runChat(cfg, log)
	case "migrate":
		runMigrate(cfg, log)
	case "seed":
		runSeed(cfg, log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Quick-Add CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  chat      Start the conversational transaction wizard")
	fmt.Println("  migrate   Create the BigQuery dataset and tables")
	fmt.Println("  seed      Load demo reference data into BigQuery")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runChat(cfg *config.Config, log zerolog.Logger) {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	offline := fs.Bool("offline", false, "Use in-memory demo data instead of BigQuery")
	person := fs.String("person", "", "Contextual person hint, as if the wizard was opened from their page")
	model := fs.String("model", cfg.GeminiModel, "Gemini model name")
	fs.Parse(os.Args[2:])

	ctx := logger.WithContext(context.Background(), log)

	var (
		provider  refdata.Provider
		templates wizard.TemplateStore
		creator   wizard.TransactionCreator
		uploader  wizard.ReceiptUploader
	)

	if *offline {
		store := inmemory.NewStore()
		store.Seed(demoPeople, demoAccounts, demoCategories, demoShops)
		provider = store
		templates = store
		creator = inmemory.NewCreator()
	} else {
		if cfg.ProjectID == "" {
			log.Fatal().Msg("GCP_PROJECT is required (or pass -offline)")
		}
		repo, err := infraBQ.NewRepo(ctx, cfg.ProjectID, cfg.DatasetID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to BigQuery")
		}
		defer repo.Close()
		provider = repo
		templates = repo
		creator = repo
		if cfg.ReceiptBucket != "" {
			uploader = gcsuploader.NewUploader(cfg.ReceiptBucket)
		}
	}

	data, err := loadData(ctx, provider, cfg, *person)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load reference data")
	}

	session := wizard.NewSession(wizard.Config{
		Parser:    nlparse.NewGeminiParser(*model),
		Templates: templates,
		Creator:   creator,
		Uploader:  uploader,
		Data:      data,
		Logger:    log,
	})

	fmt.Println("Quick add - describe a transaction, or type /help.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s] > ", session.Step())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/quit", "/q":
			return
		case "/back":
			printReply(session.Back())
			continue
		case "/reset":
			session.Reset()
			fmt.Println("Starting over.")
			continue
		case "/submit":
			reply := session.Submit(ctx)
			printReply(reply)
			if reply.Done {
				fmt.Printf("Created transaction %s\n", reply.TransactionID)
			}
			continue
		case "/help":
			fmt.Println("Commands: /back /reset /submit /quit - anything else goes to the wizard.")
			continue
		}

		reply := session.HandleInput(ctx, line)
		printReply(reply)
		if reply.Done {
			fmt.Printf("Created transaction %s\n", reply.TransactionID)
		}
	}
}

func printReply(reply wizard.Reply) {
	for _, msg := range reply.Messages {
		fmt.Println(msg)
	}
}

func loadData(ctx context.Context, provider refdata.Provider, cfg *config.Config, personHint string) (draft.Data, error) {
	people, err := provider.People(ctx)
	if err != nil {
		return draft.Data{}, fmt.Errorf("loadData: people: %w", err)
	}
	accounts, err := provider.Accounts(ctx)
	if err != nil {
		return draft.Data{}, fmt.Errorf("loadData: accounts: %w", err)
	}
	categories, err := provider.Categories(ctx)
	if err != nil {
		return draft.Data{}, fmt.Errorf("loadData: categories: %w", err)
	}
	shops, err := provider.Shops(ctx)
	if err != nil {
		return draft.Data{}, fmt.Errorf("loadData: shops: %w", err)
	}

	data := draft.Data{
		People:     people,
		Accounts:   accounts,
		Categories: categories,
		Shops:      shops,
		Policy: draft.CashbackPolicy{
			NamePattern: cfg.Cashback.NamePattern,
			Percent:     cfg.Cashback.DefaultPercent,
		},
	}
	if personHint != "" {
		p, ok := resolver.ResolveByName(people, personHint, func(p domain.Person) string { return p.Name })
		if !ok {
			return draft.Data{}, fmt.Errorf("loadData: no person matching %q", personHint)
		}
		data.CurrentPerson = &p
	}
	return data, nil
}

func runMigrate(cfg *config.Config, log zerolog.Logger) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	project := fs.String("project", cfg.ProjectID, "GCP project ID")
	dataset := fs.String("dataset", cfg.DatasetID, "BigQuery dataset ID")
	fs.Parse(os.Args[2:])

	if *project == "" {
		log.Fatal().Msg("Error: -project (or GCP_PROJECT) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo, err := infraBQ.NewRepo(ctx, *project, *dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to BigQuery")
	}
	defer repo.Close()

	if err := repo.EnsureTables(ctx); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	fmt.Printf("Dataset %s.%s is ready.\n", *project, *dataset)
}

func runSeed(cfg *config.Config, log zerolog.Logger) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	project := fs.String("project", cfg.ProjectID, "GCP project ID")
	dataset := fs.String("dataset", cfg.DatasetID, "BigQuery dataset ID")
	fs.Parse(os.Args[2:])

	if *project == "" {
		log.Fatal().Msg("Error: -project (or GCP_PROJECT) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo, err := infraBQ.NewRepo(ctx, *project, *dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to BigQuery")
	}
	defer repo.Close()

	if err := repo.InsertReferenceData(ctx, demoPeople, demoAccounts, demoCategories, demoShops); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	fmt.Println("Demo reference data loaded.")
}
