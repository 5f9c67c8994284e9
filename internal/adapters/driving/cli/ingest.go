package cli

import (
	"github.com/spf13/cobra"
)

var ingestRebuild bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build the vector index from the configured data sources",
	Long: `Loads the phrasebook CSV and, when enabled, the scraped article
corpus, cleans and embeds the documents, and inserts them into the
configured vector store.

Persistent backends (sqlite, redis) keep the index across runs; pass
--rebuild to ingest again on top of an existing index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if !ingestRebuild {
			count, err := a.store.Count(ctx)
			if err != nil {
				return err
			}
			if count > 0 {
				cmd.Printf("Index already holds %d documents. Use --rebuild to ingest again.\n", count)
				return nil
			}
		}

		stats, err := a.pipeline.Build(ctx)
		if err != nil {
			return err
		}

		cmd.Printf("Ingested %d documents (%d phrases, %d articles", stats.Total, stats.PhrasebookDocs, stats.ArticleDocs)
		if stats.DroppedArticles > 0 {
			cmd.Printf(", %d dropped by cap", stats.DroppedArticles)
		}
		cmd.Printf(").\n")
		return nil
	},
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestRebuild, "rebuild", false, "ingest even if the index is not empty")
	rootCmd.AddCommand(ingestCmd)
}
