package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"cookmind/internal/core/matching"
	"cookmind/internal/infrastructure/tablestore"
	"cookmind/internal/pkg/common"

	"github.com/spf13/cobra"
)

// matchFlags score / missing / analyze 共用的旗標
type matchFlags struct {
	recipe    []string
	inventory []string
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.recipe, "recipe", "r", nil, "recipe ingredients (comma separated or repeated)")
	cmd.Flags().StringSliceVarP(&f.inventory, "inventory", "i", nil, "inventory items (comma separated or repeated)")
}

func (f *matchFlags) request() common.MatchRequest {
	return common.MatchRequest{
		RecipeIngredients: cleanList(f.recipe),
		Inventory:         cleanList(f.inventory),
	}
}

// cleanList 去除旗標值前後空白並略過空項目
func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

func (a *cli) scoreCmd() *cobra.Command {
	var flags matchFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a recipe against the inventory (0-100)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := b.Score(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d%%\n", resp.Score)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *cli) missingCmd() *cobra.Command {
	var flags matchFlags
	cmd := &cobra.Command{
		Use:   "missing",
		Short: "List recipe ingredients that are not in the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := b.Missing(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			for _, name := range resp.Missing {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *cli) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest INGREDIENT...",
		Short: "Suggest substitutes for one or more ingredients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}

			results := make([]common.SubstitutionResponse, 0, len(args))
			for _, ingredient := range args {
				resp, err := b.Substitutions(cmd.Context(), ingredient)
				if err != nil {
					return err
				}
				results = append(results, resp)
			}

			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), results)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range results {
				substitutes := matching.NoSuggestion
				if r.Found {
					substitutes = common.StringSliceToString(r.Substitutes)
				}
				fmt.Fprintf(w, "%s\t%s\n", r.Ingredient, substitutes)
			}
			return w.Flush()
		},
	}
}

func (a *cli) explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain ORIGINAL SUBSTITUTE",
		Short: "Explain why SUBSTITUTE can replace ORIGINAL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := b.Explain(cmd.Context(), common.ExplainRequest{
				Original:   args[0],
				Substitute: args[1],
			})
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return err
		},
	}
}

func (a *cli) analyzeCmd() *cobra.Command {
	var flags matchFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a recipe and suggest substitutes for everything missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := b.Analyze(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printAnalysis(cmd.OutOrStdout(), resp)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *cli) rankCmd() *cobra.Command {
	var (
		recipesFile string
		inventory   []string
		minScore    int
		limit       int
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank recipes from a JSON file by how well the inventory covers them",
		Long: `Reads a JSON array of recipes ({"id","name","ingredients"}) and prints them
ordered by match score, then by fewer missing ingredients.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipes, err := readRecipes(recipesFile)
			if err != nil {
				return err
			}
			if minScore < 0 || minScore > 100 {
				return fmt.Errorf("--min-score must be between 0 and 100")
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			b, err := a.backend(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := b.Rank(cmd.Context(), common.RankRequest{
				Recipes:   recipes,
				Inventory: cleanList(inventory),
				MinScore:  minScore,
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SCORE\tRECIPE\tMISSING")
			for _, r := range resp.Recipes {
				name := r.Name
				if name == "" {
					name = r.ID
				}
				fmt.Fprintf(w, "%d%%\t%s\t%s\n", r.Score, name, common.StringSliceToString(r.Missing))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&recipesFile, "recipes", "f", "", "JSON file with recipes (required)")
	cmd.Flags().StringSliceVarP(&inventory, "inventory", "i", nil, "inventory items (comma separated or repeated)")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "only show recipes scoring at least this much")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of recipes (0 = all)")
	_ = cmd.MarkFlagRequired("recipes")
	return cmd
}

// readRecipes 讀取食譜 JSON 陣列，不允許未知欄位
func readRecipes(path string) ([]common.RankRecipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipes file: %w", err)
	}
	defer f.Close()

	var recipes []common.RankRecipe
	if err := common.DecodeJSONStrict(f, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipes file %s: %w", path, err)
	}
	return recipes, nil
}

func (a *cli) tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect or publish the substitution table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Print the configured substitution table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := loadTable(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			data, err := tablestore.MarshalYAML(table)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	var from string
	push := &cobra.Command{
		Use:   "push",
		Short: "Write a substitution table to the configured Redis hash",
		Long: `Replaces the Redis hash at SUBSTITUTION_REDIS_KEY with the given YAML table,
or with the built-in table when --from is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := matching.DefaultSubstitutionTable()
			if from != "" {
				loaded, err := tablestore.LoadFile(from)
				if err != nil {
					return err
				}
				table = loaded
			}

			client := tablestore.NewRedisClient(a.cfg.Redis)
			defer client.Close()

			if err := tablestore.SaveRedis(cmd.Context(), client, a.cfg.Substitution.RedisKey, table); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %d entries to %s\n", table.Len(), a.cfg.Substitution.RedisKey)
			return err
		},
	}
	push.Flags().StringVar(&from, "from", "", "YAML table file (default: built-in table)")
	cmd.AddCommand(push)

	return cmd
}

func printAnalysis(out io.Writer, resp common.AnalyzeResponse) error {
	if _, err := fmt.Fprintf(out, "Score: %d%%\n", resp.Score); err != nil {
		return err
	}
	if len(resp.Missing) == 0 {
		_, err := fmt.Fprintln(out, "Nothing missing.")
		return err
	}

	for _, item := range resp.Missing {
		if !item.Found {
			if _, err := fmt.Fprintf(out, "- %s: %s\n", item.Ingredient, matching.NoSuggestion); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "- %s: %s\n", item.Ingredient, common.StringSliceToString(item.Substitutes)); err != nil {
			return err
		}
		for _, e := range item.Explanations {
			if _, err := fmt.Fprintf(out, "    %s\n", e.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
