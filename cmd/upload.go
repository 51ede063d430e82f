package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/openexhibits/exhibits-admin/internal/api"
	"github.com/openexhibits/exhibits-admin/internal/auth"
	"github.com/openexhibits/exhibits-admin/internal/config"
)

var uploadExhibitID string

var uploadCmd = &cobra.Command{
	Use:   "upload --exhibit <uuid> <patterns...>",
	Short: "Batch-upload media files to an exhibit",
	Long: `Uploads every file matching the given glob patterns (doublestar
syntax, e.g. "scans/**/*.jpg") to the exhibit's media store. Requires a
prior exhibits-admin login.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		token := auth.Token()
		if token == "" {
			return fmt.Errorf("not signed in; run `exhibits-admin login` first")
		}
		client := api.New(cfg.BackendURL).WithToken(token)

		// Expand patterns before touching the network.
		var files []string
		for _, pattern := range args {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			files = append(files, matches...)
		}
		if len(files) == 0 {
			return fmt.Errorf("no files match the given pattern(s)")
		}

		bar := progressbar.Default(int64(len(files)), "uploading")
		var failed int
		for _, path := range files {
			if err := uploadOne(cmd.Context(), client, uploadExhibitID, path); err != nil {
				fmt.Fprintf(os.Stderr, "\n%s: %v\n", path, err)
				failed++
			}
			bar.Add(1)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d upload(s) failed", failed, len(files))
		}
		fmt.Printf("Uploaded %d file(s)\n", len(files))
		return nil
	},
}

func uploadOne(ctx context.Context, client *api.Client, exhibitID, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	_, err = client.UploadMedia(ctx, exhibitID, filepath.Base(path), f)
	return err
}

func init() {
	uploadCmd.Flags().StringVar(&uploadExhibitID, "exhibit", "", "uuid of the target exhibit")
	uploadCmd.MarkFlagRequired("exhibit")
	rootCmd.AddCommand(uploadCmd)
}
