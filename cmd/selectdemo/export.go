package main

import (
	"github.com/spf13/cobra"
	"github.com/vango-dev/selectdemo/internal/errors"
	"github.com/vango-dev/selectdemo/pkg/assets"
	"github.com/vango-dev/selectdemo/pkg/publish"
)

func exportCmd(flags *globalFlags) *cobra.Command {
	var (
		target      string
		fingerprint bool
		manifest    bool
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the gallery as static files",
		Long: `Render the gallery once and write index.html with the client assets.

The target is a directory or an s3://bucket/prefix URL. S3 credentials come
from the standard AWS chain: environment variables, ~/.aws files or an
instance role.

Examples:
  selectdemo export
  selectdemo export --target=public --pretty
  selectdemo export --target=s3://my-bucket/select --fingerprint`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if target != "" {
				cfg.Export.Target = target
			}
			if cmd.Flags().Changed("fingerprint") {
				cfg.Export.Fingerprint = fingerprint
			}
			if cmd.Flags().Changed("manifest") {
				cfg.Export.Manifest = manifest
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			dest, err := cfg.Export.Destination()
			if err != nil {
				return err
			}

			logger := newLogger(cfg.Log, cmd.ErrOrStderr())
			deps, err := galleryDeps(cfg, logger)
			if err != nil {
				return err
			}

			var t publish.Target
			if dest.IsS3() {
				client, err := publish.NewS3Client(cmd.Context(), publish.S3Config{
					Region:       cfg.Export.S3.Region,
					Endpoint:     cfg.Export.S3.Endpoint,
					UsePathStyle: cfg.Export.S3.PathStyle,
				})
				if err != nil {
					return errors.New(errors.CodeExportTarget).Wrap(err)
				}
				t = publish.NewS3Target(client, dest.Bucket, dest.Prefix).
					WithCacheControl(cfg.Export.S3.CacheControl)
			} else {
				dt, err := publish.NewDirTarget(dest.Dir)
				if err != nil {
					return errors.New(errors.CodeExportTarget).Wrap(err)
				}
				t = dt
			}

			res, err := publish.Export(cmd.Context(), t, deps, assets.MustLoad(), publish.Options{
				Title:       cfg.Server.Title,
				Pretty:      pretty,
				Fingerprint: cfg.Export.Fingerprint,
				Manifest:    cfg.Export.Manifest,
				Logger:      logger,
			})
			if err != nil {
				return errors.New(errors.CodeExportWrite).Wrap(err)
			}
			success(cmd.OutOrStdout(), "Exported %d files (%d bytes) to %s", len(res.Files), res.Bytes, t)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Directory or s3://bucket/prefix (default from config)")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "Name assets by content hash")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "Also write manifest.json")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")

	return cmd
}
