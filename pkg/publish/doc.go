// Package publish exports the gallery as static files.
//
// The exported page has no server behind it: the widgets render their
// initial state and events are off. Targets are a local directory or an
// S3 bucket:
//
//	t, _ := publish.NewDirTarget("dist")
//	_, err := publish.Export(ctx, t, gallery.Deps{}, assets.MustLoad(), publish.Options{})
//
//	client, err := publish.NewS3Client(ctx, publish.S3Config{Region: "eu-north-1"})
//	t := publish.NewS3Target(client, "my-bucket", "select/")
package publish
