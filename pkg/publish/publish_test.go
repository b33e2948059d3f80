package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/pkg/assets"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]*s3.PutObjectInput
	bodies  map[string]string
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = make(map[string]*s3.PutObjectInput)
		f.bodies = make(map[string]string)
	}
	key := aws.ToString(in.Key)
	f.objects[key] = in
	f.bodies[key] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func TestExportToDir(t *testing.T) {
	dir := t.TempDir()
	target, err := NewDirTarget(filepath.Join(dir, "dist"))
	if err != nil {
		t.Fatal(err)
	}

	res, err := Export(context.Background(), target, gallery.Deps{}, assets.MustLoad(), Options{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := []string{"index.html", "client.js", "styles.css"}
	if strings.Join(res.Files, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", res.Files, want)
	}

	index, err := os.ReadFile(filepath.Join(dir, "dist", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	for _, s := range []string{"Basic usage", `<script src="client.js" defer>`, `data-live="false"`} {
		if !strings.Contains(html, s) {
			t.Errorf("index.html missing %q", s)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "dist", "client.js")); err != nil {
		t.Errorf("client.js not written: %v", err)
	}
}

func TestExportFormsDoNotPost(t *testing.T) {
	dir := t.TempDir()
	target, err := NewDirTarget(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Export(context.Background(), target, gallery.Deps{EventsPath: "/events"}, assets.MustLoad(), Options{}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	for _, s := range []string{`action="/events"`, `method="post"`, `data-events="true"`} {
		if strings.Contains(html, s) {
			t.Errorf("index.html contains %s", s)
		}
	}
	for _, s := range []string{
		`data-static="true"`,
		`data-required-title-select="Please choose the option closest to your profession"`,
		`data-success="`,
	} {
		if !strings.Contains(html, s) {
			t.Errorf("index.html missing %s", s)
		}
	}
}

func TestExportFingerprintedToS3(t *testing.T) {
	b := assets.MustLoad()
	fake := &fakeS3{}
	target := NewS3Target(fake, "demo-bucket", "select").WithCacheControl("max-age=60")

	res, err := Export(context.Background(), target, gallery.Deps{}, b,
		Options{Fingerprint: true, Manifest: true, Title: "Selects"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(res.Files) != 4 {
		t.Errorf("files = %v", res.Files)
	}

	index, ok := fake.objects["select/index.html"]
	if !ok {
		t.Fatalf("index.html not uploaded, keys: %v", fake.objects)
	}
	if aws.ToString(index.Bucket) != "demo-bucket" {
		t.Errorf("bucket = %q", aws.ToString(index.Bucket))
	}
	if aws.ToString(index.ContentType) != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", aws.ToString(index.ContentType))
	}
	if aws.ToString(index.CacheControl) != "max-age=60" {
		t.Errorf("cache control = %q", aws.ToString(index.CacheControl))
	}
	if aws.ToInt64(index.ContentLength) != int64(len(fake.bodies["select/index.html"])) {
		t.Error("content length does not match body")
	}

	js := b.Resolve("client.js")
	if _, ok := fake.objects["select/"+js]; !ok {
		t.Errorf("fingerprinted %s not uploaded", js)
	}
	if !strings.Contains(fake.bodies["select/index.html"], `src="`+js+`"`) {
		t.Error("page does not link the fingerprinted script")
	}
	if !strings.Contains(fake.bodies["select/manifest.json"], `"client.js": "`+js+`"`) {
		t.Errorf("manifest = %s", fake.bodies["select/manifest.json"])
	}
	if target.String() != "s3://demo-bucket/select/" {
		t.Errorf("String() = %q", target.String())
	}
}

func TestExportStopsOnTargetError(t *testing.T) {
	boom := errors.New("access denied")
	_, err := Export(context.Background(), NewS3Target(&fakeS3{err: boom}, "b", ""),
		gallery.Deps{}, assets.MustLoad(), Options{})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestExportHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	target, _ := NewDirTarget(t.TempDir())
	_, err := Export(ctx, target, gallery.Deps{}, assets.MustLoad(), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDirTargetRejectsEscapes(t *testing.T) {
	target, _ := NewDirTarget(t.TempDir())
	for _, name := range []string{"../x", "/etc/passwd", ".."} {
		if err := target.Put(context.Background(), name, "", strings.NewReader("x"), 1); err == nil {
			t.Errorf("Put(%q) succeeded", name)
		}
	}
}

func TestNewS3Client(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "")
	t.Setenv("AWS_REGION", "us-west-2")

	tests := []struct {
		name       string
		cfg        S3Config
		wantRegion string
	}{
		{"environment region", S3Config{}, "us-west-2"},
		{"explicit region and endpoint", S3Config{
			Region:       "eu-north-1",
			Endpoint:     "http://localhost:9000",
			UsePathStyle: true,
		}, "eu-north-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewS3Client(context.Background(), tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			o := client.Options()
			if o.Region != tt.wantRegion {
				t.Errorf("region = %q, want %q", o.Region, tt.wantRegion)
			}
			if got := aws.ToString(o.BaseEndpoint); got != tt.cfg.Endpoint {
				t.Errorf("endpoint = %q, want %q", got, tt.cfg.Endpoint)
			}
			if o.UsePathStyle != tt.cfg.UsePathStyle {
				t.Errorf("path style = %v, want %v", o.UsePathStyle, tt.cfg.UsePathStyle)
			}
			creds, err := o.Credentials.Retrieve(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if creds.AccessKeyID != "AKID" || creds.SecretAccessKey != "secret" {
				t.Errorf("creds = %+v", creds)
			}
		})
	}
}
