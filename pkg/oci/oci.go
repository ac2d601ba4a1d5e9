// Package oci packages a generated report directory as an OCI artifact
// and pushes it to a registry, so report runs can be archived and
// distributed alongside other cluster artifacts.
package oci

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/distribution/reference"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	ocistore "oras.land/oras-go/v2/content/oci"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/retry"
)

const (
	// ArtifactType identifies report artifacts in manifest metadata.
	ArtifactType = "application/vnd.clusterscope.resource-gather.report.v1"

	// storeDirName is the OCI layout directory created next to the
	// packaged report.
	storeDirName = ".oci-store"
)

// layerMediaTypes maps report file extensions to their layer media types.
// Anything else is packaged as an opaque octet stream.
var layerMediaTypes = map[string]string{
	".csv":  "text/csv",
	".json": "application/json",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
}

// PackageOptions configures local artifact packaging.
type PackageOptions struct {
	// SourceDir is the report directory to package.
	SourceDir string

	// OutputDir receives the OCI layout store.
	OutputDir string

	// Registry, Repository, and Tag form the artifact reference.
	Registry   string
	Repository string
	Tag        string
}

// PackageResult describes a locally packaged artifact.
type PackageResult struct {
	Reference string
	Digest    string
	StorePath string
	Files     int
}

// PushOptions configures the push to a remote registry.
type PushOptions struct {
	Registry   string
	Repository string
	Tag        string

	// PlainHTTP uses HTTP instead of HTTPS (local development
	// registries).
	PlainHTTP bool

	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult describes a pushed artifact.
type PushResult struct {
	Reference string
	Digest    string
}

// ValidateRegistryReference checks that registry and repository form a
// valid OCI reference before any work is done.
func ValidateRegistryReference(registry, repository string) error {
	if registry == "" {
		return fmt.Errorf("registry must not be empty")
	}
	if repository == "" {
		return fmt.Errorf("repository must not be empty")
	}

	ref := fmt.Sprintf("%s/%s", registry, repository)
	if _, err := reference.ParseNamed(ref); err != nil {
		return fmt.Errorf("invalid OCI reference %q: %w", ref, err)
	}
	return nil
}

// Package collects the report files under SourceDir into an OCI layout
// store tagged with the artifact reference. The store can then be pushed
// with PushFromStore or inspected with standard OCI tooling.
func Package(ctx context.Context, opts PackageOptions) (*PackageResult, error) {
	tag := opts.Tag
	if tag == "" {
		tag = "latest"
	}
	ref := fmt.Sprintf("%s/%s:%s", opts.Registry, opts.Repository, tag)

	fileStore, err := file.New(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open source directory %q: %w", opts.SourceDir, err)
	}
	defer fileStore.Close()

	var layers []ocispec.Descriptor
	err = filepath.WalkDir(opts.SourceDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// The layout store may live under the source directory from
			// an earlier packaging run; never package it into itself.
			if d.Name() == storeDirName {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(opts.SourceDir, path)
		if err != nil {
			return err
		}

		mediaType, ok := layerMediaTypes[strings.ToLower(filepath.Ext(path))]
		if !ok {
			mediaType = "application/octet-stream"
		}

		desc, err := fileStore.Add(ctx, rel, mediaType, path)
		if err != nil {
			return fmt.Errorf("failed to add %q: %w", rel, err)
		}
		layers = append(layers, desc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source directory: %w", err)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("no files to package in %q", opts.SourceDir)
	}

	manifestDesc, err := oras.PackManifest(ctx, fileStore, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{Layers: layers})
	if err != nil {
		return nil, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := fileStore.Tag(ctx, manifestDesc, tag); err != nil {
		return nil, fmt.Errorf("failed to tag manifest: %w", err)
	}

	storePath := filepath.Join(opts.OutputDir, storeDirName)
	layout, err := ocistore.New(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create OCI layout store: %w", err)
	}

	if _, err := oras.Copy(ctx, fileStore, tag, layout, tag, oras.DefaultCopyOptions); err != nil {
		return nil, fmt.Errorf("failed to copy artifact to layout store: %w", err)
	}

	return &PackageResult{
		Reference: ref,
		Digest:    manifestDesc.Digest.String(),
		StorePath: storePath,
		Files:     len(layers),
	}, nil
}

// PushFromStore pushes a previously packaged artifact from its OCI layout
// store to the remote registry.
func PushFromStore(ctx context.Context, storePath string, opts PushOptions) (*PushResult, error) {
	tag := opts.Tag
	if tag == "" {
		tag = "latest"
	}

	src, err := ocistore.New(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open OCI layout store %q: %w", storePath, err)
	}

	repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", opts.Registry, opts.Repository))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository: %w", err)
	}
	repo.PlainHTTP = opts.PlainHTTP

	httpClient := retry.DefaultClient
	if opts.InsecureTLS {
		httpClient = &http.Client{
			Transport: retry.NewTransport(&http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}),
		}
	}
	repo.Client = &auth.Client{
		Client: httpClient,
		Cache:  auth.NewCache(),
	}

	desc, err := oras.Copy(ctx, src, tag, repo, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to push artifact: %w", err)
	}

	return &PushResult{
		Reference: fmt.Sprintf("%s/%s:%s", opts.Registry, opts.Repository, tag),
		Digest:    desc.Digest.String(),
	}, nil
}
