package pdf

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// LogoSource supplies the image drawn at the top of every report. found is
// false when no logo is configured at the source's location.
type LogoSource interface {
	Logo(ctx context.Context) (img []byte, found bool, err error)
}

// FileLogo reads the logo from the local filesystem.
type FileLogo struct {
	Path string
}

func (f FileLogo) Logo(context.Context) ([]byte, bool, error) {
	img, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return img, true, nil
}

// ObjectDownloader fetches an object by key; store.MinioStore implements it.
type ObjectDownloader interface {
	Download(ctx context.Context, key string) ([]byte, bool, error)
}

// ObjectLogo reads the logo from an object store.
type ObjectLogo struct {
	Objects ObjectDownloader
	Key     string
}

func (o ObjectLogo) Logo(ctx context.Context) ([]byte, bool, error) {
	return o.Objects.Download(ctx, o.Key)
}

// FirstLogo tries each source in order and returns the first logo found.
// Errors are collected and returned only when no source had a logo.
type FirstLogo []LogoSource

func (sources FirstLogo) Logo(ctx context.Context) ([]byte, bool, error) {
	var errs []error
	for _, src := range sources {
		img, found, err := src.Logo(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if found {
			return img, true, nil
		}
	}
	return nil, false, errors.Join(errs...)
}
