package surface

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/pspoerri/tilemap/internal/encode"
	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/raster"
)

// assetFormats lists the variant file extensions tried, in order.
var assetFormats = []string{"png", "webp"}

// TypeSpec names a surface type directory under the asset root. Variants is
// the number of variant files to load; zero means discover them.
type TypeSpec struct {
	Name     string
	Variants int
}

// LoadOptions controls asset decoding.
type LoadOptions struct {
	Normalizer  encode.Normalizer
	Concurrency int // decode workers; <= 0 uses GOMAXPROCS
	Logger      *log.Logger
}

func (o LoadOptions) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// variantPath returns the first existing variant file for index i in dir.
func variantPath(dir string, i int) (path, format string, err error) {
	for _, ext := range assetFormats {
		p := filepath.Join(dir, fmt.Sprintf("%d.%s", i, ext))
		_, statErr := os.Stat(p)
		if statErr == nil {
			return p, ext, nil
		}
		if !os.IsNotExist(statErr) {
			return "", "", errors.Wrap(errors.ErrCodeIO, statErr, "stat %s", p)
		}
	}
	return "", "", errors.New(errors.ErrCodeFileNotFound, "no variant %d in %s (tried %s)",
		i, dir, strings.Join(assetFormats, ", "))
}

// DiscoverVariants counts the consecutive variant files 0, 1, 2, ... in dir.
func DiscoverVariants(dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "surface type directory")
		}
		return 0, errors.Wrap(errors.ErrCodeIO, err, "surface type directory")
	}
	if !info.IsDir() {
		return 0, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	n := 0
	for {
		_, _, err := variantPath(dir, n)
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		n++
	}
}

// LoadVariant reads and normalizes one variant image.
func LoadVariant(path, format string, n encode.Normalizer) (*raster.Image[pixel.RGBA8], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "reading %s", path)
	}
	raw, err := encode.DecodeRaw(data, format)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeDecode
		}
		return nil, errors.Wrap(code, err, "decoding %s", path)
	}
	return encode.NormalizeImage[pixel.RGBA8](n, raw)
}

// LoadType loads the surface type stored in dir. The type name is the
// directory's base name.
func LoadType(dir string, variants int, opts LoadOptions) (Type, error) {
	name := filepath.Base(filepath.Clean(dir))
	if err := errors.ValidateTypeName(name); err != nil {
		return Type{}, err
	}

	if variants <= 0 {
		n, err := DiscoverVariants(dir)
		if err != nil {
			return Type{}, err
		}
		if n == 0 {
			return Type{}, errors.New(errors.ErrCodeFileNotFound, "surface type %q has no variant files", name)
		}
		variants = n
	}

	t := Type{Name: name, Variants: make([]*raster.Image[pixel.RGBA8], variants)}
	for i := range t.Variants {
		path, format, err := variantPath(dir, i)
		if err != nil {
			return Type{}, err
		}
		img, err := LoadVariant(path, format, opts.Normalizer)
		if err != nil {
			return Type{}, err
		}
		t.Variants[i] = img
	}
	return t, nil
}

// LoadLibrary loads every type in specs from root, in order, so that type
// ids match their index in specs. Types are decoded by a small worker pool;
// the first failure is returned.
func LoadLibrary(root string, tileDims raster.Dimensions, specs []TypeSpec, opts LoadOptions) (*Library, error) {
	logger := opts.logger()
	for _, s := range specs {
		if err := errors.ValidateTypeName(s.Name); err != nil {
			return nil, err
		}
	}

	workers := opts.Concurrency
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(len(specs), 1))

	type result struct {
		t   Type
		err error
	}
	results := make([]result, len(specs))
	jobs := make(chan int, len(specs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := specs[i]
				t, err := LoadType(filepath.Join(root, s.Name), s.Variants, opts)
				results[i] = result{t, err}
				if err == nil {
					logger.Debug("loaded surface type", "name", t.Name, "variants", len(t.Variants))
				}
			}
		}()
	}
	for i := range specs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	lib := NewLibrary(tileDims)
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		if _, err := lib.Add(r.t); err != nil {
			return nil, err
		}
	}
	logger.Info("surface library ready", "types", lib.Len(), "tile", tileDims)
	return lib, nil
}
