// Package vector iterates the features of an ESRI shapefile that delimits
// the processing tiles of a batch run.
package vector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
)

// ErrVectorLoad wraps every failure to open or read a shapefile.
var ErrVectorLoad = errors.New("vector: cannot read shapefile")

// Feature is one tile outline.
type Feature struct {
	Index int     // 0-based record number (the FID)
	ID    string  // FID as text, or the ID attribute when configured
	BBox  shp.Box // bounding box in layer coordinates
}

// Option configures Open.
type Option func(*Reader)

// WithIDField takes feature ids from the named DBF attribute instead of the FID.
func WithIDField(name string) Option {
	return func(r *Reader) { r.idName = name }
}

// Reader walks features lazily. It is not safe for concurrent use.
type Reader struct {
	path    string
	shp     *shp.Reader
	idName  string
	idField int
	cur     Feature
}

// Open opens the .shp file at path.
func Open(path string, opts ...Option) (*Reader, error) {
	if !strings.EqualFold(filepath.Ext(path), ".shp") {
		return nil, fmt.Errorf("%w: %s: not a .shp file", ErrVectorLoad, path)
	}
	sr, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVectorLoad, err)
	}
	r := &Reader{path: path, shp: sr, idField: -1}
	for _, opt := range opts {
		opt(r)
	}
	if r.idName != "" {
		for i, f := range sr.Fields() {
			if strings.EqualFold(f.String(), r.idName) {
				r.idField = i
				break
			}
		}
		if r.idField < 0 {
			sr.Close()
			return nil, fmt.Errorf("%w: %s: no attribute %q", ErrVectorLoad, path, r.idName)
		}
	}
	return r, nil
}

// Next advances to the next feature. It returns false at the end of the
// layer or on error; check Err afterwards.
func (r *Reader) Next() bool {
	if !r.shp.Next() {
		return false
	}
	n, s := r.shp.Shape()
	r.cur = Feature{Index: n, ID: strconv.Itoa(n), BBox: s.BBox()}
	if r.idField >= 0 {
		r.cur.ID = r.shp.Attribute(r.idField)
	}
	return true
}

// Feature returns the feature read by the last call to Next.
func (r *Reader) Feature() Feature { return r.cur }

// ID returns the id of the current feature.
func (r *Reader) ID() string { return r.cur.ID }

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	if err := r.shp.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrVectorLoad, r.path, err)
	}
	return nil
}

// Close releases the underlying files.
func (r *Reader) Close() error {
	return r.shp.Close()
}

// FeatureIDs reads every feature id of the shapefile at path, in file order.
func FeatureIDs(path string, opts ...Option) ([]string, error) {
	r, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var ids []string
	for r.Next() {
		ids = append(ids, r.ID())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
