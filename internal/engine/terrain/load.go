package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxelspace/internal/engine/texture"
)

// ErrAssetLoad matches every error returned by Load.
var ErrAssetLoad = errors.New("asset load failed")

// AssetError reports which terrain file could not be loaded.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("loading terrain asset %s: %v", e.Path, e.Err)
}

// Unwrap exposes the cause.
func (e *AssetError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrAssetLoad) true for any AssetError.
func (e *AssetError) Is(target error) bool { return target == ErrAssetLoad }

// Load opens and decodes a color map and a height map of equal size.
func Load(colorPath, heightPath string) (*Map, error) {
	colorImg, err := texture.Load(colorPath)
	if err != nil {
		return nil, &AssetError{Path: colorPath, Err: err}
	}
	heightImg, err := texture.Load(heightPath)
	if err != nil {
		return nil, &AssetError{Path: heightPath, Err: err}
	}

	m, err := FromImages(colorImg, heightImg)
	if err != nil {
		return nil, &AssetError{Path: heightPath, Err: err}
	}
	return m, nil
}
