package render

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
)

// LoadImage decodes key from fsys and caches it in r. Keys already in r are
// returned without touching fsys. A key without an extension also matches
// its .png file. wrap converts the decoded bitmap into the
// host's image type; nil keeps the decoded image.Image.
func (r *Registry) LoadImage(fsys fs.FS, key string, wrap func(image.Image) Image) (Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img, err := r.GetImage(key); err == nil {
		return img, nil
	}
	if fsys == nil {
		return nil, fmt.Errorf("render: load %s: no filesystem", key)
	}

	tried := []string{key, path.Join("sheets", key), path.Base(key)}
	if path.Ext(key) == "" {
		tried = append(tried, key+".png", path.Join("sheets", key+".png"))
	}
	for _, p := range tried {
		f, err := fsys.Open(p)
		if err != nil {
			continue
		}
		decoded, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		var img Image = decoded
		if wrap != nil {
			img = wrap(decoded)
		}
		r.RegisterImage(key, img)
		return img, nil
	}
	return nil, fmt.Errorf("render: image %s not found", key)
}
