package domain

import "path/filepath"

type Category struct {
	Name string
	Dir  string
}

var (
	CategorySubareas  = Category{Name: "subareas", Dir: "subareas"}
	CategoryLandmarks = Category{Name: "landmarks", Dir: "landmarks"}
)

// OutputPath is where the image for slug lives under baseDir.
func (c Category) OutputPath(baseDir, slug string) string {
	return filepath.Join(baseDir, c.Dir, slug+".jpg")
}
