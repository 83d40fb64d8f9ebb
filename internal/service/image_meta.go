package service

import (
	"errors"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var errImagePathOutsideMediaDir = errors.New("image path escapes media directory")

// imageDimensions 读取媒体目录下图片文件的固有宽高。
// imagePath 为相对媒体目录的路径，禁止上跳目录。
func imageDimensions(mediaDir, imagePath string) (int, int, error) {
	cleaned := path.Clean(strings.TrimPrefix(strings.TrimSpace(imagePath), "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return 0, 0, errImagePathOutsideMediaDir
	}

	file, err := os.Open(filepath.Join(mediaDir, filepath.FromSlash(cleaned)))
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
