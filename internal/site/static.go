package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// copyDirContents mirrors the tree under src into dst. Directories are
// created with default permissions; files keep their own.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("static path %s is outside %s: %w", path, src, err)
		}
		target := filepath.Join(dst, rel)

		if !d.IsDir() {
			return copyFile(path, target)
		}
		if err := os.MkdirAll(target, os.ModePerm); err != nil {
			return fmt.Errorf("creating static directory %s: %w", target, err)
		}
		return nil
	})
}

// copyFile copies a single file, keeping its permission bits.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	info, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dstFile, err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	// OpenFile permissions are subject to the umask.
	if err := dstF.Chmod(info.Mode().Perm()); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", dstFile, err)
	}
	return dstF.Close()
}
